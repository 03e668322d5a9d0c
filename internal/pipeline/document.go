package pipeline

// Document is one manifest entry with its source loaded.
type Document struct {
	Title   string // manifest link text
	Rel     string // root-relative slash path, shown in placeholders
	Dir     string // directory holding the source file
	Body    string // raw markdown with \n line endings
	Missing bool   // source file does not exist
}

// MissingPlaceholder is the line substituted for a document that does not exist.
func (d Document) MissingPlaceholder() string {
	return "[Missing file: " + d.Rel + "]"
}
