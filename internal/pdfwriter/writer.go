package pdfwriter

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

const header = "%PDF-1.4\n"

var textEscaper = strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)

// Render lays lines out on pages and returns the serialized PDF. Zero lines
// produce a valid document with an empty page tree. Layout should be
// validated by the caller.
func Render(lines []string, layout Layout) []byte {
	pages := paginate(lines, layout.LinesPerPage)

	var d document
	catalog := d.reserve(1)
	tree := d.reserve(1)
	firstPage := d.reserve(len(pages))
	firstContent := d.reserve(len(pages))
	font := d.reserve(1)

	d.set(catalog, "<< /Type /Catalog /Pages "+tree.String()+" >>")

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = (firstPage + ref(i)).String()
	}
	d.set(tree, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))

	for i, page := range pages {
		d.set(firstPage+ref(i), fmt.Sprintf(
			"<< /Type /Page /Parent %s /MediaBox [0 0 %d %d] /Contents %s /Resources << /Font << /F1 %s >> >> >>",
			tree, layout.PageWidth, layout.PageHeight, firstContent+ref(i), font,
		))
		d.set(firstContent+ref(i), streamObject(contentStream(page, layout)))
	}

	d.set(font, "<< /Type /Font /Subtype /Type1 /BaseFont /"+layout.FontName+" >>")

	return d.serialize(catalog)
}

// paginate splits lines into pages of at most perPage lines.
func paginate(lines []string, perPage int) [][]string {
	if perPage < 1 {
		perPage = 1
	}
	var pages [][]string
	for start := 0; start < len(lines); start += perPage {
		end := min(start+perPage, len(lines))
		pages = append(pages, lines[start:end])
	}
	return pages
}

// contentStream draws lines top-down starting at the layout origin.
func contentStream(lines []string, l Layout) string {
	ops := make([]string, 0, 2*len(lines)+5)
	ops = append(ops,
		"BT",
		fmt.Sprintf("/F1 %d Tf", l.FontSize),
		fmt.Sprintf("%d TL", l.Leading),
		fmt.Sprintf("%d %d Td", l.MarginLeft, l.StartY),
	)
	for _, line := range lines {
		ops = append(ops, "("+escapeText(line)+") Tj", "T*")
	}
	ops = append(ops, "ET")
	return strings.Join(ops, "\n")
}

func streamObject(data string) string {
	return "<< /Length " + strconv.Itoa(len(data)) + " >>\nstream\n" + data + "\nendstream"
}

// escapeText escapes the characters that delimit a PDF literal string.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// ---------------------------------------------------------------------------
// Object table
// ---------------------------------------------------------------------------

// ref is an indirect object number.
type ref int

func (r ref) String() string {
	return strconv.Itoa(int(r)) + " 0 R"
}

// document holds indirect object bodies indexed by object number minus one.
// Numbers are reserved up front so bodies can reference objects that are
// filled in later.
type document struct {
	objects []string
}

// reserve allocates n consecutive object numbers and returns the first.
func (d *document) reserve(n int) ref {
	first := ref(len(d.objects) + 1)
	d.objects = append(d.objects, make([]string, n)...)
	return first
}

func (d *document) set(r ref, body string) {
	d.objects[r-1] = body
}

// serialize writes the header, every object, the xref table and the trailer.
func (d *document) serialize(root ref) []byte {
	var buf bytes.Buffer
	buf.WriteString(header)

	offsets := make([]int, len(d.objects))
	for i, body := range d.objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}

	xrefStart := buf.Len()
	size := len(d.objects) + 1

	entries := make([]string, 0, size+1)
	entries = append(entries, fmt.Sprintf("xref\n0 %d", size), "0000000000 65535 f ")
	for _, off := range offsets {
		entries = append(entries, fmt.Sprintf("%010d 00000 n ", off))
	}
	buf.WriteString(strings.Join(entries, "\n"))

	fmt.Fprintf(&buf, "\ntrailer\n<< /Size %d /Root %s >>\nstartxref\n%d\n%%%%EOF\n", size, root, xrefStart)
	return buf.Bytes()
}
