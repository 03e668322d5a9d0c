// Package pdfwriter serializes plain text lines into a minimal PDF 1.4 file.
//
// Output uses a single standard Type1 font with no embedding, one content
// stream per page and a classic cross-reference table. Text is written as
// literal strings, so only characters the viewer's font encoding covers
// display correctly.
package pdfwriter
