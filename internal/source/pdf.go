package source

import (
	"fmt"
	"strings"

	"github.com/dslipak/pdf"
)

// PDFReader extracts statement text from a PDF, page by page, grouping text
// fragments into visual rows so each transaction ends up on one line.
type PDFReader struct{}

// Extensions returns the file extensions handled by this reader.
func (r *PDFReader) Extensions() []string { return []string{"pdf"} }

// Read returns the PDF's text as lines for text-mode extraction.
func (r *PDFReader) Read(path string) (Input, error) {
	doc, err := pdf.Open(path)
	if err != nil {
		return Input{}, fmt.Errorf("opening %s: %w", path, err)
	}

	var lines []string
	for pageNum := 1; pageNum <= doc.NumPage(); pageNum++ {
		page := doc.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			return Input{}, fmt.Errorf("extracting text from %s page %d: %w", path, pageNum, err)
		}

		for _, row := range rows {
			var sb strings.Builder
			for _, word := range row.Content {
				if sb.Len() > 0 {
					sb.WriteString(" ")
				}
				sb.WriteString(word.S)
			}
			lines = append(lines, sb.String())
		}
	}

	return Input{Kind: KindText, Lines: lines}, nil
}
