package document

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"shipsched/internal/domain"
)

// TextExtractor turns a document file into text lines.
type TextExtractor interface {
	Lines(path string) ([]string, error)
}

// PDFText reads PDF pages row by row; glyphs sharing a baseline form a line.
type PDFText struct{}

func (PDFText) Lines(path string) (lines []string, err error) {
	// the pdf package panics on some malformed xref tables
	defer func() {
		if r := recover(); r != nil {
			lines = nil
			err = domain.ExtractionError{URL: path, Kind: domain.ExtractionUnreadable, Err: fmt.Errorf("%v", r)}
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, domain.ExtractionError{URL: path, Kind: domain.ExtractionUnreadable, Err: err}
	}
	defer f.Close()

	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		rows, err := p.GetTextByRow()
		if err != nil {
			return nil, domain.ExtractionError{URL: path, Kind: domain.ExtractionUnreadable, Err: err}
		}
		for _, row := range rows {
			var b strings.Builder
			for _, word := range row.Content {
				b.WriteString(word.S)
			}
			if line := strings.TrimRight(b.String(), " \t"); line != "" {
				lines = append(lines, line)
			}
		}
	}
	return lines, nil
}
