package linkedin

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPages returns the text of each non-empty page of the PDF, one
// line per visual row. The section parsing downstream is line-oriented,
// so row structure is preserved rather than using the flat text stream.
// Non-breaking spaces are normalized to regular spaces; LinkedIn exports
// use them liberally inside dates and URLs.
func extractPages(path string) ([]string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, &ParseError{Message: fmt.Sprintf("failed to open PDF %s", path), Cause: err}
	}
	defer f.Close()

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		p := reader.Page(i)
		if p.V.IsNull() {
			continue
		}
		rows, err := p.GetTextByRow()
		if err != nil {
			return nil, &ParseError{Message: fmt.Sprintf("failed to extract text from page %d", i), Cause: err}
		}

		var sb strings.Builder
		for _, row := range rows {
			for _, word := range row.Content {
				sb.WriteString(word.S)
			}
			sb.WriteString("\n")
		}

		text := strings.ReplaceAll(sb.String(), " ", " ")
		if strings.TrimSpace(text) != "" {
			pages = append(pages, text)
		}
	}

	return pages, nil
}
