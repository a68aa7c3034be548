package volby

import (
	"volby-scrapper/helpers"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
)

// Fields returns the normalized text of every table cell carrying cellClass,
// in document order. When header is not empty the cell's headers attribute
// must be exactly header; multi-id values such as "t1sa2 t1sb3" are compared
// as a whole.
func Fields(doc *goquery.Document, cellClass, header string) []string {
	return doc.Find("td").
		FilterFunction(func(_ int, cell *goquery.Selection) bool {
			if !cell.HasClass(cellClass) {
				return false
			}
			if header == "" {
				return true
			}
			headers, ok := cell.Attr("headers")
			return ok && headers == header
		}).
		Map(func(_ int, cell *goquery.Selection) string {
			return helpers.NormalizeCell(cell.Text())
		})
}

// Field is Fields for cells that must appear exactly once.
func Field(doc *goquery.Document, cellClass, header string) (string, error) {
	values := Fields(doc, cellClass, header)
	switch len(values) {
	case 1:
		return values[0], nil
	case 0:
		return "", errors.Errorf("no cell with class %q and headers %q", cellClass, header)
	default:
		return "", errors.Errorf("%d cells with class %q and headers %q, expected one", len(values), cellClass, header)
	}
}

// Count reads a single numeric cell.
func Count(doc *goquery.Document, cellClass, header string) (int, error) {
	value, err := Field(doc, cellClass, header)
	if err != nil {
		return 0, err
	}
	return helpers.ParseCount(value)
}
