package helpers

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
)

const nbsp = "\u00a0"

// NormalizeCell drops every non-breaking space, trims the surrounding
// whitespace and returns the text in NFC so that names with diacritics compare
// and serialize the same way regardless of how the page encoded them.
func NormalizeCell(text string) string {
	text = strings.ReplaceAll(text, nbsp, "")
	return norm.NFC.String(strings.TrimSpace(text))
}

// ParseCount reads a vote or voter count. The site groups thousands with
// non-breaking spaces, which are removed before conversion.
func ParseCount(text string) (int, error) {
	cleaned := NormalizeCell(text)
	if cleaned == "" {
		return 0, errors.New("empty value")
	}

	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, errors.Errorf("%q is not a whole number", text)
	}
	if n < 0 {
		return 0, errors.Errorf("%q is negative", text)
	}

	return n, nil
}
