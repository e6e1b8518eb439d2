package farmers

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var searchNormalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeSearch normaliza el texto de búsqueda antes de enviarlo al
// colaborador: minúsculas y sin diacríticos, para que "jose" encuentre a "José".
func NormalizeSearch(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return ""
	}
	out, _, err := transform.String(searchNormalizer, s)
	if err != nil {
		return s
	}
	return out
}
