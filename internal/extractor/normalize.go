package extractor

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripCombining drops Unicode combining marks after NFD decomposition,
// the standard Go idiom for accent-stripping. golang.org/x/text is already
// pulled in transitively by excelize; this promotes it to direct,
// exercised use (spec.md §4.1.2 / §4.1.6 normalization rule).
var stripCombining = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeName implements spec.md §4.1.6: uppercase, accent-stripped,
// anything not A-Z or space dropped, runs of spaces collapsed.
func normalizeName(raw string) string {
	folded, _, err := transform.String(stripCombining, raw)
	if err != nil {
		folded = raw
	}
	folded = strings.ToUpper(folded)

	var b strings.Builder
	lastSpace := false
	for _, r := range folded {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r)
			lastSpace = false
		case r == ' ':
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}

// normalizeRUT keeps digits and K/k, uppercases, strips leading zeros.
func normalizeRUT(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == 'k' || r == 'K':
			b.WriteRune('K')
		}
	}
	s := strings.TrimLeft(b.String(), "0")
	return s
}

// normalizeBedType implements spec.md §4.1.6's bed-type collapsing rules.
func normalizeBedType(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	switch {
	case s == "":
		return "INDEFINIDO"
	case s == "C.M.A" || s == "C.M.A." || strings.Contains(s, "MAYOR AMBULATORIA"):
		return "CMA"
	case s == "MEDIO" || s == "CAMA MEDIA":
		return "MEDIA"
	default:
		return s
	}
}

// parseUPC implements spec.md §4.1.6's UPC flag rule.
func parseUPC(raw string) bool {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "SI" || s == "X" {
		return true
	}
	return strings.Contains(s, "UPC") || strings.Contains(s, "UCI") || strings.Contains(s, "UTI")
}
