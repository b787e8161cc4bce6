package area

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"miniticker/internal/shared/constants"
)

// prefixLength is the number of characters taken from the area name.
const prefixLength = 3

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// GeneratePrefix derives a ticket-numbering prefix from an area name:
// diacritics are stripped, the name is uppercased, and the first three
// letters are taken ("Administración" -> "ADM"). Falls back to the default
// prefix when the name yields nothing usable.
func GeneratePrefix(name string) string {
	cleaned, _, err := transform.String(stripMarks, strings.TrimSpace(name))
	if err != nil {
		cleaned = strings.TrimSpace(name)
	}

	var b strings.Builder
	for _, r := range strings.ToUpper(cleaned) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
			if b.Len() == prefixLength {
				break
			}
		}
	}

	if b.Len() == 0 {
		return constants.DefaultAreaPrefix
	}
	return b.String()
}
