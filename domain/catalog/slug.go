package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes text and removes combining marks, turning
// "măng" into "mang". Vietnamese đ/Đ does not decompose, so it is
// mapped separately in Slugify.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var dReplacer = strings.NewReplacer("đ", "d", "Đ", "D")

// Slugify derives a URL-safe slug from a product name: diacritics are
// stripped, the result is lowercased, and every run of non-alphanumeric
// characters collapses to a single hyphen.
//
// The derivation is deterministic and never disambiguates: two names that
// reduce to the same slug collide, and the store reports ErrDuplicateSlug.
func Slugify(name string) string {
	name = dReplacer.Replace(name)
	if out, _, err := transform.String(stripMarks, name); err == nil {
		name = out
	}
	name = strings.ToLower(name)

	var b strings.Builder
	b.Grow(len(name))
	pendingSep := false
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	return b.String()
}
