// Package textfold folds Spanish text into ASCII for matching and URLs.
package textfold

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxSlugLength bounds the length of slugs built by Slug.
const MaxSlugLength = 80

// Fold lower-cases s and strips diacritics ("Compañía" -> "compania").
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	return strings.ToLower(folded)
}

// Key folds s and keeps only ASCII letters and digits ("Nº Póliza" -> "npoliza").
func Key(s string) string {
	folded := Fold(s)

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if isAlnum(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Slug folds s into lower-case words joined by single dashes, cut at a word
// boundary when longer than MaxSlugLength.
func Slug(s string) string {
	folded := Fold(s)

	var b strings.Builder
	dash := false
	for _, r := range folded {
		if !isAlnum(r) {
			dash = b.Len() > 0
			continue
		}
		if dash {
			b.WriteByte('-')
			dash = false
		}
		b.WriteRune(r)
	}

	slug := b.String()
	if len(slug) > MaxSlugLength {
		slug = slug[:MaxSlugLength]
		if i := strings.LastIndexByte(slug, '-'); i > 0 {
			slug = slug[:i]
		}
	}

	return slug
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
