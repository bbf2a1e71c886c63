package classify

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Stop words removed during normalization. Word-boundary exact match only;
// "кто" is dropped but "ктото" would survive.
var stopWords = map[string]bool{
	"и": true, "в": true, "на": true, "с": true, "по": true, "для": true,
	"не": true, "ни": true, "но": true, "а": true, "или": true,
	"что": true, "как": true, "когда": true, "где": true, "почему": true,
	"зачем": true, "кто": true,
	"какой": true, "какая": true, "какие": true, "какое": true,
	"каких": true, "каким": true, "какими": true, "каком": true,
	"какую": true, "какого": true, "какому": true, "какою": true,
	"это": true, "этот": true, "эта": true, "эти": true, "этого": true,
	"этой": true, "этим": true, "этими": true, "этом": true, "эту": true,
	"этою": true,
	"быть": true, "был": true, "была": true, "были": true, "было": true,
	"буду": true, "будешь": true, "будет": true, "будем": true,
	"будете": true, "будут": true,
	"стать": true, "стал": true, "стала": true, "стали": true,
	"стало": true, "стану": true, "станешь": true, "станет": true,
	"станем": true, "станете": true, "станут": true,
}

// Normalize canonicalizes a query for rule scoring: lowercases with
// Russian casing rules, replaces everything but letters, digits,
// whitespace and hyphens with spaces, collapses whitespace, and drops
// stop words. Total, idempotent and safe for concurrent callers; the
// cases.Caser is built per call because it carries internal state.
func Normalize(text string) string {
	text = cases.Lower(language.Russian).String(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	words := strings.Fields(b.String())
	kept := words[:0]
	for _, word := range words {
		if !stopWords[word] {
			kept = append(kept, word)
		}
	}

	return strings.Join(kept, " ")
}
