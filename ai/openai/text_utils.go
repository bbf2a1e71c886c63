package openai

import (
	"regexp"
	"strings"
)

// scrubString removes punctuation that tends to confuse small models and
// trims whitespace. Hyphens are kept; they matter in Russian compounds.
func scrubString(s string) string {
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(".,!?;:\"'()[]{}", r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// unquotedKey matches an object key that lost its opening quote,
// e.g. `{label": "x"}` or `, score": 1`.
var unquotedKey = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z_ ]*)":`)

// repairJSON fixes the malformed-key output some local models produce
// before unmarshaling is attempted.
func repairJSON(s string) string {
	return unquotedKey.ReplaceAllString(s, `$1"$2":`)
}
