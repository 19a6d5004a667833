package sarf

import (
	"strings"

	"github.com/npillmayer/sarf/arabic"
	"github.com/npillmayer/sarf/roots"
)

// Derive substitutes the letters of rawRoot for the placeholders of rule.
// rawRoot must be a well-formed dashed root; otherwise Derive returns false.
// Runes of rule other than ف, ع and ل are copied unchanged.
//
// Derive does not consult any store.
func Derive(rawRoot, rule string) (string, bool) {
	letters, err := roots.Letters(rawRoot)
	if err != nil || rule == "" {
		return "", false
	}
	var b strings.Builder
	b.Grow(len(rule))
	for _, r := range rule {
		switch r {
		case arabic.Fa:
			b.WriteRune(letters[0])
		case arabic.Ain:
			b.WriteRune(letters[1])
		case arabic.Lam:
			b.WriteRune(letters[2])
		default:
			b.WriteRune(r)
		}
	}
	return b.String(), true
}
