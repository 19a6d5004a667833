package roots

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/sarf/arabic"
)

// ValidateDashed checks that raw denotes exactly three Arabic letters
// separated by two dashes, after whitespace and diacritics have been
// stripped. It returns a *arabic.ValidationError carrying the first
// failed check.
func ValidateDashed(raw string) error {
	s := arabic.NormalizeWord(raw)
	letters := strings.ReplaceAll(s, string(arabic.Dash), "")
	if letters == "" {
		return reject(raw, "Root must contain letters.")
	}
	for _, r := range letters {
		if !arabic.IsArabicLetter(r) {
			return reject(raw, "Only Arabic letters are allowed.")
		}
	}
	if utf8.RuneCountInString(letters) != 3 {
		return reject(raw, "Root must have exactly 3 letters.")
	}
	if strings.Count(s, string(arabic.Dash)) != 2 {
		return reject(raw, "Root must contain exactly two dashes (example: ك-ت-ب).")
	}
	parts := strings.Split(s, string(arabic.Dash))
	for _, part := range parts {
		if part == "" {
			return reject(raw, "Missing letter between dashes.")
		}
	}
	for _, part := range parts {
		if utf8.RuneCountInString(part) != 1 {
			return reject(raw, "Each part must be a single letter.")
		}
	}
	return nil
}

func reject(raw, reason string) error {
	return arabic.NewValidationError("root", raw, reason)
}

// ToCompact normalizes raw and drops the dashes: ك-ت-ب => كتب.
// It does not validate.
func ToCompact(raw string) string {
	return strings.ReplaceAll(arabic.NormalizeWord(raw), string(arabic.Dash), "")
}

// FormatDashed inserts dashes between the letters of a compact root:
// كتب => ك-ت-ب.
func FormatDashed(compact string) string {
	var b strings.Builder
	b.Grow(len(compact) + 2)
	for i, r := range []rune(compact) {
		if i > 0 {
			b.WriteRune(arabic.Dash)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Letters validates raw and returns the letters filling the fa, ain and lam
// slots of a pattern, in this order.
func Letters(raw string) (letters [3]rune, err error) {
	if err = ValidateDashed(raw); err != nil {
		return
	}
	copy(letters[:], []rune(ToCompact(raw)))
	return letters, nil
}
