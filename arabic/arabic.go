/*
Package arabic canonicalizes Arabic text for root and pattern processing.

Normalization drops whitespace and the tatweel elongation character, composes
the remainder to NFC, and folds the Alef variants (with hamza above, hamza
below, madda and wasla) onto bare Alef. What happens to the harakat depends on
the mode:

	RootOrWord  strips every diacritic, shadda included
	Pattern     strips every diacritic except shadda

Shadda survives in patterns because it marks gemination of a particular
consonant slot, and derivation has to reproduce it verbatim.

Invalid UTF-8 decodes to utf8.RuneError, which is never an Arabic letter, so
such input is rejected by every validation built on this package.
*/
package arabic

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Mode selects which diacritics survive normalization.
type Mode int8

const (
	RootOrWord Mode = iota // strip all diacritics
	Pattern                // strip all diacritics but shadda
)

func (m Mode) String() string {
	if m == Pattern {
		return "pattern"
	}
	return "root-or-word"
}

// Letters and marks with a role in derivation.
const (
	Alef    = 'ا'
	Fa      = 'ف' // first root slot
	Ain     = 'ع' // second root slot
	Lam     = 'ل' // third root slot
	Shadda  = '\u0651'
	Tatweel = '\u0640'
	Dash    = '-'
)

const (
	firstLetter = 'ء' // hamza
	lastLetter  = 'ي' // yeh
)

// IsArabicLetter reports whether r is in the main Arabic letter block,
// hamza through yeh (including alef maksura).
func IsArabicLetter(r rune) bool {
	return r >= firstLetter && r <= lastLetter
}

// IsDiacritic reports whether r is one of the harakat removed during
// normalization: tanwin, short vowels, shadda, sukun and superscript alef.
func IsDiacritic(r rune) bool {
	return (r >= '\u064B' && r <= '\u0652') || r == '\u0670'
}

// IsPlaceholder reports whether r marks a root slot in a pattern.
func IsPlaceholder(r rune) bool {
	return r == Fa || r == Ain || r == Lam
}

func foldAlef(r rune) rune {
	switch r {
	case 'أ', 'إ', 'آ', 'ٱ': // أ إ آ ٱ
		return Alef
	}
	return r
}

// isAlefMark reports whether r is a combining madda or hamza, which NFC
// would fuse with a preceding Alef.
func isAlefMark(r rune) bool {
	return r >= '\u0653' && r <= '\u0655'
}

// Normalize canonicalizes text according to mode.
// Normalize is idempotent: Normalize(Normalize(s, m), m) == Normalize(s, m).
func Normalize(text string, mode Mode) string {
	if text == "" {
		return ""
	}
	// Marks and fillers go before NFC composition, they could block it.
	text = strings.Map(func(r rune) rune {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == Tatweel:
			return -1
		case r == Shadda && mode == Pattern:
			return r
		case IsDiacritic(r):
			return -1
		}
		return r
	}, text)
	text = norm.NFC.String(text)
	var b strings.Builder
	b.Grow(len(text))
	var last rune
	for _, r := range text {
		if isAlefMark(r) && last == Alef {
			continue // a second hamza/madda on an already folded Alef
		}
		r = foldAlef(r)
		b.WriteRune(r)
		if r != Shadda {
			last = r
		}
	}
	return b.String()
}

// NormalizeWord is a shortcut for Normalize(word, RootOrWord).
func NormalizeWord(word string) string {
	return Normalize(word, RootOrWord)
}

// NormalizePattern is a shortcut for Normalize(pattern, Pattern).
func NormalizePattern(pattern string) string {
	return Normalize(pattern, Pattern)
}
