package sarf

import "github.com/npillmayer/sarf/arabic"

// Answer is the outcome of a validation.
type Answer string

const (
	OUI Answer = "OUI" // the word belongs to the root
	NON Answer = "NON"
)

// Verdict reports whether a word belongs to a root, and if so, through which
// pattern and as which generated word.
type Verdict struct {
	Result  Answer `json:"result"`
	Pattern string `json:"pattern,omitempty"`
	Word    string `json:"word,omitempty"`
}

// Validator decides membership of words by generating candidates for every
// stored pattern.
type Validator struct {
	gen *Generator
}

func NewValidator(gen *Generator) *Validator {
	return &Validator{gen: gen}
}

// Validate tries every pattern with root, without recording, and compares
// the normalized candidates with the normalized word. The first match is
// recorded with the root, in its generated spelling, and returned with OUI.
func (v *Validator) Validate(root, word string) Verdict {
	if v.gen.roots.Search(root) == nil {
		return Verdict{Result: NON}
	}
	target := arabic.NormalizeWord(word)
	if target == "" {
		return Verdict{Result: NON}
	}
	for pattern := range v.gen.patterns.All() {
		res := v.gen.GenerateOne(root, pattern, false)
		if !res.OK || arabic.NormalizeWord(res.Word) != target {
			continue
		}
		v.gen.roots.AddDerivedWord(root, res.Word)
		tracer().Debugf("%s validated for %s by pattern %s", word, root, pattern)
		return Verdict{Result: OUI, Pattern: pattern, Word: res.Word}
	}
	return Verdict{Result: NON}
}
