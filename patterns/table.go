package patterns

import (
	"errors"
	"iter"
	"slices"
	"unicode/utf8"

	"github.com/npillmayer/sarf/arabic"
)

// Capacity is the fixed number of buckets of every Table.
const Capacity = 37

// MinLength is the minimum rune count of a normalized pattern or rule.
const MinLength = 3

const hashBase = 131

var (
	ErrPatternExists   = errors.New("pattern already exists")
	ErrPatternNotFound = errors.New("pattern not found")
)

type entry struct {
	pattern string
	rule    string
}

// chain holds the entries of one bucket in insertion order.
// Iteration runs backwards, so the most recent entry comes first.
type chain []entry

func (c chain) find(pattern string) int {
	for i := range c {
		if c[i].pattern == pattern {
			return i
		}
	}
	return -1
}

// Table is a chained hash table from normalized pattern skeletons to
// substitution rules. It has a fixed capacity of 37 buckets.
//
// Table is not safe for concurrent mutation.
type Table struct {
	buckets [Capacity]chain
	size    int
}

// NewTable creates an empty pattern table.
func NewTable() *Table {
	return &Table{}
}

// Hash is the polynomial rolling hash of a normalized pattern,
// h = (h*131 + codepoint) mod 37, accumulated left to right.
func Hash(key string) int {
	h := 0
	for _, r := range key {
		h = (h*hashBase + int(r)) % Capacity
	}
	return h
}

// Normalize canonicalizes and validates a pattern or rule. field names the
// role of the input in a validation error.
func Normalize(field, raw string) (string, error) {
	normalized := arabic.NormalizePattern(raw)
	if normalized == "" {
		return "", arabic.NewValidationError(field, raw, "Pattern must not be empty.")
	}
	if utf8.RuneCountInString(normalized) < MinLength {
		return "", arabic.NewValidationError(field, raw, "Pattern must have at least 3 characters.")
	}
	var fa, ain, lam bool
	for _, r := range normalized {
		switch {
		case r == arabic.Shadda:
		case !arabic.IsArabicLetter(r):
			return "", arabic.NewValidationError(field, raw, "Only Arabic letters and shadda are allowed.")
		case r == arabic.Fa:
			fa = true
		case r == arabic.Ain:
			ain = true
		case r == arabic.Lam:
			lam = true
		}
	}
	if !fa || !ain || !lam {
		return "", arabic.NewValidationError(field, raw, "Pattern must contain the placeholders ف, ع and ل.")
	}
	return normalized, nil
}

func (t *Table) bucket(normalized string) *chain {
	return &t.buckets[Hash(normalized)]
}

// Insert adds a pattern. The rule defaults to the pattern itself; an
// optional first rule argument overrides it. Insert fails with a
// *arabic.ValidationError for malformed input and with ErrPatternExists for
// a pattern already present.
func (t *Table) Insert(pattern string, rule ...string) error {
	p, err := Normalize("pattern", pattern)
	if err != nil {
		return err
	}
	r := p
	if len(rule) > 0 && rule[0] != "" {
		if r, err = Normalize("rule", rule[0]); err != nil {
			return err
		}
	}
	b := t.bucket(p)
	if b.find(p) >= 0 {
		return ErrPatternExists
	}
	*b = append(*b, entry{pattern: p, rule: r})
	t.size++
	tracer().Debugf("pattern %s inserted into bucket %d", p, Hash(p))
	return nil
}

// Contains reports whether pattern is present. Malformed input is simply
// not contained.
func (t *Table) Contains(pattern string) bool {
	_, ok := t.Rule(pattern)
	return ok
}

// Rule returns the substitution rule stored for pattern.
func (t *Table) Rule(pattern string) (string, bool) {
	p, err := Normalize("pattern", pattern)
	if err != nil {
		return "", false
	}
	b := t.bucket(p)
	if i := b.find(p); i >= 0 {
		return (*b)[i].rule, true
	}
	return "", false
}

// Update replaces the rule of an existing pattern in place.
func (t *Table) Update(pattern, newRule string) error {
	p, err := Normalize("pattern", pattern)
	if err != nil {
		return err
	}
	r, err := Normalize("rule", newRule)
	if err != nil {
		return err
	}
	b := t.bucket(p)
	i := b.find(p)
	if i < 0 {
		return ErrPatternNotFound
	}
	(*b)[i].rule = r
	return nil
}

// Remove unlinks a pattern from its chain.
func (t *Table) Remove(pattern string) error {
	p, err := Normalize("pattern", pattern)
	if err != nil {
		return err
	}
	b := t.bucket(p)
	i := b.find(p)
	if i < 0 {
		return ErrPatternNotFound
	}
	*b = slices.Delete(*b, i, i+1)
	t.size--
	return nil
}

// Size returns the number of stored patterns.
func (t *Table) Size() int {
	return t.size
}

// All iterates over the stored patterns in bucket order, most recently
// inserted first within a bucket. The sequence may be ranged over
// repeatedly; it must not be used across a mutation of the table.
func (t *Table) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for p := range t.Entries() {
			if !yield(p) {
				return
			}
		}
	}
}

// Entries is like All but yields each pattern together with its rule.
func (t *Table) Entries() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for i := range t.buckets {
			c := t.buckets[i]
			for j := len(c) - 1; j >= 0; j-- {
				if !yield(c[j].pattern, c[j].rule) {
					return
				}
			}
		}
	}
}

// Patterns materializes All.
func (t *Table) Patterns() []string {
	return slices.Collect(t.All())
}
