/*
Package sarf derives Arabic words from triliteral roots and pattern
skeletons, and checks whether a word belongs to a root.

A root such as ك-ت-ب is combined with a pattern such as فاعل by substituting
the root's letters for the placeholder letters ف, ع and ل of the pattern's
rule. Every other letter of the rule, shadda included, is copied verbatim:

	ك-ت-ب + فاعل  => كاتب
	ك-ت-ب + فعّال => كتّاب

Roots live in package roots, patterns in package patterns. This package
adds the derivation function, a Generator producing single words or whole
word families, a Validator deciding root membership of a word, and an Engine
bundling all of it behind one API. Words produced by generation or confirmed
by validation are recorded with their root, together with a frequency count.

None of the types is safe for concurrent mutation. Callers sharing an Engine
between goroutines have to serialize writers.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package sarf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sarf'
func tracer() tracing.Trace {
	return tracing.Select("sarf")
}
