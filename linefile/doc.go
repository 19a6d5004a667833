/*
Package linefile loads roots and patterns from line-oriented text files.

Both file kinds hold one item per line:

	# roots.txt
	ك-ت-ب
	د-ر-س

	# patterns.txt
	فاعل
	مفعول

Lines starting with # are comments. Blank lines and comments are ignored,
lines the engine rejects are skipped and reported, and loading never stops
at a bad line.
*/
package linefile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sarf'
func tracer() tracing.Trace {
	return tracing.Select("sarf")
}
