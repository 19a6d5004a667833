/*
Package patterns stores Arabic pattern skeletons (awzan) together with the
rule that is substituted during derivation.

A skeleton is written with the three placeholder letters ف ع ل marking the
slots of a root's first, second and third letter, plus any fixed affixes and
shadda marks, e.g. فاعل, مفعول or فعّال. The rule defaults to the skeleton but
may be changed independently, while the skeleton stays the lookup key.

Patterns live in a chained hash table of fixed capacity (37 buckets) using a
polynomial rolling hash over code points, so bucket placement is reproducible
across runs and instances.
*/
package patterns

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sarf'
func tracer() tracing.Trace {
	return tracing.Select("sarf")
}
