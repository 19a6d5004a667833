/*
Package roots stores Arabic triliteral roots in a binary search tree.

Roots are entered in dashed form, e.g. ك-ت-ب, and kept in compact form (كتب)
as the tree key. Nodes are ordered by code-point comparison of the compact
root. The tree is not rebalanced; its shape depends on insertion order.

Every node owns the list of words that have been derived from its root,
together with a frequency count for each word.
*/
package roots

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sarf'
func tracer() tracing.Trace {
	return tracing.Select("sarf")
}
