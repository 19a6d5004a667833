package patterns

import (
	"iter"
	"strings"

	"github.com/npillmayer/sarf/arabic"
)

// Load inserts one pattern per line and returns the number of patterns
// added. Blank lines, malformed patterns and duplicates are skipped.
func (t *Table) Load(lines iter.Seq[string]) int {
	n, _ := t.LoadReport(lines)
	return n
}

// LoadReport is like Load but additionally returns one *arabic.LineError
// for every rejected non-blank line.
func (t *Table) LoadReport(lines iter.Seq[string]) (int, []error) {
	var rejected []error
	added, lineno := 0, 0
	for line := range lines {
		lineno++
		raw := strings.TrimSpace(line)
		if raw == "" {
			continue
		}
		if err := t.Insert(raw); err != nil {
			rejected = append(rejected, &arabic.LineError{Line: lineno, Text: raw, Err: err})
			continue
		}
		added++
	}
	stats := t.Stats()
	tracer().Infof("patterns loaded: added=%d rejected=%d buckets used=%d/%d longest chain=%d",
		added, len(rejected), stats.UsedBuckets, stats.Buckets, stats.LongestChain)
	return added, rejected
}
