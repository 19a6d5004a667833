package roots

import (
	"errors"
	"iter"
	"strings"

	"github.com/npillmayer/sarf/arabic"
)

// ErrRootExists flags a line of a bulk load naming a root already present.
// Tree.Insert itself treats this case as a no-op.
var ErrRootExists = errors.New("root already exists")

// Load inserts one dashed root per line and returns the number of roots
// newly added. Blank lines, malformed roots and known roots are skipped.
func (t *Tree) Load(lines iter.Seq[string]) int {
	n, _ := t.LoadReport(lines)
	return n
}

// LoadReport is like Load but additionally returns one *arabic.LineError
// for every skipped non-blank line.
func (t *Tree) LoadReport(lines iter.Seq[string]) (int, []error) {
	var rejected []error
	added, lineno := 0, 0
	for line := range lines {
		lineno++
		raw := strings.TrimSpace(line)
		if raw == "" {
			continue
		}
		before := t.size
		if _, err := t.Insert(raw); err != nil {
			rejected = append(rejected, &arabic.LineError{Line: lineno, Text: raw, Err: err})
			continue
		}
		if t.size == before {
			rejected = append(rejected, &arabic.LineError{Line: lineno, Text: raw, Err: ErrRootExists})
			continue
		}
		added++
	}
	tracer().Infof("roots loaded: added=%d rejected=%d size=%d height=%d",
		added, len(rejected), t.size, t.Height())
	return added, rejected
}
