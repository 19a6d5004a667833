package linefile

import (
	"bufio"
	"io"
	"iter"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Comment starts a comment line.
const Comment = "#"

// Reader streams the items of a line file: one root or pattern per line.
// Surrounding whitespace is trimmed, blank lines and comment lines are
// skipped. A leading byte order mark selects UTF-16 decoding and is dropped;
// input without one is read as UTF-8.
type Reader struct {
	scanner *bufio.Scanner
	line    int
	err     error
}

func NewReader(reader io.Reader) *Reader {
	decoded := transform.NewReader(reader, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	return &Reader{
		scanner: bufio.NewScanner(decoded),
	}
}

// next returns the next non-blank item.
// It returns io.EOF when exhausted.
func (r *Reader) next() (string, error) {
	for {
		text, ok := r.scan()
		if !ok {
			break
		}
		if text != "" {
			return text, nil
		}
	}
	if r.err != nil {
		return "", r.err
	}
	return "", io.EOF
}

// Line is the 1-based number of the physical line read last.
func (r *Reader) Line() int {
	return r.line
}

// All yields one string per physical line, blank for blank lines and
// comments, so positions in the sequence are line numbers. The sequence ends
// at the end of input or at the first read error, see Err. It can be ranged
// over only once.
func (r *Reader) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			text, ok := r.scan()
			if !ok || !yield(text) {
				return
			}
		}
	}
}

// Err returns the first read error, if any.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) scan() (string, bool) {
	if r.err != nil || !r.scanner.Scan() {
		if r.err == nil {
			r.err = r.scanner.Err()
		}
		return "", false
	}
	r.line++
	text := strings.TrimSpace(r.scanner.Text())
	if strings.HasPrefix(text, Comment) {
		return "", true
	}
	return text, true
}
