package linefile

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/sarf"
)

// Counts reports the outcome of loading line files into an engine.
type Counts struct {
	Roots    int     // roots added
	Patterns int     // patterns added
	Rejected []error // one *arabic.LineError per skipped line
}

// LoadRoots adds one dashed root per line of reader to the engine. Malformed
// and known roots are skipped; the returned error is an I/O error.
func LoadRoots(e *sarf.Engine, reader io.Reader) (int, []error, error) {
	r := NewReader(reader)
	n, rejected := e.LoadRoots(r.All())
	return n, rejected, r.Err()
}

// LoadPatterns adds one pattern per line of reader to the engine. Malformed
// and known patterns are skipped; the returned error is an I/O error.
func LoadPatterns(e *sarf.Engine, reader io.Reader) (int, []error, error) {
	r := NewReader(reader)
	n, rejected := e.LoadPatterns(r.All())
	return n, rejected, r.Err()
}

// LoadFiles loads a roots file and a patterns file into the engine. An empty
// path is skipped.
func LoadFiles(e *sarf.Engine, rootsPath, patternsPath string) (counts Counts, err error) {
	var rejected []error
	if patternsPath != "" {
		counts.Patterns, rejected, err = loadFile(e, patternsPath, LoadPatterns)
		counts.Rejected = append(counts.Rejected, rejected...)
		if err != nil {
			return
		}
	}
	if rootsPath != "" {
		counts.Roots, rejected, err = loadFile(e, rootsPath, LoadRoots)
		counts.Rejected = append(counts.Rejected, rejected...)
	}
	return
}

type loader func(*sarf.Engine, io.Reader) (int, []error, error)

func loadFile(e *sarf.Engine, path string, load loader) (int, []error, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	n, rejected, err := load(e, f)
	if err != nil {
		return n, rejected, fmt.Errorf("read %s: %w", path, err)
	}
	for _, rej := range rejected {
		tracer().Debugf("%s: skipped %v", path, rej)
	}
	tracer().Infof("%s: %d added, %d skipped", path, n, len(rejected))
	return n, rejected, nil
}

// Open creates an engine and loads it from a roots file and a patterns
// file.
//
// Example usage:
//
//	engine, counts, err := linefile.Open(sarf.Options{}, "data/roots.txt", "data/patterns.txt")
//
// Skipped lines are reported in counts and do not cause an error.
func Open(opts sarf.Options, rootsPath, patternsPath string) (*sarf.Engine, Counts, error) {
	e := sarf.NewEngine(opts)
	counts, err := LoadFiles(e, rootsPath, patternsPath)
	if err != nil {
		return nil, counts, err
	}
	return e, counts, nil
}
