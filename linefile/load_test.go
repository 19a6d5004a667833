package linefile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/sarf"
	"github.com/npillmayer/sarf/arabic"
)

func fixture(file string) string {
	return filepath.Join("..", "testdata", file)
}

func TestOpen(t *testing.T) {
	e, counts, err := Open(sarf.Options{Identifier: "fixtures"}, fixture("roots.txt"), fixture("patterns.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if counts.Roots != 5 || counts.Patterns != 7 {
		t.Fatalf("counts mismatch: %+v", counts)
	}
	if len(counts.Rejected) != 5 {
		t.Fatalf("expected 2 skipped pattern lines and 3 skipped root lines, got %v", counts.Rejected)
	}
	var lerr *arabic.LineError
	if !errors.As(counts.Rejected[0], &lerr) || lerr.Line != 7 {
		t.Fatalf("unexpected first rejection: %v", counts.Rejected[0])
	}
	if res := e.Generate("ك-ت-ب", "فاعل", false); res.Word != "كاتب" {
		t.Fatalf("engine not usable after loading: %+v", res)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, _, err := Open(sarf.Options{}, fixture("no-such-roots.txt"), "")
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoadFromReader(t *testing.T) {
	e := sarf.NewEngine(sarf.Options{})
	n, rejected, err := LoadPatterns(e, strings.NewReader("# awzan\nفاعل\nفعّال\nفاعل\n"))
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 || len(rejected) != 1 {
		t.Fatalf("pattern load mismatch: n=%d rejected=%v", n, rejected)
	}
	var lerr *arabic.LineError
	if !errors.As(rejected[0], &lerr) || lerr.Line != 4 {
		t.Fatalf("duplicate should be reported for line 4: %v", rejected[0])
	}
	n, _, err = LoadRoots(e, strings.NewReader("ك-ت-ب\nقَ-رَ-أَ\n"))
	if err != nil || n != 2 {
		t.Fatalf("root load mismatch: n=%d err=%v", n, err)
	}
	if got := e.Roots().ListRoots(true); got[0] != "ق-ر-ا" {
		t.Fatalf("roots mismatch: %v", got)
	}
}
