package shell

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/sarf"
	"github.com/npillmayer/sarf/linefile"
)

func newEngine(t *testing.T) *sarf.Engine {
	t.Helper()
	e, _, err := linefile.Open(sarf.Options{},
		filepath.Join("..", "..", "testdata", "roots.txt"),
		filepath.Join("..", "..", "testdata", "patterns.txt"))
	require.NoError(t, err)
	return e
}

func TestSession(t *testing.T) {
	script := strings.Join([]string{
		"1", "ن-ص-ر",
		"1", "كتب",
		"2", "ق-ر-أ",
		"7", "ك-ت-ب", "5",
		"9", "ك-ت-ب", "كاتب",
		"10", "ك-ت-ب",
		"8", "ن-ج-م",
		"8", "د-ر-س",
		"4", "مفاعل",
		"5", "فعّول", "فعول",
		"6", "مفاعل",
		"3",
		"99",
		"0",
	}, "\n") + "\n"
	var out strings.Builder
	require.NoError(t, New(newEngine(t), strings.NewReader(script), &out).Run())

	got := out.String()
	for _, want := range []string{
		"Root inserted: ن-ص-ر",
		"Root must contain exactly two dashes (example: ك-ت-ب).",
		"Root found: ق-ر-ا",
		"Word: كاتب",
		"OUI, pattern recognized: فاعل",
		"- كاتب (freq: 2)",
		"Root not found.",
		"د-ر-س + فاعل = دارس",
		"Pattern added.",
		"update pattern: pattern not found",
		"Pattern removed.",
		"- ك-ت-ب (1 derived)",
		"- ن-ص-ر\n",
		"Invalid choice.",
		"Goodbye.",
	} {
		assert.Contains(t, got, want)
	}
}

func TestEndOfInput(t *testing.T) {
	var out strings.Builder
	assert.NoError(t, New(newEngine(t), strings.NewReader("2\n"), &out).Run())
	assert.NotContains(t, out.String(), "Goodbye.")
}

func TestSelectPatternByName(t *testing.T) {
	var out strings.Builder
	script := "7\nك-ت-ب\nمفعول\n7\nك-ت-ب\n42\n0\n"
	require.NoError(t, New(newEngine(t), strings.NewReader(script), &out).Run())
	assert.Contains(t, out.String(), "Word: مكتوب")
	assert.Contains(t, out.String(), "Invalid index.")
}
