// Package shell implements the interactive menu of the sarf command.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/sarf"
	"github.com/npillmayer/sarf/arabic"
)

const menu = `
--- Morphological Engine ---
1) Add root
2) Search root
3) Display all roots
4) Add pattern
5) Modify pattern
6) Delete pattern
7) Generate word
8) Generate family
9) Validate word
10) Show validated derivatives
0) Quit`

// Shell reads menu choices from an input stream and runs them against an
// engine.
type Shell struct {
	engine *sarf.Engine
	in     *bufio.Scanner
	out    io.Writer
}

// New creates a shell over engine, reading from in and printing to out.
func New(engine *sarf.Engine, in io.Reader, out io.Writer) *Shell {
	return &Shell{engine: engine, in: bufio.NewScanner(in), out: out}
}

// Run shows the menu until the user quits or the input ends.
func (sh *Shell) Run() error {
	for {
		sh.println(menu)
		choice, ok := sh.prompt("Choose an option: ")
		if !ok {
			return sh.in.Err()
		}
		switch choice {
		case "1":
			sh.addRoot()
		case "2":
			sh.searchRoot()
		case "3":
			sh.listRoots()
		case "4":
			sh.addPattern()
		case "5":
			sh.updatePattern()
		case "6":
			sh.removePattern()
		case "7":
			sh.generate()
		case "8":
			sh.generateFamily()
		case "9":
			sh.validate()
		case "10":
			sh.derivatives()
		case "0":
			sh.println("Goodbye.")
			return nil
		default:
			sh.println("Invalid choice.")
		}
	}
}

func (sh *Shell) println(a ...any) {
	fmt.Fprintln(sh.out, a...)
}

func (sh *Shell) printf(format string, a ...any) {
	fmt.Fprintf(sh.out, format, a...)
}

// prompt returns false at the end of the input.
func (sh *Shell) prompt(label string) (string, bool) {
	fmt.Fprint(sh.out, label)
	if !sh.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(sh.in.Text()), true
}

func (sh *Shell) addRoot() {
	raw, _ := sh.prompt("Enter root (dashed form): ")
	dashed, err := sh.engine.AddRoot(raw)
	if err != nil {
		sh.println(arabic.Reason(err))
		return
	}
	sh.printf("Root inserted: %s\n", dashed)
}

func (sh *Shell) searchRoot() {
	raw, _ := sh.prompt("Enter root (dashed form): ")
	if n := sh.engine.Roots().Search(raw); n != nil {
		sh.printf("Root found: %s\n", n.Dashed())
		return
	}
	sh.println("Root not found.")
}

func (sh *Shell) listRoots() {
	all := sh.engine.Roots().AllDerivatives()
	list := sh.engine.Roots().ListRoots(true)
	if len(list) == 0 {
		sh.println("No roots in tree.")
		return
	}
	sh.println("Roots (in order):")
	for _, r := range list {
		if n := len(all[r]); n > 0 {
			sh.printf("- %s (%d derived)\n", r, n)
		} else {
			sh.printf("- %s\n", r)
		}
	}
}

func (sh *Shell) addPattern() {
	p, _ := sh.prompt("Enter new pattern: ")
	if err := sh.engine.AddPattern(p); err != nil {
		sh.println(arabic.Reason(err))
		return
	}
	sh.println("Pattern added.")
}

func (sh *Shell) updatePattern() {
	p, _ := sh.prompt("Enter pattern to modify: ")
	rule, _ := sh.prompt("Enter new rule (pattern form): ")
	if err := sh.engine.UpdatePattern(p, rule); err != nil {
		sh.println(arabic.Reason(err))
		return
	}
	sh.println("Pattern updated.")
}

func (sh *Shell) removePattern() {
	p, _ := sh.prompt("Enter pattern to delete: ")
	if err := sh.engine.RemovePattern(p); err != nil {
		sh.println(arabic.Reason(err))
		return
	}
	sh.println("Pattern removed.")
}

// selectPattern accepts a 1-based index into the pattern listing or a
// pattern spelled out.
func (sh *Shell) selectPattern() (string, bool) {
	list := sh.engine.Patterns().Patterns()
	if len(list) == 0 {
		sh.println("No patterns available.")
		return "", false
	}
	sh.println("Available patterns:")
	for i, p := range list {
		sh.printf("%d. %s\n", i+1, p)
	}
	choice, _ := sh.prompt("Select pattern by index or type pattern exactly: ")
	if idx, err := strconv.Atoi(choice); err == nil {
		if idx >= 1 && idx <= len(list) {
			return list[idx-1], true
		}
		sh.println("Invalid index.")
		return "", false
	}
	if sh.engine.Patterns().Contains(choice) {
		return choice, true
	}
	sh.println("Pattern not found.")
	return "", false
}

func (sh *Shell) generate() {
	raw, _ := sh.prompt("Enter root (dashed form): ")
	p, ok := sh.selectPattern()
	if !ok {
		return
	}
	res := sh.engine.Generate(raw, p, true)
	if !res.OK {
		sh.printf("Generation error: %s\n", res.Error)
		return
	}
	sh.printf("Root: %s\nPattern: %s\nWord: %s\n", res.Root, res.Pattern, res.Word)
}

func (sh *Shell) generateFamily() {
	raw, _ := sh.prompt("Enter root (dashed form): ")
	results := sh.engine.GenerateFamily(raw)
	if len(results) > 0 && results[0].Error == sarf.RootNotFound {
		sh.println("Root not found.")
		return
	}
	sh.printf("Family generated for root %s:\n", raw)
	for _, res := range results {
		if res.OK {
			sh.printf("%s + %s = %s\n", res.Root, res.Pattern, res.Word)
		} else {
			sh.printf("%s + %s = none (%s)\n", res.Root, res.Pattern, res.Error)
		}
	}
}

func (sh *Shell) validate() {
	raw, _ := sh.prompt("Enter root (dashed form): ")
	word, _ := sh.prompt("Enter word: ")
	v := sh.engine.Validate(raw, word)
	if v.Result == sarf.OUI {
		sh.printf("OUI, pattern recognized: %s\n", v.Pattern)
		return
	}
	sh.println("NON")
}

func (sh *Shell) derivatives() {
	raw, _ := sh.prompt("Enter root (dashed form): ")
	n := sh.engine.Roots().Search(raw)
	if n == nil {
		sh.println("Root not found.")
		return
	}
	items := n.Derived.Items()
	if len(items) == 0 {
		sh.println("No validated derivatives for this root.")
		return
	}
	sh.printf("Validated derivatives for %s:\n", n.Dashed())
	for _, dw := range items {
		sh.printf("- %s (freq: %d)\n", dw.Word, dw.Count)
	}
}
