package sarf

import (
	"reflect"
	"testing"

	"github.com/npillmayer/sarf/arabic"
	"github.com/npillmayer/sarf/patterns"
	"github.com/npillmayer/sarf/roots"
)

func newStores(t *testing.T, rr []string, pp []string) (*roots.Tree, *patterns.Table) {
	t.Helper()
	tree, table := roots.NewTree(), patterns.NewTable()
	for _, r := range rr {
		if _, err := tree.Insert(r); err != nil {
			t.Fatalf("cannot insert root %q: %v", r, err)
		}
	}
	for _, p := range pp {
		if err := table.Insert(p); err != nil {
			t.Fatalf("cannot insert pattern %q: %v", p, err)
		}
	}
	return tree, table
}

func TestGenerateOne(t *testing.T) {
	tree, table := newStores(t, []string{"ك-ت-ب"}, []string{"فاعل", "فعّال"})
	gen := NewGenerator(tree, table, 16)

	res := gen.GenerateOne("ك-ت-ب", "فاعل", true)
	want := Result{OK: true, Root: "ك-ت-ب", Pattern: "فاعل", Word: "كاتب"}
	if res != want {
		t.Fatalf("result mismatch: got %+v, want %+v", res, want)
	}
	if res := gen.GenerateOne("ك-ت-ب", "فَعَّال", false); !res.OK || res.Word != "كتّاب" {
		t.Fatalf("shadda not preserved: %+v", res)
	}
	n := tree.Search("ك-ت-ب")
	if !n.Derived.Contains("كاتب") || n.Derived.Contains("كتّاب") {
		t.Fatalf("store flag not honoured: %v", n.Derived.Words())
	}
	gen.GenerateOne("ك-ت-ب", "فاعل", true)
	if n.Derived.Count("كاتب") != 2 {
		t.Fatalf("frequency mismatch: got %d, want 2", n.Derived.Count("كاتب"))
	}
}

func TestGenerateOneFailures(t *testing.T) {
	tree, table := newStores(t, []string{"ك-ت-ب"}, []string{"فاعل"})
	gen := NewGenerator(tree, table, 0)
	tests := []struct {
		root, pattern string
		want          ErrorCode
	}{
		{root: "د-ر-س", pattern: "فاعل", want: RootNotFound},
		{root: "ك-ب", pattern: "فاعل", want: RootNotFound},
		{root: "د-ر-س", pattern: "فعّول", want: RootNotFound},
		{root: "ك-ت-ب", pattern: "فعّول", want: PatternNotFound},
		{root: "ك-ت-ب", pattern: "xyz", want: PatternNotFound},
	}
	for _, tt := range tests {
		res := gen.GenerateOne(tt.root, tt.pattern, true)
		if res.OK || res.Error != tt.want || res.Word != "" {
			t.Fatalf("GenerateOne(%q, %q): got %+v, want error %s", tt.root, tt.pattern, res, tt.want)
		}
		if res.Root != tt.root || res.Pattern != tt.pattern {
			t.Fatalf("input not echoed: %+v", res)
		}
	}
	if tree.CountTotalDerivatives() != 0 {
		t.Fatalf("failed generations must not record words")
	}
}

// permissiveRoots finds every root, well-formed or not.
type permissiveRoots struct{}

func (permissiveRoots) Search(raw string) *roots.Node {
	return &roots.Node{Root: raw, Derived: &roots.DerivedWords{}}
}

func (permissiveRoots) AddDerivedWord(raw, word string) bool { return true }

func TestGenerateDerivationFailed(t *testing.T) {
	_, table := newStores(t, nil, []string{"فاعل"})
	gen := NewGenerator(permissiveRoots{}, table, 16)
	res := gen.GenerateOne("كتب", "فاعل", true)
	if res.OK || res.Error != DerivationFailed {
		t.Fatalf("expected DERIVATION_FAILED, got %+v", res)
	}
}

func TestGenerateFamily(t *testing.T) {
	tree, table := newStores(t, []string{"ك-ت-ب"},
		[]string{"فاعل", "مفعول", "فعّال", "تفعيل", "استفعال", "فعيل", "مفعل"})
	gen := NewGenerator(tree, table, 16)

	absent := gen.GenerateFamily("د-ر-س")
	if len(absent) != 1 || absent[0].Error != RootNotFound || absent[0].Pattern != "" {
		t.Fatalf("expected single ROOT_NOT_FOUND, got %+v", absent)
	}

	family := gen.GenerateFamily("ك-ت-ب")
	var words []string
	for _, res := range family {
		if !res.OK {
			t.Fatalf("family member failed: %+v", res)
		}
		words = append(words, res.Word)
	}
	// patterns come in bucket order: تفعيل 7, فعيل 15, فعّال 17, مفعل 21,
	// فاعل 23, استفعال 24, مفعول 32
	want := []string{"تكتيب", "كتيب", "كتّاب", "مكتب", "كاتب", "استكتاب", "مكتوب"}
	if !reflect.DeepEqual(words, want) {
		t.Fatalf("family mismatch: got %v, want %v", words, want)
	}
	if n := tree.CountTotalDerivatives(); n != len(want) {
		t.Fatalf("family should be recorded, count is %d", n)
	}
}

func TestGeneratorCacheFollowsRule(t *testing.T) {
	tree, table := newStores(t, []string{"ك-ت-ب"}, []string{"مفاعل"})
	for _, size := range []int{0, 1, 16} {
		gen := NewGenerator(tree, table, size)
		if res := gen.GenerateOne("ك-ت-ب", "مفاعل", false); res.Word != "مكاتب" {
			t.Fatalf("cache size %d: got %q, want مكاتب", size, res.Word)
		}
		if err := table.Update("مفاعل", "مفاعيل"); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if res := gen.GenerateOne("ك-ت-ب", "مفاعل", false); res.Word != "مكاتيب" {
			t.Fatalf("cache size %d: stale derivation %q after rule update", size, res.Word)
		}
		if err := table.Update("مفاعل", "مفاعل"); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
	}
}

func TestValidate(t *testing.T) {
	tree, table := newStores(t, []string{"ك-ت-ب", "د-ر-س"},
		[]string{"فاعل", "مفعول", "فعّال"})
	val := NewValidator(NewGenerator(tree, table, 16))

	tests := []struct {
		root, word string
		want       Verdict
	}{
		{root: "ك-ت-ب", word: "كاتب", want: Verdict{Result: OUI, Pattern: "فاعل", Word: "كاتب"}},
		{root: "ك-ت-ب", word: "كَاتِبٌ", want: Verdict{Result: OUI, Pattern: "فاعل", Word: "كاتب"}},
		{root: "ك-ت-ب", word: "كتاب", want: Verdict{Result: OUI, Pattern: "فعّال", Word: "كتّاب"}},
		{root: "ك-ت-ب", word: "xyz", want: Verdict{Result: NON}},
		{root: "ك-ت-ب", word: "", want: Verdict{Result: NON}},
		{root: "ك-ت-ب", word: "دارس", want: Verdict{Result: NON}},
		{root: "ع-ل-م", word: "عالم", want: Verdict{Result: NON}},
		{root: "د-ر-س", word: "مدروس", want: Verdict{Result: OUI, Pattern: "مفعول", Word: "مدروس"}},
	}
	for _, tt := range tests {
		if got := val.Validate(tt.root, tt.word); got != tt.want {
			t.Fatalf("Validate(%q, %q): got %+v, want %+v", tt.root, tt.word, got, tt.want)
		}
	}
	kitab := tree.Search("ك-ت-ب")
	if kitab.Derived.Count("كاتب") != 2 || !kitab.Derived.Contains("كتّاب") || kitab.Derived.Len() != 2 {
		t.Fatalf("only matches should be recorded, got %v", kitab.Derived.Items())
	}
}

func TestValidatorSoundness(t *testing.T) {
	tree, table := newStores(t, []string{"ك-ت-ب"},
		[]string{"فاعل", "مفعول", "فعّال", "تفعيل", "استفعال", "فعيل", "مفعل"})
	gen := NewGenerator(tree, table, 16)
	val := NewValidator(gen)
	for _, word := range []string{"كاتب", "مكتوب", "كتاب", "استكتاب", "كتب", "مكتبة", "كتيب"} {
		v := val.Validate("ك-ت-ب", word)
		if v.Result == NON {
			for p := range table.All() {
				res := gen.GenerateOne("ك-ت-ب", p, false)
				if arabic.NormalizeWord(res.Word) == arabic.NormalizeWord(word) {
					t.Fatalf("%q rejected although pattern %s derives it", word, p)
				}
			}
			continue
		}
		res := gen.GenerateOne("ك-ت-ب", v.Pattern, false)
		if arabic.NormalizeWord(res.Word) != arabic.NormalizeWord(word) {
			t.Fatalf("%q accepted by pattern %s deriving %q", word, v.Pattern, res.Word)
		}
	}
}
