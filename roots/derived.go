package roots

// DerivedWord is a word derived from a root, together with the number of
// times it has been produced.
type DerivedWord struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// DerivedWords is a frequency-counted set of words. Adding a known word
// increments its count; the set itself does not grow.
//
// The zero value is ready to use.
type DerivedWords struct {
	items []DerivedWord  // in order of first addition
	index map[string]int // word => position in items
}

// Add records one occurrence of word and reports whether word was new.
func (dw *DerivedWords) Add(word string) bool {
	if i, ok := dw.index[word]; ok {
		dw.items[i].Count++
		return false
	}
	if dw.index == nil {
		dw.index = make(map[string]int)
	}
	dw.index[word] = len(dw.items)
	dw.items = append(dw.items, DerivedWord{Word: word, Count: 1})
	return true
}

func (dw *DerivedWords) Contains(word string) bool {
	_, ok := dw.index[word]
	return ok
}

// Count returns how often word has been added, 0 for unknown words.
func (dw *DerivedWords) Count(word string) int {
	if i, ok := dw.index[word]; ok {
		return dw.items[i].Count
	}
	return 0
}

// Len is the number of distinct words.
func (dw *DerivedWords) Len() int {
	return len(dw.items)
}

// Items returns a copy of the entries, most recently added word first.
func (dw *DerivedWords) Items() []DerivedWord {
	items := make([]DerivedWord, len(dw.items))
	for i, item := range dw.items {
		items[len(items)-1-i] = item
	}
	return items
}

// Words is like Items without the counts.
func (dw *DerivedWords) Words() []string {
	words := make([]string, len(dw.items))
	for i, item := range dw.items {
		words[len(words)-1-i] = item.Word
	}
	return words
}
