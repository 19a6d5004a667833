package roots

import (
	"iter"
	"slices"
)

// Node is a node of the root tree. It owns the words derived from its root.
type Node struct {
	Root    string // compact form, e.g. كتب
	Derived *DerivedWords
	left    *Node
	right   *Node
}

func newNode(compact string) *Node {
	return &Node{Root: compact, Derived: &DerivedWords{}}
}

// Dashed returns the root of n in dashed form.
func (n *Node) Dashed() string {
	return FormatDashed(n.Root)
}

// Tree is an unbalanced binary search tree of roots, ordered by code-point
// comparison of their compact form. No two nodes share a root.
//
// Tree is not safe for concurrent mutation.
type Tree struct {
	root *Node
	size int
}

// NewTree creates an empty root tree.
func NewTree() *Tree {
	return &Tree{}
}

// Insert validates raw and adds its root to the tree. Inserting a root which
// is already present returns the existing node and leaves the tree
// unchanged. Invalid input yields a *arabic.ValidationError.
func (t *Tree) Insert(raw string) (*Node, error) {
	if err := ValidateDashed(raw); err != nil {
		return nil, err
	}
	compact := ToCompact(raw)
	if t.root == nil {
		t.root = newNode(compact)
		t.size++
		tracer().Debugf("root %s inserted", compact)
		return t.root, nil
	}
	current := t.root
	for {
		switch {
		case compact == current.Root:
			return current, nil
		case compact < current.Root:
			if current.left == nil {
				current.left = newNode(compact)
				t.size++
				tracer().Debugf("root %s inserted", compact)
				return current.left, nil
			}
			current = current.left
		default:
			if current.right == nil {
				current.right = newNode(compact)
				t.size++
				tracer().Debugf("root %s inserted", compact)
				return current.right, nil
			}
			current = current.right
		}
	}
}

// Search returns the node for raw, or nil if the root is absent or raw is
// not a well-formed root.
func (t *Tree) Search(raw string) *Node {
	if ValidateDashed(raw) != nil {
		return nil
	}
	compact := ToCompact(raw)
	current := t.root
	for current != nil {
		switch {
		case compact == current.Root:
			return current
		case compact < current.Root:
			current = current.left
		default:
			current = current.right
		}
	}
	return nil
}

// Delete removes the root denoted by raw and reports whether it was present.
// A node with two children takes over the root and derived words of its
// in-order successor, which is then deleted from the right subtree.
func (t *Tree) Delete(raw string) bool {
	if ValidateDashed(raw) != nil {
		return false
	}
	var deleted bool
	t.root, deleted = deleteNode(t.root, ToCompact(raw))
	if deleted {
		t.size--
		tracer().Debugf("root %s deleted", ToCompact(raw))
	}
	return deleted
}

func deleteNode(n *Node, compact string) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	var deleted bool
	switch {
	case compact < n.Root:
		n.left, deleted = deleteNode(n.left, compact)
		return n, deleted
	case compact > n.Root:
		n.right, deleted = deleteNode(n.right, compact)
		return n, deleted
	}
	if n.left == nil {
		return n.right, true
	}
	if n.right == nil {
		return n.left, true
	}
	successor := n.right
	for successor.left != nil {
		successor = successor.left
	}
	n.Root = successor.Root
	n.Derived = successor.Derived
	n.right, _ = deleteNode(n.right, successor.Root)
	return n, true
}

// AddDerivedWord records word for the root denoted by raw. It returns false
// if the root is absent or the word has been recorded before (in the latter
// case the word's count is incremented nevertheless).
func (t *Tree) AddDerivedWord(raw, word string) bool {
	if word == "" {
		return false
	}
	n := t.Search(raw)
	if n == nil {
		return false
	}
	return n.Derived.Add(word)
}

// Walk iterates over the nodes in order. The sequence may be ranged over
// repeatedly; it must not be used across a mutation of the tree.
func (t *Tree) Walk() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		walk(t.root, yield)
	}
}

func walk(n *Node, yield func(*Node) bool) bool {
	if n == nil {
		return true
	}
	return walk(n.left, yield) && yield(n) && walk(n.right, yield)
}

// Inorder iterates over the compact roots in sorted order.
func (t *Tree) Inorder() iter.Seq[string] {
	return func(yield func(string) bool) {
		for n := range t.Walk() {
			if !yield(n.Root) {
				return
			}
		}
	}
}

// ListRoots returns all roots in sorted order, dashed or compact.
func (t *Tree) ListRoots(dashed bool) []string {
	roots := slices.Collect(t.Inorder())
	if dashed {
		for i, r := range roots {
			roots[i] = FormatDashed(r)
		}
	}
	return roots
}

// AllDerivatives maps every root, in dashed form, to its derived words.
// Roots without derived words are included with an empty list.
func (t *Tree) AllDerivatives() map[string][]DerivedWord {
	all := make(map[string][]DerivedWord, t.size)
	for n := range t.Walk() {
		all[n.Dashed()] = n.Derived.Items()
	}
	return all
}

// CountTotalDerivatives sums the number of distinct derived words over all
// roots.
func (t *Tree) CountTotalDerivatives() int {
	return countDerivatives(t.root)
}

func countDerivatives(n *Node) int {
	if n == nil {
		return 0
	}
	return n.Derived.Len() + countDerivatives(n.left) + countDerivatives(n.right)
}

// Height is the number of nodes on the longest path from the tree's root
// to a leaf; 0 for an empty tree.
func (t *Tree) Height() int {
	return height(t.root)
}

func height(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// Size is the number of roots in the tree.
func (t *Tree) Size() int {
	return t.size
}
