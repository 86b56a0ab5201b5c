package ast

import "github.com/gmofishsauce/csfront/internal/invariant"

// List is a singly-linked sibling chain with an owned head pointer
// (spec.md §3: "list operations append to tail via a head pointer").
// Appending is the only mutation List supports, matching §4.6's "sibling
// links are set only during construction of a list; no node is
// re-homed."
type List struct {
	head *Node
	tail *Node
	n    int
}

// NewList returns an empty sibling list.
func NewList() *List { return &List{} }

// Append adds node to the tail of the chain. A nil node, a node whose
// Next is already set, and a node that is already this list's tail are
// invariant violations (spec.md §3's "no node appears in two chains").
// A node that is the tail of a different list has a nil Next and is not
// detected: Append accepts it.
func (l *List) Append(node *Node) {
	if node == nil {
		invariant.Raise("ast: cannot append a nil node to a sibling list")
	}
	if node.Next != nil {
		invariant.Raise("ast: node is already linked into another sibling chain")
	}
	if l.tail == node {
		invariant.Raise("ast: node is already the tail of this sibling chain")
	}
	if l.head == nil {
		l.head = node
		l.tail = node
	} else {
		l.tail.Next = node
		l.tail = node
	}
	l.n++
}

// Head returns the first node in the chain, or nil if the list is empty.
func (l *List) Head() *Node { return l.head }

// Len returns the number of nodes appended.
func (l *List) Len() int { return l.n }

// Slice materializes the chain into a plain slice, for callers (tests,
// later passes) that prefer random access over chain-walking. It does
// not mutate the chain.
func (l *List) Slice() []*Node {
	out := make([]*Node, 0, l.n)
	for n := l.head; n != nil; n = n.Next {
		out = append(out, n)
	}
	return out
}

// Acyclic reports whether walking from Head() reaches a nil terminator
// within Len()+1 steps — the bounded-walk cycle check spec.md §8 asks
// for ("the sibling chain from any AST list head is finite and
// acyclic").
func (l *List) Acyclic() bool {
	n := l.head
	for i := 0; i <= l.n; i++ {
		if n == nil {
			return true
		}
		n = n.Next
	}
	return false
}
