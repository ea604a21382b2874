// Package dom keeps a document written in the line oriented markup dialect as
// an in-memory tree and implements structural edits on it.
//
// Nodes live in an arena owned by Tree and are addressed by NodeID. Every node
// has a label, a first child and a next sibling. Nodes with a first child are
// elements, leaves are text. Root and body are the only exception: they are
// elements even when empty.
package dom

import (
	"iter"
)

// NodeID addresses a node inside its Tree.
type NodeID int32

// None marks an absent first child or next sibling.
const None NodeID = 0

type node struct {
	label string
	first NodeID
	next  NodeID
}

// Tree is a single document. It is not safe for concurrent use.
type Tree struct {
	// nodes[0] is never used so that zero value links mean None.
	nodes []node
	root  NodeID
	body  NodeID
}

func newTree() *Tree {
	return &Tree{nodes: make([]node, 1, 64)}
}

func (t *Tree) newNode(label string, first, next NodeID) NodeID {
	t.nodes = append(t.nodes, node{label: label, first: first, next: next})
	return NodeID(len(t.nodes) - 1)
}

// Root returns the document element.
func (t *Tree) Root() NodeID { return t.root }

// Body returns the body element, the only child of the root.
func (t *Tree) Body() NodeID { return t.body }

func (t *Tree) Label(id NodeID) string { return t.nodes[id].label }

func (t *Tree) FirstChild(id NodeID) NodeID { return t.nodes[id].first }

func (t *Tree) NextSibling(id NodeID) NodeID { return t.nodes[id].next }

// IsElement reports whether node renders as a tag pair.
func (t *Tree) IsElement(id NodeID) bool {
	return t.nodes[id].first != None || t.preamble(id)
}

func (t *Tree) preamble(id NodeID) bool {
	return id == t.root || id == t.body
}

// Children iterates over the child chain of id.
func (t *Tree) Children(id NodeID) iter.Seq[NodeID] {
	return t.chain(t.nodes[id].first)
}

func (t *Tree) chain(head NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for cur := head; cur != None; cur = t.nodes[cur].next {
			if !yield(cur) {
				return
			}
		}
	}
}

// last returns the tail of the sibling chain starting at head.
func (t *Tree) last(head NodeID) NodeID {
	for t.nodes[head].next != None {
		head = t.nodes[head].next
	}
	return head
}

// Len returns number of nodes reachable from the root. Nodes detached by edits
// stay in the arena but are not counted.
func (t *Tree) Len() int {
	var count func(head NodeID) int
	count = func(head NodeID) int {
		n := 0
		for cur := range t.chain(head) {
			n += 1 + count(t.nodes[cur].first)
		}
		return n
	}
	return count(t.root)
}

// Equal reports whether both trees have the same shape and labels.
func (t *Tree) Equal(o *Tree) bool {
	if t == nil || o == nil {
		return t == o
	}
	var equal func(a, b NodeID) bool
	equal = func(a, b NodeID) bool {
		for a != None && b != None {
			if t.nodes[a].label != o.nodes[b].label {
				return false
			}
			if !equal(t.nodes[a].first, o.nodes[b].first) {
				return false
			}
			a, b = t.nodes[a].next, o.nodes[b].next
		}
		return a == None && b == None
	}
	return equal(t.root, o.root)
}

// slotKind tells which link of the owner references a node.
type slotKind uint8

const (
	viaFirstChild slotKind = iota
	viaNextSibling
)

// slot is the place a node is referenced from: first child link of its parent
// or next sibling link of its elder sibling.
type slot struct {
	kind  slotKind
	owner NodeID
}

func (t *Tree) get(s slot) NodeID {
	if s.kind == viaFirstChild {
		return t.nodes[s.owner].first
	}
	return t.nodes[s.owner].next
}

func (t *Tree) set(s slot, id NodeID) {
	if s.kind == viaFirstChild {
		t.nodes[s.owner].first = id
		return
	}
	t.nodes[s.owner].next = id
}
