package dom

import "fmt"

const (
	tableTag = "table"
	boldTag  = "b"
)

// BoldRow wraps content of every cell in the given row (counting from 1) of
// every table in the document into a b element. Tables nested inside cells
// are handled the same way. Tables with fewer rows are left alone. Returns
// number of cells wrapped.
func (t *Tree) BoldRow(row int) (int, error) {
	if row < 1 {
		return 0, fmt.Errorf("%w: row must be 1 or greater, got %d", ErrInvalidArgument, row)
	}
	return t.boldChain(t.root, row), nil
}

func (t *Tree) boldChain(head NodeID, row int) int {
	count := 0
	for cur := range t.chain(head) {
		if t.nodes[cur].label == tableTag {
			count += t.boldTableRow(cur, row)
		}
		if first := t.nodes[cur].first; first != None {
			count += t.boldChain(first, row)
		}
	}
	return count
}

func (t *Tree) boldTableRow(table NodeID, row int) int {
	n := 0
	for tr := range t.Children(table) {
		if n++; n != row {
			continue
		}
		count := 0
		for td := range t.Children(tr) {
			content := t.nodes[td].first
			if content == None {
				continue
			}
			b := t.newNode(boldTag, content, None)
			t.nodes[td].first = b
			count++
		}
		return count
	}
	return 0
}
