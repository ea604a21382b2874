package dom

import "fmt"

const (
	listItemTag  = "li"
	paragraphTag = "p"
)

// removable lists tags RemoveTag accepts, true for list tags whose items turn
// into paragraphs.
var removable = map[string]bool{
	"p":  false,
	"em": false,
	"b":  false,
	"ol": true,
	"ul": true,
}

// RemoveTag removes every element labeled tag, moving its children into its
// place. Items of removed ol and ul lists become paragraphs. Returns number of
// removed nodes.
func (t *Tree) RemoveTag(tag string) (int, error) {
	list, ok := removable[tag]
	if !ok {
		return 0, fmt.Errorf("%w: %q cannot be removed", ErrUnsupportedTag, tag)
	}
	return t.removeFrom(slot{kind: viaFirstChild, owner: t.root}, tag, list), nil
}

// removeFrom walks the chain referenced by s. After a splice the same slot
// holds promoted children, so they are examined again.
func (t *Tree) removeFrom(s slot, tag string, list bool) int {
	count := 0
	for {
		cur := t.get(s)
		if cur == None {
			return count
		}
		if t.nodes[cur].label == tag && !t.preamble(cur) {
			if list {
				for child := range t.Children(cur) {
					if t.nodes[child].label == listItemTag {
						t.nodes[child].label = paragraphTag
					}
				}
			}
			t.splice(s, cur)
			count++
			continue
		}
		count += t.removeFrom(slot{kind: viaFirstChild, owner: cur}, tag, list)
		s = slot{kind: viaNextSibling, owner: cur}
	}
}

// splice replaces reference to id in s with its child chain, the tail of
// which takes over id's next sibling. Links of id are cleared.
func (t *Tree) splice(s slot, id NodeID) {
	first, next := t.nodes[id].first, t.nodes[id].next
	t.nodes[id].first, t.nodes[id].next = None, None
	if first == None {
		t.set(s, next)
		return
	}
	t.nodes[t.last(first)].next = next
	t.set(s, first)
}
