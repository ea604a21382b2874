package dom

import (
	"fmt"
	"strings"
)

// ReplaceTag renames every node labeled oldTag to newTag and returns how many
// were renamed. Text nodes are renamed too when their text equals oldTag.
// newTag must read back as the same label once rendered.
func (t *Tree) ReplaceTag(oldTag, newTag string) (int, error) {
	if !renderable(newTag) {
		return 0, fmt.Errorf("%w: bad tag name %q", ErrInvalidArgument, newTag)
	}
	return t.replaceChain(t.root, oldTag, newTag), nil
}

// renderable reports whether label survives a render and build cycle both as
// element marker and as text line.
func renderable(label string) bool {
	return len(label) > 0 &&
		label == strings.TrimSpace(label) &&
		label[0] != '/' &&
		!strings.ContainsAny(label, "<>\r\n")
}

func (t *Tree) replaceChain(head NodeID, oldTag, newTag string) int {
	count := 0
	for cur := range t.chain(head) {
		if t.nodes[cur].label == oldTag {
			t.nodes[cur].label = newTag
			count++
		}
		if first := t.nodes[cur].first; first != None {
			count += t.replaceChain(first, oldTag, newTag)
		}
	}
	return count
}
