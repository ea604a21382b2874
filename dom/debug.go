package dom

import (
	"fmt"

	"dtree/utils/debug"
)

// String returns indented dump of the tree with node ids. Intended for
// troubleshooting only, text labels are quoted so surrounding whitespace
// left by splits is visible.
func (t *Tree) String() string {
	if t == nil {
		return "<nil Tree>"
	}
	tw := debug.NewTreeWriter()
	t.dump(tw, t.root, 0)
	return tw.String()
}

func (t *Tree) dump(tw *debug.TreeWriter, head NodeID, depth int) {
	for cur := range t.chain(head) {
		if !t.IsElement(cur) {
			tw.TextBlock(depth, fmt.Sprintf("#%d", cur), t.nodes[cur].label)
			continue
		}
		tw.Line(depth, "<%s> #%d", t.nodes[cur].label, cur)
		t.dump(tw, t.nodes[cur].first, depth+1)
	}
}
