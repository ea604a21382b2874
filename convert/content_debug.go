package convert

import (
	"dtree/utils/debug"
)

// String returns a readable dump of the document and results of applied
// operations. It exists solely for manual inspection during debugging.
func (c *Content) String() string {
	if c == nil {
		return "<nil Content>"
	}

	tw := debug.NewTreeWriter()
	tw.Line(0, "Document %q id=%s nodes=%d", c.srcName, c.id, c.tree.Len())
	if len(c.counts) > 0 {
		tw.Line(1, "Operations: %d", len(c.counts))
		for i, n := range c.counts {
			tw.Line(2, "Op[%d] changed=%d", i, n)
		}
	}
	return tw.String() + c.tree.String()
}
