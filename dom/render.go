package dom

import (
	"bufio"
	"io"
	"strings"
)

// Render returns document text, one token per line.
func (t *Tree) Render() string {
	var sb strings.Builder
	t.walk(t.root, func(line string) {
		sb.WriteString(line)
		sb.WriteByte('\n')
	})
	return sb.String()
}

// Lines returns rendered document as separate lines without terminators.
func (t *Tree) Lines() []string {
	lines := make([]string, 0, t.Len()*2)
	t.walk(t.root, func(line string) {
		lines = append(lines, line)
	})
	return lines
}

// WriteTo writes rendered document to w.
func (t *Tree) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var (
		n   int64
		err error
	)
	t.walk(t.root, func(line string) {
		if err != nil {
			return
		}
		var c int
		c, err = bw.WriteString(line)
		n += int64(c)
		if err == nil {
			err = bw.WriteByte('\n')
			if err == nil {
				n++
			}
		}
	})
	if err != nil {
		return n, err
	}
	return n, bw.Flush()
}

func (t *Tree) walk(head NodeID, emit func(string)) {
	for cur := range t.chain(head) {
		n := &t.nodes[cur]
		if !t.IsElement(cur) {
			emit(n.label)
			continue
		}
		emit("<" + n.label + ">")
		t.walk(n.first, emit)
		emit("</" + n.label + ">")
	}
}
