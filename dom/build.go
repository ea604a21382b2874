package dom

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const maxLineSize = 1 << 20

// Build makes a tree from document lines. The first two non blank lines must
// be the document and body open markers. The preamble elements may be left
// unclosed, anything opened after them must be closed with a matching marker.
func Build(lines []string) (*Tree, error) {
	b := newBuilder()
	for _, line := range lines {
		if err := b.add(line); err != nil {
			return nil, err
		}
	}
	return b.finish()
}

// Read is Build for a line supplier backed by a reader.
func Read(r io.Reader) (*Tree, error) {
	b := newBuilder()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		if err := b.add(sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("unable to read document lines: %w", err)
	}
	return b.finish()
}

type lineKind int

const (
	textLine lineKind = iota
	openMarker
	closeMarker
)

// classify returns kind of the trimmed line and the tag name for markers.
// Lines which look like markers but carry no usable name are text.
func classify(line string) (lineKind, string) {
	if len(line) < 3 || line[0] != '<' || line[len(line)-1] != '>' {
		return textLine, line
	}
	kind, name := openMarker, line[1:len(line)-1]
	if name[0] == '/' {
		kind, name = closeMarker, name[1:]
	}
	if len(name) == 0 || strings.ContainsAny(name, "<>") {
		return textLine, line
	}
	return kind, name
}

type builder struct {
	t    *Tree
	open []NodeID
	// ptr is the most recently created or closed node. When sibling is set
	// the next node goes to its next sibling slot, otherwise it becomes
	// its first child.
	ptr     NodeID
	sibling bool
	lineNo  int
}

func newBuilder() *builder {
	return &builder{t: newTree(), open: make([]NodeID, 0, 16)}
}

func (b *builder) malformed(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformedDocument, b.lineNo, fmt.Sprintf(format, args...))
}

func (b *builder) add(line string) error {
	b.lineNo++
	line = strings.TrimSpace(line)
	if len(line) == 0 {
		return nil
	}

	switch {
	case b.t.root == None:
		id, err := b.preamble(line, "document")
		if err != nil {
			return err
		}
		b.t.root = id
	case b.t.body == None:
		id, err := b.preamble(line, "body")
		if err != nil {
			return err
		}
		b.t.body = id
		b.t.nodes[b.t.root].first = id
		b.ptr = id
	default:
		return b.token(line)
	}
	return nil
}

func (b *builder) preamble(line, what string) (NodeID, error) {
	kind, name := classify(line)
	if kind != openMarker {
		return None, b.malformed("%s open marker expected, got %q", what, line)
	}
	id := b.t.newNode(name, None, None)
	b.open = append(b.open, id)
	return id, nil
}

func (b *builder) token(line string) error {
	kind, name := classify(line)
	if len(b.open) == 0 {
		if kind == closeMarker {
			return b.malformed("close marker </%s> without open element", name)
		}
		return b.malformed("content after the end of document: %q", line)
	}

	switch kind {
	case closeMarker:
		top := b.open[len(b.open)-1]
		if label := b.t.nodes[top].label; label != name {
			return b.malformed("close marker </%s> does not match <%s>", name, label)
		}
		b.open = b.open[:len(b.open)-1]
		b.ptr, b.sibling = top, true
	case openMarker:
		id, err := b.attach(name)
		if err != nil {
			return err
		}
		b.open = append(b.open, id)
		b.sibling = false
	default:
		if _, err := b.attach(line); err != nil {
			return err
		}
		b.sibling = true
	}
	return nil
}

func (b *builder) attach(label string) (NodeID, error) {
	if b.sibling && b.ptr == b.t.body {
		return None, b.malformed("content after the body element: %q", label)
	}
	id := b.t.newNode(label, None, None)
	if b.sibling {
		b.t.nodes[b.ptr].next = id
	} else {
		b.t.nodes[b.ptr].first = id
	}
	b.ptr = id
	return id, nil
}

func (b *builder) finish() (*Tree, error) {
	if b.t.body == None {
		return nil, fmt.Errorf("%w: document and body markers are required, got %d line(s)", ErrMalformedDocument, b.lineNo)
	}
	if len(b.open) > 2 {
		return nil, fmt.Errorf("%w: unexpected end of document, <%s> is not closed", ErrMalformedDocument, b.t.nodes[b.open[len(b.open)-1]].label)
	}
	b.t.nodes[b.t.root].next = None
	b.t.nodes[b.t.body].next = None
	return b.t, nil
}
