// Package debug has helpers producing human readable dumps for troubleshooting.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	defaultIndent = "  "
	defaultBranch = "|-- "
)

// TreeWriter accumulates an indented dump of a tree, one line per node.
// Lines below the top level are prefixed with a branch marker.
type TreeWriter struct {
	w      *strings.Builder
	indent string
	branch string
	lines  int
}

type Option func(*TreeWriter)

// WithIndent sets the string repeated once per nesting level.
func WithIndent(indent string) Option {
	return func(tw *TreeWriter) { tw.indent = indent }
}

// WithBranch sets marker put in front of nested lines, may be empty.
func WithBranch(branch string) Option {
	return func(tw *TreeWriter) { tw.branch = branch }
}

func NewTreeWriter(opts ...Option) *TreeWriter {
	tw := &TreeWriter{
		w:      &strings.Builder{},
		indent: defaultIndent,
		branch: defaultBranch,
	}
	for _, opt := range opts {
		opt(tw)
	}
	return tw
}

func (tw *TreeWriter) String() string {
	return tw.w.String()
}

// Lines returns number of lines written so far.
func (tw *TreeWriter) Lines() int {
	return tw.lines
}

func (tw *TreeWriter) prefix(depth int) {
	if depth <= 0 {
		return
	}
	for range depth - 1 {
		tw.w.WriteString(tw.indent)
	}
	tw.w.WriteString(tw.branch)
}

func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.prefix(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
	tw.lines++
}

// TextBlock writes label and quoted value so that whitespace and control
// characters stay visible.
func (tw *TreeWriter) TextBlock(depth int, label, value string) {
	tw.prefix(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
	tw.lines++
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
