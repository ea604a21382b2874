package dom

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	lines := doc("<p>", "a", "<em>", "b", "</em>", "</p>")
	tree := mustBuild(t, lines)

	want := strings.Join(lines, "\n") + "\n"
	if got := tree.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant:\n%s", got, want)
	}

	var buf bytes.Buffer
	n, err := tree.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if buf.String() != want {
		t.Errorf("WriteTo() wrote:\n%s", buf.String())
	}
	if n != int64(len(want)) {
		t.Errorf("WriteTo() = %d, want %d", n, len(want))
	}
}

func TestRender_ChildlessElementIsText(t *testing.T) {
	tree := mustBuild(t, doc("<p>", "</p>", "<td>", "x", "</td>"))
	checkLines(t, tree, doc("p", "<td>", "x", "</td>"))
}

type failingWriter struct{ after int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(p) > w.after {
		return w.after, errors.New("disk full")
	}
	w.after -= len(p)
	return len(p), nil
}

func TestWriteTo_Error(t *testing.T) {
	// large enough to overflow bufio buffer before Flush
	body := make([]string, 0, 2048)
	for range 2048 {
		body = append(body, "some text line")
	}
	tree := mustBuild(t, doc(body...))
	if _, err := tree.WriteTo(&failingWriter{after: 100}); err == nil {
		t.Error("WriteTo() must report writer error")
	}
}
