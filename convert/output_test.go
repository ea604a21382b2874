package convert

import (
	"bytes"
	"strings"
	"testing"

	"github.com/beevik/etree"

	"dtree/config"
	"dtree/dom"
)

func mustRead(t *testing.T, text string) *dom.Tree {
	t.Helper()
	tree, err := dom.Read(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	return tree
}

func TestWriteDocument(t *testing.T) {
	tree := mustRead(t, tableDoc)

	tests := []struct {
		format config.OutputFmt
		check  func(t *testing.T, out string)
	}{
		{
			format: config.OutputFmtHtml,
			check: func(t *testing.T, out string) {
				if out != tableDoc {
					t.Errorf("html output:\n%s", out)
				}
			},
		},
		{
			format: config.OutputFmtTree,
			check: func(t *testing.T, out string) {
				if out != tree.String() {
					t.Errorf("tree output:\n%s", out)
				}
			},
		},
		{
			format: config.OutputFmtXml,
			check: func(t *testing.T, out string) {
				if !strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`) {
					t.Errorf("xml output misses declaration:\n%s", out)
				}
				if !strings.Contains(out, "<td>head</td>") {
					t.Errorf("xml output:\n%s", out)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			buf := new(bytes.Buffer)
			if err := writeDocument(buf, tree, tt.format); err != nil {
				t.Fatalf("writeDocument() error = %v", err)
			}
			tt.check(t, buf.String())
		})
	}
}

func TestWriteDocument_Unsupported(t *testing.T) {
	tree := mustRead(t, tableDoc)
	if err := writeDocument(new(bytes.Buffer), tree, config.OutputFmt(42)); err == nil {
		t.Error("writeDocument() succeeded for unknown format")
	}
}

func TestToXML(t *testing.T) {
	tree := mustRead(t, strings.Join([]string{
		"<html>", "<body>",
		"<p>", "hello", "<em>", "world", "</em>", "</p>",
		"<my tag>", "x", "</my tag>",
		"<1st>", "y", "</1st>",
		"a < b & c",
		"</body>", "</html>",
	}, "\n"))

	data, err := toXML(tree).WriteToString()
	if err != nil {
		t.Fatalf("WriteToString() error = %v", err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(data); err != nil {
		t.Fatalf("produced invalid XML: %v\n%s", err, data)
	}
	if doc.Root() == nil || doc.Root().Tag != "html" {
		t.Fatalf("unexpected root in:\n%s", data)
	}
	if p := doc.FindElement("/html/body/p"); p == nil || strings.TrimSpace(p.Text()) != "hello" {
		t.Errorf("p element is wrong in:\n%s", data)
	}
	if em := doc.FindElement("/html/body/p/em"); em == nil || em.Text() != "world" {
		t.Errorf("em element is wrong in:\n%s", data)
	}

	var labels []string
	for _, n := range doc.FindElements("/html/body/" + fallbackElement) {
		labels = append(labels, n.SelectAttrValue(labelAttr, ""))
	}
	if strings.Join(labels, ",") != "my tag,1st" {
		t.Errorf("fallback labels = %v", labels)
	}
	if !strings.Contains(data, "a &lt; b &amp; c") {
		t.Errorf("text is not escaped in:\n%s", data)
	}
}

func TestXMLName(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"p", "p"},
		{"my-tag", "my-tag"},
		{"h1", "h1"},
		{"my tag", fallbackElement},
		{"1st", fallbackElement},
		{"a:b", fallbackElement},
		{"a&b", fallbackElement},
		{"", fallbackElement},
	}
	for _, tt := range tests {
		if got := xmlName(tt.label); got != tt.want {
			t.Errorf("xmlName(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}
