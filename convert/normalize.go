package convert

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// skipped elements never carry document text
var skipped = map[atom.Atom]bool{
	atom.Head:     true,
	atom.Script:   true,
	atom.Style:    true,
	atom.Template: true,
	atom.Noscript: true,
}

// flattened table sections are replaced by their content, so table rows
// stay direct children of the table
var flattened = map[atom.Atom]bool{
	atom.Thead: true,
	atom.Tbody: true,
	atom.Tfoot: true,
}

// normalizeHTML parses ordinary HTML and returns body content in the one
// token per line form. Whitespace is collapsed, void and empty elements are
// dropped, since they cannot be expressed in that form.
func normalizeHTML(r io.Reader) ([]string, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("unable to parse HTML: %w", err)
	}
	body := findBody(root)
	if body == nil {
		// parser always synthesizes body, this should never happen
		return nil, errors.New("unable to find body element")
	}

	n := &normalizer{lines: []string{"<html>", "<body>"}}
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		n.node(c)
	}
	return append(n.lines, "</body>", "</html>"), nil
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}

type normalizer struct {
	lines []string
}

func (n *normalizer) node(h *html.Node) {
	switch h.Type {
	case html.TextNode:
		text := strings.Join(strings.Fields(h.Data), " ")
		if len(text) == 0 {
			return
		}
		if strings.HasPrefix(text, "<") && strings.HasSuffix(text, ">") {
			// would be read back as a marker
			text = html.EscapeString(text)
		}
		n.lines = append(n.lines, text)
	case html.ElementNode:
		if skipped[h.DataAtom] || isVoid(h) {
			return
		}
		if flattened[h.DataAtom] {
			for c := h.FirstChild; c != nil; c = c.NextSibling {
				n.node(c)
			}
			return
		}
		tag := strings.ToLower(h.Data)
		mark := len(n.lines)
		n.lines = append(n.lines, "<"+tag+">")
		for c := h.FirstChild; c != nil; c = c.NextSibling {
			n.node(c)
		}
		if len(n.lines) == mark+1 {
			n.lines = n.lines[:mark]
			return
		}
		n.lines = append(n.lines, "</"+tag+">")
	}
}

func isVoid(h *html.Node) bool {
	switch h.DataAtom {
	case atom.Area, atom.Base, atom.Br, atom.Col, atom.Embed, atom.Hr, atom.Img, atom.Input,
		atom.Link, atom.Meta, atom.Source, atom.Track, atom.Wbr:
		return true
	}
	return false
}
