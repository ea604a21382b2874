package dom

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// AddTag wraps occurrences of word (case insensitive) into a new tag element.
// A node whose whole label is the word gets wrapped as is. A text node where
// the word is one of whitespace separated tokens is split into leading text,
// the tag element holding the token and trailing text. Only the first token
// of each text node is wrapped per call. Returns number of wraps.
func (t *Tree) AddTag(word, tag string) (int, error) {
	if len(word) == 0 {
		return 0, fmt.Errorf("%w: empty word", ErrInvalidArgument)
	}
	if len(tag) == 0 || strings.ContainsFunc(tag, func(r rune) bool {
		return unicode.IsSpace(r) || r == '<' || r == '>'
	}) {
		return 0, fmt.Errorf("%w: bad tag name %q", ErrInvalidArgument, tag)
	}

	w := &wordTagger{t: t, word: word, lower: strings.ToLower(word), tag: tag}
	head := w.chain(t.nodes[t.root].first)
	t.nodes[t.root].first = head
	return w.count, nil
}

type wordTagger struct {
	t     *Tree
	word  string
	lower string
	tag   string
	count int
}

// chain processes sibling chain starting at head and returns its new head.
func (w *wordTagger) chain(head NodeID) NodeID {
	// w.node may grow the arena, so nodes are always indexed through w.t
	newHead, prev := head, None
	for cur := head; cur != None; {
		first, last := w.node(cur)
		if prev == None {
			newHead = first
		} else {
			w.t.nodes[prev].next = first
		}
		prev, cur = last, w.t.nodes[last].next
	}
	return newHead
}

// node processes a single node and returns first and last nodes of whatever
// replaces it in the chain. The last one keeps the original next sibling.
func (w *wordTagger) node(cur NodeID) (NodeID, NodeID) {
	t := w.t
	label := t.nodes[cur].label
	if !t.preamble(cur) && strings.Contains(strings.ToLower(label), w.lower) {
		if strings.EqualFold(label, w.word) {
			w.children(cur)
			wrapper := t.newNode(w.tag, cur, t.nodes[cur].next)
			t.nodes[cur].next = None
			w.count++
			return wrapper, wrapper
		}
		if t.nodes[cur].first == None {
			if start, end, ok := tokenSpan(label, w.word); ok {
				return w.split(cur, start, end)
			}
		}
	}
	w.children(cur)
	return cur, cur
}

// children processes child chain of id. New head is stored only after the
// chain is done since processing may reallocate the arena.
func (w *wordTagger) children(id NodeID) {
	if first := w.t.nodes[id].first; first != None {
		head := w.chain(first)
		w.t.nodes[id].first = head
	}
}

// split breaks text node cur around label[start:end]. The node itself is
// kept for the leading text when there is one.
func (w *wordTagger) split(cur NodeID, start, end int) (NodeID, NodeID) {
	t := w.t
	label, next := t.nodes[cur].label, t.nodes[cur].next

	token := t.newNode(label[start:end], None, None)
	wrapper := t.newNode(w.tag, token, next)
	first, last := wrapper, wrapper
	if end < len(label) {
		last = t.newNode(label[end:], None, next)
		t.nodes[wrapper].next = last
	}
	if start > 0 {
		t.nodes[cur].label = label[:start]
		t.nodes[cur].next = wrapper
		first = cur
	} else {
		t.nodes[cur].next = None
	}
	w.count++
	return first, last
}

// tokenSpan finds the first whitespace delimited token of s equal to word
// ignoring case and returns its byte offsets.
func tokenSpan(s, word string) (int, int, bool) {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}
		start := i
		for i < len(s) {
			r, size = utf8.DecodeRuneInString(s[i:])
			if unicode.IsSpace(r) {
				break
			}
			i += size
		}
		if strings.EqualFold(s[start:i], word) {
			return start, i, true
		}
	}
	return 0, 0, false
}
