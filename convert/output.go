package convert

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"

	"dtree/config"
	"dtree/dom"
)

// labelAttr keeps original label of elements which are not valid XML names.
const (
	fallbackElement = "node"
	labelAttr       = "label"
)

// writeDocument renders tree to w in requested format.
func writeDocument(w io.Writer, tree *dom.Tree, format config.OutputFmt) error {
	var err error
	switch format {
	case config.OutputFmtHtml:
		_, err = tree.WriteTo(w)
	case config.OutputFmtXml:
		_, err = toXML(tree).WriteTo(w)
	case config.OutputFmtTree:
		_, err = io.WriteString(w, tree.String())
	default:
		return fmt.Errorf("unsupported output format %s", format)
	}
	return err
}

// toXML converts tree into XML document, text nodes become character data.
func toXML(tree *dom.Tree) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	var add func(parent *etree.Element, id dom.NodeID)
	add = func(parent *etree.Element, id dom.NodeID) {
		label := tree.Label(id)
		if !tree.IsElement(id) {
			parent.CreateText(label)
			return
		}
		el := parent.CreateElement(xmlName(label))
		if el.Tag != label {
			el.CreateAttr(labelAttr, label)
		}
		for child := range tree.Children(id) {
			add(el, child)
		}
	}
	add(&doc.Element, tree.Root())

	doc.Indent(2)
	return doc
}

// xmlName returns label when it is a valid XML element name.
func xmlName(label string) string {
	d := xml.NewDecoder(strings.NewReader("<" + label + "/>"))
	tok, err := d.Token()
	if err != nil {
		return fallbackElement
	}
	if se, ok := tok.(xml.StartElement); !ok || se.Name.Space != "" || se.Name.Local != label || len(se.Attr) != 0 {
		return fallbackElement
	}
	return label
}
