package config

//go:generate go tool go-enum --marshal --names --values

// Specification of requested output type.
// ENUM(html, xml, tree)
type OutputFmt int

func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtHtml:
		return ".html"
	case OutputFmtXml:
		return ".xml"
	case OutputFmtTree:
		return ".txt"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}

// Kind of document edit.
// ENUM(replace, bold, remove, add)
type OpKind int
