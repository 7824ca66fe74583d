package mdast

// Kind discriminates node variants. Values match the mdast "type" field.
type Kind string

const (
	KindRoot               Kind = "root"
	KindBlockquote         Kind = "blockquote"
	KindFootnoteDefinition Kind = "footnoteDefinition"
	KindList               Kind = "list"
	KindListItem           Kind = "listItem"
	KindParagraph          Kind = "paragraph"
	KindHeading            Kind = "heading"
	KindThematicBreak      Kind = "thematicBreak"
	KindCode               Kind = "code"
	KindHTML               Kind = "html"
	KindDefinition         Kind = "definition"
	KindYAML               Kind = "yaml"
	KindText               Kind = "text"
	KindEmphasis           Kind = "emphasis"
	KindStrong             Kind = "strong"
	KindDelete             Kind = "delete"
	KindInlineCode         Kind = "inlineCode"
	KindBreak              Kind = "break"
	KindLink               Kind = "link"
	KindImage              Kind = "image"
	KindLinkReference      Kind = "linkReference"
	KindImageReference     Kind = "imageReference"
	KindFootnoteReference  Kind = "footnoteReference"
	KindTable              Kind = "table"
	KindTableRow           Kind = "tableRow"
	KindTableCell          Kind = "tableCell"
)

// String returns the mdast type name.
func (k Kind) String() string { return string(k) }

// IsBlockContainer reports whether nodes of this kind may hold block content
// (and therefore lists). Every other kind is a leaf for tree transforms, even
// when it carries phrasing or table children.
func (k Kind) IsBlockContainer() bool {
	switch k {
	case KindRoot, KindBlockquote, KindFootnoteDefinition, KindList, KindListItem:
		return true
	default:
		return false
	}
}

func (k Kind) known() bool {
	switch k {
	case KindRoot, KindBlockquote, KindFootnoteDefinition, KindList, KindListItem,
		KindParagraph, KindHeading, KindThematicBreak, KindCode, KindHTML, KindDefinition,
		KindYAML, KindText, KindEmphasis, KindStrong, KindDelete, KindInlineCode, KindBreak,
		KindLink, KindImage, KindLinkReference, KindImageReference, KindFootnoteReference,
		KindTable, KindTableRow, KindTableCell:
		return true
	default:
		return false
	}
}
