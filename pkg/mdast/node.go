package mdast

import "encoding/json"

// Node is implemented by every tree variant.
type Node interface {
	Kind() Kind
}

// Parent is implemented by variants that carry child nodes. Transforms must
// not modify the returned slice.
type Parent interface {
	Node
	ChildNodes() []Node
}

// Root is the whole document.
type Root struct {
	Children []Node
}

// Blockquote holds block content.
type Blockquote struct {
	Children []Node
}

// FootnoteDefinition holds the block content of a GFM footnote.
type FootnoteDefinition struct {
	Identifier string
	Label      string
	Children   []Node
}

// List holds list items. Start is nil for bullet lists.
type List struct {
	Ordered  bool
	Start    *int
	Spread   bool
	Children []Node
}

// ListItem holds block content. Checked is the task-list tri-state: nil for
// plain items, otherwise the checkbox value. Spread is set when a blank line
// separates the item's own children.
type ListItem struct {
	Checked  *bool
	Spread   bool
	Children []Node
}

// Paragraph holds phrasing content.
type Paragraph struct {
	Children []Node
}

// Heading holds phrasing content at Depth 1 to 6.
type Heading struct {
	Depth    int
	Children []Node
}

type ThematicBreak struct{}

// Code is a fenced or indented code block.
type Code struct {
	Lang  string
	Meta  string
	Value string
}

type HTML struct {
	Value string
}

// Definition is a link reference definition.
type Definition struct {
	Identifier string
	Label      string
	URL        string
	Title      string
}

// YAML is a front matter block.
type YAML struct {
	Value string
}

type Text struct {
	Value string
}

type Emphasis struct {
	Children []Node
}

type Strong struct {
	Children []Node
}

// Delete is GFM strikethrough.
type Delete struct {
	Children []Node
}

type InlineCode struct {
	Value string
}

type Break struct{}

type Link struct {
	URL      string
	Title    string
	Children []Node
}

type Image struct {
	URL   string
	Title string
	Alt   string
}

type LinkReference struct {
	Identifier    string
	Label         string
	ReferenceType string
	Children      []Node
}

type ImageReference struct {
	Identifier    string
	Label         string
	ReferenceType string
	Alt           string
}

type FootnoteReference struct {
	Identifier string
	Label      string
}

// Table holds table rows. Align has one entry per column: "left", "right",
// "center" or "" for none.
type Table struct {
	Align    []string
	Children []Node
}

type TableRow struct {
	Children []Node
}

type TableCell struct {
	Children []Node
}

// Unknown preserves a node whose type this package does not model.
type Unknown struct {
	Type string
	Raw  json.RawMessage
}

func (*Root) Kind() Kind               { return KindRoot }
func (*Blockquote) Kind() Kind         { return KindBlockquote }
func (*FootnoteDefinition) Kind() Kind { return KindFootnoteDefinition }
func (*List) Kind() Kind               { return KindList }
func (*ListItem) Kind() Kind           { return KindListItem }
func (*Paragraph) Kind() Kind          { return KindParagraph }
func (*Heading) Kind() Kind            { return KindHeading }
func (*ThematicBreak) Kind() Kind      { return KindThematicBreak }
func (*Code) Kind() Kind               { return KindCode }
func (*HTML) Kind() Kind               { return KindHTML }
func (*Definition) Kind() Kind         { return KindDefinition }
func (*YAML) Kind() Kind               { return KindYAML }
func (*Text) Kind() Kind               { return KindText }
func (*Emphasis) Kind() Kind           { return KindEmphasis }
func (*Strong) Kind() Kind             { return KindStrong }
func (*Delete) Kind() Kind             { return KindDelete }
func (*InlineCode) Kind() Kind         { return KindInlineCode }
func (*Break) Kind() Kind              { return KindBreak }
func (*Link) Kind() Kind               { return KindLink }
func (*Image) Kind() Kind              { return KindImage }
func (*LinkReference) Kind() Kind      { return KindLinkReference }
func (*ImageReference) Kind() Kind     { return KindImageReference }
func (*FootnoteReference) Kind() Kind  { return KindFootnoteReference }
func (*Table) Kind() Kind              { return KindTable }
func (*TableRow) Kind() Kind           { return KindTableRow }
func (*TableCell) Kind() Kind          { return KindTableCell }
func (u *Unknown) Kind() Kind          { return Kind(u.Type) }

func (n *Root) ChildNodes() []Node               { return n.Children }
func (n *Blockquote) ChildNodes() []Node         { return n.Children }
func (n *FootnoteDefinition) ChildNodes() []Node { return n.Children }
func (n *List) ChildNodes() []Node               { return n.Children }
func (n *ListItem) ChildNodes() []Node           { return n.Children }
func (n *Paragraph) ChildNodes() []Node          { return n.Children }
func (n *Heading) ChildNodes() []Node            { return n.Children }
func (n *Emphasis) ChildNodes() []Node           { return n.Children }
func (n *Strong) ChildNodes() []Node             { return n.Children }
func (n *Delete) ChildNodes() []Node             { return n.Children }
func (n *Link) ChildNodes() []Node               { return n.Children }
func (n *LinkReference) ChildNodes() []Node      { return n.Children }
func (n *Table) ChildNodes() []Node              { return n.Children }
func (n *TableRow) ChildNodes() []Node           { return n.Children }
func (n *TableCell) ChildNodes() []Node          { return n.Children }

// Bool returns a pointer to v, for building ListItem.Checked values.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v, for building List.Start values.
func Int(v int) *int { return &v }
