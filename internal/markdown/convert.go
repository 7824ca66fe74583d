package markdown

import (
	"bytes"
	"strings"

	gast "github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/goliatone/go-mdprogress/pkg/mdast"
)

// converter maps a goldmark AST onto mdast nodes. Goldmark keeps text as
// offsets into the source, so every conversion needs the original bytes.
type converter struct {
	source    []byte
	footnotes map[int]string
}

func convertDocument(doc gast.Node, source []byte) *mdast.Root {
	c := converter{source: source, footnotes: footnoteRefs(doc)}
	return &mdast.Root{Children: c.blocks(doc)}
}

// footnoteRefs maps the index goldmark assigns to each footnote onto its
// label, so references can carry the label instead of the number.
func footnoteRefs(doc gast.Node) map[int]string {
	refs := map[int]string{}
	for child := doc.FirstChild(); child != nil; child = child.NextSibling() {
		list, ok := child.(*extast.FootnoteList)
		if !ok {
			continue
		}
		for fn := list.FirstChild(); fn != nil; fn = fn.NextSibling() {
			if footnote, ok := fn.(*extast.Footnote); ok {
				refs[footnote.Index] = string(footnote.Ref)
			}
		}
	}
	return refs
}

func (c converter) blocks(parent gast.Node) []mdast.Node {
	var out []mdast.Node
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		// Footnote definitions are gathered into a trailing list by goldmark;
		// mdast keeps them as top-level siblings.
		if list, ok := child.(*extast.FootnoteList); ok {
			out = append(out, c.blocks(list)...)
			continue
		}
		if node := c.block(child); node != nil {
			out = append(out, node)
		}
	}
	return out
}

func (c converter) block(n gast.Node) mdast.Node {
	switch node := n.(type) {
	case *gast.Paragraph, *gast.TextBlock:
		return &mdast.Paragraph{Children: trimTrailingBreak(c.inlines(node))}
	case *gast.Heading:
		return &mdast.Heading{Depth: node.Level, Children: c.inlines(node)}
	case *gast.ThematicBreak:
		return &mdast.ThematicBreak{}
	case *gast.FencedCodeBlock:
		code := &mdast.Code{Value: c.lines(node.Lines())}
		if node.Info != nil {
			info := string(node.Info.Segment.Value(c.source))
			code.Lang = string(node.Language(c.source))
			code.Meta = strings.TrimSpace(strings.TrimPrefix(info, code.Lang))
		}
		return code
	case *gast.CodeBlock:
		return &mdast.Code{Value: c.lines(node.Lines())}
	case *gast.HTMLBlock:
		value := c.lines(node.Lines())
		if node.HasClosure() {
			value += "\n" + strings.TrimRight(string(node.ClosureLine.Value(c.source)), "\n")
		}
		return &mdast.HTML{Value: strings.TrimPrefix(value, "\n")}
	case *gast.Blockquote:
		return &mdast.Blockquote{Children: c.blocks(node)}
	case *gast.List:
		list := &mdast.List{
			Ordered: node.IsOrdered(),
			Spread:  !node.IsTight,
		}
		if list.Ordered {
			list.Start = mdast.Int(node.Start)
		}
		list.Children = c.blocks(node)
		return list
	case *gast.ListItem:
		return &mdast.ListItem{
			Checked:  taskState(node),
			Spread:   itemSpread(node),
			Children: c.blocks(node),
		}
	case *extast.Footnote:
		ref := string(node.Ref)
		return &mdast.FootnoteDefinition{
			Identifier: strings.ToLower(ref),
			Label:      ref,
			Children:   c.blocks(node),
		}
	case *extast.FootnoteBacklink:
		// Rendered as a block sibling when the footnote ends in a non-paragraph block.
		return nil
	case *extast.Table:
		align := make([]string, len(node.Alignments))
		for i, a := range node.Alignments {
			if a != extast.AlignNone {
				align[i] = a.String()
			}
		}
		return &mdast.Table{Align: align, Children: c.blocks(node)}
	case *extast.TableHeader:
		return &mdast.TableRow{Children: c.blocks(node)}
	case *extast.TableRow:
		return &mdast.TableRow{Children: c.blocks(node)}
	case *extast.TableCell:
		return &mdast.TableCell{Children: c.inlines(node)}
	default:
		return &mdast.Unknown{Type: n.Kind().String()}
	}
}

// itemSpread reports whether a blank line separates any two direct children
// of item.
func itemSpread(item *gast.ListItem) bool {
	first := item.FirstChild()
	if first == nil {
		return false
	}
	for child := first.NextSibling(); child != nil; child = child.NextSibling() {
		if child.HasBlankPreviousLines() {
			return true
		}
	}
	return false
}

// taskState reads the checkbox goldmark places at the start of an item's
// first paragraph.
func taskState(item *gast.ListItem) *bool {
	first := item.FirstChild()
	if first == nil {
		return nil
	}
	if box, ok := first.FirstChild().(*extast.TaskCheckBox); ok {
		return mdast.Bool(box.IsChecked)
	}
	return nil
}

func (c converter) inlines(parent gast.Node) []mdast.Node {
	var out []mdast.Node
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		out = c.inline(child, out)
	}
	return out
}

func (c converter) inline(n gast.Node, out []mdast.Node) []mdast.Node {
	switch node := n.(type) {
	case *gast.Text:
		value := string(node.Segment.Value(c.source))
		if node.SoftLineBreak() {
			value += "\n"
		}
		out = appendText(out, value)
		if node.HardLineBreak() {
			out = append(out, &mdast.Break{})
		}
		return out
	case *gast.String:
		return appendText(out, string(node.Value))
	case *gast.CodeSpan:
		return append(out, &mdast.InlineCode{Value: c.plainText(node)})
	case *gast.Emphasis:
		if node.Level >= 2 {
			return append(out, &mdast.Strong{Children: c.inlines(node)})
		}
		return append(out, &mdast.Emphasis{Children: c.inlines(node)})
	case *gast.Link:
		return append(out, &mdast.Link{
			URL:      string(node.Destination),
			Title:    string(node.Title),
			Children: c.inlines(node),
		})
	case *gast.Image:
		return append(out, &mdast.Image{
			URL:   string(node.Destination),
			Title: string(node.Title),
			Alt:   c.plainText(node),
		})
	case *gast.AutoLink:
		return append(out, &mdast.Link{
			URL:      string(node.URL(c.source)),
			Children: []mdast.Node{&mdast.Text{Value: string(node.Label(c.source))}},
		})
	case *gast.RawHTML:
		var buf bytes.Buffer
		for i := 0; i < node.Segments.Len(); i++ {
			segment := node.Segments.At(i)
			buf.Write(segment.Value(c.source))
		}
		return append(out, &mdast.HTML{Value: buf.String()})
	case *extast.Strikethrough:
		return append(out, &mdast.Delete{Children: c.inlines(node)})
	case *extast.FootnoteLink:
		id := c.footnotes[node.Index]
		return append(out, &mdast.FootnoteReference{Identifier: strings.ToLower(id), Label: id})
	case *extast.TaskCheckBox, *extast.FootnoteBacklink:
		return out
	default:
		return append(out, &mdast.Unknown{Type: n.Kind().String()})
	}
}

// appendText merges adjacent text runs, which goldmark splits around
// delimiters and entity references.
func appendText(out []mdast.Node, value string) []mdast.Node {
	if value == "" {
		return out
	}
	if len(out) > 0 {
		if last, ok := out[len(out)-1].(*mdast.Text); ok {
			last.Value += value
			return out
		}
	}
	return append(out, &mdast.Text{Value: value})
}

func trimTrailingBreak(nodes []mdast.Node) []mdast.Node {
	if len(nodes) == 0 {
		return nodes
	}
	if last, ok := nodes[len(nodes)-1].(*mdast.Text); ok {
		last.Value = strings.TrimRight(last.Value, "\n")
		if last.Value == "" {
			return nodes[:len(nodes)-1]
		}
	}
	return nodes
}

func (c converter) plainText(parent gast.Node) string {
	var buf strings.Builder
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		switch node := child.(type) {
		case *gast.Text:
			buf.Write(node.Segment.Value(c.source))
			if node.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *gast.String:
			buf.Write(node.Value)
		default:
			buf.WriteString(c.plainText(child))
		}
	}
	return buf.String()
}

func (c converter) lines(segments *text.Segments) string {
	if segments == nil {
		return ""
	}
	var buf bytes.Buffer
	for i := 0; i < segments.Len(); i++ {
		segment := segments.At(i)
		buf.Write(segment.Value(c.source))
	}
	return strings.TrimRight(buf.String(), "\n")
}
