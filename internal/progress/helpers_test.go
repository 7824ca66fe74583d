package progress

import (
	"testing"

	"github.com/goliatone/go-mdprogress/pkg/mdast"
)

func text(value string) *mdast.Text { return &mdast.Text{Value: value} }

func para(value string) *mdast.Paragraph {
	return &mdast.Paragraph{Children: []mdast.Node{text(value)}}
}

func task(checked bool, children ...mdast.Node) *mdast.ListItem {
	return &mdast.ListItem{Checked: mdast.Bool(checked), Children: children}
}

func plain(children ...mdast.Node) *mdast.ListItem {
	return &mdast.ListItem{Children: children}
}

func list(items ...mdast.Node) *mdast.List {
	return &mdast.List{Children: items}
}

func doc(children ...mdast.Node) *mdast.Root {
	return &mdast.Root{Children: children}
}

func annotated(tb testing.TB, n mdast.Node) *mdast.AnnotatedList {
	tb.Helper()
	list, ok := n.(*mdast.AnnotatedList)
	if !ok {
		tb.Fatalf("expected *mdast.AnnotatedList, got %T", n)
	}
	return list
}

func paragraphText(p *mdast.Paragraph) []string {
	values := make([]string, 0, len(p.Children))
	for _, child := range p.Children {
		if t, ok := child.(*mdast.Text); ok {
			values = append(values, t.Value)
		}
	}
	return values
}
