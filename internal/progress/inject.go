package progress

import "github.com/goliatone/go-mdprogress/pkg/mdast"

// Inject returns a copy of an aggregated tree in which every list item that
// owns both a paragraph and an annotated sub-list has a progress label
// prepended to that paragraph.
//
// Only the first paragraph and the first list of an item are paired, wherever
// they sit among its children. Running Inject twice adds a second label.
func Inject(root *mdast.Root) *mdast.Root {
	if root == nil {
		return nil
	}
	return &mdast.Root{Children: mapChildren(root.Children, injectNode)}
}

func injectNode(n mdast.Node) mdast.Node {
	switch node := n.(type) {
	case *mdast.List:
		clone := *node
		clone.Children = mapChildren(node.Children, injectNode)
		return &clone
	case *mdast.AnnotatedList:
		clone := *node
		clone.Children = mapChildren(node.Children, injectNode)
		return &clone
	case *mdast.ListItem:
		return injectItem(node)
	default:
		return rebuildContainer(n, injectNode)
	}
}

func injectItem(item *mdast.ListItem) mdast.Node {
	paragraph, sublist := pairItem(item.Children)
	if paragraph == nil || sublist == nil {
		return rebuildContainer(item, injectNode)
	}

	label := &mdast.Text{Value: Label(sublist.Percentage)}
	return rebuildContainer(item, func(child mdast.Node) mdast.Node {
		if child == mdast.Node(paragraph) {
			return prependText(paragraph, label)
		}
		return injectNode(child)
	})
}

// pairItem finds the first paragraph and the first list among children. A
// first list without annotations yields no sub-list.
func pairItem(children []mdast.Node) (*mdast.Paragraph, *mdast.AnnotatedList) {
	var (
		paragraph *mdast.Paragraph
		list      mdast.Node
	)
	for _, child := range children {
		if child == nil {
			continue
		}
		if p, ok := child.(*mdast.Paragraph); ok && paragraph == nil {
			paragraph = p
		}
		if child.Kind() == mdast.KindList && list == nil {
			list = child
		}
	}
	annotated, _ := list.(*mdast.AnnotatedList)
	return paragraph, annotated
}

func prependText(p *mdast.Paragraph, text *mdast.Text) *mdast.Paragraph {
	children := make([]mdast.Node, 0, len(p.Children)+1)
	children = append(children, text)
	children = append(children, p.Children...)
	return &mdast.Paragraph{Children: children}
}
