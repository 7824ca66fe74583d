package progress

import "github.com/goliatone/go-mdprogress/pkg/mdast"

type visitFunc func(mdast.Node) mdast.Node

// rebuildContainer copies a blockquote, footnote definition or list item with
// fn applied to every child. Any other node is returned as is.
func rebuildContainer(n mdast.Node, fn visitFunc) mdast.Node {
	switch node := n.(type) {
	case *mdast.Blockquote:
		return &mdast.Blockquote{Children: mapChildren(node.Children, fn)}
	case *mdast.FootnoteDefinition:
		clone := *node
		clone.Children = mapChildren(node.Children, fn)
		return &clone
	case *mdast.ListItem:
		clone := *node
		clone.Children = mapChildren(node.Children, fn)
		return &clone
	default:
		return n
	}
}

func mapChildren(children []mdast.Node, fn visitFunc) []mdast.Node {
	if children == nil {
		return nil
	}
	out := make([]mdast.Node, len(children))
	for i, child := range children {
		out[i] = fn(child)
	}
	return out
}
