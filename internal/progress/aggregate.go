package progress

import "github.com/goliatone/go-mdprogress/pkg/mdast"

// rootWeight is the completion budget handed to lists outside any list.
const rootWeight = 1.0

// Aggregate returns a copy of root where every reachable list carries its
// checkable and checked item counts plus a weighted percentage.
//
// A list seen with weight w reports w*checked/total and hands w/total to each
// of its items, so nested lists express their share of the parent item's
// completion. An empty checkable set hands 1.0 down but reports NaN for the
// list itself.
func Aggregate(root *mdast.Root) *mdast.Root {
	if root == nil {
		return nil
	}
	return &mdast.Root{Children: mapChildren(root.Children, weighted(rootWeight))}
}

func weighted(weight float64) visitFunc {
	return func(n mdast.Node) mdast.Node {
		return aggregateNode(n, weight)
	}
}

func aggregateNode(n mdast.Node, weight float64) mdast.Node {
	switch node := n.(type) {
	case *mdast.List:
		return aggregateList(node, weight)
	case *mdast.AnnotatedList:
		return aggregateList(&node.List, weight)
	default:
		return rebuildContainer(n, weighted(weight))
	}
}

func aggregateList(list *mdast.List, weight float64) *mdast.AnnotatedList {
	total, checked := countItems(list.Children)

	childWeight := 1.0
	if total > 0 {
		childWeight = weight / float64(total)
	}

	base := *list
	base.Children = mapChildren(list.Children, weighted(childWeight))

	// Not guarded: zero checkable items yields NaN.
	percentage := weight * float64(checked) / float64(total)

	return &mdast.AnnotatedList{
		List:           base,
		TotalCheckable: total,
		CheckedCount:   checked,
		Percentage:     percentage,
	}
}

// countItems counts direct list items with a checkbox and those checked.
func countItems(children []mdast.Node) (total, checked int) {
	for _, child := range children {
		item, ok := child.(*mdast.ListItem)
		if !ok || item.Checked == nil {
			continue
		}
		total++
		if *item.Checked {
			checked++
		}
	}
	return total, checked
}
