package progress

import "github.com/goliatone/go-mdprogress/pkg/mdast"

// ListStat describes one annotated list found in a tree.
type ListStat struct {
	// Depth counts enclosing lists; top-level lists have depth 0.
	Depth          int
	Ordered        bool
	Items          int
	TotalCheckable int
	CheckedCount   int
	Percentage     float64
}

// Summary totals the direct checkbox counts of every annotated list.
type Summary struct {
	Lists     int
	Checkable int
	Checked   int
}

// Lists returns the annotated lists of root in document order, following the
// same traversal policy as Aggregate. Plain lists are descended into but not
// reported.
func Lists(root *mdast.Root) []ListStat {
	if root == nil {
		return nil
	}
	var stats []ListStat
	for _, child := range root.Children {
		stats = collectLists(child, 0, stats)
	}
	return stats
}

func collectLists(n mdast.Node, depth int, stats []ListStat) []ListStat {
	switch node := n.(type) {
	case *mdast.AnnotatedList:
		stats = append(stats, ListStat{
			Depth:          depth,
			Ordered:        node.Ordered,
			Items:          len(node.Children),
			TotalCheckable: node.TotalCheckable,
			CheckedCount:   node.CheckedCount,
			Percentage:     node.Percentage,
		})
		depth++
	case *mdast.List:
		depth++
	case *mdast.Blockquote, *mdast.FootnoteDefinition, *mdast.ListItem:
	default:
		return stats
	}
	for _, child := range n.(mdast.Parent).ChildNodes() {
		stats = collectLists(child, depth, stats)
	}
	return stats
}

// Summarize reduces list stats to document totals.
func Summarize(stats []ListStat) Summary {
	summary := Summary{Lists: len(stats)}
	for _, stat := range stats {
		summary.Checkable += stat.TotalCheckable
		summary.Checked += stat.CheckedCount
	}
	return summary
}
