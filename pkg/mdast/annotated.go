package mdast

import "math"

// AnnotatedList is a List carrying completion statistics. Percentage is the
// list's checked share of the weight handed down by its checkable ancestors;
// it is NaN when the list has no checkable items.
type AnnotatedList struct {
	List
	TotalCheckable int
	CheckedCount   int
	Percentage     float64
}

// Kind reports KindList; an annotated list is still a list.
func (*AnnotatedList) Kind() Kind { return KindList }

// ChildNodes returns the list items.
func (n *AnnotatedList) ChildNodes() []Node { return n.Children }

// HasProgress reports whether Percentage is a finite number.
func (n *AnnotatedList) HasProgress() bool {
	return !math.IsNaN(n.Percentage) && !math.IsInf(n.Percentage, 0)
}

// BaseList returns the list fields of a plain or annotated list node.
func BaseList(n Node) (*List, bool) {
	switch list := n.(type) {
	case *List:
		return list, true
	case *AnnotatedList:
		return &list.List, true
	default:
		return nil, false
	}
}
