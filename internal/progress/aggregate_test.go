package progress

import (
	"math"
	"testing"

	"github.com/goliatone/go-mdprogress/pkg/mdast"
)

func TestAggregateFlatTaskList(t *testing.T) {
	out := Aggregate(doc(list(
		task(false, para("A")),
		task(true, para("B")),
	)))

	got := annotated(t, out.Children[0])
	if got.TotalCheckable != 2 || got.CheckedCount != 1 {
		t.Fatalf("expected 2 checkable / 1 checked, got %d / %d", got.TotalCheckable, got.CheckedCount)
	}
	if got.Percentage != 0.5 {
		t.Fatalf("expected percentage 0.5, got %v", got.Percentage)
	}
}

func TestAggregateNestedListUsesParentShare(t *testing.T) {
	sub := list(task(true, para("Child1")), task(false, para("Child2")))
	out := Aggregate(doc(list(
		task(false, para("Parent"), sub),
		task(false, para("Sibling")),
	)))

	top := annotated(t, out.Children[0])
	item := top.Children[0].(*mdast.ListItem)
	nested := annotated(t, item.Children[1])

	if nested.Percentage != 0.25 {
		t.Fatalf("expected nested percentage 0.25, got %v", nested.Percentage)
	}
	if top.Percentage != 0 {
		t.Fatalf("expected top percentage 0, got %v", top.Percentage)
	}
}

func TestAggregateSingleParentHandsFullWeight(t *testing.T) {
	sub := list(task(true, para("Child1")), task(false, para("Child2")))
	out := Aggregate(doc(list(task(false, para("Parent"), sub))))

	item := annotated(t, out.Children[0]).Children[0].(*mdast.ListItem)
	if got := annotated(t, item.Children[1]).Percentage; got != 0.5 {
		t.Fatalf("expected nested percentage 0.5, got %v", got)
	}
}

func TestAggregateZeroCheckableIsNaN(t *testing.T) {
	sub := list(task(true, para("x")), task(false, para("y")))
	out := Aggregate(doc(list(plain(para("one"), sub), plain(para("two")))))

	top := annotated(t, out.Children[0])
	if top.TotalCheckable != 0 || top.CheckedCount != 0 {
		t.Fatalf("expected zero counts, got %d / %d", top.TotalCheckable, top.CheckedCount)
	}
	if !math.IsNaN(top.Percentage) {
		t.Fatalf("expected NaN percentage, got %v", top.Percentage)
	}
	if top.HasProgress() {
		t.Fatal("expected HasProgress to be false for NaN percentage")
	}

	// Descendants of a list without checkboxes restart from weight 1.0.
	nested := annotated(t, top.Children[0].(*mdast.ListItem).Children[1])
	if nested.Percentage != 0.5 {
		t.Fatalf("expected nested percentage 0.5, got %v", nested.Percentage)
	}
}

func TestAggregateCountInvariant(t *testing.T) {
	root := doc(
		list(
			task(true, para("a"), list(task(true), task(true), plain())),
			plain(para("b")),
			task(false, list(plain(), plain())),
		),
		&mdast.Blockquote{Children: []mdast.Node{list(task(true), task(false), task(false))}},
	)

	stats := Lists(Aggregate(root))
	if len(stats) != 4 {
		t.Fatalf("expected 4 annotated lists, got %d", len(stats))
	}

	want := []struct{ total, checked int }{{2, 1}, {2, 2}, {0, 0}, {3, 1}}
	for i, stat := range stats {
		if stat.CheckedCount > stat.TotalCheckable {
			t.Fatalf("list %d: checked %d exceeds checkable %d", i, stat.CheckedCount, stat.TotalCheckable)
		}
		if stat.TotalCheckable != want[i].total || stat.CheckedCount != want[i].checked {
			t.Fatalf("list %d: expected %d/%d, got %d/%d", i, want[i].checked, want[i].total, stat.CheckedCount, stat.TotalCheckable)
		}
	}
}

func TestAggregateWeightConservation(t *testing.T) {
	const n = 3
	items := make([]mdast.Node, n)
	for i := range items {
		items[i] = task(false, para("step"), list(task(true)))
	}
	out := Aggregate(doc(list(items...)))

	var sum float64
	for _, child := range annotated(t, out.Children[0]).Children {
		sum += annotated(t, child.(*mdast.ListItem).Children[1]).Percentage
	}
	if math.Abs(sum-rootWeight) > 1e-12 {
		t.Fatalf("expected nested shares to sum to %v, got %v", rootWeight, sum)
	}
}

func TestAggregateLeavesPhrasingContainersOpaque(t *testing.T) {
	hidden := list(task(true))
	heading := &mdast.Heading{Depth: 1, Children: []mdast.Node{hidden}}
	emphasis := &mdast.Emphasis{Children: []mdast.Node{list(task(false))}}
	paragraph := &mdast.Paragraph{Children: []mdast.Node{emphasis}}

	out := Aggregate(doc(heading, paragraph))

	if out.Children[0] != mdast.Node(heading) {
		t.Fatalf("expected heading to be returned unchanged")
	}
	if out.Children[1] != mdast.Node(paragraph) {
		t.Fatalf("expected paragraph to be returned unchanged")
	}
	if _, ok := heading.Children[0].(*mdast.List); !ok {
		t.Fatalf("expected list under heading to stay unannotated, got %T", heading.Children[0])
	}
}

func TestAggregateDescendsIntoBlockquoteAndFootnote(t *testing.T) {
	out := Aggregate(doc(
		&mdast.Blockquote{Children: []mdast.Node{
			&mdast.Blockquote{Children: []mdast.Node{list(task(true), task(false))}},
		}},
		&mdast.FootnoteDefinition{Identifier: "1", Children: []mdast.Node{list(task(true))}},
	))

	inner := out.Children[0].(*mdast.Blockquote).Children[0].(*mdast.Blockquote)
	if got := annotated(t, inner.Children[0]).Percentage; got != 0.5 {
		t.Fatalf("expected blockquote list percentage 0.5, got %v", got)
	}

	footnote := out.Children[1].(*mdast.FootnoteDefinition)
	if footnote.Identifier != "1" {
		t.Fatalf("expected footnote identifier to be preserved, got %q", footnote.Identifier)
	}
	if got := annotated(t, footnote.Children[0]).Percentage; got != 1 {
		t.Fatalf("expected footnote list percentage 1, got %v", got)
	}
}

func TestAggregateItemLevelBlockquoteKeepsWeight(t *testing.T) {
	quote := &mdast.Blockquote{Children: []mdast.Node{list(task(true))}}
	out := Aggregate(doc(list(task(false, para("a"), quote), task(false, para("b")))))

	item := annotated(t, out.Children[0]).Children[0].(*mdast.ListItem)
	nested := annotated(t, item.Children[1].(*mdast.Blockquote).Children[0])
	if nested.Percentage != 0.5 {
		t.Fatalf("expected quoted list to inherit item weight 0.5, got %v", nested.Percentage)
	}
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	input := list(task(true, para("done")))
	root := doc(input)

	out := Aggregate(root)

	if root.Children[0] != mdast.Node(input) {
		t.Fatal("expected input root children to be untouched")
	}
	if out == root || out.Children[0] == mdast.Node(input) {
		t.Fatal("expected a new tree")
	}
	if _, ok := root.Children[0].(*mdast.List); !ok {
		t.Fatalf("expected input list to remain *mdast.List, got %T", root.Children[0])
	}
}

func TestAggregatePassesUnknownKindsThrough(t *testing.T) {
	unknown := &mdast.Unknown{Type: "mdxJsxFlowElement"}
	out := Aggregate(doc(unknown, &mdast.ThematicBreak{}))

	if out.Children[0] != mdast.Node(unknown) {
		t.Fatalf("expected unknown node to pass through")
	}
}

func TestAggregateRecomputesAnnotatedInput(t *testing.T) {
	once := Aggregate(doc(list(task(true), task(true))))
	twice := Aggregate(once)

	got := annotated(t, twice.Children[0])
	if got.TotalCheckable != 2 || got.CheckedCount != 2 || got.Percentage != 1 {
		t.Fatalf("unexpected recomputed annotation: %+v", got)
	}
}

func TestAggregateNilRoot(t *testing.T) {
	if Aggregate(nil) != nil {
		t.Fatal("expected nil for nil root")
	}
}
