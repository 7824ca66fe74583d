package progress

import (
	"math"
	"testing"

	"github.com/goliatone/go-mdprogress/pkg/mdast"
)

func TestListsReportsDepthAndOrder(t *testing.T) {
	root := Aggregate(doc(
		list(task(true, para("a"), list(task(false), task(true)))),
		&mdast.Paragraph{Children: []mdast.Node{text("between")}},
		&mdast.List{Ordered: true, Start: mdast.Int(3), Children: []mdast.Node{plain(para("n"))}},
	))

	stats := Lists(root)
	if len(stats) != 3 {
		t.Fatalf("expected 3 lists, got %d", len(stats))
	}
	if stats[0].Depth != 0 || stats[1].Depth != 1 || stats[2].Depth != 0 {
		t.Fatalf("unexpected depths: %+v", stats)
	}
	if !stats[2].Ordered || stats[2].Items != 1 {
		t.Fatalf("expected ordered single-item list, got %+v", stats[2])
	}
	if !math.IsNaN(stats[2].Percentage) {
		t.Fatalf("expected NaN percentage for plain list, got %v", stats[2].Percentage)
	}

	summary := Summarize(stats)
	if summary.Lists != 3 || summary.Checkable != 3 || summary.Checked != 2 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestListsIgnoresUnannotatedTrees(t *testing.T) {
	if got := Lists(doc(list(task(true)))); len(got) != 0 {
		t.Fatalf("expected no stats for raw tree, got %+v", got)
	}
	if Lists(nil) != nil {
		t.Fatal("expected nil stats for nil root")
	}
}
