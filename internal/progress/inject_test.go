package progress

import (
	"math"
	"reflect"
	"testing"

	"github.com/goliatone/go-mdprogress/pkg/mdast"
)

func TestInjectLabelsParagraphWithSublist(t *testing.T) {
	root := doc(list(task(false,
		para("Buy groceries"),
		list(task(true, para("milk")), task(false, para("eggs"))),
	)))

	out := Inject(Aggregate(root))

	item := out.Children[0].(*mdast.AnnotatedList).Children[0].(*mdast.ListItem)
	got := paragraphText(item.Children[0].(*mdast.Paragraph))
	want := []string{"[50%] ", "Buy groceries"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected paragraph children %q, got %q", want, got)
	}
}

func TestInjectNestedScenario(t *testing.T) {
	root := doc(list(
		task(false, para("Parent"), list(task(true, para("Child1")), task(false, para("Child2")))),
		task(true, para("Sibling")),
	))

	out := Inject(Aggregate(root))

	parent := out.Children[0].(*mdast.AnnotatedList).Children[0].(*mdast.ListItem)
	if got := paragraphText(parent.Children[0].(*mdast.Paragraph)); got[0] != "[25%] " {
		t.Fatalf("expected [25%%] label, got %q", got)
	}

	// Leaf items have no sub-list and keep their paragraph.
	sibling := out.Children[0].(*mdast.AnnotatedList).Children[1].(*mdast.ListItem)
	if got := paragraphText(sibling.Children[0].(*mdast.Paragraph)); !reflect.DeepEqual(got, []string{"Sibling"}) {
		t.Fatalf("expected sibling paragraph unchanged, got %q", got)
	}
}

func TestInjectWithoutSublistLeavesParagraph(t *testing.T) {
	p := para("Alone")
	out := Inject(Aggregate(doc(list(task(true, p)))))

	item := out.Children[0].(*mdast.AnnotatedList).Children[0].(*mdast.ListItem)
	if item.Children[0] != mdast.Node(p) {
		t.Fatalf("expected paragraph to be returned unchanged")
	}
}

func TestInjectOnlyFirstParagraph(t *testing.T) {
	first, second := para("first"), para("second")
	root := doc(list(task(false, first, second, list(task(true)))))

	out := Inject(Aggregate(root))

	item := out.Children[0].(*mdast.AnnotatedList).Children[0].(*mdast.ListItem)
	if got := paragraphText(item.Children[0].(*mdast.Paragraph)); !reflect.DeepEqual(got, []string{"[100%] ", "first"}) {
		t.Fatalf("expected label on first paragraph, got %q", got)
	}
	if item.Children[1] != mdast.Node(second) {
		t.Fatalf("expected second paragraph untouched")
	}
}

func TestInjectSublistBeforeParagraph(t *testing.T) {
	root := doc(list(task(false, list(task(false), task(true)), para("after"))))

	out := Inject(Aggregate(root))

	item := out.Children[0].(*mdast.AnnotatedList).Children[0].(*mdast.ListItem)
	if got := paragraphText(item.Children[1].(*mdast.Paragraph)); got[0] != "[50%] " {
		t.Fatalf("expected label regardless of order, got %q", got)
	}
}

func TestInjectLabelsDeepNesting(t *testing.T) {
	leaf := list(task(true), task(true))
	middle := list(task(false, para("middle"), leaf), task(false))
	root := doc(list(task(false, para("top"), middle)))

	out := Inject(Aggregate(root))

	top := out.Children[0].(*mdast.AnnotatedList).Children[0].(*mdast.ListItem)
	if got := paragraphText(top.Children[0].(*mdast.Paragraph))[0]; got != "[0%] " {
		t.Fatalf("expected top label [0%%], got %q", got)
	}
	mid := top.Children[1].(*mdast.AnnotatedList).Children[0].(*mdast.ListItem)
	if got := paragraphText(mid.Children[0].(*mdast.Paragraph))[0]; got != "[50%] " {
		t.Fatalf("expected middle label [50%%], got %q", got)
	}
}

func TestInjectNaNLabel(t *testing.T) {
	root := doc(list(task(false, para("Notes"), list(plain(para("a")), plain(para("b"))))))

	out := Inject(Aggregate(root))

	item := out.Children[0].(*mdast.AnnotatedList).Children[0].(*mdast.ListItem)
	if got := paragraphText(item.Children[0].(*mdast.Paragraph))[0]; got != "[NaN%] " {
		t.Fatalf("expected NaN label, got %q", got)
	}
}

func TestInjectSkipsPlainSublist(t *testing.T) {
	p := para("Raw")
	out := Inject(doc(list(task(false, p, list(task(true))))))

	item := out.Children[0].(*mdast.List).Children[0].(*mdast.ListItem)
	if item.Children[0] != mdast.Node(p) {
		t.Fatalf("expected no label without annotations")
	}
}

func TestInjectIsNotIdempotent(t *testing.T) {
	aggregated := Aggregate(doc(list(task(false, para("Twice"), list(task(true))))))

	out := Inject(Inject(aggregated))

	item := out.Children[0].(*mdast.AnnotatedList).Children[0].(*mdast.ListItem)
	got := paragraphText(item.Children[0].(*mdast.Paragraph))
	if !reflect.DeepEqual(got, []string{"[100%] ", "[100%] ", "Twice"}) {
		t.Fatalf("expected two labels, got %q", got)
	}
}

func TestInjectPreservesShapeAndInput(t *testing.T) {
	aggregated := Aggregate(doc(
		&mdast.Blockquote{Children: []mdast.Node{list(task(false, para("q"), list(task(true))))}},
		&mdast.Heading{Depth: 2, Children: []mdast.Node{text("title")}},
	))
	before, err := mdast.Marshal(aggregated)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	out := Inject(aggregated)

	after, err := mdast.Marshal(aggregated)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(before) != string(after) {
		t.Fatalf("expected input tree to be unchanged")
	}
	if len(out.Children) != 2 || out.Children[1] != aggregated.Children[1] {
		t.Fatalf("expected heading to pass through unchanged")
	}

	quoted := out.Children[0].(*mdast.Blockquote).Children[0].(*mdast.AnnotatedList)
	item := quoted.Children[0].(*mdast.ListItem)
	if got := paragraphText(item.Children[0].(*mdast.Paragraph))[0]; got != "[100%] " {
		t.Fatalf("expected quoted item label, got %q", got)
	}
	if quoted.Percentage != 0 {
		t.Fatalf("expected quoted list percentage 0, got %v", quoted.Percentage)
	}
}

func TestLabel(t *testing.T) {
	cases := []struct {
		input float64
		want  string
	}{
		{0, "[0%] "},
		{0.125, "[13%] "},
		{1.0 / 3.0, "[33%] "},
		{0.5, "[50%] "},
		{1, "[100%] "},
		{math.NaN(), "[NaN%] "},
	}
	for _, tc := range cases {
		if got := Label(tc.input); got != tc.want {
			t.Fatalf("Label(%v): expected %q, got %q", tc.input, tc.want, got)
		}
	}
}
