package mdast

import (
	"encoding/json"
	"fmt"
	"math"
)

// wireNode is the mdast JSON shape shared by every node kind.
type wireNode struct {
	Type           string             `json:"type"`
	Depth          int                `json:"depth,omitempty"`
	Ordered        *bool              `json:"ordered,omitempty"`
	Start          *int               `json:"start,omitempty"`
	Spread         *bool              `json:"spread,omitempty"`
	Checked        *bool              `json:"checked,omitempty"`
	Identifier     string             `json:"identifier,omitempty"`
	Label          string             `json:"label,omitempty"`
	ReferenceType  string             `json:"referenceType,omitempty"`
	URL            *string            `json:"url,omitempty"`
	Title          string             `json:"title,omitempty"`
	Alt            string             `json:"alt,omitempty"`
	Lang           string             `json:"lang,omitempty"`
	Meta           string             `json:"meta,omitempty"`
	Value          *string            `json:"value,omitempty"`
	Align          []*string          `json:"align,omitempty"`
	TotalCheckable *int               `json:"totalCheckable,omitempty"`
	CheckedCount   *int               `json:"checkedCount,omitempty"`
	Percentage     *percent           `json:"percentage,omitempty"`
	Children       *[]json.RawMessage `json:"children,omitempty"`
}

// percent encodes non-finite values as null, which is how JSON viewers
// receive the empty-list percentage.
type percent float64

func (p percent) MarshalJSON() ([]byte, error) {
	v := float64(p)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

// Marshal encodes a node and its descendants as mdast JSON.
func Marshal(n Node) ([]byte, error) {
	if n == nil {
		return []byte("null"), nil
	}
	if u, ok := n.(*Unknown); ok {
		if len(u.Raw) > 0 {
			return u.Raw, nil
		}
		return json.Marshal(wireNode{Type: u.Type})
	}

	w := wireNode{Type: n.Kind().String()}
	switch v := n.(type) {
	case *FootnoteDefinition:
		w.Identifier, w.Label = v.Identifier, v.Label
	case *List:
		fillList(&w, v)
	case *AnnotatedList:
		fillList(&w, &v.List)
		total, checked, pct := v.TotalCheckable, v.CheckedCount, percent(v.Percentage)
		w.TotalCheckable, w.CheckedCount, w.Percentage = &total, &checked, &pct
	case *ListItem:
		w.Checked = v.Checked
		w.Spread = boolPtr(v.Spread)
	case *Heading:
		w.Depth = v.Depth
	case *Code:
		w.Lang, w.Meta, w.Value = v.Lang, v.Meta, stringPtr(v.Value)
	case *HTML:
		w.Value = stringPtr(v.Value)
	case *YAML:
		w.Value = stringPtr(v.Value)
	case *Text:
		w.Value = stringPtr(v.Value)
	case *InlineCode:
		w.Value = stringPtr(v.Value)
	case *Definition:
		w.Identifier, w.Label, w.URL, w.Title = v.Identifier, v.Label, stringPtr(v.URL), v.Title
	case *Link:
		w.URL, w.Title = stringPtr(v.URL), v.Title
	case *Image:
		w.URL, w.Title, w.Alt = stringPtr(v.URL), v.Title, v.Alt
	case *LinkReference:
		w.Identifier, w.Label, w.ReferenceType = v.Identifier, v.Label, v.ReferenceType
	case *ImageReference:
		w.Identifier, w.Label, w.ReferenceType, w.Alt = v.Identifier, v.Label, v.ReferenceType, v.Alt
	case *FootnoteReference:
		w.Identifier, w.Label = v.Identifier, v.Label
	case *Table:
		w.Align = make([]*string, len(v.Align))
		for i, align := range v.Align {
			if align != "" {
				w.Align[i] = stringPtr(align)
			}
		}
	}

	if parent, ok := n.(Parent); ok {
		children := make([]json.RawMessage, 0, len(parent.ChildNodes()))
		for _, child := range parent.ChildNodes() {
			data, err := Marshal(child)
			if err != nil {
				return nil, err
			}
			children = append(children, data)
		}
		w.Children = &children
	}

	return json.Marshal(w)
}

func fillList(w *wireNode, list *List) {
	w.Ordered = boolPtr(list.Ordered)
	w.Start = list.Start
	w.Spread = boolPtr(list.Spread)
}

// inputNode mirrors wireNode for decoding; null and missing fields collapse
// to zero values.
type inputNode struct {
	Type           string            `json:"type"`
	Depth          int               `json:"depth"`
	Ordered        bool              `json:"ordered"`
	Start          *int              `json:"start"`
	Spread         bool              `json:"spread"`
	Checked        *bool             `json:"checked"`
	Identifier     string            `json:"identifier"`
	Label          string            `json:"label"`
	ReferenceType  string            `json:"referenceType"`
	URL            string            `json:"url"`
	Title          string            `json:"title"`
	Alt            string            `json:"alt"`
	Lang           string            `json:"lang"`
	Meta           string            `json:"meta"`
	Value          string            `json:"value"`
	Align          []*string         `json:"align"`
	TotalCheckable *int              `json:"totalCheckable"`
	CheckedCount   *int              `json:"checkedCount"`
	Percentage     *float64          `json:"percentage"`
	Children       []json.RawMessage `json:"children"`
}

// Decode parses mdast JSON into a Root. Position and data fields are ignored;
// unregistered node types are kept as Unknown.
func Decode(data []byte) (*Root, error) {
	node, err := DecodeNode(data)
	if err != nil {
		return nil, err
	}
	root, ok := node.(*Root)
	if !ok {
		return nil, fmt.Errorf("mdast decode: expected root node, got %q", node.Kind())
	}
	return root, nil
}

// DecodeNode parses a single mdast JSON node of any kind.
func DecodeNode(data []byte) (Node, error) {
	var in inputNode
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("mdast decode: %w", err)
	}
	if in.Type == "" {
		return nil, fmt.Errorf("mdast decode: node without type")
	}

	if !Kind(in.Type).known() {
		return unknownNode(in.Type, data), nil
	}

	children, err := decodeChildren(in.Children)
	if err != nil {
		return nil, err
	}

	switch Kind(in.Type) {
	case KindRoot:
		return &Root{Children: children}, nil
	case KindBlockquote:
		return &Blockquote{Children: children}, nil
	case KindFootnoteDefinition:
		return &FootnoteDefinition{Identifier: in.Identifier, Label: in.Label, Children: children}, nil
	case KindList:
		list := List{Ordered: in.Ordered, Start: in.Start, Spread: in.Spread, Children: children}
		if in.TotalCheckable == nil {
			return &list, nil
		}
		annotated := &AnnotatedList{List: list, TotalCheckable: *in.TotalCheckable, Percentage: math.NaN()}
		if in.CheckedCount != nil {
			annotated.CheckedCount = *in.CheckedCount
		}
		if in.Percentage != nil {
			annotated.Percentage = *in.Percentage
		}
		return annotated, nil
	case KindListItem:
		return &ListItem{Checked: in.Checked, Spread: in.Spread, Children: children}, nil
	case KindParagraph:
		return &Paragraph{Children: children}, nil
	case KindHeading:
		return &Heading{Depth: in.Depth, Children: children}, nil
	case KindThematicBreak:
		return &ThematicBreak{}, nil
	case KindCode:
		return &Code{Lang: in.Lang, Meta: in.Meta, Value: in.Value}, nil
	case KindHTML:
		return &HTML{Value: in.Value}, nil
	case KindDefinition:
		return &Definition{Identifier: in.Identifier, Label: in.Label, URL: in.URL, Title: in.Title}, nil
	case KindYAML:
		return &YAML{Value: in.Value}, nil
	case KindText:
		return &Text{Value: in.Value}, nil
	case KindEmphasis:
		return &Emphasis{Children: children}, nil
	case KindStrong:
		return &Strong{Children: children}, nil
	case KindDelete:
		return &Delete{Children: children}, nil
	case KindInlineCode:
		return &InlineCode{Value: in.Value}, nil
	case KindBreak:
		return &Break{}, nil
	case KindLink:
		return &Link{URL: in.URL, Title: in.Title, Children: children}, nil
	case KindImage:
		return &Image{URL: in.URL, Title: in.Title, Alt: in.Alt}, nil
	case KindLinkReference:
		return &LinkReference{Identifier: in.Identifier, Label: in.Label, ReferenceType: in.ReferenceType, Children: children}, nil
	case KindImageReference:
		return &ImageReference{Identifier: in.Identifier, Label: in.Label, ReferenceType: in.ReferenceType, Alt: in.Alt}, nil
	case KindFootnoteReference:
		return &FootnoteReference{Identifier: in.Identifier, Label: in.Label}, nil
	case KindTable:
		align := make([]string, len(in.Align))
		for i, value := range in.Align {
			if value != nil {
				align[i] = *value
			}
		}
		return &Table{Align: align, Children: children}, nil
	case KindTableRow:
		return &TableRow{Children: children}, nil
	case KindTableCell:
		return &TableCell{Children: children}, nil
	default:
		return unknownNode(in.Type, data), nil
	}
}

func unknownNode(kind string, data []byte) *Unknown {
	raw := make(json.RawMessage, len(data))
	copy(raw, data)
	return &Unknown{Type: kind, Raw: raw}
}

func decodeChildren(raw []json.RawMessage) ([]Node, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	children := make([]Node, 0, len(raw))
	for i, item := range raw {
		child, err := DecodeNode(item)
		if err != nil {
			return nil, fmt.Errorf("child %d: %w", i, err)
		}
		children = append(children, child)
	}
	return children, nil
}

func boolPtr(v bool) *bool       { return &v }
func stringPtr(v string) *string { return &v }

func (n *Root) MarshalJSON() ([]byte, error)               { return Marshal(n) }
func (n *Blockquote) MarshalJSON() ([]byte, error)         { return Marshal(n) }
func (n *FootnoteDefinition) MarshalJSON() ([]byte, error) { return Marshal(n) }
func (n *List) MarshalJSON() ([]byte, error)               { return Marshal(n) }
func (n *AnnotatedList) MarshalJSON() ([]byte, error)      { return Marshal(n) }
func (n *ListItem) MarshalJSON() ([]byte, error)           { return Marshal(n) }
func (n *Paragraph) MarshalJSON() ([]byte, error)          { return Marshal(n) }
func (n *Heading) MarshalJSON() ([]byte, error)            { return Marshal(n) }
func (n *Text) MarshalJSON() ([]byte, error)               { return Marshal(n) }
func (n *ThematicBreak) MarshalJSON() ([]byte, error)      { return Marshal(n) }
func (n *Code) MarshalJSON() ([]byte, error)               { return Marshal(n) }
func (n *HTML) MarshalJSON() ([]byte, error)               { return Marshal(n) }
func (n *Definition) MarshalJSON() ([]byte, error)         { return Marshal(n) }
func (n *YAML) MarshalJSON() ([]byte, error)               { return Marshal(n) }
func (n *Emphasis) MarshalJSON() ([]byte, error)           { return Marshal(n) }
func (n *Strong) MarshalJSON() ([]byte, error)             { return Marshal(n) }
func (n *Delete) MarshalJSON() ([]byte, error)             { return Marshal(n) }
func (n *InlineCode) MarshalJSON() ([]byte, error)         { return Marshal(n) }
func (n *Break) MarshalJSON() ([]byte, error)              { return Marshal(n) }
func (n *Link) MarshalJSON() ([]byte, error)               { return Marshal(n) }
func (n *Image) MarshalJSON() ([]byte, error)              { return Marshal(n) }
func (n *LinkReference) MarshalJSON() ([]byte, error)      { return Marshal(n) }
func (n *ImageReference) MarshalJSON() ([]byte, error)     { return Marshal(n) }
func (n *FootnoteReference) MarshalJSON() ([]byte, error)  { return Marshal(n) }
func (n *Table) MarshalJSON() ([]byte, error)              { return Marshal(n) }
func (n *TableRow) MarshalJSON() ([]byte, error)           { return Marshal(n) }
func (n *TableCell) MarshalJSON() ([]byte, error)          { return Marshal(n) }
func (n *Unknown) MarshalJSON() ([]byte, error)            { return Marshal(n) }

// UnmarshalJSON decodes mdast JSON into the root in place.
func (n *Root) UnmarshalJSON(data []byte) error {
	root, err := Decode(data)
	if err != nil {
		return err
	}
	*n = *root
	return nil
}
