package parse

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gruntwork-io/listfilter/internal/filter"
)

// Node is the serializable form of a syntax tree node.
type Node struct {
	Value      any     `json:"value,omitempty" yaml:"value,omitempty"`
	Type       string  `json:"type" yaml:"type"`
	Text       string  `json:"text" yaml:"text"`
	Comparator string  `json:"comparator,omitempty" yaml:"comparator,omitempty"`
	Negation   string  `json:"negation,omitempty" yaml:"negation,omitempty"`
	Children   []*Node `json:"children,omitempty" yaml:"children,omitempty"`
	Position   int     `json:"position" yaml:"position"`
}

// NewTree converts a syntax tree node and its descendants.
func NewTree(node filter.Node) *Node {
	n := &Node{
		Type:     strings.TrimPrefix(fmt.Sprintf("%T", node), "*filter."),
		Text:     node.String(),
		Position: node.Pos(),
	}

	switch node := node.(type) {
	case *filter.Term:
		if node.Negated {
			n.Negation = node.Negation
		}
	case *filter.Restriction:
		n.Comparator = node.Comparator.String()
	case *filter.Function:
		n.Value = node.QualifiedName()
	case *filter.IntegerValue:
		n.Value = node.Value
	case *filter.FloatValue:
		n.Value = node.Value
	case *filter.BooleanValue:
		n.Value = node.Value
	case *filter.DurationValue:
		n.Value = node.Duration().String()
	case *filter.DateTimeValue:
		n.Value = node.Time.UTC().Format(time.RFC3339Nano)
	case *filter.StringValue:
		n.Value = node.Value
	case *filter.TextValue:
		n.Value = node.Value
	}

	for _, child := range filter.Children(node) {
		n.Children = append(n.Children, NewTree(child))
	}

	return n
}

// WriteText prints the tree indented by two spaces per level, one node per line:
// type, offset, comparator or negation or value, and the canonical text.
func WriteText(w io.Writer, node *Node) error {
	return writeText(w, node, 0)
}

func writeText(w io.Writer, node *Node, level int) error {
	line := fmt.Sprintf("%s%s @%d", strings.Repeat("  ", level), node.Type, node.Position)

	switch {
	case node.Comparator != "":
		line += " " + node.Comparator
	case node.Negation != "":
		line += " " + node.Negation
	case node.Value != nil:
		line += fmt.Sprintf(" %#v", node.Value)
	}

	line += fmt.Sprintf(" %q", node.Text)

	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}

	for _, child := range node.Children {
		if err := writeText(w, child, level+1); err != nil {
			return err
		}
	}

	return nil
}
