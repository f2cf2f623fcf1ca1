package filter

// Walk traverses the tree depth-first in source order, calling fn for each node, values
// included. Children of a node are visited only if fn returns true for it.
func Walk(node Node, fn func(Node) bool) {
	if isNilNode(node) || !fn(node) {
		return
	}

	for _, child := range Children(node) {
		Walk(child, fn)
	}
}

// Children returns the direct children of node in source order. Values have none.
func Children(node Node) []Node {
	var children []Node

	switch n := node.(type) {
	case *Filter:
		children = appendNodes(children, n.Expressions...)
	case *Expression:
		children = appendNodes(children, n.Sequences...)
	case *Sequence:
		children = appendNodes(children, n.Factors...)
	case *Factor:
		children = appendNodes(children, n.Terms...)
	case *Term:
		children = appendNodes(children, n.Simple)
	case *Restriction:
		children = appendNodes[Node](children, n.Comparable, n.Arg)
	case *Composite:
		children = appendNodes(children, n.Expression)
	case *Member:
		children = appendNodes(children, n.Value)
		children = appendNodes(children, n.Fields...)
	case *Function:
		children = appendNodes(children, n.Args...)
	}

	return children
}

func appendNodes[T Node](children []Node, nodes ...T) []Node {
	for _, node := range nodes {
		if !isNilNode(node) {
			children = append(children, node)
		}
	}

	return children
}

// isNilNode reports a nil interface or a nil pointer to one of the node types, e.g. the absent
// arg of a global restriction.
func isNilNode(node Node) bool {
	switch n := node.(type) {
	case nil:
		return true
	case *Expression:
		return n == nil
	case *Composite:
		return n == nil
	case *Filter:
		return n == nil
	}

	return false
}
