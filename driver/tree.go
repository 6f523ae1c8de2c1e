package driver

import (
	"fmt"
	"io"
)

// Node is a concrete-syntax-tree node. Terminal nodes carry the source
// lexeme in Value and have no children; non-terminal nodes carry their
// reduction's children in left-to-right grammar order and an empty Value.
type Node struct {
	Symbol   string
	Value    string
	Children []*Node
}

// Leaves returns the terminal nodes of the subtree in left-to-right order.
// An in-order walk of an accepted tree's leaves reproduces the token
// sequence the parser consumed (minus the end-of-input sentinel).
// ε-reductions produce childless non-terminal nodes; those carry no lexeme
// and are not leaves in the token sense.
func (n *Node) Leaves() []*Node {
	if n.Value != "" {
		return []*Node{n}
	}
	var leaves []*Node
	for _, child := range n.Children {
		leaves = append(leaves, child.Leaves()...)
	}
	return leaves
}

func PrintTree(w io.Writer, node *Node) {
	printTree(w, node, "", "")
}

func printTree(w io.Writer, node *Node, ruledLine string, childRuledLinePrefix string) {
	if node == nil {
		return
	}

	if node.Value != "" {
		fmt.Fprintf(w, "%v%v %#v\n", ruledLine, node.Symbol, node.Value)
	} else {
		fmt.Fprintf(w, "%v%v\n", ruledLine, node.Symbol)
	}

	num := len(node.Children)
	for i, child := range node.Children {
		var line string
		if num > 1 && i < num-1 {
			line = "├─ "
		} else {
			line = "└─ "
		}

		var prefix string
		if i >= num-1 {
			prefix = "   "
		} else {
			prefix = "│  "
		}

		printTree(w, child, childRuledLinePrefix+line, childRuledLinePrefix+prefix)
	}
}
