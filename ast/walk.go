package ast

// ForEachChild calls fn for every direct child of n in field order, list
// elements included. Original is not a child. Iteration stops as soon as fn
// returns false, and ForEachChild then returns false.
func ForEachChild(n *Node, fn func(*Node) bool) bool {
	if n == nil {
		return true
	}

	for _, f := range n.fields {
		switch v := f.value.(type) {
		case *Node:
			if v != nil && !fn(v) {
				return false
			}
		case []*Node:
			for _, c := range v {
				if c != nil && !fn(c) {
					return false
				}
			}
		}
	}

	return true
}

// Walk traverses the tree rooted at n in pre-order. Children of a node are
// skipped when fn returns false for it.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}

	ForEachChild(n, func(c *Node) bool {
		Walk(c, fn)
		return true
	})
}

// Count returns the number of nodes of the given kinds in the tree rooted at
// n. With no kinds it counts every node.
func Count(n *Node, kinds ...Kind) int {
	var count int
	Walk(n, func(c *Node) bool {
		if len(kinds) == 0 {
			count++
			return true
		}

		for _, k := range kinds {
			if c.Kind == k {
				count++
				break
			}
		}
		return true
	})
	return count
}
