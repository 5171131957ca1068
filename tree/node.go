package tree

// node is one vertex of a fitted tree: either a decision on a feature with
// one child per observed value, or a leaf carrying a predicted label.
// Decision nodes also retain the majority label of their training subset,
// which serves as the prediction when classification meets a feature value
// never observed on that branch.
type node struct {
	// Decision node fields. children is nil on leaves.
	feature  string
	children map[string]*node
	majority string

	// Leaf fields.
	label string

	// Number of training examples that reached this node.
	samples int
}

func (n *node) isLeaf() bool {
	return n.children == nil
}

// depth returns the number of edges on the longest root-to-leaf path.
func (n *node) depth() int {
	if n.isLeaf() {
		return 0
	}
	max := 0
	for _, child := range n.children {
		if d := child.depth(); d > max {
			max = d
		}
	}
	return max + 1
}

// countLeaves returns the number of leaf nodes in the subtree.
func (n *node) countLeaves() int {
	if n.isLeaf() {
		return 1
	}
	total := 0
	for _, child := range n.children {
		total += child.countLeaves()
	}
	return total
}

// countInternal returns the number of decision nodes in the subtree.
func (n *node) countInternal() int {
	if n.isLeaf() {
		return 0
	}
	total := 1
	for _, child := range n.children {
		total += child.countInternal()
	}
	return total
}
