package list

// Node is an element of a list.
type Node struct {
	Value int
	next  *Node
}

// Next returns the node following n in its list, or nil if n is the last node.
func (n *Node) Next() *Node { return n.next }
