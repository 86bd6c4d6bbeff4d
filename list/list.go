// Package list contains the implementation of a singly linked list of
// integers.
//
// A List is a handle on the first node of a chain of nodes, each node holding
// one value and a link to its successor. The list does not cache its length nor
// a reference to its last node: the head is the only state, which keeps every
// relinking operation simple to reason about at the cost of O(n) access to the
// tail.
//
// Lists can be constructed by simple declaration since their zero-value
// represents an empty list:
//
//	l := list.List{}
//	l.Push(3)
//	l.Push(2)
//	l.Enqueue(4)
//
//	for n := l.Front(); n != nil; n = n.Next() {
//		fmt.Println(n.Value)
//	}
//
// Operations that may change which node is at the head of the list are methods
// on *List, so the handle held by the caller always observes the result.
//
// Lists are not safe to use concurrently from multiple goroutines.
package list

// List values are handles on a chain of nodes.
//
// Each node is exclusively owned by its predecessor, and the head node by the
// list. Nodes must never be shared between two lists.
//
// The zero-value is a valid and empty list.
type List struct {
	head *Node
}

// Front returns the node at the front of the list, or nil if the list is
// empty.
//
// Front can be used to iterate through the list:
//
//	for n := list.Front(); n != nil; n = n.Next() {
//		...
//	}
func (list *List) Front() *Node { return list.head }

// Empty returns true if the list contains no nodes.
func (list *List) Empty() bool { return list.head == nil }

func (list *List) pushFront(node *Node) {
	node.next = list.head
	list.head = node
}

func (list *List) removeFront() *Node {
	node := list.head
	list.head = node.next
	node.next = nil
	return node
}
