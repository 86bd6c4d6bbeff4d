package list

import "github.com/sllist/sllist/compare"

// Sort sorts the list in ascending order.
func (list *List) Sort() {
	list.SortFunc(compare.Function[int])
}

// SortFunc sorts the list using cmp to order values. cmp must return a
// negative number when a < b, a positive number when a > b, and zero when the
// values are equal.
//
// The sort is a top-down merge sort which only relinks existing nodes. It is
// stable: nodes holding equal values remain in the same relative order.
//
// Complexity: O(n log n)
func (list *List) SortFunc(cmp func(a, b int) int) {
	list.head = mergeSort(list.head, cmp)
}

func mergeSort(head *Node, cmp func(int, int) int) *Node {
	if head == nil || head.next == nil {
		return head
	}
	left, right := split(head)
	return merge(mergeSort(left, cmp), mergeSort(right, cmp), cmp)
}

// split cuts the chain starting at head in two halves and returns the head of
// each. The left half receives the extra node when the length is odd.
//
// The midpoint is found by walking a hare two links at a time and a tortoise
// one link at a time; the tortoise sits on the last node of the left half when
// the hare runs off the end.
func split(head *Node) (left, right *Node) {
	tortoise, hare := head, head.next
	for hare != nil {
		if hare = hare.next; hare != nil {
			hare = hare.next
			tortoise = tortoise.next
		}
	}
	right = tortoise.next
	tortoise.next = nil
	return head, right
}

// merge links the nodes of two sorted chains into a single sorted chain.
// On ties, nodes of the left chain come first.
func merge(left, right *Node, cmp func(int, int) int) *Node {
	var head Node
	tail := &head

	for left != nil && right != nil {
		if cmp(left.Value, right.Value) <= 0 {
			tail.next, left = left, left.next
		} else {
			tail.next, right = right, right.next
		}
		tail = tail.next
	}

	if left != nil {
		tail.next = left
	} else {
		tail.next = right
	}
	return head.next
}
