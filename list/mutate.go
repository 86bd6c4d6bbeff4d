package list

// Push inserts a node holding v at the front of the list.
//
// Complexity: O(1)
func (list *List) Push(v int) {
	list.pushFront(&Node{Value: v})
}

// Enqueue inserts a node holding v at the back of the list. On an empty list,
// Enqueue is equivalent to Push.
//
// Complexity: O(n)
func (list *List) Enqueue(v int) {
	node := &Node{Value: v}
	if list.head == nil {
		list.pushFront(node)
		return
	}
	list.last().next = node
}

// Pop removes the node at the front of the list and returns its value.
//
// The method returns ErrEmpty if the list was empty.
//
// Complexity: O(1)
func (list *List) Pop() (int, error) {
	if list.head == nil {
		return 0, ErrEmpty
	}
	return list.removeFront().Value, nil
}

// RemoveTail removes the node at the back of the list and returns its value.
//
// The method returns ErrEmpty if the list was empty.
//
// Complexity: O(n)
func (list *List) RemoveTail() (int, error) {
	if list.head == nil {
		return 0, ErrEmpty
	}
	if list.head.next == nil {
		return list.removeFront().Value, nil
	}
	prev := list.head
	for prev.next.next != nil {
		prev = prev.next
	}
	return list.removeAfter(prev).Value, nil
}

// DeleteMatch removes all nodes holding v and returns how many were removed.
// The list is left empty if all its nodes matched.
//
// The method returns ErrEmpty if the list was empty.
//
// Complexity: O(n)
func (list *List) DeleteMatch(v int) (int, error) {
	if list.head == nil {
		return 0, ErrEmpty
	}

	removed := 0
	for list.head != nil && list.head.Value == v {
		list.removeFront()
		removed++
	}

	// Only advance when the next node was kept, the one after a removed node
	// must be checked too.
	for node := list.head; node != nil && node.next != nil; {
		if node.next.Value == v {
			list.removeAfter(node)
			removed++
		} else {
			node = node.next
		}
	}
	return removed, nil
}

// DeleteDuplicates removes every node holding a value already seen closer to
// the front of the list, and returns how many were removed. The first
// occurrence of each value is kept in place.
//
// Complexity: O(n²)
func (list *List) DeleteDuplicates() int {
	removed := 0
	for outer := list.head; outer != nil; outer = outer.next {
		for inner := outer; inner.next != nil; {
			if inner.next.Value == outer.Value {
				list.removeAfter(inner)
				removed++
			} else {
				inner = inner.next
			}
		}
	}
	return removed
}

// Reverse reverses the order of nodes in the list.
//
// Complexity: O(n)
func (list *List) Reverse() {
	var prev *Node
	node := list.head
	for node != nil {
		next := node.next
		node.next = prev
		prev = node
		node = next
	}
	list.head = prev
}

// Destroy removes all nodes from the list, leaving it empty.
//
// Destroying an empty list returns ErrEmpty. The list is still empty after the
// call, the error only reports that there was nothing to release.
//
// Complexity: O(n)
func (list *List) Destroy() error {
	if list.head == nil {
		return ErrEmpty
	}
	// Unlink every node so that nodes still referenced by the program do not
	// keep the rest of the chain alive.
	for list.head != nil {
		list.removeFront()
	}
	return nil
}

func (list *List) last() *Node {
	node := list.head
	for node.next != nil {
		node = node.next
	}
	return node
}

func (list *List) removeAfter(prev *Node) *Node {
	node := prev.next
	prev.next = node.next
	node.next = nil
	return node
}
