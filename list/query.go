package list

import (
	"io"
	"iter"
	"strconv"
)

// EmptyMarker is the text used by String and Fprint to represent an empty
// list.
const EmptyMarker = "Empty list"

// Len returns the number of nodes in the list, which is zero for an empty
// list.
//
// Complexity: O(n)
func (list *List) Len() int {
	n := 0
	for node := list.head; node != nil; node = node.next {
		n++
	}
	return n
}

// Count returns the number of nodes holding v.
//
// Unlike Len, Count considers an empty list to be an error: it returns -1 and
// ErrEmpty, which lets programs tell "no match" apart from "nothing to search".
//
// Complexity: O(n)
func (list *List) Count(v int) (int, error) {
	if list.head == nil {
		return -1, ErrEmpty
	}
	n := 0
	for node := list.head; node != nil; node = node.next {
		if node.Value == v {
			n++
		}
	}
	return n, nil
}

// All returns an iterator over the values of the list, from front to back.
//
// The list must not be modified during the iteration.
func (list *List) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for node := list.head; node != nil; node = node.next {
			if !yield(node.Value) {
				return
			}
		}
	}
}

// Values returns the values of the list in a newly allocated slice, from
// front to back.
func (list *List) Values() []int {
	values := []int{}
	for v := range list.All() {
		values = append(values, v)
	}
	return values
}

// String returns the values of the list each prefixed by a hyphen, for
// example "-5-3-8-1", or EmptyMarker if the list is empty.
func (list *List) String() string {
	return string(list.appendText(nil))
}

// Fprint writes the representation returned by String to w, followed by a
// newline.
func (list *List) Fprint(w io.Writer) error {
	_, err := w.Write(append(list.appendText(nil), '\n'))
	return err
}

func (list *List) appendText(b []byte) []byte {
	if list.head == nil {
		return append(b, EmptyMarker...)
	}
	for node := list.head; node != nil; node = node.next {
		b = append(b, '-')
		b = strconv.AppendInt(b, int64(node.Value), 10)
	}
	return b
}
