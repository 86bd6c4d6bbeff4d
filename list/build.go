package list

// Order selects how New lays out the values it is given.
type Order int

const (
	// InputOrder builds a list whose values appear in the order they were
	// passed.
	InputOrder Order = iota
	// ReverseOrder builds a list by pushing every value at the front, so the
	// values appear in the reverse of the order they were passed.
	ReverseOrder
)

func (o Order) String() string {
	switch o {
	case InputOrder:
		return "input"
	case ReverseOrder:
		return "reverse"
	default:
		return "unknown"
	}
}

// New constructs a list holding values.
//
// Calling New with no values returns an empty list.
func New(order Order, values ...int) *List {
	if order == ReverseOrder {
		list := new(List)
		for _, v := range values {
			list.Push(v)
		}
		return list
	}
	// values may alias a slice the caller still holds.
	return FromSlice(append([]int(nil), values...))
}

// FromSlice constructs a list holding the values of the slice, so that the
// value at index 0 is at the front of the list.
//
// The list is built by pushing values at the front, from the last index of the
// slice to the first, which runs in O(n).
func FromSlice(values []int) *List {
	list := new(List)
	for i := len(values) - 1; i >= 0; i-- {
		list.Push(values[i])
	}
	return list
}
