// Package compare contains comparison functions used to order list values.
package compare

import "cmp"

// Function is a comparison function for ordered types.
func Function[T cmp.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// Reverse returns a comparison function which orders values in the opposite
// direction of f.
//
// Values that f considers equal are still equal, so a stable sort using the
// returned function keeps them in their original relative order.
func Reverse[T any](f func(T, T) int) func(T, T) int {
	return func(a, b T) int { return f(b, a) }
}
