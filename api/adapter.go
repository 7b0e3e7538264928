// Package api
// Author: momentics@gmail.com
//
// Behavioral adapter contract over an ordered sequence.

package api

// Adapter redirects the generic access roles to the end primitives of one
// sequence, according to the access discipline bound at creation
// (stack, queue or ascending priority order).
type Adapter[T any] interface {
	// Push inserts an element according to the bound discipline.
	Push(data T) error
	// Pop reads and removes the next element.
	Pop() (T, error)
	// TopNext reads the next element without removing it.
	TopNext() (T, error)
	// Back reads the element at the opposite end.
	Back() (T, error)
	// Swap replaces the next element's value.
	Swap(newData T) error
}
