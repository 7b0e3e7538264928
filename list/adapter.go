// File: list/adapter.go
// Author: momentics <momentics@gmail.com>
//
// Behavioral adapter: stack, queue or priority dispatch over one list.

package list

import "github.com/momentics/hioload-containers/api"

// Ensure compile-time interface compliance.
var _ api.Adapter[any] = (*Adapter[any])(nil)

// AdapterKind selects the access discipline bound to a list at creation.
type AdapterKind int

const (
	// Default behaves exactly as Stack.
	Default AdapterKind = iota
	// Queue is first-in first-out: push at the tail, pop at the head.
	Queue
	// Stack is last-in first-out: push and pop at the tail.
	Stack
	// PriorityList keeps ascending comparator order: push via AddFind,
	// pop the lowest element at the head.
	PriorityList
)

// Adapter redirects the generic access roles to the list's end and find
// primitives. It is a convenience dispatch bound once at list creation
// and adds no semantics beyond the primitives it names.
type Adapter[T any] struct {
	list *List[T]
	kind AdapterKind
}

// Kind returns the discipline bound at creation.
func (a *Adapter[T]) Kind() AdapterKind {
	return a.kind
}

// List returns the underlying list.
func (a *Adapter[T]) List() *List[T] {
	return a.list
}

// Push inserts an element: AddFind for PriorityList, AddLast otherwise.
func (a *Adapter[T]) Push(data T) error {
	if a.kind == PriorityList {
		return a.list.AddFind(data)
	}
	return a.list.AddLast(data)
}

// Pop reads and removes the next element.
func (a *Adapter[T]) Pop() (T, error) {
	switch a.kind {
	case Queue, PriorityList:
		return a.list.GetFirst()
	default:
		return a.list.GetLast()
	}
}

// TopNext reads the next element without removing it.
func (a *Adapter[T]) TopNext() (T, error) {
	switch a.kind {
	case Queue, PriorityList:
		return a.list.ReadFirst()
	default:
		return a.list.ReadLast()
	}
}

// Back reads the element at the opposite end.
func (a *Adapter[T]) Back() (T, error) {
	switch a.kind {
	case Queue, PriorityList:
		return a.list.ReadLast()
	default:
		return a.list.ReadFirst()
	}
}

// Swap replaces the next element's value.
func (a *Adapter[T]) Swap(newData T) error {
	switch a.kind {
	case Queue, PriorityList:
		return a.list.EditFirst(newData)
	default:
		return a.list.EditLast(newData)
	}
}
