// File: list/list.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Doubly-linked list with end, index and comparator access families.
// Single-threaded by contract; callers serialize externally.

package list

import "github.com/momentics/hioload-containers/api"

// Comparator is a three-way ordering over element values:
// negative when a orders before b, zero when equal, positive otherwise.
type Comparator[T any] func(a, b T) int

// node is one element slot, owned exclusively by its list. Nodes are
// created on insert and unlinked on removal; the element value inside
// is handed back to the caller, never owned by the list.
type node[T any] struct {
	data T
	prev *node[T]
	next *node[T]
}

// List is a doubly-linked sequence of owned nodes.
//
// Create lists with New; the zero value is not usable. The default
// comparator matches by interface equality and requires the element's
// dynamic type to be comparable.
type List[T any] struct {
	first       *node[T]
	last        *node[T]
	nbElements  uint32
	comparator  Comparator[T]
	nbIterators uint32
	adapter     Adapter[T]
	closed      bool
}

// New creates an empty list bound to one adapter behavior.
// A nil comparator selects the identity comparator: zero on interface
// equality, positive otherwise. It defines no order, so AddFind under
// it appends.
func New[T any](cmp Comparator[T], kind AdapterKind) *List[T] {
	if cmp == nil {
		cmp = func(a, b T) int {
			if any(a) == any(b) {
				return 0
			}
			return 1
		}
	}
	l := &List[T]{comparator: cmp}
	l.adapter = Adapter[T]{list: l, kind: kind}
	return l
}

// Adapter returns the behavioral adapter bound at creation.
func (l *List[T]) Adapter() *Adapter[T] {
	return &l.adapter
}

// insertBetween links a new node holding data between prev and next,
// either of which may be nil at the corresponding list end.
func (l *List[T]) insertBetween(prev, next *node[T], data T) *node[T] {
	elem := &node[T]{data: data, prev: prev, next: next}
	if prev != nil {
		prev.next = elem
	} else {
		l.first = elem
	}
	if next != nil {
		next.prev = elem
	} else {
		l.last = elem
	}
	l.nbElements++
	return elem
}

// unlink removes elem from the chain and hands back its element.
// The node's links are cleared so stale iterators cannot walk off it.
func (l *List[T]) unlink(elem *node[T]) T {
	if elem.prev != nil {
		elem.prev.next = elem.next
	} else {
		l.first = elem.next
	}
	if elem.next != nil {
		elem.next.prev = elem.prev
	} else {
		l.last = elem.prev
	}
	elem.prev, elem.next = nil, nil
	l.nbElements--
	return elem.data
}

// nodeAt walks idx links forward from the head; nil when out of range.
func (l *List[T]) nodeAt(idx uint32) *node[T] {
	if idx >= l.nbElements {
		return nil
	}
	elem := l.first
	for ; idx > 0; idx-- {
		elem = elem.next
	}
	return elem
}

// findNode scans from the head for the first comparator-equal element.
func (l *List[T]) findNode(cmpData T) *node[T] {
	for elem := l.first; elem != nil; elem = elem.next {
		if l.comparator(elem.data, cmpData) == 0 {
			return elem
		}
	}
	return nil
}

// AddFirst inserts data at the head.
func (l *List[T]) AddFirst(data T) error {
	if l == nil || l.closed {
		return api.ErrClosed
	}
	l.insertBetween(nil, l.first, data)
	return nil
}

// AddLast inserts data at the tail.
func (l *List[T]) AddLast(data T) error {
	if l == nil || l.closed {
		return api.ErrClosed
	}
	l.insertBetween(l.last, nil, data)
	return nil
}

// EditFirst replaces the head element's value.
func (l *List[T]) EditFirst(newData T) error {
	if l == nil || l.closed {
		return api.ErrClosed
	}
	if l.first == nil {
		return api.ErrNotFound
	}
	l.first.data = newData
	return nil
}

// EditLast replaces the tail element's value.
func (l *List[T]) EditLast(newData T) error {
	if l == nil || l.closed {
		return api.ErrClosed
	}
	if l.last == nil {
		return api.ErrNotFound
	}
	l.last.data = newData
	return nil
}

// ReadFirst returns the head element without removing it.
func (l *List[T]) ReadFirst() (T, error) {
	var zero T
	if l == nil || l.closed {
		return zero, api.ErrClosed
	}
	if l.first == nil {
		return zero, api.ErrNotFound
	}
	return l.first.data, nil
}

// ReadLast returns the tail element without removing it.
func (l *List[T]) ReadLast() (T, error) {
	var zero T
	if l == nil || l.closed {
		return zero, api.ErrClosed
	}
	if l.last == nil {
		return zero, api.ErrNotFound
	}
	return l.last.data, nil
}

// GetFirst reads and removes the head element.
func (l *List[T]) GetFirst() (T, error) {
	var zero T
	if l == nil || l.closed {
		return zero, api.ErrClosed
	}
	if l.first == nil {
		return zero, api.ErrNotFound
	}
	return l.unlink(l.first), nil
}

// GetLast reads and removes the tail element.
func (l *List[T]) GetLast() (T, error) {
	var zero T
	if l == nil || l.closed {
		return zero, api.ErrClosed
	}
	if l.last == nil {
		return zero, api.ErrNotFound
	}
	return l.unlink(l.last), nil
}

// AddIdx inserts data so that it becomes the element at idx.
// idx 0 and idx equal to the current size degenerate to AddFirst and
// AddLast; anything past the end fails without mutation.
func (l *List[T]) AddIdx(data T, idx uint32) error {
	if l == nil || l.closed {
		return api.ErrClosed
	}
	if idx == 0 || l.nbElements == 0 {
		return l.AddFirst(data)
	}
	if idx == l.nbElements {
		return l.AddLast(data)
	}
	elem := l.nodeAt(idx)
	if elem == nil {
		return api.ErrNotFound
	}
	l.insertBetween(elem.prev, elem, data)
	return nil
}

// EditIdx replaces the value of the element at idx.
func (l *List[T]) EditIdx(newData T, idx uint32) error {
	if l == nil || l.closed {
		return api.ErrClosed
	}
	elem := l.nodeAt(idx)
	if elem == nil {
		return api.ErrNotFound
	}
	elem.data = newData
	return nil
}

// ReadIdx returns the element at idx without removing it.
func (l *List[T]) ReadIdx(idx uint32) (T, error) {
	var zero T
	if l == nil || l.closed {
		return zero, api.ErrClosed
	}
	elem := l.nodeAt(idx)
	if elem == nil {
		return zero, api.ErrNotFound
	}
	return elem.data, nil
}

// GetIdx reads and removes the element at idx.
func (l *List[T]) GetIdx(idx uint32) (T, error) {
	var zero T
	if l == nil || l.closed {
		return zero, api.ErrClosed
	}
	elem := l.nodeAt(idx)
	if elem == nil {
		return zero, api.ErrNotFound
	}
	return l.unlink(elem), nil
}

// AddFind inserts data in ascending comparator order: before the first
// strictly greater element, appending when there is none. Elements that
// compare equal keep insertion order, so equal priorities drain FIFO.
func (l *List[T]) AddFind(data T) error {
	if l == nil || l.closed {
		return api.ErrClosed
	}
	elem := l.first
	for elem != nil && l.comparator(data, elem.data) >= 0 {
		elem = elem.next
	}
	if elem == nil {
		return l.AddLast(data)
	}
	l.insertBetween(elem.prev, elem, data)
	return nil
}

// EditFind replaces the value of the first element comparator-equal to
// cmpData.
func (l *List[T]) EditFind(newData, cmpData T) error {
	if l == nil || l.closed {
		return api.ErrClosed
	}
	elem := l.findNode(cmpData)
	if elem == nil {
		return api.ErrNotFound
	}
	elem.data = newData
	return nil
}

// ReadFind returns the first element comparator-equal to cmpData.
func (l *List[T]) ReadFind(cmpData T) (T, error) {
	var zero T
	if l == nil || l.closed {
		return zero, api.ErrClosed
	}
	elem := l.findNode(cmpData)
	if elem == nil {
		return zero, api.ErrNotFound
	}
	return elem.data, nil
}

// GetFind reads and removes the first element comparator-equal to
// cmpData.
func (l *List[T]) GetFind(cmpData T) (T, error) {
	var zero T
	if l == nil || l.closed {
		return zero, api.ErrClosed
	}
	elem := l.findNode(cmpData)
	if elem == nil {
		return zero, api.ErrNotFound
	}
	return l.unlink(elem), nil
}

// GetSize returns the number of elements in the list.
func (l *List[T]) GetSize() (uint32, error) {
	if l == nil || l.closed {
		return 0, api.ErrClosed
	}
	return l.nbElements, nil
}

// Close drains every node and marks the list unusable. It refuses with
// ErrIteratorsOpen while any iterator opened by NewIterator has not
// been closed; element values are handed to the garbage collector.
func (l *List[T]) Close() error {
	if l == nil || l.closed {
		return api.ErrClosed
	}
	if l.nbIterators != 0 {
		return api.NewError(api.ErrCodeIteratorsOpen, "list has open iterators").
			WithContext("nbIterators", l.nbIterators)
	}
	for l.first != nil {
		l.unlink(l.first)
	}
	l.closed = true
	return nil
}
