// File: list/iterator.go
// Author: momentics <momentics@gmail.com>
//
// Mutation-aware external cursor over a list.

package list

import "github.com/momentics/hioload-containers/api"

// Iterator is an external cursor over a list's nodes.
//
// An iterator is either positioned on a node or exhausted. It becomes
// exhausted when opened on an empty list or when Get removes the only
// remaining node; Find is the only way back to a positioned state.
// Any number of iterators may be open on one list at a time, and the
// list refuses Close while any remain open.
type Iterator[T any] struct {
	list   *List[T]
	elem   *node[T]
	closed bool
}

// NewIterator opens an iterator positioned at the head (atHead true)
// or at the tail, exhausted when the list is empty.
func (l *List[T]) NewIterator(atHead bool) (*Iterator[T], error) {
	if l == nil || l.closed {
		return nil, api.ErrClosed
	}
	it := &Iterator[T]{list: l}
	if atHead {
		it.elem = l.first
	} else {
		it.elem = l.last
	}
	l.nbIterators++
	return it, nil
}

// Close releases the iterator and decrements the list's live count.
// The node the iterator referenced is untouched.
func (it *Iterator[T]) Close() error {
	if it == nil || it.closed {
		return api.ErrClosed
	}
	it.closed = true
	it.list.nbIterators--
	return nil
}

// Move steps n links forward (positive n) or backward (negative n).
// The move is all-or-nothing: if it would step off either end before
// completing, it fails and the position is unchanged. Moving an
// exhausted iterator always fails.
func (it *Iterator[T]) Move(n int) error {
	if it == nil || it.closed {
		return api.ErrClosed
	}
	elem := it.elem
	steps := n
	if steps < 0 {
		steps = -steps
	}
	for ; steps > 0 && elem != nil; steps-- {
		if n > 0 {
			elem = elem.next
		} else {
			elem = elem.prev
		}
	}
	if elem == nil {
		return api.ErrNotFound
	}
	it.elem = elem
	return nil
}

// Find repositions to the first element comparator-equal to cmpData,
// scanning from the head regardless of the current position. On a miss
// the position is unchanged.
func (it *Iterator[T]) Find(cmpData T) error {
	if it == nil || it.closed {
		return api.ErrClosed
	}
	elem := it.list.findNode(cmpData)
	if elem == nil {
		return api.ErrNotFound
	}
	it.elem = elem
	return nil
}

// Read returns the element at the current position.
func (it *Iterator[T]) Read() (T, error) {
	var zero T
	if it == nil || it.closed {
		return zero, api.ErrClosed
	}
	if it.elem == nil {
		return zero, api.ErrNotFound
	}
	return it.elem.data, nil
}

// Edit replaces the element at the current position.
func (it *Iterator[T]) Edit(newData T) error {
	if it == nil || it.closed {
		return api.ErrClosed
	}
	if it.elem == nil {
		return api.ErrNotFound
	}
	it.elem.data = newData
	return nil
}

// Get reads and removes the current node, then repositions to the
// following node — or to the preceding one when the removed node was
// the tail, so removal there degrades to the new tail instead of
// exhausting the iterator. It exhausts only when the removed node was
// the last one in the list.
func (it *Iterator[T]) Get() (T, error) {
	var zero T
	if it == nil || it.closed {
		return zero, api.ErrClosed
	}
	if it.elem == nil {
		return zero, api.ErrNotFound
	}
	elem := it.elem
	if elem == it.list.last {
		it.elem = elem.prev
	} else {
		it.elem = elem.next
	}
	return it.list.unlink(elem), nil
}

// Insert places data adjacent to the current position without moving
// it: after the current node when after is true, before it otherwise.
// Inserting adjacent to the current end, or through an exhausted
// iterator, degenerates to AddLast or AddFirst.
func (it *Iterator[T]) Insert(data T, after bool) error {
	if it == nil || it.closed {
		return api.ErrClosed
	}
	if it.elem == nil {
		if after {
			return it.list.AddLast(data)
		}
		return it.list.AddFirst(data)
	}
	if after {
		if it.elem == it.list.last {
			return it.list.AddLast(data)
		}
		it.list.insertBetween(it.elem, it.elem.next, data)
	} else {
		if it.elem == it.list.first {
			return it.list.AddFirst(data)
		}
		it.list.insertBetween(it.elem.prev, it.elem, data)
	}
	return nil
}
