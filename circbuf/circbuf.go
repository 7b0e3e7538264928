// File: circbuf/circbuf.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity circular buffer for element streaming.
// Single producer/single consumer from one control-flow context;
// callers needing concurrent access must serialize externally.

package circbuf

import (
	"math"

	"github.com/momentics/hioload-containers/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[byte] = (*Buffer[byte])(nil)

// Buffer is a fixed-capacity circular store of T.
//
// Cursors are element offsets into one backing slice allocated at
// creation and never resized. When both cursors coincide the buffer is
// either empty or full; the full flag disambiguates.
type Buffer[T any] struct {
	buff   []T
	size   uint32 // capacity in elements, fixed at creation
	rd     uint32 // read cursor, element offset in [0, size)
	wr     uint32 // write cursor, element offset in [0, size)
	full   bool
	closed bool
}

// New allocates an empty buffer holding nbElements elements of T.
// nbElements must be non-zero and small enough that every derived
// offset stays representable; otherwise ErrInvalidArgument.
func New[T any](nbElements uint32) (*Buffer[T], error) {
	if nbElements == 0 || nbElements > math.MaxInt32 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "invalid buffer capacity").
			WithContext("nbElements", nbElements)
	}
	return &Buffer[T]{
		buff: make([]T, nbElements),
		size: nbElements,
	}, nil
}

// unread returns the number of unread elements, computed from the
// cursor positions and the full flag.
func (b *Buffer[T]) unread() uint32 {
	if b.full {
		return b.size
	}
	if b.wr < b.rd {
		return b.size - b.rd + b.wr
	}
	return b.wr - b.rd
}

// Size returns the number of unread elements currently stored.
// A closed buffer reports 0; the api.Ring contract leaves Size no
// error channel, so callers distinguish closed via Write/Read.
func (b *Buffer[T]) Size() uint32 {
	if b == nil || b.closed {
		return 0
	}
	return b.unread()
}

// Cap returns the fixed element capacity.
func (b *Buffer[T]) Cap() uint32 {
	if b == nil {
		return 0
	}
	return b.size
}

// Write copies all of data starting at the write cursor, splitting the
// copy across the wrap boundary when needed. It fails without mutating
// state if the buffer is full or len(data) exceeds free capacity;
// zero-length writes are successful no-ops even on a full buffer.
// The full flag is set when the write cursor lands on the read cursor.
func (b *Buffer[T]) Write(data []T) error {
	if b == nil || b.closed {
		return api.ErrClosed
	}
	n := uint32(len(data))
	if n == 0 {
		return nil
	}
	if b.full {
		return api.ErrResourceExhausted
	}
	if n > b.size-b.unread() {
		return api.ErrResourceExhausted
	}

	toEnd := b.size - b.wr
	if n > toEnd {
		copy(b.buff[b.wr:], data[:toEnd])
		copy(b.buff, data[toEnd:])
		b.wr = n - toEnd
	} else {
		copy(b.buff[b.wr:], data)
		b.wr += n
		if b.wr == b.size {
			b.wr = 0
		}
	}

	if b.wr == b.rd {
		b.full = true
	}
	return nil
}

// Read copies the oldest unread elements into data, wrapping at the
// store boundary exactly as Write does. It fails without mutating state
// if len(data) exceeds unread elements. A successful non-empty read
// always clears the full flag.
func (b *Buffer[T]) Read(data []T) error {
	if b == nil || b.closed {
		return api.ErrClosed
	}
	n := uint32(len(data))
	if n > b.unread() {
		return api.ErrResourceExhausted
	}
	if n == 0 {
		return nil
	}

	toEnd := b.size - b.rd
	if n > toEnd {
		copy(data[:toEnd], b.buff[b.rd:])
		copy(data[toEnd:], b.buff[:n-toEnd])
		b.rd = n - toEnd
	} else {
		copy(data, b.buff[b.rd:b.rd+n])
		b.rd += n
		if b.rd == b.size {
			b.rd = 0
		}
	}

	b.full = false
	return nil
}

// Close releases the backing store. Operations on a closed buffer,
// including a second Close, fail with ErrClosed.
func (b *Buffer[T]) Close() error {
	if b == nil || b.closed {
		return api.ErrClosed
	}
	b.closed = true
	b.buff = nil
	return nil
}
