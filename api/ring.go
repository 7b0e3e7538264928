// Package api
// Author: momentics@gmail.com
//
// Fixed-capacity circular store for single-threaded producer/consumer use.

package api

// Ring is a fixed-capacity circular store contract.
//
// Implementations own one backing allocation of Cap elements, assume a
// single control-flow context, and leave state untouched on every failed
// operation.
type Ring[T any] interface {
	// Write copies all of data in, wrapping at the store boundary.
	// Fails with ErrResourceExhausted if free capacity is short.
	Write(data []T) error
	// Read fills data with the oldest unread elements, wrapping exactly
	// as Write does. Fails with ErrResourceExhausted if unread data is short.
	Read(data []T) error
	// Size returns the number of unread elements.
	Size() uint32
	// Cap returns the fixed element capacity.
	Cap() uint32
}
