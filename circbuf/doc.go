// Package circbuf implements a fixed-capacity circular buffer of
// same-sized elements with explicit full/empty disambiguation.
//
// The buffer owns one contiguous backing store allocated at creation.
// Writes and reads are element-granular bulk copies that wrap at the
// store boundary; every failed operation leaves the buffer untouched.
// Intended for single producer/single consumer streaming from one
// control-flow context, such as buffering raw I/O streams ahead of a
// consumer.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package circbuf
