// Package list implements a doubly-linked sequence of owned nodes with
// index-based, end-based and comparator-based access, live iterators,
// and a behavioral adapter selecting stack, queue or ascending priority
// discipline at creation time.
//
// The list owns its node chain but never the element values inside;
// those stay the caller's responsibility. Every operation is
// all-or-nothing: on any failure the structure is left exactly as it
// was. Single-threaded by contract — callers needing concurrent access
// serialize externally, one mutex per list.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package list
