// Randomized invariant checks against a plain-slice model.
package circbuf

import (
	"bytes"
	"errors"
	"testing"

	"github.com/valyala/fastrand"

	"github.com/momentics/hioload-containers/api"
)

// TestBufferPropertyBased performs randomized write/read sequences and
// checks that the buffer behaves exactly like an unbounded FIFO slice
// truncated to the fixed capacity.
func TestBufferPropertyBased(t *testing.T) {
	var rng fastrand.RNG
	rng.Seed(42)

	const capacity = 32
	b, err := New[byte](capacity)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	var model []byte
	next := byte(0)
	for i := 0; i < 20000; i++ {
		n := rng.Uint32n(capacity + 2)
		if rng.Uint32n(2) == 0 {
			chunk := make([]byte, n)
			for j := range chunk {
				chunk[j] = next
				next++
			}
			err := b.Write(chunk)
			if uint32(len(model))+n <= capacity {
				if err != nil {
					t.Fatalf("op %d: write of %d with %d stored failed: %v", i, n, len(model), err)
				}
				model = append(model, chunk...)
			} else {
				if !errors.Is(err, api.ErrResourceExhausted) {
					t.Fatalf("op %d: overfull write of %d with %d stored: got %v", i, n, len(model), err)
				}
				next -= byte(n) // rejected writes must not consume the sequence
			}
		} else {
			out := make([]byte, n)
			err := b.Read(out)
			if n <= uint32(len(model)) {
				if err != nil {
					t.Fatalf("op %d: read of %d with %d stored failed: %v", i, n, len(model), err)
				}
				if !bytes.Equal(out, model[:n]) {
					t.Fatalf("op %d: read %v, want %v", i, out, model[:n])
				}
				model = model[n:]
			} else if !errors.Is(err, api.ErrResourceExhausted) {
				t.Fatalf("op %d: overdrawn read of %d with %d stored: got %v", i, n, len(model), err)
			}
		}
		if b.Size() != uint32(len(model)) {
			t.Fatalf("op %d: size=%d, model=%d", i, b.Size(), len(model))
		}
	}
}
