package particles

import (
	"errors"
	"fmt"
)

// ErrBufferFull is returned by Buffer.Allocate when every slot is occupied.
// A full buffer is expected backpressure during steady-state emission, not a
// fault: emitters drop excess spawns silently and never surface this error
// from Tick.
var ErrBufferFull = errors.New("sparks: particle buffer full")

// ErrInvalidConfiguration is the sentinel wrapped by all configuration-time
// validation failures (zero capacity, inverted ranges, negative rates).
// It is only ever produced at construction or config-load time; ticking a
// successfully constructed emitter never reports it.
var ErrInvalidConfiguration = errors.New("sparks: invalid configuration")

// Buffer is a fixed-capacity pool of particle slots. Live particles are kept
// compacted at the front of one contiguous array; Release swaps the last
// live slot into the freed index, so both Allocate and Release are O(1) and
// iteration over live particles is a plain prefix scan.
//
// The swap-compaction scheme means slot indices are NOT stable across
// Release: callers must not cache an index across a tick. The live view
// handed to renderers is valid only for the duration of the current tick and
// must be re-fetched each frame.
//
// A Buffer never reallocates; a full buffer simply refuses new allocations.
type Buffer struct {
	slots []Particle
	count int
}

// NewBuffer creates a buffer with the given fixed capacity.
func NewBuffer(capacity int) (*Buffer, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: buffer capacity must be positive, got %d", ErrInvalidConfiguration, capacity)
	}
	return &Buffer{slots: make([]Particle, capacity)}, nil
}

// Allocate claims a free slot and returns its index, or ErrBufferFull when
// the buffer is at capacity. The slot's contents are reset to the zero
// particle; the caller initializes the record.
func (b *Buffer) Allocate() (int, error) {
	if b.count == len(b.slots) {
		return -1, ErrBufferFull
	}
	idx := b.count
	b.slots[idx] = Particle{}
	b.count++
	return idx, nil
}

// Release frees the slot at index i, swapping the last live slot into its
// place. Indices of other live particles may change as a result; see the
// type comment. Out-of-range indices are ignored.
func (b *Buffer) Release(i int) {
	if i < 0 || i >= b.count {
		return
	}
	b.count--
	if i != b.count {
		b.slots[i] = b.slots[b.count]
	}
}

// At returns the particle in slot i. The pointer is valid until the next
// Allocate or Release.
func (b *Buffer) At(i int) *Particle {
	return &b.slots[i]
}

// Len returns the number of occupied slots.
func (b *Buffer) Len() int {
	return b.count
}

// Cap returns the fixed capacity.
func (b *Buffer) Cap() int {
	return len(b.slots)
}

// ForEachLive visits exactly the occupied slots at call time, in slot order.
// The visitor may mutate particle state but must not allocate or release
// slots during iteration.
func (b *Buffer) ForEachLive(fn func(p *Particle)) {
	for i := 0; i < b.count; i++ {
		fn(&b.slots[i])
	}
}

// LiveView returns a view over the currently occupied slots. The view
// aliases buffer storage and is invalidated by the next Allocate or Release.
func (b *Buffer) LiveView() View {
	return View{live: b.slots[:b.count]}
}

// View is a window over the live particles of a buffer, handed to modifiers
// each tick and to renderers after the tick. Views alias buffer storage:
// they are valid only until the buffer next allocates or releases a slot,
// so hosts must re-fetch the view every frame rather than caching it.
type View struct {
	live []Particle
}

// Len returns the number of particles in the view.
func (v View) Len() int {
	return len(v.live)
}

// At returns the particle at position i in the view.
func (v View) At(i int) *Particle {
	return &v.live[i]
}

// Each calls fn for every particle in the view.
func (v View) Each(fn func(p *Particle)) {
	for i := range v.live {
		fn(&v.live[i])
	}
}
