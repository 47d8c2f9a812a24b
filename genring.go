// Package genring provides a fixed-capacity ring buffer that returns
// generational handles on insertion, so that callers can later check whether
// an item has been overwritten by wraparound since they got the handle.
//
// The staleness check is a plain integer comparison between the handle's
// generation snapshot and the slot's current generation. There is no
// reference counting and no liveness-tracking structure: the backing array is
// allocated once at construction and no further allocation happens for the
// buffer's lifetime.
//
// Buffers are not thread-safe. Use [SyncBuffer] when the buffer is shared
// between goroutines.
package genring

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCapacity = errors.New("capacity can't be < 1")
)

// Handle identifies a value stored by [Buffer.Push]: the slot it was written
// to and the slot's generation at the time of the write.
//
// A handle is a ticket, not a reference. It stays comparable and copyable
// after the value it names has been overwritten; it simply stops matching.
// The zero Handle is never valid for any buffer.
type Handle struct {
	index      int
	generation uint64
}

func (h Handle) String() string {
	return fmt.Sprintf("Handle{index: %d, generation: %d}", h.index, h.generation)
}

// slot pairs a stored value with its generation counter. The occupied flag
// distinguishes a never-written or reset slot from a live one, so that
// generations can keep growing across [Buffer.Reset].
type slot[Item any] struct {
	value      Item
	generation uint64
	occupied   bool
}

// Buffer is a fixed-capacity circular buffer with generational handles.
//
// Push never fails and never blocks: when the buffer is full it overwrites
// the oldest entry, bumping that slot's generation and thereby invalidating
// every handle previously issued for it.
type Buffer[Item any] struct {
	cfg   *config[Item]
	slots []slot[Item]
	next  int
	size  int
}

// New returns a buffer with the given fixed capacity. The capacity is
// immutable for the buffer's lifetime; the backing storage is allocated here
// and never again.
//
// Returns [ErrInvalidCapacity] when capacity < 1.
func New[Item any](capacity int, options ...Option[Item]) (*Buffer[Item], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Buffer[Item]{
		cfg:   newConfig(options...),
		slots: make([]slot[Item], capacity),
	}, nil
}

// Push stores item in the slot under the cursor, overwriting and discarding
// the slot's previous value if it had one, and advances the cursor. It
// returns a handle that is valid until that slot is written again.
func (b *Buffer[Item]) Push(item Item) Handle {
	h, evicted, ok := b.push(item)
	if ok && b.cfg.onEvict != nil {
		b.cfg.onEvict(evicted)
	}
	return h
}

// PushEvict is [Buffer.Push], but hands the displaced value back to the
// caller instead of discarding it. The boolean reports whether the written
// slot held a value. The eviction hook configured with [WithOnEvict] is not
// called: ownership of the displaced value moves to the caller.
func (b *Buffer[Item]) PushEvict(item Item) (Handle, Item, bool) {
	return b.push(item)
}

func (b *Buffer[Item]) push(item Item) (Handle, Item, bool) {
	s := &b.slots[b.next]
	evicted, wasOccupied := s.value, s.occupied

	s.generation++
	s.value = item
	s.occupied = true

	h := Handle{index: b.next, generation: s.generation}

	b.next++
	if b.next == len(b.slots) {
		b.next = 0
	}
	if b.size < len(b.slots) {
		b.size++
	}

	b.cfg.metrics.pushes.Inc()
	if wasOccupied {
		b.cfg.metrics.evictions.Inc()
	}
	b.cfg.metrics.occupancy.Set(float64(b.size))

	return h, evicted, wasOccupied
}

// Get returns the value the handle was issued for, or ok == false when the
// handle is stale, out of range, or from another buffer. Staleness is an
// expected outcome, not an error: every caller must handle the false branch.
func (b *Buffer[Item]) Get(h Handle) (item Item, ok bool) {
	s := b.lookup(h)
	if s == nil {
		return item, false
	}
	return s.value, true
}

// Ref returns a pointer to the value the handle was issued for, or nil when
// the handle no longer matches. The pointer aliases the slot: it must not be
// retained across pushes, and writing through it mutates the stored value in
// place without touching the generation.
func (b *Buffer[Item]) Ref(h Handle) *Item {
	s := b.lookup(h)
	if s == nil {
		return nil
	}
	return &s.value
}

// IsValid reports whether Get would succeed for the handle, for call sites
// that only need the boolean.
func (b *Buffer[Item]) IsValid(h Handle) bool {
	return b.lookup(h) != nil
}

// lookup is the single source of truth for handle validity: Get, Ref and
// IsValid all go through it. A handle matches when its index is in range, the
// slot holds a value, and the generation snapshot equals the slot's current
// generation.
func (b *Buffer[Item]) lookup(h Handle) *slot[Item] {
	if h.index < 0 || h.index >= len(b.slots) {
		b.cfg.metrics.lookupStale.Inc()
		return nil
	}
	s := &b.slots[h.index]
	if !s.occupied || s.generation != h.generation {
		b.cfg.metrics.lookupStale.Inc()
		return nil
	}
	b.cfg.metrics.lookupHits.Inc()
	return s
}

// Len returns the number of populated slots: the total number of pushes so
// far, saturating at capacity once the buffer has completed its first lap.
func (b *Buffer[Item]) Len() int {
	return b.size
}

// Cap returns the fixed construction-time capacity.
func (b *Buffer[Item]) Cap() int {
	return len(b.slots)
}

// Empty reports whether no slot is populated.
func (b *Buffer[Item]) Empty() bool {
	return b.size == 0
}

// Full reports whether every slot is populated, i.e. the next push will
// overwrite the oldest entry.
func (b *Buffer[Item]) Full() bool {
	return b.size == len(b.slots)
}

// Reset empties the buffer and rewinds the cursor. Stored values are dropped
// so they can be collected. Slot generations are kept, not rewound: every
// handle issued before the reset stays invalid forever, and handles issued
// after it never collide with old ones.
func (b *Buffer[Item]) Reset() {
	var zero Item
	for i := range b.slots {
		b.slots[i].value = zero
		b.slots[i].occupied = false
	}
	b.next = 0
	b.size = 0
	b.cfg.metrics.occupancy.Set(0)
}
