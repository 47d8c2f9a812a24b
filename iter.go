package genring

import "iter"

// All returns a sequence of every populated slot as a (handle, value) pair,
// oldest to newest. Every yielded handle is valid at yield time; pushing
// during iteration is not supported.
func (b *Buffer[Item]) All() iter.Seq2[Handle, Item] {
	return func(yield func(Handle, Item) bool) {
		for i := range b.size {
			idx := b.oldest(i)
			s := &b.slots[idx]
			if !yield(Handle{index: idx, generation: s.generation}, s.value) {
				return
			}
		}
	}
}

// Values returns a sequence of every stored value, oldest to newest.
func (b *Buffer[Item]) Values() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for i := range b.size {
			if !yield(b.slots[b.oldest(i)].value) {
				return
			}
		}
	}
}

// Handles returns a sequence of every currently valid handle, oldest to
// newest.
func (b *Buffer[Item]) Handles() iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		for i := range b.size {
			idx := b.oldest(i)
			if !yield(Handle{index: idx, generation: b.slots[idx].generation}) {
				return
			}
		}
	}
}

// oldest maps an age offset (0 = oldest populated slot) to a slot index.
// Before the first wraparound the oldest slot is 0; afterwards it is the
// cursor itself, since the cursor points at the next slot to overwrite.
func (b *Buffer[Item]) oldest(i int) int {
	if b.size < len(b.slots) {
		return i
	}
	return (b.next + i) % len(b.slots)
}
