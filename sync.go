package genring

import "sync"

// SyncBuffer is a [Buffer] guarded by a reader/writer mutex, for buffers
// shared between goroutines. Generational invariants only hold without
// concurrent writers, so all mutation goes through the write lock; lookups
// and accessors share the read lock.
//
// Ref and the lazy iterators are deliberately not exposed: both would leak
// unguarded access to slot memory. Values returns a copied snapshot instead.
type SyncBuffer[Item any] struct {
	mu  sync.RWMutex
	buf *Buffer[Item]
}

// NewSync returns a mutex-guarded buffer with the given fixed capacity.
//
// Returns [ErrInvalidCapacity] when capacity < 1.
func NewSync[Item any](capacity int, options ...Option[Item]) (*SyncBuffer[Item], error) {
	buf, err := New(capacity, options...)
	if err != nil {
		return nil, err
	}
	return &SyncBuffer[Item]{buf: buf}, nil
}

func (b *SyncBuffer[Item]) Push(item Item) Handle {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Push(item)
}

func (b *SyncBuffer[Item]) PushEvict(item Item) (Handle, Item, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.PushEvict(item)
}

func (b *SyncBuffer[Item]) Get(h Handle) (Item, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.buf.Get(h)
}

func (b *SyncBuffer[Item]) IsValid(h Handle) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.buf.IsValid(h)
}

func (b *SyncBuffer[Item]) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.buf.Len()
}

func (b *SyncBuffer[Item]) Cap() int {
	// Capacity is immutable, no lock needed.
	return b.buf.Cap()
}

func (b *SyncBuffer[Item]) Empty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.buf.Empty()
}

func (b *SyncBuffer[Item]) Full() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.buf.Full()
}

func (b *SyncBuffer[Item]) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.Reset()
}

// Values returns a snapshot of all stored values, oldest to newest, copied
// under the read lock.
func (b *SyncBuffer[Item]) Values() []Item {
	b.mu.RLock()
	defer b.mu.RUnlock()

	items := make([]Item, 0, b.buf.Len())
	for item := range b.buf.Values() {
		items = append(items, item)
	}
	return items
}
