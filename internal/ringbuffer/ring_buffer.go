package ringbuffer

// Ring is a fixed-capacity buffer that evicts the oldest item on overflow.
type Ring[T any] struct {
	buf  []T
	next int
	size int
}

// New creates a Ring with the given capacity.
// A default capacity of 1 is used if the given value is zero.
func New[T any](capacity uint) *Ring[T] {
	return &Ring[T]{
		buf: make([]T, max(1, capacity)),
	}
}

// Len returns the number of items currently held.
func (r *Ring[T]) Len() int {
	return r.size
}

// Push adds the item, evicting the oldest one if the ring is full.
func (r *Ring[T]) Push(item T) {
	r.buf[r.next] = item
	r.next = (r.next + 1) % cap(r.buf)
	if r.size < cap(r.buf) {
		r.size++
	}
}

// Snapshot returns the held items newest-first.
func (r *Ring[T]) Snapshot() []T {
	out := make([]T, 0, r.size)
	for i := 1; i <= r.size; i++ {
		out = append(out, r.buf[(r.next-i+cap(r.buf))%cap(r.buf)])
	}
	return out
}
