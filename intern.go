package seisutil

// An Interner caches one canonical instance per distinct value, so that
// repeated equal values (station codes, channel names) can share a single
// allocation. It replaces a process-wide reuse store with an owned,
// lifetime-scoped object. Not safe for concurrent use.
type Interner[T comparable] struct {
	seen map[T]T
}

// NewInterner returns an empty Interner.
func NewInterner[T comparable]() *Interner[T] {
	return &Interner[T]{seen: make(map[T]T)}
}

// Intern returns the canonical instance of x, storing x as canonical on
// first sight.
func (in *Interner[T]) Intern(x T) T {
	if c, ok := in.seen[x]; ok {
		return c
	}
	in.seen[x] = x
	return x
}

// Len reports the number of distinct values cached.
func (in *Interner[T]) Len() int {
	return len(in.seen)
}
