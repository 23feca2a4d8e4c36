package engine

import (
	"errors"
	"fmt"
)

// ErrRegionExhausted is returned by a Region that cannot satisfy an
// allocation request.
var ErrRegionExhausted = errors.New("engine: allocation region exhausted")

// Region is a distinguished memory pool the translation buffer can be
// acquired from. On the original target this distinguishes the external
// RAM bank from internal RAM; on a host it is an injection point for
// budgeted or instrumented allocators.
type Region interface {
	// Name identifies the region in diagnostics.
	Name() string

	// Alloc returns a zeroed buffer of the given size, or an error when
	// the region cannot provide one. Alloc never blocks.
	Alloc(size int) ([]byte, error)

	// Free returns a buffer previously obtained from Alloc.
	Free(buf []byte)
}

// HeapRegion allocates from the Go heap and never fails.
type HeapRegion struct {
	name string
}

// NewHeapRegion returns a heap-backed region with the given name.
func NewHeapRegion(name string) *HeapRegion {
	return &HeapRegion{name: name}
}

func (r *HeapRegion) Name() string { return r.name }

func (r *HeapRegion) Alloc(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func (r *HeapRegion) Free(buf []byte) {}

// PoolRegion models a fixed-capacity memory bank: allocations draw from a
// byte budget and fail once it is exhausted. Not safe for concurrent use;
// like the Engine it assumes a single owner.
type PoolRegion struct {
	name   string
	budget int
	used   int
}

// NewPoolRegion returns a region with a fixed byte budget.
func NewPoolRegion(name string, budget int) *PoolRegion {
	return &PoolRegion{name: name, budget: budget}
}

func (r *PoolRegion) Name() string { return r.name }

func (r *PoolRegion) Alloc(size int) ([]byte, error) {
	if r.used+size > r.budget {
		return nil, fmt.Errorf("%w: %s (%d of %d bytes in use, requested %d)",
			ErrRegionExhausted, r.name, r.used, r.budget, size)
	}
	r.used += size
	return make([]byte, size), nil
}

func (r *PoolRegion) Free(buf []byte) {
	r.used -= len(buf)
	if r.used < 0 {
		r.used = 0
	}
}

// Used reports the bytes currently drawn from the budget.
func (r *PoolRegion) Used() int { return r.used }
