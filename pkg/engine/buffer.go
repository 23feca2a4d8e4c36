package engine

// InitBuffer acquires the translation buffer if it is not already held.
// When the catalog prefers the external region, that region is tried
// first and the fallback region on failure; otherwise only the fallback
// region is used. Acquisition failure in both regions is non-fatal: the
// buffer stays unallocated and Translate degrades to echoing keys.
//
// Calling InitBuffer while the buffer is allocated is a no-op.
func (e *Engine) InitBuffer() {
	if e.buf != nil {
		return
	}

	size := e.cat.BufferSize()

	if e.cat.PreferExternal() {
		if buf, err := e.preferred.Alloc(size); err == nil {
			e.buf, e.bufRegion = buf, e.preferred
			return
		}
	}
	if buf, err := e.fallback.Alloc(size); err == nil {
		e.buf, e.bufRegion = buf, e.fallback
	}
}

// CleanupBuffer releases the translation buffer back to the region that
// provided it. Safe to call when the buffer was never acquired; the next
// Translate or InitBuffer re-acquires.
func (e *Engine) CleanupBuffer() {
	if e.buf == nil {
		return
	}
	e.bufRegion.Free(e.buf)
	e.buf, e.bufRegion = nil, nil
}

// BufferAllocated reports whether the translation buffer is currently held.
func (e *Engine) BufferAllocated() bool {
	return e.buf != nil
}

// BufferRegion returns the name of the region holding the buffer, or ""
// while unallocated.
func (e *Engine) BufferRegion() string {
	if e.bufRegion == nil {
		return ""
	}
	return e.bufRegion.Name()
}
