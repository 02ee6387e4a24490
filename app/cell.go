package app

import "sync"

// Cell guards a single shared value behind a mutex with both blocking and
// non-blocking access. It is the one synchronization point between the
// initialization path, the resize callback, and the per-frame callback:
// all three run on schedulers the program does not control, so contended
// access is skipped rather than waited on.
type Cell[T any] struct {
	mu  sync.Mutex
	set bool
	val T
}

// NewCell creates an empty Cell. The value is installed later via Set,
// typically from an asynchronous initialization path.
//
// Returns:
//   - *Cell[T]: the empty cell
func NewCell[T any]() *Cell[T] {
	return &Cell[T]{}
}

// Initialized reports whether a value has been installed in the cell.
//
// Returns:
//   - bool: true once Set has been called
func (c *Cell[T]) Initialized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.set
}

// Set installs the shared value, blocking until the guard is available.
//
// Parameters:
//   - v: the value to install
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.val = v
	c.set = true
}

// Use runs fn with the shared value while holding the guard, blocking until
// the guard is available. Returns false without running fn if no value has
// been installed yet.
//
// Parameters:
//   - fn: function to run with exclusive access to the value
//
// Returns:
//   - bool: true if fn ran
func (c *Cell[T]) Use(fn func(T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.set {
		return false
	}
	fn(c.val)
	return true
}

// TryUse runs fn with the shared value only if the guard can be acquired
// without blocking. Returns false if the guard is held elsewhere or no value
// has been installed yet; the caller is expected to skip its work for this
// scheduler callback and wait for the next one.
//
// Parameters:
//   - fn: function to run with exclusive access to the value
//
// Returns:
//   - bool: true if fn ran
func (c *Cell[T]) TryUse(fn func(T)) bool {
	if !c.mu.TryLock() {
		return false
	}
	defer c.mu.Unlock()
	if !c.set {
		return false
	}
	fn(c.val)
	return true
}
