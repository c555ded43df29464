// Package window provides discovery of and control over native
// top-level windows.
package window

// Handle is a non-owning reference to a native top-level window.
// It is a lookup key, not a lease: the underlying window may be
// destroyed between any two calls, so callers check Exists immediately
// before relying on a handle. Handles are copyable and compare by the
// raw reference value.
type Handle struct {
	hwnd uintptr
}

// FromHWND wraps an already-known native window reference.
func FromHWND(raw uintptr) Handle { return Handle{hwnd: raw} }

// HWND returns the raw native reference.
func (h Handle) HWND() uintptr { return h.hwnd }

// Equal reports whether both handles refer to the same native window.
func (h Handle) Equal(other Handle) bool { return h.hwnd == other.hwnd }

// IsZero reports whether the handle wraps no window at all.
func (h Handle) IsZero() bool { return h.hwnd == 0 }

// Rect is a placement rectangle in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}
