//go:build windows

package window

import (
	"github.com/lxn/win"
)

// Style reads the window's current style bits as named flags.
func (h Handle) Style() StyleFlags {
	style := uint32(win.GetWindowLong(h.native(), win.GWL_STYLE))
	exStyle := uint32(win.GetWindowLong(h.native(), win.GWL_EXSTYLE))
	return decodeStyle(style, exStyle)
}

// SetStyle applies the named flags in a single batched edit.
func (h Handle) SetStyle(f StyleFlags) {
	style := uint32(win.GetWindowLong(h.native(), win.GWL_STYLE))
	exStyle := uint32(win.GetWindowLong(h.native(), win.GWL_EXSTYLE))
	newStyle, newExStyle := f.apply(style, exStyle)

	edit := h.EditStyle()
	edit.set, edit.clear = newStyle&^style, style&^newStyle
	edit.setEx, edit.clearEx = newExStyle&^exStyle, exStyle&^newExStyle
	edit.Apply()
}

// SetTransparentColor makes every pixel of the given 0xAARRGGBB color
// fully transparent at the compositing level. The window is switched to
// the layered, click-through style as a side effect.
func (h Handle) SetTransparentColor(argb uint32) {
	h.EditStyle().SetClickThrough(true).Apply()
	dc := win.GetDC(h.native())
	win.SetLayeredWindowAttributes(h.native(), win.COLORREF(colorKey(argb)), 0, win.LWA_COLORKEY)
	win.ReleaseDC(h.native(), dc)
}

// Apply pushes all queued changes to the OS as one update: both style
// masks first, then a single placement call that repaints the frame and
// honors any queued move or z-order band change.
func (e *StyleEdit) Apply() {
	hwnd := e.h.native()

	if e.set != 0 || e.clear != 0 {
		style := uint32(win.GetWindowLong(hwnd, win.GWL_STYLE))
		win.SetWindowLong(hwnd, win.GWL_STYLE, int32((style|e.set)&^e.clear))
	}
	if e.setEx != 0 || e.clearEx != 0 {
		exStyle := uint32(win.GetWindowLong(hwnd, win.GWL_EXSTYLE))
		win.SetWindowLong(hwnd, win.GWL_EXSTYLE, int32((exStyle|e.setEx)&^e.clearEx))
	}

	flags := uint32(win.SWP_FRAMECHANGED | win.SWP_NOACTIVATE)
	insertAfter := win.HWND_TOP
	if e.topmost == nil {
		flags |= win.SWP_NOZORDER
	} else if *e.topmost {
		insertAfter = win.HWND_TOPMOST
	} else {
		insertAfter = win.HWND_NOTOPMOST
	}

	x, y, w, hh := int32(0), int32(0), int32(0), int32(0)
	if e.bounds == nil {
		flags |= win.SWP_NOMOVE | win.SWP_NOSIZE
	} else {
		x, y = int32(e.bounds.X), int32(e.bounds.Y)
		w, hh = int32(e.bounds.Width), int32(e.bounds.Height)
	}

	win.SetWindowPos(hwnd, insertAfter, x, y, w, hh, flags)
}
