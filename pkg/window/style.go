package window

// Standard and extended style bits live in separate flag spaces on the
// OS side. They are mirrored here so the mask mapping stays portable
// and testable; named flags are the only public surface.
const (
	wsCaption       = 0x00C00000
	wsExTopmost     = 0x00000008
	wsExTransparent = 0x00000020
	wsExLayered     = 0x00080000
)

// StyleFlags is the decoded, named view of a window's style bits.
type StyleFlags struct {
	// Caption shows the title bar and frame.
	Caption bool
	// AlwaysOnTop keeps the window in the topmost z-order band.
	AlwaysOnTop bool
	// Layered enables per-pixel compositing effects such as color keys.
	Layered bool
	// ClickThrough lets input pass through the window.
	ClickThrough bool
}

// decodeStyle maps raw standard and extended style masks to named flags.
func decodeStyle(style, exStyle uint32) StyleFlags {
	return StyleFlags{
		Caption:      style&wsCaption == wsCaption,
		AlwaysOnTop:  exStyle&wsExTopmost != 0,
		Layered:      exStyle&wsExLayered != 0,
		ClickThrough: exStyle&wsExTransparent != 0,
	}
}

// apply folds the named flags into existing raw masks, leaving
// unrelated bits untouched.
func (f StyleFlags) apply(style, exStyle uint32) (uint32, uint32) {
	set := func(mask uint32, bits uint32, on bool) uint32 {
		if on {
			return mask | bits
		}
		return mask &^ bits
	}
	style = set(style, wsCaption, f.Caption)
	exStyle = set(exStyle, wsExTopmost, f.AlwaysOnTop)
	exStyle = set(exStyle, wsExLayered, f.Layered)
	exStyle = set(exStyle, wsExTransparent, f.ClickThrough)
	return style, exStyle
}

// colorKey converts a 0xAARRGGBB color to the 0x00BBGGRR order the
// layered-window color key expects.
func colorKey(argb uint32) uint32 {
	return (argb & 0xFF000000) | ((argb & 0xFF) << 16) | (argb & 0xFF00) | ((argb >> 16) & 0xFF)
}

// StyleEdit accumulates style-bit, placement, and z-order changes and
// applies them as one atomic update. Obtain one from Handle.EditStyle,
// queue changes, and finish with Apply; deferring Apply guarantees the
// edit lands on scope exit.
type StyleEdit struct {
	h       Handle
	set     uint32
	clear   uint32
	setEx   uint32
	clearEx uint32
	bounds  *Rect
	topmost *bool
}

// EditStyle starts a batched style edit for the window.
func (h Handle) EditStyle() *StyleEdit {
	return &StyleEdit{h: h}
}

func (e *StyleEdit) flag(bits uint32, on bool) {
	if on {
		e.set |= bits
		e.clear &^= bits
	} else {
		e.clear |= bits
		e.set &^= bits
	}
}

func (e *StyleEdit) flagEx(bits uint32, on bool) {
	if on {
		e.setEx |= bits
		e.clearEx &^= bits
	} else {
		e.clearEx |= bits
		e.setEx &^= bits
	}
}

// SetCaption toggles the title bar and frame.
func (e *StyleEdit) SetCaption(show bool) *StyleEdit {
	e.flag(wsCaption, show)
	return e
}

// SetAlwaysOnTop toggles the topmost style bit and queues the matching
// z-order move so the band change takes effect immediately.
func (e *StyleEdit) SetAlwaysOnTop(on bool) *StyleEdit {
	e.flagEx(wsExTopmost, on)
	e.topmost = &on
	return e
}

// SetClickThrough toggles input pass-through.
func (e *StyleEdit) SetClickThrough(on bool) *StyleEdit {
	e.flagEx(wsExLayered|wsExTransparent, on)
	return e
}

// Move queues a new outer position and size.
func (e *StyleEdit) Move(r Rect) *StyleEdit {
	e.bounds = &r
	return e
}
