package capture

import (
	"github.com/GriffinCanCode/winlens/internal/errors"
	"github.com/GriffinCanCode/winlens/pkg/window"
)

// padding is the per-side offset between a window's outer bounds and
// its client area: borders, title bar, and other non-client chrome.
type padding struct {
	left, top, right, bottom int
}

// derivePadding computes the non-client padding from the outer
// rectangle and the client rectangle (client size with its origin in
// screen coordinates). Each side is clamped to zero: a maximized window
// can report a client origin outside its outer bounds.
func derivePadding(outer, client window.Rect) padding {
	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		return v
	}
	return padding{
		left:   clamp(client.X - outer.X),
		top:    clamp(client.Y - outer.Y),
		right:  clamp((outer.X + outer.Width) - (client.X + client.Width)),
		bottom: clamp((outer.Y + outer.Height) - (client.Y + client.Height)),
	}
}

// renderGeometry resolves everything Render needs: the padded bitmap
// size covering the client area plus all non-client chrome, and the
// offset of the requested region inside that bitmap.
func renderGeometry(outer, client window.Rect, r Region) (paddedW, paddedH, offX, offY int, err error) {
	if r.X < 0 || r.Y < 0 || r.X+r.Width > client.Width || r.Y+r.Height > client.Height {
		return 0, 0, 0, 0, errors.Newf(errors.CodeInvalidArgument,
			"region (%d,%d %dx%d) exceeds client area %dx%d",
			r.X, r.Y, r.Width, r.Height, client.Width, client.Height)
	}

	pad := derivePadding(outer, client)
	paddedW = client.Width + pad.left + pad.right
	paddedH = client.Height + pad.top + pad.bottom
	if paddedW <= 0 || paddedH <= 0 {
		return 0, 0, 0, 0, errors.Newf(errors.CodeInvalidArgument,
			"padded capture size %dx%d collapsed", paddedW, paddedH)
	}
	return paddedW, paddedH, pad.left + r.X, pad.top + r.Y, nil
}
