package capture

import (
	"testing"

	"github.com/GriffinCanCode/winlens/internal/errors"
	"github.com/GriffinCanCode/winlens/pkg/window"
)

func TestDerivePadding(t *testing.T) {
	// A decorated window: 8px borders, 31px title bar above the client.
	outer := window.Rect{X: 100, Y: 100, Width: 816, Height: 639}
	client := window.Rect{X: 108, Y: 139, Width: 800, Height: 592}

	pad := derivePadding(outer, client)
	if pad.left != 8 || pad.top != 39 || pad.right != 8 || pad.bottom != 8 {
		t.Errorf("padding = %+v, want {8 39 8 8}", pad)
	}
}

func TestDerivePaddingClampsNegative(t *testing.T) {
	// Maximized windows can push the client origin outside the outer
	// bounds; every side clamps to zero instead of going negative.
	outer := window.Rect{X: -8, Y: -8, Width: 1936, Height: 1096}
	client := window.Rect{X: -10, Y: 0, Width: 1940, Height: 1090}

	pad := derivePadding(outer, client)
	if pad.left != 0 || pad.right != 0 {
		t.Errorf("padding = %+v, want left/right clamped to 0", pad)
	}
	if pad.top != 8 {
		t.Errorf("top = %d, want 8", pad.top)
	}
}

func TestRenderGeometryNoPadding(t *testing.T) {
	// Borderless window: same pixel content offsets for both backends,
	// and the documented example region yields exactly 100x50 = 5000
	// output pixels.
	outer := window.Rect{X: 0, Y: 0, Width: 640, Height: 480}
	client := window.Rect{X: 0, Y: 0, Width: 640, Height: 480}
	r := Region{X: 10, Y: 10, Width: 100, Height: 50}

	paddedW, paddedH, offX, offY, err := renderGeometry(outer, client, r)
	if err != nil {
		t.Fatalf("renderGeometry error: %v", err)
	}
	if paddedW != 640 || paddedH != 480 {
		t.Errorf("padded = %dx%d, want 640x480", paddedW, paddedH)
	}
	if offX != 10 || offY != 10 {
		t.Errorf("offset = (%d,%d), want (10,10)", offX, offY)
	}
	if r.Width*r.Height != 5000 {
		t.Errorf("output pixel count = %d, want 5000", r.Width*r.Height)
	}
}

func TestRenderGeometryOffsetsByPadding(t *testing.T) {
	outer := window.Rect{X: 100, Y: 100, Width: 816, Height: 639}
	client := window.Rect{X: 108, Y: 139, Width: 800, Height: 592}
	r := Region{X: 10, Y: 20, Width: 50, Height: 40}

	paddedW, paddedH, offX, offY, err := renderGeometry(outer, client, r)
	if err != nil {
		t.Fatalf("renderGeometry error: %v", err)
	}
	if paddedW != 816 || paddedH != 639 {
		t.Errorf("padded = %dx%d, want the outer bounds 816x639", paddedW, paddedH)
	}
	if offX != 18 || offY != 59 {
		t.Errorf("offset = (%d,%d), want (18,59)", offX, offY)
	}
}

func TestRenderGeometryRejectsOutOfClient(t *testing.T) {
	outer := window.Rect{Width: 200, Height: 200}
	client := window.Rect{Width: 200, Height: 200}

	bad := []Region{
		{X: -1, Y: 0, Width: 10, Height: 10},
		{X: 0, Y: -5, Width: 10, Height: 10},
		{X: 195, Y: 0, Width: 10, Height: 10},
		{X: 0, Y: 190, Width: 10, Height: 20},
	}
	for _, r := range bad {
		if _, _, _, _, err := renderGeometry(outer, client, r); !errors.IsCode(err, errors.CodeInvalidArgument) {
			t.Errorf("region %+v: err = %v, want INVALID_ARGUMENT", r, err)
		}
	}
}

func TestRenderGeometryRejectsZeroClient(t *testing.T) {
	// Degenerate geometry: zero-sized client inside zero-sized outer,
	// so no request can produce a non-empty padded bitmap.
	outer := window.Rect{}
	client := window.Rect{}
	r := Region{Width: 1, Height: 1}

	if _, _, _, _, err := renderGeometry(outer, client, r); !errors.IsCode(err, errors.CodeInvalidArgument) {
		t.Errorf("err = %v, want INVALID_ARGUMENT", err)
	}
}
