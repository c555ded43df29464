package capture

import (
	"testing"

	"github.com/GriffinCanCode/winlens/internal/errors"
)

func TestRegionValidate(t *testing.T) {
	tests := []struct {
		name   string
		region Region
		valid  bool
	}{
		{"positive", Region{X: 10, Y: 10, Width: 100, Height: 50}, true},
		{"unit", Region{Width: 1, Height: 1}, true},
		{"zero width", Region{Width: 0, Height: 50}, false},
		{"zero height", Region{Width: 100, Height: 0}, false},
		{"negative width", Region{Width: -5, Height: 50}, false},
		{"negative height", Region{Width: 100, Height: -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.region.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.valid {
				if err == nil {
					t.Fatal("Validate() = nil, want error")
				}
				if !errors.IsCode(err, errors.CodeInvalidArgument) {
					t.Errorf("Validate() code = %v, want INVALID_ARGUMENT", err)
				}
			}
		})
	}
}

func TestFromBGRXConversion(t *testing.T) {
	// Two pixels: pure blue then pure red, with junk in the padding byte.
	raw := []byte{
		0xFF, 0x00, 0x00, 0x7A, // B G R X
		0x00, 0x00, 0xFF, 0x00,
	}
	buf := fromBGRX(raw, 2, 1)

	if len(buf.Pix) != 2 {
		t.Fatalf("len(Pix) = %d, want 2", len(buf.Pix))
	}
	if buf.Pix[0] != 0xFF0000FF {
		t.Errorf("blue pixel = %#08x, want 0xFF0000FF", buf.Pix[0])
	}
	if buf.Pix[1] != 0xFFFF0000 {
		t.Errorf("red pixel = %#08x, want 0xFFFF0000", buf.Pix[1])
	}
}

func TestPixelAlphaAlwaysOpaque(t *testing.T) {
	raw := make([]byte, 16*8*4)
	for i := range raw {
		raw[i] = byte(i * 31) // arbitrary content, including the X byte
	}
	buf := fromBGRX(raw, 16, 8)

	if len(buf.Pix) != buf.Width*buf.Height {
		t.Fatalf("len(Pix) = %d, want %d", len(buf.Pix), buf.Width*buf.Height)
	}
	for i, p := range buf.Pix {
		if p>>24 != 0xFF {
			t.Fatalf("pixel %d alpha = %#02x, want 0xFF", i, p>>24)
		}
	}
}

func TestRows(t *testing.T) {
	buf := &PixelBuffer{
		Pix:    []uint32{1, 2, 3, 4, 5, 6},
		Width:  3,
		Height: 2,
	}

	rows := buf.Rows()
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0][2] != 3 || rows[1][0] != 4 {
		t.Errorf("rows = %v, want row-major split", rows)
	}

	// Rows share the backing array with the buffer.
	rows[1][2] = 99
	if buf.At(2, 1) != 99 {
		t.Error("Rows must alias the underlying pixels")
	}
}

func TestImageConversion(t *testing.T) {
	buf := &PixelBuffer{
		Pix:    []uint32{0xFF102030, 0xFFFFFFFF},
		Width:  2,
		Height: 1,
	}

	img := buf.Image()
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("bounds = %v, want 2x1", img.Bounds())
	}

	r, g, b, a := img.At(0, 0).RGBA()
	if r>>8 != 0x10 || g>>8 != 0x20 || b>>8 != 0x30 {
		t.Errorf("pixel (0,0) = %02x%02x%02x, want 102030", r>>8, g>>8, b>>8)
	}
	if a>>8 != 0xFF {
		t.Errorf("alpha = %#02x, want 0xFF", a>>8)
	}
}

func TestCrop(t *testing.T) {
	// 4x3 source with pixel value = 10*y + x.
	src := &PixelBuffer{Width: 4, Height: 3}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			src.Pix = append(src.Pix, uint32(10*y+x))
		}
	}

	got := crop(src, 1, 1, 2, 2)
	if got.Width != 2 || got.Height != 2 {
		t.Fatalf("crop size = %dx%d, want 2x2", got.Width, got.Height)
	}
	want := []uint32{11, 12, 21, 22}
	for i, w := range want {
		if got.Pix[i] != w {
			t.Errorf("Pix[%d] = %d, want %d", i, got.Pix[i], w)
		}
	}
}
