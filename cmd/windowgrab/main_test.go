package main

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    uint64
		wantErr bool
	}{
		{"0xFF112233", 0xFF112233, false},
		{"FF112233", 0xFF112233, false},
		{"0x00FF00", 0x00FF00, false},
		{"nope", 0, true},
		{"0x1FF112233", 0, true}, // over 32 bits
	}

	for _, tt := range tests {
		got, err := parseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseColor(%q) = %#x, want %#x", tt.in, got, tt.want)
		}
	}
}

func TestPixelsToMm(t *testing.T) {
	if got := pixelsToMm(96); got != 25.4 {
		t.Errorf("pixelsToMm(96) = %v, want 25.4", got)
	}
	if got := pixelsToMm(0); got != 0 {
		t.Errorf("pixelsToMm(0) = %v, want 0", got)
	}
}

func TestImageToPDF(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 32, 24))
	out := filepath.Join(t.TempDir(), "capture.pdf")

	if err := imageToPDF(img, out, "test window"); err != nil {
		t.Fatalf("imageToPDF error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output does not start with a PDF header")
	}
}
