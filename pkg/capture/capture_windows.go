//go:build windows

package capture

import (
	"unsafe"

	"github.com/lxn/win"

	"github.com/GriffinCanCode/winlens/internal/errors"
	"github.com/GriffinCanCode/winlens/internal/win32"
	"github.com/GriffinCanCode/winlens/pkg/window"
)

// Grab captures r from the window with a direct blit of whatever is
// currently on screen. Occluded or minimized windows come back blank;
// use Render when full-content fidelity matters.
func Grab(h window.Handle, r Region) (*PixelBuffer, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	hwnd := win.HWND(h.HWND())

	dc := win.GetDC(hwnd)
	if dc == 0 {
		return nil, errors.New(errors.CodeResourceAcquire, "could not get window device context").WithStage("window-dc")
	}
	defer win.ReleaseDC(hwnd, dc)

	memDC := win.CreateCompatibleDC(dc)
	if memDC == 0 {
		return nil, errors.New(errors.CodeResourceAcquire, "could not create compatible device context").WithStage("memory-dc")
	}
	defer win.DeleteDC(memDC)

	bmp := win.CreateCompatibleBitmap(dc, int32(r.Width), int32(r.Height))
	if bmp == 0 {
		return nil, errors.New(errors.CodeResourceAcquire, "could not create compatible bitmap").WithStage("bitmap")
	}
	defer win.DeleteObject(win.HGDIOBJ(bmp))

	old := win.SelectObject(memDC, win.HGDIOBJ(bmp))
	if old == 0 {
		return nil, errors.New(errors.CodeResourceAcquire, "could not select bitmap into device context").WithStage("select")
	}
	defer win.SelectObject(memDC, old)

	if !win.BitBlt(memDC, 0, 0, int32(r.Width), int32(r.Height), dc, int32(r.X), int32(r.Y), win.SRCCOPY) {
		return nil, errors.New(errors.CodeCaptureFailed, "blit from window device context failed").WithStage("blit")
	}

	raw, err := readPixels(dc, bmp, r.Width, r.Height)
	if err != nil {
		return nil, err
	}
	return fromBGRX(raw, r.Width, r.Height), nil
}

// GrabClient captures the window's full client area with a direct blit.
func GrabClient(h window.Handle) (*PixelBuffer, error) {
	client, ok := h.ClientBounds()
	if !ok {
		return nil, errors.New(errors.CodeResourceAcquire, "could not resolve client bounds").WithStage("client-rect")
	}
	return Grab(h, Region{Width: client.Width, Height: client.Height})
}

// Render captures r through the compositor's full-content render, which
// draws the window even when occluded or minimized. The render covers
// the whole window including non-client chrome, so the requested
// client-area rectangle is carved out after correcting for the
// non-client padding.
func Render(h window.Handle, r Region) (*PixelBuffer, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	hwnd := win.HWND(h.HWND())

	outer, ok := h.Bounds()
	if !ok {
		return nil, errors.New(errors.CodeResourceAcquire, "could not resolve window bounds").WithStage("window-rect")
	}
	client, ok := h.ClientBounds()
	if !ok {
		return nil, errors.New(errors.CodeResourceAcquire, "could not resolve client bounds").WithStage("client-rect")
	}
	paddedW, paddedH, offX, offY, err := renderGeometry(outer, client, r)
	if err != nil {
		return nil, err
	}

	dc := win.GetDC(hwnd)
	if dc == 0 {
		return nil, errors.New(errors.CodeResourceAcquire, "could not get window device context").WithStage("window-dc")
	}
	defer win.ReleaseDC(hwnd, dc)

	memDC := win.CreateCompatibleDC(dc)
	if memDC == 0 {
		return nil, errors.New(errors.CodeResourceAcquire, "could not create compatible device context").WithStage("memory-dc")
	}
	defer win.DeleteDC(memDC)

	bmp := win.CreateCompatibleBitmap(dc, int32(paddedW), int32(paddedH))
	if bmp == 0 {
		return nil, errors.New(errors.CodeResourceAcquire, "could not create compatible bitmap").WithStage("bitmap")
	}
	defer win.DeleteObject(win.HGDIOBJ(bmp))

	old := win.SelectObject(memDC, win.HGDIOBJ(bmp))
	if old == 0 {
		return nil, errors.New(errors.CodeResourceAcquire, "could not select bitmap into device context").WithStage("select")
	}
	defer win.SelectObject(memDC, old)

	if !win32.PrintWindow(hwnd, memDC, win32.PW_RENDERFULLCONTENT) {
		return nil, errors.New(errors.CodeCaptureFailed, "full-content window render failed").WithStage("render")
	}

	raw, err := readPixels(dc, bmp, paddedW, paddedH)
	if err != nil {
		return nil, err
	}
	padded := fromBGRX(raw, paddedW, paddedH)
	return crop(padded, offX, offY, r.Width, r.Height), nil
}

// RenderClient captures the window's full client area through the
// compositor render.
func RenderClient(h window.Handle) (*PixelBuffer, error) {
	client, ok := h.ClientBounds()
	if !ok {
		return nil, errors.New(errors.CodeResourceAcquire, "could not resolve client bounds").WithStage("client-rect")
	}
	return Render(h, Region{Width: client.Width, Height: client.Height})
}

// readPixels copies the bitmap's contents top-down as 32-bit BGRX
// samples. GetDIBits balks at Go memory on some systems, so the
// readback buffer is GlobalAlloc'd the way the MSDN capture example
// does.
func readPixels(dc win.HDC, bmp win.HBITMAP, width, height int) ([]byte, error) {
	var header win.BITMAPINFOHEADER
	header.BiSize = uint32(unsafe.Sizeof(header))
	header.BiPlanes = 1
	header.BiBitCount = 32
	header.BiWidth = int32(width)
	header.BiHeight = int32(-height)
	header.BiCompression = win.BI_RGB

	size := uintptr(width) * uintptr(height) * 4
	hmem := win.GlobalAlloc(win.GMEM_MOVEABLE, size)
	if hmem == 0 {
		return nil, errors.New(errors.CodeResourceAcquire, "could not allocate readback buffer").WithStage("readback-alloc")
	}
	defer win.GlobalFree(hmem)

	memptr := win.GlobalLock(hmem)
	if memptr == nil {
		return nil, errors.New(errors.CodeResourceAcquire, "could not lock readback buffer").WithStage("readback-lock")
	}
	defer win.GlobalUnlock(hmem)

	if win.GetDIBits(dc, bmp, 0, uint32(height), (*uint8)(memptr), (*win.BITMAPINFO)(unsafe.Pointer(&header)), win.DIB_RGB_COLORS) == 0 {
		return nil, errors.New(errors.CodeCaptureFailed, "pixel readback failed").WithStage("readback")
	}

	raw := make([]byte, size)
	copy(raw, unsafe.Slice((*byte)(memptr), size))
	return raw, nil
}
