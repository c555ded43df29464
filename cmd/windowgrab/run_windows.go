//go:build windows

package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"

	"github.com/GriffinCanCode/winlens/internal/errors"
	"github.com/GriffinCanCode/winlens/pkg/capture"
	"github.com/GriffinCanCode/winlens/pkg/window"
)

func run(opts options) error {
	if opts.list {
		return listWindows()
	}

	h, err := target(opts)
	if err != nil {
		return err
	}
	slog.Debug("target window", "hwnd", fmt.Sprintf("0x%x", h.HWND()), "title", h.Title())

	if opts.activate {
		h.Activate()
	}

	// Style changes are batched and applied once.
	edit := h.EditStyle()
	styled := false
	if opts.topmost {
		edit.SetAlwaysOnTop(true)
		styled = true
	}
	if !opts.caption {
		edit.SetCaption(false)
		styled = true
	}
	if styled {
		edit.Apply()
	}
	if opts.colorKey != 0 {
		h.SetTransparentColor(uint32(opts.colorKey))
	}

	if opts.out != "" || opts.pdf != "" {
		if err := grab(h, opts); err != nil {
			return err
		}
	}

	if opts.minimize {
		h.Minimize()
	}
	if opts.close {
		h.Close()
	}
	return nil
}

func target(opts options) (window.Handle, error) {
	if opts.hwnd != 0 {
		h := window.FromHWND(uintptr(opts.hwnd))
		if !h.Exists() {
			return window.Handle{}, errors.Newf(errors.CodeNotFound, "no window with handle 0x%x", opts.hwnd)
		}
		return h, nil
	}
	if opts.title == "" {
		return window.Handle{}, errors.New(errors.CodeInvalidArgument, "need -title, -hwnd, or -list")
	}
	h, ok := window.FindByTitle(opts.title)
	if !ok {
		return window.Handle{}, errors.Newf(errors.CodeNotFound, "no window title contains %q", opts.title)
	}
	return h, nil
}

func listWindows() error {
	handles := window.Find(func(h window.Handle) bool {
		return h.IsVisible() && h.Title() != ""
	}, false)

	for _, h := range handles {
		proc, _ := h.ProcessName()
		fmt.Printf("0x%08x  %6d  %-20s  %s\n", h.HWND(), h.PID(), proc, h.Title())
	}
	return nil
}

func grab(h window.Handle, opts options) error {
	full := opts.w == 0 && opts.h == 0
	region := capture.Region{X: opts.x, Y: opts.y, Width: opts.w, Height: opts.h}

	var buf *capture.PixelBuffer
	var err error
	switch {
	case opts.render && full:
		buf, err = capture.RenderClient(h)
	case opts.render:
		buf, err = capture.Render(h, region)
	case full:
		buf, err = capture.GrabClient(h)
	default:
		buf, err = capture.Grab(h, region)
	}
	if err != nil {
		return err
	}

	img := image.Image(buf.Image())
	if opts.thumb > 0 && opts.thumb < buf.Width {
		img = resize.Resize(uint(opts.thumb), 0, img, resize.Lanczos3)
	}

	if opts.out != "" {
		if err := writeImage(img, opts.out); err != nil {
			return err
		}
		slog.Info("capture written", "path", opts.out, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	}
	if opts.pdf != "" {
		if err := imageToPDF(img, opts.pdf, h.Title()); err != nil {
			return err
		}
		slog.Info("pdf written", "path", opts.pdf)
	}
	return nil
}

func writeImage(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
	default:
		return png.Encode(f, img)
	}
}
