//go:build windows

package server

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/winlens/internal/config"
	"github.com/GriffinCanCode/winlens/internal/errors"
	"github.com/GriffinCanCode/winlens/internal/resilience"
	"github.com/GriffinCanCode/winlens/pkg/capture"
	"github.com/GriffinCanCode/winlens/pkg/window"
)

type platformBackend struct {
	retry resilience.RetryConfig
}

// NewBackend returns the live capture backend.
func NewBackend(cfg *config.Config) Backend {
	retry := resilience.DefaultRetryConfig()
	if cfg.CaptureRetries > 0 {
		retry.MaxRetries = cfg.CaptureRetries
	}
	return &platformBackend{retry: retry}
}

func (b *platformBackend) Windows() []WindowInfo {
	handles := window.Find(func(h window.Handle) bool {
		return h.IsVisible() && h.Title() != ""
	}, false)

	infos := make([]WindowInfo, 0, len(handles))
	for _, h := range handles {
		info := WindowInfo{
			HWND:  uint64(h.HWND()),
			Title: h.Title(),
			PID:   h.PID(),
		}
		if name, err := h.ProcessName(); err == nil {
			info.Process = name
		}
		infos = append(infos, info)
	}
	return infos
}

func (b *platformBackend) Capture(ctx context.Context, hwnd uintptr, r capture.Region, mode string) (*capture.PixelBuffer, error) {
	h := window.FromHWND(hwnd)
	if !h.Exists() {
		return nil, errors.New(errors.CodeNotFound, "no such window").WithMetadata("hwnd", fmt.Sprintf("0x%x", hwnd))
	}

	full := r.Width == 0 && r.Height == 0
	var buf *capture.PixelBuffer
	err := resilience.Retry(ctx, b.retry, func() error {
		var err error
		switch {
		case mode == config.ModeRender && full:
			buf, err = capture.RenderClient(h)
		case mode == config.ModeRender:
			buf, err = capture.Render(h, r)
		case full:
			buf, err = capture.GrabClient(h)
		default:
			buf, err = capture.Grab(h, r)
		}
		return err
	})
	return buf, err
}
