// Package server provides HTTP and WebSocket handlers
package server

import (
	"context"

	"github.com/GriffinCanCode/winlens/pkg/capture"
)

// WindowInfo describes one top-level window for API responses.
type WindowInfo struct {
	HWND    uint64 `json:"hwnd"`
	Title   string `json:"title"`
	PID     uint32 `json:"pid"`
	Process string `json:"process,omitempty"`
}

// Backend abstracts the platform capture surface so the transport layer
// can be exercised off-platform.
type Backend interface {
	// Windows lists visible, titled top-level windows.
	Windows() []WindowInfo

	// Capture grabs a region of the window's client area. A zero-size
	// region means the whole client area. Mode is config.ModeBlit or
	// config.ModeRender.
	Capture(ctx context.Context, hwnd uintptr, r capture.Region, mode string) (*capture.PixelBuffer, error)
}
