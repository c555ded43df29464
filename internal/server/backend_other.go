//go:build !windows

package server

import (
	"context"

	"github.com/GriffinCanCode/winlens/internal/config"
	"github.com/GriffinCanCode/winlens/internal/errors"
	"github.com/GriffinCanCode/winlens/pkg/capture"
)

type stubBackend struct{}

// NewBackend returns a backend that reports the platform as unsupported.
func NewBackend(_ *config.Config) Backend {
	return stubBackend{}
}

func (stubBackend) Windows() []WindowInfo { return nil }

func (stubBackend) Capture(context.Context, uintptr, capture.Region, string) (*capture.PixelBuffer, error) {
	return nil, errors.New(errors.CodeUnavailable, "window capture requires windows")
}
