//go:build !windows

package capture

import (
	"github.com/GriffinCanCode/winlens/internal/errors"
	"github.com/GriffinCanCode/winlens/pkg/window"
)

// Window capture needs the native windowing API; other platforms get
// error-returning stubs so portable consumers still compile.

func Grab(window.Handle, Region) (*PixelBuffer, error) {
	return nil, errors.New(errors.CodeUnavailable, "window capture is only supported on windows")
}

func GrabClient(window.Handle) (*PixelBuffer, error) {
	return nil, errors.New(errors.CodeUnavailable, "window capture is only supported on windows")
}

func Render(window.Handle, Region) (*PixelBuffer, error) {
	return nil, errors.New(errors.CodeUnavailable, "window capture is only supported on windows")
}

func RenderClient(window.Handle) (*PixelBuffer, error) {
	return nil, errors.New(errors.CodeUnavailable, "window capture is only supported on windows")
}
