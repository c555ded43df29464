//go:build !windows

package main

import "github.com/GriffinCanCode/winlens/internal/errors"

func run(options) error {
	return errors.New(errors.CodeUnavailable, "windowgrab requires windows")
}
