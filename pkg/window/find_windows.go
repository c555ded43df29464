//go:build windows

package window

import (
	"syscall"

	"github.com/lxn/win"

	"github.com/GriffinCanCode/winlens/internal/win32"
)

// visitCurrent holds the visit function for the in-flight walk. The
// session guard in Find serializes walks, so at most one is ever
// installed. The trampoline is registered once for the process
// lifetime; syscall.NewCallback registrations are never released.
var visitCurrent func(raw uintptr) bool

var enumTrampoline = syscall.NewCallback(func(hwnd win.HWND, _ uintptr) uintptr {
	if visitCurrent == nil || visitCurrent(uintptr(hwnd)) {
		return 1
	}
	return 0
})

func init() {
	enumWalk = func(visit func(raw uintptr) bool) bool {
		visitCurrent = visit
		defer func() { visitCurrent = nil }()
		return win32.EnumWindows(enumTrampoline, 0)
	}
	titleOf = Handle.Title
}
