//go:build windows

// Package win32 holds the raw user32 procedures that github.com/lxn/win
// does not wrap.
package win32

import (
	"syscall"
	"unsafe"

	"github.com/lxn/win"
)

// PW_RENDERFULLCONTENT asks PrintWindow to render the window's full
// current content, including occluded and minimized windows.
const PW_RENDERFULLCONTENT = 0x00000002

var (
	libUser32                    = syscall.NewLazyDLL("user32.dll")
	procEnumWindows              = libUser32.NewProc("EnumWindows")
	procGetWindowTextW           = libUser32.NewProc("GetWindowTextW")
	procPrintWindow              = libUser32.NewProc("PrintWindow")
	procIsWindow                 = libUser32.NewProc("IsWindow")
	procGetWindowThreadProcessId = libUser32.NewProc("GetWindowThreadProcessId")
	procGetDlgCtrlID             = libUser32.NewProc("GetDlgCtrlID")
)

// EnumWindows walks every top-level window, invoking cb (a
// syscall.NewCallback result) per window until it returns 0. The OS
// reports 0 both for a failed walk and for one halted by the callback;
// the caller disambiguates.
func EnumWindows(cb uintptr, lparam uintptr) bool {
	ret, _, _ := procEnumWindows.Call(cb, lparam)
	return ret != 0
}

// GetWindowText copies the window's title into buf, returning the
// number of UTF-16 units written. Titles longer than the buffer are
// truncated by the OS.
func GetWindowText(hwnd win.HWND, buf []uint16) int {
	if len(buf) == 0 {
		return 0
	}
	ret, _, _ := procGetWindowTextW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return int(ret)
}

// PrintWindow renders the window into hdc. With PW_RENDERFULLCONTENT
// the compositor draws the window's entire appearance regardless of
// on-screen visibility.
func PrintWindow(hwnd win.HWND, hdc win.HDC, flags uint32) bool {
	ret, _, _ := procPrintWindow.Call(uintptr(hwnd), uintptr(hdc), uintptr(flags))
	return ret != 0
}

// IsWindow reports whether hwnd still identifies an existing window.
func IsWindow(hwnd win.HWND) bool {
	ret, _, _ := procIsWindow.Call(uintptr(hwnd))
	return ret != 0
}

// GetWindowThreadProcessId returns the ids of the thread and process
// that created the window.
func GetWindowThreadProcessId(hwnd win.HWND) (tid, pid uint32) {
	ret, _, _ := procGetWindowThreadProcessId.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&pid)))
	return uint32(ret), pid
}

// GetDlgCtrlID returns the window's numeric control identifier.
func GetDlgCtrlID(hwnd win.HWND) int32 {
	ret, _, _ := procGetDlgCtrlID.Call(uintptr(hwnd))
	return int32(ret)
}
