//go:build windows

package window

import (
	"path/filepath"
	"strconv"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/GriffinCanCode/winlens/internal/errors"
	"github.com/GriffinCanCode/winlens/internal/win32"
)

// titleBufLen bounds title reads; longer titles are truncated.
const titleBufLen = 255

// Active returns the window that currently has input focus. The result
// may be the zero handle when no window is focused.
func Active() Handle {
	return FromHWND(uintptr(win.GetForegroundWindow()))
}

func (h Handle) native() win.HWND { return win.HWND(h.hwnd) }

// Exists probes the OS for the window's current validity.
func (h Handle) Exists() bool {
	return win32.IsWindow(h.native())
}

// IsActive reports whether this window currently has input focus.
func (h Handle) IsActive() bool {
	return h.Equal(Active())
}

// IsVisible reports whether the window is shown.
func (h Handle) IsVisible() bool {
	return win.IsWindowVisible(h.native())
}

// IsMinimized reports whether the window is iconified.
func (h Handle) IsMinimized() bool {
	return win.IsIconic(h.native())
}

// Title returns the window's text title, truncated to titleBufLen
// UTF-16 units.
func (h Handle) Title() string {
	var buf [titleBufLen]uint16
	n := win32.GetWindowText(h.native(), buf[:])
	return windows.UTF16ToString(buf[:n])
}

// PID returns the id of the process that created the window.
func (h Handle) PID() uint32 {
	_, pid := win32.GetWindowThreadProcessId(h.native())
	return pid
}

// ThreadID returns the id of the thread that created the window.
func (h Handle) ThreadID() uint32 {
	tid, _ := win32.GetWindowThreadProcessId(h.native())
	return tid
}

// ControlID returns the window's numeric control identifier.
func (h Handle) ControlID() int32 {
	return win32.GetDlgCtrlID(h.native())
}

// ExePath resolves the full image path of the executable owning the
// window. The owning process is opened with the minimal query right and
// closed before returning.
func (h Handle) ExePath() (string, error) {
	pid := h.PID()
	if pid == 0 {
		return "", errors.New(errors.CodeProcessQuery, "window has no owning process")
	}

	proc, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeProcessQuery, "could not open owning process").
			WithMetadata("pid", strconv.FormatUint(uint64(pid), 10))
	}
	defer windows.CloseHandle(proc)

	buf := make([]uint16, windows.MAX_PATH)
	size := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(proc, 0, &buf[0], &size); err != nil {
		return "", errors.Wrap(err, errors.CodeProcessQuery, "could not query process image path")
	}
	return windows.UTF16ToString(buf[:size]), nil
}

// ProcessName returns the file name of the owning executable.
func (h Handle) ProcessName() (string, error) {
	p, err := h.ExePath()
	if err != nil {
		return "", err
	}
	return filepath.Base(p), nil
}

// Bounds returns the window's outer rectangle in screen coordinates.
func (h Handle) Bounds() (Rect, bool) {
	var r win.RECT
	if !win.GetWindowRect(h.native(), &r) {
		return Rect{}, false
	}
	return Rect{
		X:      int(r.Left),
		Y:      int(r.Top),
		Width:  int(r.Right - r.Left),
		Height: int(r.Bottom - r.Top),
	}, true
}

// ClientBounds returns the window's client-area size together with the
// client origin translated to screen coordinates.
func (h Handle) ClientBounds() (Rect, bool) {
	var cr win.RECT
	if !win.GetClientRect(h.native(), &cr) {
		return Rect{}, false
	}
	origin := win.POINT{X: cr.Left, Y: cr.Top}
	if !win.ClientToScreen(h.native(), &origin) {
		return Rect{}, false
	}
	return Rect{
		X:      int(origin.X),
		Y:      int(origin.Y),
		Width:  int(cr.Right - cr.Left),
		Height: int(cr.Bottom - cr.Top),
	}, true
}

// SetBounds moves and resizes the window without changing its z-order.
func (h Handle) SetBounds(r Rect) {
	win.SetWindowPos(h.native(), 0, int32(r.X), int32(r.Y), int32(r.Width), int32(r.Height), win.SWP_NOZORDER)
}

// Minimize iconifies the window.
func (h Handle) Minimize() {
	win.ShowWindow(h.native(), win.SW_MINIMIZE)
}

// Close posts an asynchronous close request. The window decides whether
// and when to honor it.
func (h Handle) Close() {
	win.PostMessage(h.native(), win.WM_CLOSE, 0, 0)
}

// Post sends an asynchronous window message with empty parameters.
func (h Handle) Post(msg uint32) {
	win.PostMessage(h.native(), msg, 0, 0)
}

// Activate brings the window to the foreground. No-op when it already
// has focus.
func (h Handle) Activate() {
	if h.IsActive() {
		return
	}
	win.SetWindowPos(h.native(), win.HWND_TOP, 0, 0, 0, 0, win.SWP_NOMOVE|win.SWP_NOSIZE|win.SWP_SHOWWINDOW)
	win.SetForegroundWindow(h.native())
}

// KeepOnTop raises the window into the topmost band without moving it
// or stealing focus.
func (h Handle) KeepOnTop() {
	win.SetWindowPos(h.native(), win.HWND_TOPMOST, 0, 0, 0, 0, win.SWP_NOMOVE|win.SWP_NOSIZE|win.SWP_NOACTIVATE)
}
