package window

import (
	"log/slog"
	"strings"

	"github.com/GriffinCanCode/winlens/internal/syncx"
)

// Predicate decides whether an enumerated window is a match. It runs
// inside the OS enumeration callback and must not panic.
type Predicate func(Handle) bool

// enumSession is the process-wide enumeration state. The native
// enumeration primitive dispatches through a single global trampoline,
// so exactly one session at a time installs its predicate and drains
// its accumulator before the guard is released.
type enumSession struct {
	match     Predicate
	firstOnly bool
	halted    bool
	found     []Handle
}

var session = syncx.NewGuard(enumSession{})

// enumWalk drives the native window walk, calling visit for every
// top-level window until visit returns false. It reports whether the
// walk completed without an OS-level failure. Installed by the native
// layer; swapped out by tests; nil off-Windows.
var enumWalk func(visit func(raw uintptr) bool) bool

// titleOf resolves a candidate's title during enumeration. Installed by
// the native layer; swapped out by tests.
var titleOf = func(Handle) string { return "" }

// Find walks all top-level windows and collects the handles matched by
// pred, in OS-defined order. With firstOnly the walk halts at the first
// match. A walk that matches nothing yields an empty result, not an
// error. Concurrent calls from any goroutine are serialized; no caller
// ever observes another caller's in-flight matches.
func Find(pred Predicate, firstOnly bool) []Handle {
	if enumWalk == nil {
		return nil
	}
	result := session.Update(func(s *enumSession) any {
		*s = enumSession{match: pred, firstOnly: firstOnly}
		ok := enumWalk(func(raw uintptr) bool {
			h := FromHWND(raw)
			if s.match(h) {
				s.found = append(s.found, h)
				if s.firstOnly {
					s.halted = true
					return false
				}
			}
			return true
		})
		if !ok && !s.halted {
			// The OS reports an outright walk failure the same way as an
			// early stop; surface it as an empty result but leave a trail.
			slog.Debug("window enumeration walk failed", "matched", len(s.found))
		}
		out := make([]Handle, len(s.found))
		copy(out, s.found)
		*s = enumSession{}
		return out
	})
	return result.([]Handle)
}

// FindOne returns the first window matched by pred in OS-defined order.
// ok is false when nothing matches.
func FindOne(pred Predicate) (h Handle, ok bool) {
	found := Find(pred, true)
	if len(found) == 0 {
		return Handle{}, false
	}
	return found[0], true
}

// FindByTitle returns the first window whose title contains substr.
func FindByTitle(substr string) (Handle, bool) {
	return FindOne(func(h Handle) bool {
		return strings.Contains(titleOf(h), substr)
	})
}
