package msg

// Level gates debug-only emission across the process. 0 disables it;
// increasing values enable progressively more verbose categories.
// Plain configuration state, set once at startup.
var Level int

// Debugf prints a file:line tagged message to the Info channel when
// Level is positive.
func Debugf(format string, args ...any) {
	if Level < 1 {
		return
	}
	debugEmit(format, args...)
}

// Debugv prints a file:line tagged message to the Info channel when
// Level is at least v.
func Debugv(v int, format string, args ...any) {
	if v < 1 || Level < v {
		return
	}
	debugEmit(format, args...)
}

func debugEmit(format string, args ...any) {
	_, file, line := callerLocation(2)
	Info.Stream().Printf("[%s:%d] ", file, line).Printf(format, args...).Done()
}
