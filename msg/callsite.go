package msg

import (
	"runtime"
	"strings"
)

// callerLocation resolves the calling function name, file and line.
// skip counts frames above the caller of callerLocation itself.
func callerLocation(skip int) (function, file string, line int) {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown", "unknown", 0
	}
	function = "unknown"
	if f := runtime.FuncForPC(pc); f != nil {
		function = shortFuncName(f.Name())
	}
	return function, file, line
}

// shortFuncName trims the import path, keeping package and receiver:
// "eddy/msg.(*Channel).Emit" -> "msg.(*Channel).Emit".
func shortFuncName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}

// Call-site helpers for the predefined channels. Each binds the calling
// function name, source file and line automatically, replacing the
// explicit location arguments of Channel.Emit.

// InfoIn reports an informational message for the calling function.
func InfoIn() *Message {
	return Info.Emit(callerLocation(1))
}

// WarningIn reports a warning for the calling function.
func WarningIn() *Message {
	return Warning.Emit(callerLocation(1))
}

// SeriousErrorIn reports a serious error for the calling function.
func SeriousErrorIn() *Message {
	return SeriousError.Emit(callerLocation(1))
}

// FatalErrorIn reports a fatal error for the calling function. The
// process terminates once the returned message is finalized.
func FatalErrorIn() *Message {
	return FatalError.Emit(callerLocation(1))
}

// IOInfoIn reports an informational message about data read from s.
func IOInfoIn(s Stream) *Message {
	function, file, line := callerLocation(1)
	return Info.EmitStream(function, file, line, s)
}

// IOWarningIn reports a warning about data read from s.
func IOWarningIn(s Stream) *Message {
	function, file, line := callerLocation(1)
	return Warning.EmitStream(function, file, line, s)
}

// IOSeriousErrorIn reports a serious error about data read from s.
func IOSeriousErrorIn(s Stream) *Message {
	function, file, line := callerLocation(1)
	return SeriousError.EmitStream(function, file, line, s)
}

// IOFatalErrorIn reports a fatal error about data read from s.
func IOFatalErrorIn(s Stream) *Message {
	function, file, line := callerLocation(1)
	return FatalError.EmitStream(function, file, line, s)
}
