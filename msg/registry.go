package msg

// Predefined process-wide channels. They are constructed before any
// other package-level initializer that could log through them and are
// never torn down; counters are append-only, so reclamation at process
// exit is sufficient.
var (
	// Info carries informational messages. Never terminates.
	Info = New("Info", SevInfo, 0)
	// Warning warns about possible problems.
	Warning = New("Warning", SevWarning, 0)
	// SeriousError signals likely data corruption without aborting.
	SeriousError = New("Serious error", SevSerious, 0)
	// FatalError aborts the process after the message is flushed.
	FatalError = New("Fatal error", SevFatal, 0)
)

// Channels returns the predefined channels keyed by registry name, for
// enumeration and configuration.
func Channels() map[string]*Channel {
	return map[string]*Channel{
		"info":    Info,
		"warning": Warning,
		"serious": SeriousError,
		"fatal":   FatalError,
	}
}
