package msg

import (
	"fmt"
	"strings"
)

// Severity classifies the importance of a diagnostic message.
type Severity uint8

const (
	// SevInfo is for informational messages with no termination semantics.
	SevInfo Severity = iota
	// SevWarning warns about a possible problem.
	SevWarning
	// SevSerious signals a serious problem, likely data corruption.
	SevSerious
	// SevFatal terminates the process once the message is flushed.
	SevFatal
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevSerious:
		return "SERIOUS"
	case SevFatal:
		return "FATAL"
	}
	return "UNKNOWN"
}

// Prefix returns the marker placed before the channel title in message headers.
func (s Severity) Prefix() string {
	if s == SevInfo {
		return "--"
	}
	return "-->"
}

// ParseSeverity converts a string to a Severity. Matching is case-insensitive.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(s) {
	case "info":
		return SevInfo, nil
	case "warning":
		return SevWarning, nil
	case "serious":
		return SevSerious, nil
	case "fatal":
		return SevFatal, nil
	default:
		return SevInfo, fmt.Errorf("invalid severity: %q (expected: info|warning|serious|fatal)", s)
	}
}
