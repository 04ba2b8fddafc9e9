package msg

import "fmt"

// Record is a key/value configuration record from which a channel can
// be constructed. Recognized keys: "title", "severity", "maxErrors".
type Record map[string]any

// ConfigError reports a missing or malformed record entry.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("channel record: key %q: %s", e.Key, e.Reason)
}

// FromRecord constructs a channel from a configuration record.
// "title" and "severity" are required; "maxErrors" defaults to 0.
func FromRecord(rec Record) (*Channel, error) {
	title, err := recordString(rec, "title")
	if err != nil {
		return nil, err
	}
	sevName, err := recordString(rec, "severity")
	if err != nil {
		return nil, err
	}
	sev, err := ParseSeverity(sevName)
	if err != nil {
		return nil, &ConfigError{Key: "severity", Reason: err.Error()}
	}
	maxErrors, err := recordInt(rec, "maxErrors")
	if err != nil {
		return nil, err
	}
	return New(title, sev, maxErrors), nil
}

func recordString(rec Record, key string) (string, error) {
	v, ok := rec[key]
	if !ok {
		return "", &ConfigError{Key: key, Reason: "missing"}
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", &ConfigError{Key: key, Reason: fmt.Sprintf("expected non-empty string, got %v", v)}
	}
	return s, nil
}

// recordInt accepts the integer representations that map-based decoders
// produce (TOML yields int64, JSON yields float64).
func recordInt(rec Record, key string) (int, error) {
	v, ok := rec[key]
	if !ok {
		return 0, nil
	}
	var n int
	switch x := v.(type) {
	case int:
		n = x
	case int64:
		n = int(x)
	case float64:
		n = int(x)
	default:
		return 0, &ConfigError{Key: key, Reason: fmt.Sprintf("expected integer, got %v", v)}
	}
	if n < 0 {
		return 0, &ConfigError{Key: key, Reason: fmt.Sprintf("must be >= 0, got %d", n)}
	}
	return n, nil
}
