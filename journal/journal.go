// Package journal persists finalized diagnostics so a failed run can
// be inspected after the fact. It plugs into a channel via the
// msg.Recorder interface.
package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"eddy/msg"
)

// Current schema version - increment when the payload format changes.
const schemaVersion uint16 = 1

// Entry is one finalized diagnostic message.
type Entry struct {
	Severity string
	Title    string
	Function string
	File     string
	Line     int
	Body     string
	Time     time.Time
}

type payload struct {
	Schema  uint16
	Entries []Entry
}

// Journal accumulates finalized diagnostics in memory.
// Thread-safe for concurrent emitters sharing one channel.
type Journal struct {
	mu      sync.Mutex
	entries []Entry
}

// New returns an empty journal.
func New() *Journal {
	return &Journal{}
}

// Record implements msg.Recorder.
func (j *Journal) Record(sev msg.Severity, title, function, file string, line int, body string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, Entry{
		Severity: sev.String(),
		Title:    title,
		Function: function,
		File:     file,
		Line:     line,
		Body:     body,
		Time:     time.Now(),
	})
}

// Len returns the number of recorded entries.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.entries)
}

// Entries returns a copy of the recorded entries in emission order.
func (j *Journal) Entries() []Entry {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Tally counts entries per severity label.
func (j *Journal) Tally() map[string]int {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make(map[string]int, 4)
	for i := range j.entries {
		out[j.entries[i].Severity]++
	}
	return out
}

// Save writes the journal to path, creating parent directories as
// needed.
func (j *Journal) Save(path string) error {
	raw, err := msgpack.Marshal(payload{Schema: schemaVersion, Entries: j.Entries()})
	if err != nil {
		return fmt.Errorf("encode journal: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create journal dir: %w", err)
		}
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write journal: %w", err)
	}
	return nil
}

// Load reads a journal previously written by Save, rejecting payloads
// with a different schema version.
func Load(path string) (*Journal, error) {
	// #nosec G304 -- path is provided by the caller
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p payload
	if err := msgpack.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode journal %s: %w", path, err)
	}
	if p.Schema != schemaVersion {
		return nil, fmt.Errorf("journal %s: schema version %d, want %d", path, p.Schema, schemaVersion)
	}
	return &Journal{entries: p.Entries}, nil
}
