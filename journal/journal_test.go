package journal

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"eddy/msg"
)

func TestJournalRecordsFinalizedMessages(t *testing.T) {
	ch := msg.New("Warning", msg.SevWarning, 0)
	ch.SetOutput(io.Discard)
	j := New()
	ch.SetRecorder(j)

	ch.Emit("readMesh", "mesh.go", 31).Print("degenerate cell").Done()
	ch.Emit("readMesh", "mesh.go", 48).Print("orphan face").Done()

	if got := j.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
	entries := j.Entries()
	if entries[0].Function != "readMesh" || entries[0].Line != 31 {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if !strings.Contains(entries[1].Body, "orphan face") {
		t.Fatalf("second entry body = %q", entries[1].Body)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	j := New()
	j.Record(msg.SevSerious, "Serious error", "solve", "solver.go", 99, "matrix not diagonally dominant")
	j.Record(msg.SevInfo, "Info", "solve", "solver.go", 120, "continuing anyway")

	path := filepath.Join(t.TempDir(), "run", "diag.journal")
	if err := j.Save(path); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := loaded.Len(); got != 2 {
		t.Fatalf("loaded Len() = %d, want 2", got)
	}

	want := j.Entries()
	got := loaded.Entries()
	for i := range want {
		if got[i].Severity != want[i].Severity ||
			got[i].Function != want[i].Function ||
			got[i].File != want[i].File ||
			got[i].Line != want[i].Line ||
			got[i].Body != want[i].Body {
			t.Fatalf("entry %d mismatch:\nwant %+v\ngot  %+v", i, want[i], got[i])
		}
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.journal")
	if err := os.WriteFile(path, bytes.Repeat([]byte{0xC1}, 16), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected decode error for garbage payload")
	}
}

func TestTally(t *testing.T) {
	j := New()
	j.Record(msg.SevWarning, "Warning", "a", "a.go", 1, "w1")
	j.Record(msg.SevWarning, "Warning", "b", "b.go", 2, "w2")
	j.Record(msg.SevFatal, "Fatal error", "c", "c.go", 3, "boom")

	tally := j.Tally()
	if tally["WARNING"] != 2 || tally["FATAL"] != 1 {
		t.Fatalf("unexpected tally: %v", tally)
	}
}
