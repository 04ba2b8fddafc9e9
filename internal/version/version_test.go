package version

import "testing"

func TestVersionHasDefault(t *testing.T) {
	if Version == "" {
		t.Fatal("Version should have a default value")
	}
}

func TestBuildMetadataOverridable(t *testing.T) {
	origCommit, origDate := GitCommit, BuildDate
	t.Cleanup(func() {
		GitCommit = origCommit
		BuildDate = origDate
	})

	// simulates build-time -ldflags overrides
	GitCommit = "abc123def456"
	BuildDate = "2026-08-31T10:30:00Z"

	if GitCommit != "abc123def456" {
		t.Fatalf("GitCommit = %q, want %q", GitCommit, "abc123def456")
	}
	if BuildDate != "2026-08-31T10:30:00Z" {
		t.Fatalf("BuildDate = %q, want %q", BuildDate, "2026-08-31T10:30:00Z")
	}
}
