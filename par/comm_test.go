package par

import "testing"

func TestWorldDefaultsToSingleRankMaster(t *testing.T) {
	t.Setenv(rankEnv, "")
	t.Setenv(sizeEnv, "")

	c := World()
	if !c.IsMaster() {
		t.Fatalf("single-rank world must be its own master")
	}
	if got := c.Size(); got != 1 {
		t.Fatalf("Size() = %d, want 1", got)
	}
}

func TestWorldReadsLauncherEnvironment(t *testing.T) {
	t.Setenv(rankEnv, "2")
	t.Setenv(sizeEnv, "4")

	c := World()
	if c.IsMaster() {
		t.Fatalf("rank 2 must not be master")
	}
	if got := c.Rank(); got != 2 {
		t.Fatalf("Rank() = %d, want 2", got)
	}
	if got := c.Size(); got != 4 {
		t.Fatalf("Size() = %d, want 4", got)
	}
}

func TestWorldIgnoresMalformedEnvironment(t *testing.T) {
	t.Setenv(rankEnv, "not-a-number")
	t.Setenv(sizeEnv, "-3")

	c := World()
	if !c.IsMaster() {
		t.Fatalf("malformed rank must fall back to master rank 0")
	}
	if got := c.Size(); got != 1 {
		t.Fatalf("Size() = %d, want fallback 1", got)
	}
}

func TestExplicitComm(t *testing.T) {
	c := New(7, 0, 16)
	if got := c.ID(); got != 7 {
		t.Fatalf("ID() = %d, want 7", got)
	}
	if !c.IsMaster() {
		t.Fatalf("rank 0 must be master")
	}
	if New(7, 5, 16).IsMaster() {
		t.Fatalf("rank 5 must not be master")
	}
}
