package msg

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func redirectChannel(t *testing.T, ch *Channel) *bytes.Buffer {
	t.Helper()
	var out bytes.Buffer
	ch.SetOutput(&out)
	t.Cleanup(func() { ch.SetOutput(defaultChannelOutput(ch)) })
	return &out
}

func defaultChannelOutput(ch *Channel) *os.File {
	if ch.Severity() >= SevSerious {
		return os.Stderr
	}
	return os.Stdout
}

func TestWarningInBindsCallSite(t *testing.T) {
	out := redirectChannel(t, Warning)

	WarningIn().Print("suspicious").Done()

	text := out.String()
	if !strings.Contains(text, "TestWarningInBindsCallSite") {
		t.Fatalf("calling function not bound:\n%s", text)
	}
	if !strings.Contains(text, "callsite_test.go") {
		t.Fatalf("calling file not bound:\n%s", text)
	}
	if !strings.Contains(text, "suspicious") {
		t.Fatalf("body missing:\n%s", text)
	}
}

func TestInfoInUsesInfoChannel(t *testing.T) {
	out := redirectChannel(t, Info)
	before := Info.ErrorCount()

	InfoIn().Print("fyi").Done()

	if !strings.Contains(out.String(), `-- Info in function`) {
		t.Fatalf("info header missing:\n%s", out.String())
	}
	if got := Info.ErrorCount(); got != before+1 {
		t.Fatalf("expected count %d, got %d", before+1, got)
	}
}

func TestIOWarningInBindsStream(t *testing.T) {
	out := redirectChannel(t, Warning)

	IOWarningIn(fakeStream{name: "fields.dat", line: 9}).Print("truncated record").Done()

	text := out.String()
	if !strings.Contains(text, "reading file fields.dat at line 9") {
		t.Fatalf("io context missing:\n%s", text)
	}
	if !strings.Contains(text, "TestIOWarningInBindsStream") {
		t.Fatalf("calling function not bound:\n%s", text)
	}
}

func TestFatalErrorInTerminates(t *testing.T) {
	out := redirectChannel(t, FatalError)
	calls := captureExit(t)

	FatalErrorIn().Print("unrecoverable").Done()

	if len(*calls) != 1 {
		t.Fatalf("expected 1 exit, got %d", len(*calls))
	}
	if !strings.Contains(out.String(), "unrecoverable") {
		t.Fatalf("body not flushed before exit:\n%s", out.String())
	}
}

func TestShortFuncName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"eddy/msg.(*Channel).Emit", "msg.(*Channel).Emit"},
		{"main.run", "main.run"},
		{"github.com/acme/solver/internal/mesh.Read", "mesh.Read"},
	}
	for _, tt := range tests {
		if got := shortFuncName(tt.in); got != tt.want {
			t.Fatalf("shortFuncName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
