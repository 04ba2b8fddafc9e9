package msg

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

// osExit is swapped out by tests that exercise termination paths.
var osExit = os.Exit

// Stream exposes best-effort position information from an open data
// stream, so a diagnostic about malformed input can name the spot.
type Stream interface {
	Name() string
	Line() int
}

// Communicator identifies which process of a cooperating multi-process
// run is allowed to produce shared output. The channel trusts this
// selection and performs no coordination of its own.
type Communicator interface {
	IsMaster() bool
}

// Recorder receives every finalized counted message of a channel.
type Recorder interface {
	Record(sev Severity, title, function, file string, line int, body string)
}

// Channel is a named, severity-classified diagnostic sink. Title and
// severity are fixed at construction; the error counter only grows.
// Channels are built once at startup and live for the whole process.
type Channel struct {
	title    string
	severity Severity

	maxErrors  atomic.Int64
	errorCount atomic.Int64

	mu       sync.Mutex
	out      io.Writer
	recorder Recorder
}

// New constructs a channel from components. maxErrors == 0 disables
// count-based termination.
func New(title string, sev Severity, maxErrors int) *Channel {
	c := &Channel{
		title:    title,
		severity: sev,
		out:      defaultOutput(sev),
	}
	c.maxErrors.Store(int64(maxErrors))
	return c
}

// Serious and fatal diagnostics go to stderr, the rest to stdout.
func defaultOutput(sev Severity) io.Writer {
	if sev >= SevSerious {
		return os.Stderr
	}
	return os.Stdout
}

// Title returns the human-readable label of this channel.
func (c *Channel) Title() string { return c.title }

// Severity returns the fixed severity of this channel.
func (c *Channel) Severity() Severity { return c.severity }

// MaxErrors returns the error count at which the process aborts,
// 0 meaning never.
func (c *Channel) MaxErrors() int { return int(c.maxErrors.Load()) }

// SetMaxErrors resets the termination threshold at runtime.
func (c *Channel) SetMaxErrors(n int) { c.maxErrors.Store(int64(n)) }

// ErrorCount returns the number of counted messages emitted so far.
func (c *Channel) ErrorCount() int { return int(c.errorCount.Load()) }

// SetOutput redirects the channel to w. Intended for tests and
// per-process output redirection at startup.
func (c *Channel) SetOutput(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.out = w
}

// SetRecorder attaches r; every finalized counted message is mirrored
// to it. A nil recorder detaches.
func (c *Channel) SetRecorder(r Recorder) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recorder = r
}

func (c *Channel) output() io.Writer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.out
}

func (c *Channel) currentRecorder() Recorder {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.recorder
}

// Emit writes the message header and returns the sink for the body.
// The termination decision (fatal severity, or the counter reaching the
// threshold) is latched here as a single atomic step and fires once the
// returned message is finalized with Done, after the body is flushed.
func (c *Channel) Emit(function, file string, line int) *Message {
	var b strings.Builder
	c.writeHeader(&b, function, file, line)
	return c.counted(b.String(), function, file, line)
}

// EmitIO is Emit for diagnostics about malformed input data: the header
// additionally names the data file being read and, when both bounds are
// non-negative, the offending line range within it.
func (c *Channel) EmitIO(function, file string, line int, ioFile string, ioStart, ioEnd int) *Message {
	var b strings.Builder
	c.writeHeader(&b, function, file, line)
	fmt.Fprintf(&b, "    reading file %s", ioFile)
	if ioStart >= 0 && ioEnd >= 0 {
		fmt.Fprintf(&b, " from line %d to line %d", ioStart, ioEnd)
	}
	b.WriteByte('\n')
	return c.counted(b.String(), function, file, line)
}

// EmitStream derives the io-context from an open stream's own position
// tracking, falling back to "unknown" when the stream reports nothing.
func (c *Channel) EmitStream(function, file string, line int, s Stream) *Message {
	name := "unknown"
	ioLine := -1
	if s != nil {
		if n := s.Name(); n != "" {
			name = n
		}
		ioLine = s.Line()
	}
	var b strings.Builder
	c.writeHeader(&b, function, file, line)
	fmt.Fprintf(&b, "    reading file %s", name)
	if ioLine >= 0 {
		fmt.Fprintf(&b, " at line %d", ioLine)
	}
	b.WriteByte('\n')
	return c.counted(b.String(), function, file, line)
}

// Here is Emit with the call site captured automatically.
func (c *Channel) Here() *Message {
	return c.Emit(callerLocation(1))
}

// IOHere is EmitStream with the call site captured automatically.
func (c *Channel) IOHere(s Stream) *Message {
	function, file, line := callerLocation(1)
	return c.EmitStream(function, file, line, s)
}

// Conditional returns a discarding sink when enabled is false, so call
// sites can gate optional output without branching; otherwise it
// behaves like Stream.
func (c *Channel) Conditional(enabled bool) *Message {
	if !enabled {
		return newDiscard()
	}
	return c.Stream()
}

// Stream returns the channel's sink without writing a header, for
// continuing output on the same logical message. No header, no count.
func (c *Channel) Stream() *Message {
	return &Message{ch: c, w: c.output(), lastByte: '\n'}
}

// Master returns a sink that only the master process of comm actually
// writes through; every other rank gets a discarding sink so a
// cooperative run emits a single copy of shared output.
func (c *Channel) Master(comm Communicator) *Message {
	if comm != nil && !comm.IsMaster() {
		return newDiscard()
	}
	return c.Stream()
}

func (c *Channel) writeHeader(b *strings.Builder, function, file string, line int) {
	fmt.Fprintf(b, "%s %s in function %q\n    in file %s at line %d\n",
		c.severity.Prefix(), c.title, function, file, line)
}

// counted writes the prepared header, bumps the counter, and latches
// the termination decision for the returned message.
func (c *Channel) counted(header, function, file string, line int) *Message {
	count := c.errorCount.Add(1)
	max := c.maxErrors.Load()

	m := &Message{
		ch:        c,
		w:         c.output(),
		function:  function,
		file:      file,
		line:      line,
		counted:   true,
		terminate: c.severity == SevFatal || (max > 0 && count >= max),
		lastByte:  '\n',
	}
	if m.ch.currentRecorder() != nil {
		m.record = true
	}
	_, _ = io.WriteString(m.w, header)
	return m
}
