package msg

import (
	"bytes"
	"fmt"
	"io"
)

// Message is the sink a channel hands out for appending a free-form
// message body. It writes through to the channel's output immediately;
// Done finalizes the message and fires any latched termination.
type Message struct {
	ch        *Channel // nil for discarding sinks
	w         io.Writer
	function  string
	file      string
	line      int
	counted   bool
	terminate bool
	record    bool
	body      bytes.Buffer // body copy for the recorder
	lastByte  byte
	done      bool
}

func newDiscard() *Message {
	return &Message{w: io.Discard, lastByte: '\n'}
}

// Write implements io.Writer so fmt.Fprintf and friends compose with a
// message directly.
func (m *Message) Write(p []byte) (int, error) {
	if len(p) > 0 {
		m.lastByte = p[len(p)-1]
	}
	if m.record {
		m.body.Write(p)
	}
	return m.w.Write(p)
}

// Print appends its operands to the message body, fmt.Sprint style.
// Returns the message for chaining.
func (m *Message) Print(args ...any) *Message {
	fmt.Fprint(m, args...)
	return m
}

// Printf appends a formatted string to the message body. Returns the
// message for chaining.
func (m *Message) Printf(format string, args ...any) *Message {
	fmt.Fprintf(m, format, args...)
	return m
}

type flusher interface {
	Flush() error
}

// Done finalizes the message: the body is newline-terminated, buffered
// output is flushed, the recorder (if any) is notified, and only then
// does a latched fatal or threshold termination abort the process.
func (m *Message) Done() {
	if m == nil || m.done {
		return
	}
	m.done = true

	if m.lastByte != '\n' {
		_, _ = io.WriteString(m.w, "\n")
	}
	if f, ok := m.w.(flusher); ok {
		_ = f.Flush()
	}

	if m.ch != nil && m.counted {
		if r := m.ch.currentRecorder(); r != nil {
			r.Record(m.ch.severity, m.ch.title, m.function, m.file, m.line, m.body.String())
		}
	}

	if m.terminate {
		osExit(1)
	}
}
