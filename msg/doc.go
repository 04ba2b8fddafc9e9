// Package msg provides severity-tagged diagnostic channels with
// source-location context.
//
// # Purpose
//
//   - Emit informational, warning, serious and fatal messages through
//     named channels in a consistent, stream-based manner.
//   - Bind the calling function name, file and line automatically via
//     the *In helpers, so call sites never pass location arguments.
//   - Enforce the termination contract: a fatal message aborts the
//     process after it is fully flushed, and any channel configured
//     with a positive error threshold aborts once its counter reaches
//     that threshold.
//
// # Data model
//
// Channel is the central type: a title, a fixed Severity, a mutable
// termination threshold and a monotonically growing error counter. The
// counter increment and threshold check form a single atomic step, so
// the abort-after-N contract holds for concurrent callers. Channels do
// not own an output transport; they write to an io.Writer that defaults
// to stdout (info, warning) or stderr (serious, fatal) and can be
// redirected with SetOutput.
//
// Four process-wide channels are predefined: Info, Warning,
// SeriousError and FatalError. They exist before any other component
// logs and are never torn down.
//
// # Emitting
//
// Every emit variant returns a *Message, an io.Writer with chainable
// Print/Printf and a Done method that finalizes the message:
//
//	msg.WarningIn().Printf("unexpected value %d", v).Done()
//
// Gated variants — Conditional, Master — hand back a discarding sink
// instead of branching at the call site. Stream returns the raw sink
// for continuing output on the same logical message.
//
// # Collaborators
//
// The Stream interface (implemented by source.Reader) supplies io
// context for diagnostics about malformed input data; Communicator
// (implemented by par.Comm) selects the master rank for shared output;
// Recorder (implemented by journal.Journal) mirrors finalized messages
// to a persistent store.
package msg
