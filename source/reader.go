package source

import (
	"bytes"
	"io"
	"os"

	"fortio.org/safecast"
)

// Reader wraps an input stream and tracks the current line number as
// bytes pass through, so diagnostics about malformed data can point at
// the offending spot. A UTF-8 BOM at the start of the stream is
// stripped, mirroring how files are normalized on load.
type Reader struct {
	name    string
	r       io.Reader
	closer  io.Closer
	line    int64 // 1-based
	started bool
	hadBOM  bool
}

// NewReader wraps r under the given display name. An empty name is
// reported as "unknown".
func NewReader(name string, r io.Reader) *Reader {
	if name == "" {
		name = "unknown"
	}
	return &Reader{name: name, r: r, line: 1}
}

// Open opens path for reading with position tracking. The caller owns
// the returned reader and should Close it.
func Open(path string) (*Reader, error) {
	// #nosec G304 -- path is provided by the caller
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	rd := NewReader(path, f)
	rd.closer = f
	return rd, nil
}

func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	chunk := p[:n]

	if !r.started && n > 0 {
		r.started = true
		if trimmed, had := trimBOM(chunk); had {
			r.hadBOM = true
			n = copy(p, trimmed)
			chunk = p[:n]
		}
	}

	r.line += int64(bytes.Count(chunk, []byte{'\n'}))
	return n, err
}

// Close closes the underlying stream if this reader owns one.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// Name returns the display name of the stream.
func (r *Reader) Name() string { return r.name }

// Line returns the 1-based line the stream position is currently on,
// or -1 if the count no longer fits an int.
func (r *Reader) Line() int {
	n, err := safecast.Conv[int](r.line)
	if err != nil {
		return -1
	}
	return n
}

// HadBOM reports whether a byte order mark was stripped from the
// start of the stream.
func (r *Reader) HadBOM() bool { return r.hadBOM }

// trimBOM only acts when the chunk is long enough to hold the whole
// mark; a stream delivering fewer than three bytes first keeps them.
func trimBOM(chunk []byte) ([]byte, bool) {
	if len(chunk) < 3 {
		return chunk, false
	}
	if chunk[0] == 0xEF && chunk[1] == 0xBB && chunk[2] == 0xBF {
		return chunk[3:], true
	}
	return chunk, false
}
