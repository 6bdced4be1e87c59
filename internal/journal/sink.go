package journal

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TimestampLayout is the local-time prefix of every journal line.
const TimestampLayout = "2006-01-02 15:04:05"

// Sink appends timestamped lines to a file and echoes them to a console writer.
// Writes are serialized, so a line is never interleaved with another.
type Sink struct {
	// ID identifies this sink instance.
	ID string
	// Path is the journal file. It does not change after construction.
	Path string

	mu      sync.Mutex
	console io.Writer
	now     func() time.Time
}

// Option configures a Sink.
type Option func(*Sink)

// WithConsole sets the writer that receives the echo of every line.
// A nil writer disables the echo.
func WithConsole(w io.Writer) Option {
	return func(s *Sink) {
		s.console = w
	}
}

// WithClock sets the time source used for line timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Sink) {
		s.now = now
	}
}

// NewSink creates a sink appending to path. The file is not opened until the
// first Write.
func NewSink(path string, opts ...Option) (*Sink, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	s := newEcho(opts...)
	s.ID = uuid.New().String()
	s.Path = path

	return s, nil
}

// newEcho creates a pathless sink that only carries the console and clock.
func newEcho(opts ...Option) *Sink {
	s := &Sink{
		console: os.Stdout,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Write appends "<timestamp>: <message>" to the journal file and echoes it to
// the console. The echo happens even if the file cannot be written; a file
// failure is returned as *SinkWriteError.
func (s *Sink) Write(message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	line := s.format(message)
	s.echo(line)

	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &SinkWriteError{Path: s.Path, Op: OpOpen, Err: err}
	}

	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return &SinkWriteError{Path: s.Path, Op: OpAppend, Err: err}
	}

	if err := f.Close(); err != nil {
		return &SinkWriteError{Path: s.Path, Op: OpAppend, Err: err}
	}

	return nil
}

// echo writes line to the console. Failures are ignored: the console is an
// independent best-effort channel.
func (s *Sink) echo(line string) {
	if s.console != nil {
		_, _ = io.WriteString(s.console, line)
	}
}

func (s *Sink) format(message string) string {
	return fmt.Sprintf("%s: %s\n", s.now().Format(TimestampLayout), message)
}
