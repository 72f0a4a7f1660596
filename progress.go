package seisutil

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

// A Progress writes begin/end notices for long-running operations. A nil
// or disabled Progress discards all notices, so callers never need to
// guard their notifications.
type Progress struct {
	Writer  io.Writer
	Enabled bool
}

// NewProgress returns an enabled Progress writing to w.
func NewProgress(w io.Writer) *Progress {
	return &Progress{Writer: w, Enabled: true}
}

// Begin notifies the user that the labelled operation has started. To be
// used together with End.
func (p *Progress) Begin(label string) {
	if p == nil || !p.Enabled || p.Writer == nil {
		return
	}
	fmt.Fprint(p.Writer, label)
}

// End notifies the user that the operation started with Begin has finished.
func (p *Progress) End(label string) {
	if p == nil || !p.Enabled || p.Writer == nil {
		return
	}
	fmt.Fprintf(p.Writer, " %s %s\n", color.GreenString("done."), label)
}

// A Stopwatch measures elapsed wall-clock time from its creation.
type Stopwatch struct {
	start time.Time
}

// NewStopwatch returns a running Stopwatch.
func NewStopwatch() *Stopwatch {
	return &Stopwatch{start: time.Now()}
}

// Elapsed returns the time since the Stopwatch was created.
func (s *Stopwatch) Elapsed() time.Duration {
	return time.Since(s.start)
}

// PluralS returns "s" when n calls for a plural noun.
func PluralS(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
