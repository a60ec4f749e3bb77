package progress

// Reporter consumes transfer progress callbacks. Implementations receive
// (current, total) byte counts at the delegate's chunk granularity and a
// final Finish once the transfer completes.
type Reporter interface {
	Progress(current, total int64)
	Finish()
}

// BarReporter drives a Bar from progress callbacks.
//
// Callbacks with current == 0 are suppressed: the delegate fires an initial
// zero-progress callback before the first chunk, and redrawing on it would
// emit a pointless blank bar line. This suppression is long-standing
// observable behavior, kept for output compatibility with the service's
// reference clients.
type BarReporter struct {
	Bar *Bar
}

// NewBarReporter creates a BarReporter with a default-width bar labeled
// label.
func NewBarReporter(label string, bar *Bar) *BarReporter {
	if bar == nil {
		bar = NewBar(label, nil)
	}
	return &BarReporter{Bar: bar}
}

// Progress redraws the bar, skipping zero-progress callbacks.
func (r *BarReporter) Progress(current, total int64) {
	if current == 0 {
		return
	}
	r.Bar.Render(current, total)
}

// Finish is a no-op: the bar terminates its own line when current reaches
// total.
func (r *BarReporter) Finish() {}

// Nop is a Reporter that discards all progress.
type Nop struct{}

func (Nop) Progress(current, total int64) {}
func (Nop) Finish()                       {}
