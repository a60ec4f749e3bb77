// Package progress provides progress reporting for blob transfers: a
// fixed-width console bar matching the service's reference client output,
// and a richer CLI bar for interactive use.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goironbox/ironboxdx-go/internal/constants"
)

// Bar renders a fixed-width textual progress bar, redrawing in place on the
// same output line and emitting a trailing line break once current reaches
// total.
//
// Output format: `label [####....] current/total`. The line layout is relied
// on by downstream console-output checks, so it must not change.
type Bar struct {
	Label string
	Width int
	Out   io.Writer
}

// NewBar creates a bar with the default width writing to out.
func NewBar(label string, out io.Writer) *Bar {
	return &Bar{
		Label: label,
		Width: constants.ProgressBarWidth,
		Out:   out,
	}
}

// Render draws the bar scaled by current/total. A zero current or zero
// total renders an empty (0%) bar; there is deliberately no division in
// that path.
func (b *Bar) Render(current, total int64) {
	width := b.Width
	if width <= 0 {
		width = constants.ProgressBarWidth
	}
	out := b.Out
	if out == nil {
		out = os.Stdout
	}

	filled := 0
	if current != 0 && total != 0 {
		filled = int(int64(width) * current / total)
		if filled > width {
			filled = width
		}
	}

	fmt.Fprintf(out, "%s [%s%s] %d/%d\r",
		b.Label,
		strings.Repeat("#", filled),
		strings.Repeat(".", width-filled),
		current, total)
	fmt.Fprint(out, "\r")
	if current == total {
		// Final block: move to a new line so later output starts clean.
		fmt.Fprint(out, "\n")
	}
}
