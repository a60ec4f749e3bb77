package progress

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
)

// CLIProgress implements Reporter with a byte-aware interactive progress
// bar. Used by the ironboxdx CLI for uploads and downloads; the library's
// default remains the plain fixed-width Bar.
type CLIProgress struct {
	description string
	bar         *progressbar.ProgressBar
}

// NewCLIProgress creates a CLI progress reporter with the given
// description.
func NewCLIProgress(description string) *CLIProgress {
	return &CLIProgress{description: description}
}

// Progress updates the bar, creating it on the first callback once the
// total byte count is known.
func (p *CLIProgress) Progress(current, total int64) {
	if p.bar == nil {
		p.bar = progressbar.NewOptions64(total,
			progressbar.OptionSetDescription(p.description),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetWidth(50),
			progressbar.OptionThrottle(100),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprint(os.Stderr, "\n")
			}),
			progressbar.OptionSetRenderBlankState(true),
		)
	}
	if total != p.bar.GetMax64() {
		p.bar.ChangeMax64(total)
	}
	_ = p.bar.Set64(current)
}

// Finish completes the bar.
func (p *CLIProgress) Finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}
