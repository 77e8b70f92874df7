package internal

import (
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// ProgressBar wraps the progressbar library for the forward-time
// generation loop, and is a silent no-op when quiet is set.
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewProgressBar creates a progress bar over max generations, or a
// no-op bar if quiet is true.
func NewProgressBar(max int64, description string, quiet bool) *ProgressBar {
	if quiet {
		return &ProgressBar{bar: nil}
	}
	bar := progressbar.NewOptions64(
		max,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(10),
		progressbar.OptionThrottle(100),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			_, _ = io.WriteString(os.Stderr, "\n")
		}),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetRenderBlankState(true),
	)
	return &ProgressBar{bar: bar}
}

// Add increments the progress bar by n.
func (p *ProgressBar) Add(n int) {
	if p.bar != nil {
		_ = p.bar.Add(n)
	}
}

// Finish completes the progress bar.
func (p *ProgressBar) Finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}
