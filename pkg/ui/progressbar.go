package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/schollz/progressbar/v3"
)

// ProgressBar is a types.ProgressSink drawing a schollz/progressbar.
// The bar's maximum follows the max of the latest update, so the same
// bar can show install bytes or uninstall percentages.
type ProgressBar struct {
	mu  sync.Mutex
	bar *progressbar.ProgressBar
	max int64
}

// NewProgressBar creates a bar on out. bytes formats the counter as byte
// sizes instead of plain numbers.
func NewProgressBar(out io.Writer, description string, bytes bool) *ProgressBar {
	bar := progressbar.NewOptions64(100,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowBytes(bytes),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(out)
		}),
	)
	return &ProgressBar{bar: bar, max: 100}
}

// SetProgress implements types.ProgressSink
func (p *ProgressBar) SetProgress(value, max int64) {
	if max <= 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if max != p.max {
		p.bar.ChangeMax64(max)
		p.max = max
	}
	_ = p.bar.Set64(value)
}

// Max returns the bar's current maximum
func (p *ProgressBar) Max() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.max
}

// Clear erases the bar from the line so other output can be printed
func (p *ProgressBar) Clear() {
	_ = p.bar.Clear()
}

// Finish fills the bar and ends its line
func (p *ProgressBar) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	_ = p.bar.Finish()
}
