package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/schollz/progressbar/v3"
)

// Progress is a counting progress bar for batches of statements.
type Progress struct {
	bar    *progressbar.ProgressBar
	writer io.Writer
}

// NewProgress creates a progress bar for total items.
func NewProgress(writer io.Writer, total int, description string) *Progress {
	p := &Progress{writer: writer}
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]"+description+"[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(p.writer); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
	return p
}

// Step advances the bar by one. It is safe for concurrent use.
func (p *Progress) Step(string) {
	if err := p.bar.Add(1); err != nil {
		slog.Debug("Failed to advance progress bar", "error", err)
	}
}

// Finish completes the bar.
func (p *Progress) Finish() {
	if err := p.bar.Finish(); err != nil {
		slog.Debug("Failed to finish progress bar", "error", err)
	}
}
