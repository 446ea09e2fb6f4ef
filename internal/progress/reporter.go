// Package progress reports per-page progress for long-running commands.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter receives progress as pages are processed.
type Reporter interface {
	Start(total int)
	Step(current int, page string)
	Finish()
}

// New returns a bar reporter for interactive use, or a line reporter when
// running under CI. label describes the work, e.g. "Exporting pages".
func New(label string) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &LineReporter{Label: label, Out: os.Stderr}
	}
	return &BarReporter{Label: label, Out: os.Stderr}
}

// BarReporter draws a progress bar.
type BarReporter struct {
	Label string
	Out   io.Writer
	bar   *progressbar.ProgressBar
}

func (r *BarReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.Out),
		progressbar.OptionSetDescription(r.Label),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *BarReporter) Step(current int, page string) {
	if r.bar == nil {
		return
	}
	r.bar.Describe(fmt.Sprintf("%s (%s)", r.Label, page))
	_ = r.bar.Set(current)
}

func (r *BarReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// LineReporter prints one line per page, for logs.
type LineReporter struct {
	Label string
	Out   io.Writer
	total int
}

func (r *LineReporter) Start(total int) {
	r.total = total
	fmt.Fprintf(r.Out, "%s: %d page(s)\n", r.Label, total)
}

func (r *LineReporter) Step(current int, page string) {
	fmt.Fprintf(r.Out, "[%d/%d] %s\n", current, r.total, page)
}

func (r *LineReporter) Finish() {
	fmt.Fprintf(r.Out, "%s: done\n", r.Label)
}

// Discard ignores all progress.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Start(int)        {}
func (discard) Step(int, string) {}
func (discard) Finish()          {}
