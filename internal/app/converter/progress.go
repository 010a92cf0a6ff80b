package converter

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

var spinnerFrames = []string{"•    ", " •   ", "  •  ", "   • ", "    •", "   • ", "  •  ", " •   "}

type ProgressConfig struct {
	Enabled bool
	Writer  io.Writer
}

// ProgressReporter draws a spinner while a long step runs. Every Start gets
// its own container, so reporters carry no state between steps.
type ProgressReporter struct {
	config ProgressConfig
}

// ProgressHandle stops the spinner started by ProgressReporter.Start. A nil
// or disabled handle is a no-op.
type ProgressHandle struct {
	container *mpb.Progress
	bar       *mpb.Bar
	once      sync.Once
}

func NewProgressReporter(config ProgressConfig) *ProgressReporter {
	if config.Writer == nil {
		config.Writer = os.Stderr
	}
	return &ProgressReporter{config: config}
}

// Start shows description with a spinner and elapsed time until the returned
// handle is stopped or ctx is cancelled.
func (pr *ProgressReporter) Start(ctx context.Context, description string) *ProgressHandle {
	if pr == nil || !pr.config.Enabled {
		return &ProgressHandle{}
	}

	container := mpb.NewWithContext(ctx,
		mpb.WithOutput(pr.config.Writer),
		mpb.WithRefreshRate(120*time.Millisecond),
		mpb.WithWidth(5),
	)

	bar := container.New(0,
		mpb.SpinnerStyle(spinnerFrames...).PositionLeft(),
		mpb.PrependDecorators(
			decor.Name(description+" ", decor.WC{W: len(description) + 1, C: decor.DindentRight}),
		),
		mpb.AppendDecorators(
			decor.Elapsed(decor.ET_STYLE_GO, decor.WCSyncSpace),
		),
		mpb.BarFillerOnComplete("done"),
		mpb.BarFillerClearOnAbort(),
	)

	return &ProgressHandle{container: container, bar: bar}
}

// Stop ends the spinner and waits for its final frame. ok selects between the
// completed and aborted rendering. Calling Stop more than once is harmless.
func (h *ProgressHandle) Stop(ok bool) {
	if h == nil || h.container == nil {
		return
	}
	h.once.Do(func() {
		if ok {
			h.bar.SetTotal(-1, true)
		} else {
			h.bar.Abort(false)
		}
		h.container.Wait()
	})
}

func IsTTY(writer io.Writer) bool {
	if writer == nil {
		return false
	}

	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// ShouldShowProgress reports whether the spinner should be drawn on stderr.
func ShouldShowProgress(disabled bool) bool {
	if disabled {
		return false
	}
	return IsTTY(os.Stderr)
}
