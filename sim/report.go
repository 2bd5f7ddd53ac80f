package sim

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"
)

// Reporter receives diagnostics reports.
type Reporter interface {
	Report(FpsReport)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(FpsReport)

func (f ReporterFunc) Report(r FpsReport) {
	f(r)
}

// LineReporter writes one line per report, e.g. "FPS: 60" or "FPS: 59.8 (avg over 5s)".
type LineReporter struct {
	W io.Writer
}

func (l LineReporter) Report(r FpsReport) {
	fmt.Fprintln(l.W, FormatReport(r))
}

// FormatReport renders a report as a single line.
func FormatReport(r FpsReport) string {
	if r.Mode == ReportRate {
		return fmt.Sprintf("FPS: %s (avg over %s)", humanize.FtoaWithDigits(r.Value(), 1), r.Interval)
	}
	return fmt.Sprintf("FPS: %s", humanize.Comma(int64(r.Frames)))
}

// LogReporter logs each report at info level.
type LogReporter struct {
	Logger *slog.Logger
}

func (l LogReporter) Report(r FpsReport) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("frame rate", "value", r.Value(), "frames", r.Frames, "interval", r.Interval, "mode", string(r.Mode))
}

// MultiReporter fans a report out to several reporters.
type MultiReporter []Reporter

func (m MultiReporter) Report(r FpsReport) {
	for _, reporter := range m {
		reporter.Report(r)
	}
}
