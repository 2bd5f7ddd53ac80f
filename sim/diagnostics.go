package sim

import (
	"time"

	"github.com/plus3/skyship/ecs"
)

// FpsReport is emitted once per diagnostics interval.
type FpsReport struct {
	Frames   int
	Elapsed  float64
	Interval time.Duration
	Mode     ReportMode
}

// Value is the reported number: the raw frame count, or frames per second of interval.
func (r FpsReport) Value() float64 {
	if r.Mode == ReportRate && r.Interval > 0 {
		return float64(r.Frames) / r.Interval.Seconds()
	}
	return float64(r.Frames)
}

// DiagnosticsSystem counts frames and reports them every Tuning.ReportInterval.
// The estimate is a bucket average over the interval, not a sliding window.
type DiagnosticsSystem struct {
	Fps    ecs.Singleton[FpsDebug]
	Tuning ecs.Singleton[Tuning]

	Reporter Reporter
}

func (s *DiagnosticsSystem) Execute(frame *ecs.UpdateFrame) {
	fps := s.Fps.Get()
	tuning := s.Tuning.Get()
	if fps == nil || tuning == nil {
		return
	}

	fps.Elapsed += frame.DeltaTime
	fps.Frames++

	if fps.Elapsed < tuning.ReportInterval.Seconds() {
		return
	}

	report := FpsReport{
		Frames:   fps.Frames,
		Elapsed:  fps.Elapsed,
		Interval: tuning.ReportInterval,
		Mode:     tuning.ReportMode,
	}
	*fps = FpsDebug{}

	if s.Reporter != nil {
		frame.Commands.Defer(func() {
			s.Reporter.Report(report)
		})
	}
}
