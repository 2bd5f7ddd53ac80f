package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/plus3/skyship/ecs"
)

type Report struct {
	// Configuration
	Frames   int
	Entities int

	// Results
	TotalTime          time.Duration
	Simulated          time.Duration
	UpdateTime         Stats
	Reflections        int
	AnimationSwitches  int
	DiagnosticsReports int
	Systems            []ecs.SystemStats
	GCPauseMetrics     bool
	MemStatsStart      runtime.MemStats
	MemStatsEnd        runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

const reportTemplate = `
# Skyship Stress Report

## Configuration
- **Frames:** {{comma .Frames}}
- **Entities:** {{comma .Entities}}

## Results
- **Wall Time:** {{.TotalTime}}
- **Simulated Time:** {{.Simulated}}
{{- if .UpdateTime.Samples}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
{{- end}}
- **Boundary Reflections:** {{comma .Reflections}}
- **Animation Switches:** {{comma .AnimationSwitches}}
- **Diagnostics Reports:** {{comma .DiagnosticsReports}}

## Systems
{{range .Systems}}- {{.Stage}} / {{.Name}}: avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}
## Memory Usage
- Heap Alloc:     {{bytes .MemStatsStart.HeapAlloc}} (start) -> {{bytes .MemStatsEnd.HeapAlloc}} (end)
- Total Alloc:    {{bytes .MemStatsStart.TotalAlloc}} (start) -> {{bytes .MemStatsEnd.TotalAlloc}} (end) -> delta: {{bytes (bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc)}}
- Sys Memory:     {{bytes .MemStatsStart.Sys}} (start) -> {{bytes .MemStatsEnd.Sys}} (end)
- Num GC:         {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{ns (bsub .MemStatsEnd.PauseTotalNs .MemStatsStart.PauseTotalNs)}}
{{end}}`

var reportFuncs = template.FuncMap{
	"comma": func(v int) string {
		return humanize.Comma(int64(v))
	},
	"bytes": humanize.Bytes,
	"bsub": func(a, b uint64) uint64 {
		if a < b {
			return 0
		}
		return a - b
	},
	"usub": func(a, b uint32) uint32 {
		return a - b
	},
	"ns": func(ns uint64) string {
		return time.Duration(ns).String()
	},
}

func (r *Report) Generate(w io.Writer) error {
	tmpl, err := template.New("report").Funcs(reportFuncs).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}
