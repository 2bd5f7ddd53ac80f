// Skyship-stress runs the simulation headless with scripted input and prints a timing report.
//
// By default it advances a fixed number of 1/60 s ticks as fast as possible. With
// -duration it instead runs the scheduler on a wall-clock ticker for that long.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"

	"github.com/plus3/skyship/config"
	"github.com/plus3/skyship/ecs"
	"github.com/plus3/skyship/sim"
)

const tickRate = 60

func main() {
	os.Exit(run())
}

func run() int {
	frames := flag.Int("frames", 36000, "Number of fixed 1/60 s ticks to simulate.")
	duration := flag.Duration("duration", 0, "Run on a real-time 60 Hz ticker for this long instead of a fixed tick count.")
	ambient := flag.Int("ambient", 10000, "Number of ambient Bounded ships to spawn (overrides the config).")
	configPath := flag.String("config", config.DefaultFile, "YAML file overriding the built-in configuration.")
	profileMode := flag.String("profile", "", "Write a cpu or mem profile to the current directory.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	default:
		slog.Error("unknown profile mode", "mode", *profileMode)
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load configuration", "error", err)
		return 1
	}

	opts := cfg.Bootstrap()
	opts.AmbientCount = *ambient

	var report *Report
	if *duration > 0 {
		slog.Info("running real-time stress test", "duration", *duration, "ambient", *ambient)
		ctx, cancel := context.WithTimeout(context.Background(), *duration)
		defer cancel()
		report = RunRealtime(ctx, opts, cfg.Tuning())
	} else {
		slog.Info("running stress test", "frames", *frames, "ambient", *ambient)
		report = Run(opts, cfg.Tuning(), *frames)
	}
	report.GCPauseMetrics = *gcPauseMetrics

	if err := report.Generate(os.Stdout); err != nil {
		slog.Error("generate report", "error", err)
		return 1
	}
	return 0
}

// script is the repeating input pattern: each step holds a key set for a number of ticks.
var script = []struct {
	keys  []sim.Key
	ticks int
}{
	{[]sim.Key{sim.KeyRight}, 90},
	{nil, 30},
	{[]sim.Key{sim.KeyUp, sim.KeyLeft}, 60},
	{nil, 45},
	{[]sim.Key{sim.KeyDown}, 120},
	{[]sim.Key{sim.KeyLeft, sim.KeyRight}, 20},
}

func scriptedKeys(tick int) []sim.Key {
	period := 0
	for _, step := range script {
		period += step.ticks
	}

	tick %= period
	for _, step := range script {
		if tick < step.ticks {
			return step.keys
		}
		tick -= step.ticks
	}
	return nil
}

// scriptSystem stands in for the host: it rewrites InputState from the script
// before player control reads it.
type scriptSystem struct {
	Input ecs.Singleton[sim.InputState]
}

func (s *scriptSystem) Execute(frame *ecs.UpdateFrame) {
	in := s.Input.Get()
	in.Reset()
	for _, key := range scriptedKeys(int(frame.Frame - 1)) {
		in.Set(key, true)
	}
}

type world struct {
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	pipeline  *sim.Pipeline
	reports   int
}

func newWorld(opts sim.BootstrapOptions, tuning sim.Tuning) *world {
	registry := ecs.NewComponentRegistry()
	sim.RegisterComponents(registry)
	storage := ecs.NewStorage(registry)

	w := &world{
		storage:   storage,
		scheduler: ecs.NewScheduler(storage),
	}

	sim.Bootstrap(storage, opts, tuning)
	w.scheduler.Register(ecs.StagePrePhysics, &scriptSystem{})
	w.pipeline = sim.Register(w.scheduler, sim.ReporterFunc(func(sim.FpsReport) { w.reports++ }))
	return w
}

func (w *world) report() *Report {
	return &Report{
		Entities: w.storage.CollectStats().TotalEntityCount,
	}
}

func (w *world) finish(report *Report) {
	stats := w.scheduler.GetStats()
	report.Frames = int(stats.Frames)
	report.Simulated = time.Duration(w.scheduler.Elapsed() * float64(time.Second))
	report.Reflections = w.pipeline.Boundary.Reflections
	report.AnimationSwitches = w.pipeline.Animation.Switches
	report.DiagnosticsReports = w.reports
	report.Systems = stats.Systems
}

// Run bootstraps a world and advances it frames times at a fixed 1/60 s step.
func Run(opts sim.BootstrapOptions, tuning sim.Tuning, frames int) *Report {
	w := newWorld(opts, tuning)

	report := w.report()
	report.UpdateTime.Samples = make([]time.Duration, 0, frames)

	runtime.ReadMemStats(&report.MemStatsStart)
	startTime := time.Now()

	const dt = 1.0 / tickRate
	for range frames {
		updateStart := time.Now()
		w.scheduler.Once(dt)
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	w.finish(report)
	return report
}

// RunRealtime bootstraps a world and lets the scheduler tick it at 60 Hz until ctx is done.
// Delta times are measured from the wall clock, so the simulated time tracks real time.
// Per-frame update samples are not collected; the per-system table covers timing.
func RunRealtime(ctx context.Context, opts sim.BootstrapOptions, tuning sim.Tuning) *Report {
	w := newWorld(opts, tuning)
	report := w.report()

	runtime.ReadMemStats(&report.MemStatsStart)
	startTime := time.Now()

	w.scheduler.Run(ctx, time.Second/tickRate)

	report.TotalTime = time.Since(startTime)
	runtime.ReadMemStats(&report.MemStatsEnd)

	w.finish(report)
	return report
}
