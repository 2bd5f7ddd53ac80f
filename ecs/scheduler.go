package ecs

import (
	"context"
	"reflect"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// Stage is a named phase of the per-frame pipeline.
// Stages always execute in declaration order.
type Stage int

const (
	StagePrePhysics Stage = iota
	StagePhysics
	StagePreRender
	StageRender
	StageUI

	stageCount
)

var stageNames = [stageCount]string{"PrePhysics", "Physics", "PreRender", "Render", "UI"}

func (s Stage) String() string {
	if s < 0 || s >= stageCount {
		return "Stage(" + strconv.Itoa(int(s)) + ")"
	}
	return stageNames[s]
}

// Stages returns every stage in execution order.
func Stages() []Stage {
	stages := make([]Stage, stageCount)
	for i := range stages {
		stages[i] = Stage(i)
	}
	return stages
}

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          uint64
	Elapsed         float64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	Stage          Stage
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type registeredSystem struct {
	system System
	stats  systemStatsInternal
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs registered systems once per frame, stage by stage.
// Execution is single-threaded: a system never overlaps another, and every system
// of a stage finishes before the next stage begins.
type Scheduler struct {
	storage *Storage
	stages  [stageCount][]*registeredSystem
	frame   *UpdateFrame
}

// NewScheduler creates a new scheduler for the given storage.
func NewScheduler(storage *Storage) *Scheduler {
	return &Scheduler{
		storage: storage,
		frame:   newUpdateFrame(storage),
	}
}

// Register adds a system to the end of the given stage and binds its Query and Singleton fields.
func (s *Scheduler) Register(stage Stage, system System) {
	if stage < 0 || stage >= stageCount {
		panic("ecs: unknown stage " + stage.String())
	}

	s.initializeFields(system)
	s.stages[stage] = append(s.stages[stage], &registeredSystem{
		system: system,
		stats: systemStatsInternal{
			name:        systemName(system),
			minDuration: time.Duration(1<<63 - 1),
		},
	})
}

func systemName(system System) string {
	if fn, ok := system.(SystemFunc); ok {
		name := runtime.FuncForPC(reflect.ValueOf(fn).Pointer()).Name()
		return name[strings.LastIndex(name, "/")+1:]
	}

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	return systemType.Name()
}

type storageBinder interface {
	Init(storage *Storage)
}

// initializeFields calls Init on every exported Query or Singleton field of a struct system.
func (s *Scheduler) initializeFields(system System) {
	systemValue := reflect.ValueOf(system)
	if systemValue.Kind() != reflect.Ptr || systemValue.Elem().Kind() != reflect.Struct {
		return
	}
	systemValue = systemValue.Elem()
	systemType := systemValue.Type()

	for i := 0; i < systemValue.NumField(); i++ {
		field := systemValue.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		typeName := field.Type().Name()
		if !strings.HasPrefix(typeName, "Query[") && !strings.HasPrefix(typeName, "Singleton[") {
			continue
		}

		binder, ok := field.Addr().Interface().(storageBinder)
		if !ok {
			panic("Init method not found on field: " + systemType.Field(i).Name)
		}
		binder.Init(s.storage)
	}
}

// Once executes every stage once with the given delta time, then flushes queued commands.
func (s *Scheduler) Once(dt float64) {
	frame := s.frame
	frame.DeltaTime = dt
	frame.Elapsed += dt
	frame.Frame++

	for stage := range stageCount {
		frame.Stage = stage
		for _, registered := range s.stages[stage] {
			start := time.Now()
			registered.system.Execute(frame)
			registered.stats.record(time.Since(start))
		}
	}

	frame.Commands.Flush(s.storage)
}

func (st *systemStatsInternal) record(duration time.Duration) {
	st.executionCount++
	st.lastDuration = duration
	st.totalDuration += duration
	if duration < st.minDuration {
		st.minDuration = duration
	}
	if duration > st.maxDuration {
		st.maxDuration = duration
	}
}

// Run executes all systems repeatedly at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// Elapsed returns the cumulative simulated time in seconds.
func (s *Scheduler) Elapsed() float64 {
	return s.frame.Elapsed
}

// GetStats returns statistics about system execution, ordered by stage then registration.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		Frames:  s.frame.Frame,
		Elapsed: s.frame.Elapsed,
	}

	for stage := range stageCount {
		for _, registered := range s.stages[stage] {
			internal := registered.stats

			avgDuration := time.Duration(0)
			minDuration := internal.minDuration
			if internal.executionCount > 0 {
				avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			} else {
				minDuration = 0
			}

			stats.Systems = append(stats.Systems, SystemStats{
				Name:           internal.name,
				Stage:          stage,
				ExecutionCount: internal.executionCount,
				MinDuration:    minDuration,
				MaxDuration:    internal.maxDuration,
				AvgDuration:    avgDuration,
				LastDuration:   internal.lastDuration,
				TotalDuration:  internal.totalDuration,
			})
			stats.TotalExecutions += internal.executionCount
		}
	}

	stats.SystemCount = len(stats.Systems)
	return stats
}
