package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/skyship/ecs"
)

func NewSystemTimings(scheduler *ecs.Scheduler) *SystemTimings {
	return &SystemTimings{scheduler: scheduler}
}

// stageGroup is one stage's slice of the scheduler stats.
type stageGroup struct {
	Stage   ecs.Stage
	Systems []ecs.SystemStats
}

// groupByStage splits stats into stages in execution order, omitting empty stages.
func groupByStage(stats *ecs.SchedulerStats) []stageGroup {
	var groups []stageGroup
	for _, stage := range ecs.Stages() {
		group := stageGroup{Stage: stage}
		for _, sys := range stats.Systems {
			if sys.Stage == stage {
				group.Systems = append(group.Systems, sys)
			}
		}
		if len(group.Systems) > 0 {
			groups = append(groups, group)
		}
	}
	return groups
}

func (st *SystemTimings) Render() {
	if !imgui.BeginV("Systems", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := st.scheduler.GetStats()
	imgui.Text(fmt.Sprintf("Frame %d, %.1fs simulated", stats.Frames, stats.Elapsed))
	imgui.Text(fmt.Sprintf("Systems: %d, executions: %d", stats.SystemCount, stats.TotalExecutions))
	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	for _, group := range groupByStage(stats) {
		if !imgui.TreeNodeStr(group.Stage.String()) {
			continue
		}
		if imgui.BeginTableV("Systems"+group.Stage.String(), 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range group.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(sys.LastDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
