package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/tetris"
)

// PerformanceStats keeps a ring of recent frame times next to the runner's tick timing.
type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	recorded      int
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	if historyFrames <= 0 {
		panic("debugui: history must hold at least one frame")
	}
	return &PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Record stores one frame time in seconds.
func (ps *PerformanceStats) Record(deltaTime float32) {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
	if ps.recorded < ps.historyFrames {
		ps.recorded++
	}
}

// Samples returns the history in milliseconds, oldest first.
func (ps *PerformanceStats) Samples() []float32 {
	samples := make([]float32, ps.historyFrames)
	copy(samples, ps.frameHistory[ps.frameIndex:])
	copy(samples[ps.historyFrames-ps.frameIndex:], ps.frameHistory[:ps.frameIndex])
	return samples
}

// Average returns the mean of the recorded frame times in milliseconds.
func (ps *PerformanceStats) Average() float32 {
	if ps.recorded == 0 {
		return 0
	}
	var sum float32
	for _, ft := range ps.frameHistory {
		sum += ft
	}
	return sum / float32(ps.recorded)
}

// Render draws the performance window.
func (ps *PerformanceStats) Render(runner *tetris.Runner) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 330), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 260), imgui.CondOnce)

	if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avg := ps.Average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	} else {
		imgui.Text("Avg Frame Time: -")
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	samples := ps.Samples()
	imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))

	if imgui.TreeNodeStr("Tick Timing") {
		stats := runner.Stats()
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("TickTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Metric")
			imgui.TableSetupColumn("Value")
			imgui.TableHeadersRow()

			row := func(name, value string) {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(name)
				imgui.TableNextColumn()
				imgui.Text(value)
			}
			row("Ticks", fmt.Sprintf("%d", stats.Ticks))
			row("Avg", millis(stats.AvgDuration))
			row("Min", millis(stats.MinDuration))
			row("Max", millis(stats.MaxDuration))
			row("Last", millis(stats.LastDuration))

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

func millis(d time.Duration) string {
	return fmt.Sprintf("%.3f ms", float64(d.Microseconds())/1000.0)
}

// FrameTimer measures wall time between frames.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

// Delta returns the seconds since the previous call, or since the timer was created.
func (ft *FrameTimer) Delta() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
