package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/tetris"
)

// GameInspector shows session state and lets the user flip host settings. Pause and restart go
// through the latch so they land on the next tick like keyboard input.
type GameInspector struct {
	runner       *tetris.Runner
	latch        *tetris.InputLatch
	showGhost    *bool
	previewCount int
}

func NewGameInspector(runner *tetris.Runner, latch *tetris.InputLatch, showGhost *bool, previewCount int) *GameInspector {
	return &GameInspector{
		runner:       runner,
		latch:        latch,
		showGhost:    showGhost,
		previewCount: previewCount,
	}
}

func (gi *GameInspector) Render() {
	g := gi.runner.Game()

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 310), imgui.CondOnce)

	if !imgui.BeginV("Game", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if g.Paused() {
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "PAUSED")
		imgui.SameLine()
		if imgui.Button("Resume") {
			gi.latch.Press(tetris.ActionPause)
		}
	} else {
		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "RUNNING")
		imgui.SameLine()
		if imgui.Button("Pause") {
			gi.latch.Press(tetris.ActionPause)
		}
	}
	imgui.SameLine()
	imgui.PushStyleColorVec4(imgui.ColButton, imgui.NewVec4(0.7, 0.2, 0.2, 1.0))
	if imgui.Button("Restart") {
		gi.latch.Press(tetris.ActionRestart)
	}
	imgui.PopStyleColor()

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Score: %d", g.Score()))
	imgui.Text(fmt.Sprintf("Level: %d  Lines: %d", g.Level(), g.Lines()))

	active := g.Active()
	imgui.Text(fmt.Sprintf("Active: %s rot %s at (%d, %d)", active.Kind, active.Rot, active.X, active.Y))
	imgui.Text(fmt.Sprintf("Next: %v", g.Preview(gi.previewCount)))
	imgui.Text(fmt.Sprintf("Filled cells: %d", g.Board().Filled()))

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Gravity: %.3f s/row (base %.3f)", g.GravityInterval(), g.BaseGravityInterval()))
	pulse := g.PulseGravity()
	if imgui.Checkbox("Pulse gravity", &pulse) {
		gi.runner.SetPulseGravity(pulse)
	}
	if gi.showGhost != nil {
		imgui.Checkbox("Ghost piece", gi.showGhost)
	}

	if imgui.TreeNodeStr("Counters") {
		stats := g.Stats()
		imgui.BulletText(fmt.Sprintf("Locked: %d", stats.Locked()))
		imgui.BulletText(fmt.Sprintf("Hard drops: %d", stats.HardDrops()))
		imgui.BulletText(fmt.Sprintf("Soft drops: %d", stats.SoftDrops()))
		imgui.BulletText(fmt.Sprintf("Top outs: %d", stats.TopOuts()))
		imgui.BulletText(fmt.Sprintf("Clears 1/2/3/4: %d/%d/%d/%d",
			stats.Clears(1), stats.Clears(2), stats.Clears(3), stats.Clears(4)))
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Spawns per kind") {
		gi.renderSpawnTable(g.Stats())
		imgui.TreePop()
	}

	imgui.End()
}

func (gi *GameInspector) renderSpawnTable(stats *tetris.Stats) {
	total := stats.TotalSpawned()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if !imgui.BeginTableV("SpawnTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}
	imgui.TableSetupColumn("Kind")
	imgui.TableSetupColumn("Spawned")
	imgui.TableSetupColumn("Share")
	imgui.TableHeadersRow()

	for _, kind := range tetris.Tetrominoes {
		n := stats.Spawned(kind)
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(kind.String())
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d", n))
		imgui.TableNextColumn()
		if total > 0 {
			imgui.Text(fmt.Sprintf("%.1f%%", 100*float64(n)/float64(total)))
		} else {
			imgui.Text("-")
		}
	}

	imgui.EndTable()
}
