package debugui

import (
	"github.com/plus3/searchtris/frame"
	"github.com/plus3/searchtris/play"
)

// NewDebugSystems returns the systems that drive the standard inspector
// windows for a game. Register them after the game's own systems.
func NewDebugSystems(game *play.Game) (*ImguiSystem, *PerformanceStats) {
	perf := NewPerformanceStats(120)
	sessionWindow := &SessionInspector{Session: game.Session}
	schedulerWindow := &SchedulerInspector{Scheduler: game.Scheduler}

	return &ImguiSystem{
		Items: []ImguiItem{
			{Render: sessionWindow.Render},
			{Render: schedulerWindow.Render},
			{Render: perf.Render},
		},
	}, perf
}

var _ frame.System = (*ImguiSystem)(nil)
var _ frame.System = (*PerformanceStats)(nil)
