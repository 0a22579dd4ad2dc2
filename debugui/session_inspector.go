package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/searchtris/tetris"
)

// SessionInspector shows the live state of one session.
type SessionInspector struct {
	Session *tetris.Session
}

// Render draws the session window.
func (si *SessionInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(300, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(280, 360), imgui.CondOnce)

	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	s := si.Session
	imgui.Text(fmt.Sprintf("State: %s", s.State()))
	imgui.Text(fmt.Sprintf("Drop interval: %s", s.DropInterval()))

	if p, ok := s.Current(); ok {
		imgui.Text(fmt.Sprintf("Piece: %s rot=%d row=%d col=%d", p.Type, p.Rotation, p.Row, p.Col))
		if ghost, ok := s.Ghost(); ok {
			imgui.Text(fmt.Sprintf("Ghost row: %d", ghost.Row))
		}
	} else {
		imgui.Text("Piece: -")
	}

	held := "-"
	if t, ok := s.Held(); ok {
		held = t.String()
	}
	imgui.Text(fmt.Sprintf("Hold: %s (can hold: %t)", held, s.CanHold()))
	imgui.Text("Bag: " + upcomingText(s.Upcoming()))

	imgui.Separator()
	st := s.Stats()
	imgui.Text(fmt.Sprintf("Spawns: %d  Locked: %d", st.Spawns, st.Locked))
	imgui.Text(fmt.Sprintf("Lines: %d  Holds: %d  Drops: %d", st.LinesCleared, st.Holds, st.Drops))

	if imgui.TreeNodeStr("Dealt per type") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("DealtTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Type")
			imgui.TableSetupColumn("Dealt")
			imgui.TableHeadersRow()

			for i := range tetris.PieceCount {
				t := tetris.PieceType(i)
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(t.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", st.Dealt(t)))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Board") {
		board := s.Board()
		for r := 0; r < board.Rows(); r++ {
			imgui.Text(rowText(board.Row(r)))
		}
		imgui.TreePop()
	}

	imgui.End()
}

func upcomingText(types []tetris.PieceType) string {
	if len(types) == 0 {
		return "(refill)"
	}
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return strings.Join(names, " ")
}

func rowText(row []uint8) string {
	var b strings.Builder
	for _, v := range row {
		if v == 0 {
			b.WriteByte('.')
		} else {
			b.WriteString(tetris.PieceType(v - 1).String())
		}
	}
	return b.String()
}
