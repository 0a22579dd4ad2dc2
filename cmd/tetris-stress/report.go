package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/google/uuid"
	"github.com/kamstrup/intmap"
	"github.com/plus3/searchtris/play"
	"github.com/plus3/searchtris/tetris"
)

// Report aggregates soak results across sessions and renders them as
// Markdown.
type Report struct {
	// Configuration
	Duration  time.Duration
	Seed      uint64
	Interval  time.Duration
	InputRate float64

	// Results
	Sessions      int
	Finished      int
	Frames        int
	Locked        int
	LinesCleared  int
	Holds         int
	InputsPushed  int
	InputsApplied int
	Best          uuid.UUID
	BestLines     int
	TotalTime     time.Duration
	FrameTime     Stats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats

	dealt *intmap.Map[tetris.PieceType, int]
}

// Stats keeps running frame-time figures; no samples are retained.
type Stats struct {
	Count int64
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration

	total time.Duration
}

// DealtCount is one row of the piece histogram.
type DealtCount struct {
	Piece tetris.PieceType
	Count int
}

// NewReport creates an empty report for the given run configuration.
func NewReport(duration time.Duration, seed uint64, interval time.Duration, inputRate float64) *Report {
	return &Report{
		Duration:  duration,
		Seed:      seed,
		Interval:  interval,
		InputRate: inputRate,
		dealt:     intmap.New[tetris.PieceType, int](tetris.PieceCount),
	}
}

// AddSession folds a finished or interrupted game into the totals.
func (r *Report) AddSession(g *play.Game, pushed int) {
	st := g.Session.Stats()
	r.Sessions++
	if g.Over() {
		r.Finished++
	}
	r.Frames += int(g.Scheduler.GetStats().Frames)
	r.Locked += st.Locked
	r.LinesCleared += st.LinesCleared
	r.Holds += st.Holds
	if r.Best == uuid.Nil || st.LinesCleared > r.BestLines {
		r.Best, r.BestLines = g.ID, st.LinesCleared
	}
	r.InputsPushed += pushed
	applied, _ := g.InputCounts()
	r.InputsApplied += applied

	for t := tetris.PieceType(0); t < tetris.PieceCount; t++ {
		prev, _ := r.dealt.Get(t)
		r.dealt.Put(t, prev+st.Dealt(t))
	}
}

// Dealt returns the piece histogram in piece order.
func (r *Report) Dealt() []DealtCount {
	out := make([]DealtCount, 0, tetris.PieceCount)
	for t := tetris.PieceType(0); t < tetris.PieceCount; t++ {
		n, _ := r.dealt.Get(t)
		out = append(out, DealtCount{Piece: t, Count: n})
	}
	return out
}

// DealtSpread is the gap between the most and least dealt piece types.
func (r *Report) DealtSpread() int {
	counts := r.Dealt()
	lo, hi := counts[0].Count, counts[0].Count
	for _, c := range counts[1:] {
		lo = min(lo, c.Count)
		hi = max(hi, c.Count)
	}
	return hi - lo
}

// Record adds one frame duration.
func (s *Stats) Record(d time.Duration) {
	if s.Count == 0 || d < s.Min {
		s.Min = d
	}
	if d > s.Max {
		s.Max = d
	}
	s.total += d
	s.Count++
}

// Finalize computes the average of the recorded durations.
func (s *Stats) Finalize() {
	if s.Count == 0 {
		return
	}
	s.Avg = s.total / time.Duration(s.Count)
}

// Generate writes the report to w.
func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tetris Soak Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Frame Interval:** {{.Interval}}
- **Input Rate:** {{.InputRate}}

## Gameplay
- **Sessions:** {{.Sessions}} ({{.Finished}} ended in game over)
- **Frames:** {{.Frames}}
- **Pieces Locked:** {{.Locked}}
- **Lines Cleared:** {{.LinesCleared}}
- **Holds:** {{.Holds}}
- **Inputs:** {{.InputsApplied}} applied of {{.InputsPushed}} pressed
- **Best Session:** {{.Best}} ({{.BestLines}} lines)

## Pieces Dealt
{{range .Dealt}}- {{.Piece}}: {{.Count}}
{{end}}- **Spread:** {{.DealtSpread}}

## Performance Results
- **Total Test Time:** {{.TotalTime}}
- **Frame Time ({{.FrameTime.Count}} frames):**
  - **Avg:** {{.FrameTime.Avg}}
  - **Min:** {{.FrameTime.Min}}
  - **Max:** {{.FrameTime.Max}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
- Total GC Pause: {{.MemStatsEnd.PauseTotalNs | ns}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
