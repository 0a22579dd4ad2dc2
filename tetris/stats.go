package tetris

import "github.com/kamstrup/intmap"

// Stats counts what happened during one session.
type Stats struct {
	dealt *intmap.Map[PieceType, int]

	Spawns       int
	Locked       int
	LinesCleared int
	Holds        int
	Drops        int
}

func newStats() *Stats {
	return &Stats{dealt: intmap.New[PieceType, int](PieceCount)}
}

func (s *Stats) recordDeal(t PieceType) {
	n, _ := s.dealt.Get(t)
	s.dealt.Put(t, n+1)
}

// Dealt returns how many pieces of type t were drawn from the bag. Hold swaps
// bring back an already dealt piece and are not counted.
func (s *Stats) Dealt(t PieceType) int {
	n, _ := s.dealt.Get(t)
	return n
}

// TotalDealt sums Dealt over all types.
func (s *Stats) TotalDealt() int {
	total := 0
	for t := range PieceCount {
		total += s.Dealt(PieceType(t))
	}
	return total
}
