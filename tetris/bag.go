package tetris

import "math/rand/v2"

// Bag deals piece types in shuffled runs of all seven, so every refill is a
// permutation of I, O, T, J, L, S, Z.
type Bag struct {
	rng     *rand.Rand
	pending []PieceType
}

// NewBag returns a bag drawing from rng. A nil rng uses the global source.
func NewBag(rng *rand.Rand) *Bag {
	return &Bag{rng: rng, pending: make([]PieceType, 0, PieceCount)}
}

func (b *Bag) refill() {
	b.pending = b.pending[:0]
	for t := range PieceCount {
		b.pending = append(b.pending, PieceType(t))
	}
	// Fisher-Yates
	for i := len(b.pending) - 1; i > 0; i-- {
		j := b.intN(i + 1)
		b.pending[i], b.pending[j] = b.pending[j], b.pending[i]
	}
}

func (b *Bag) intN(n int) int {
	if b.rng == nil {
		return rand.IntN(n)
	}
	return b.rng.IntN(n)
}

// Next removes and returns the front of the bag, refilling it when empty.
func (b *Bag) Next() PieceType {
	if len(b.pending) == 0 {
		b.refill()
	}
	t := b.pending[0]
	b.pending = b.pending[1:]
	return t
}

// Upcoming returns the types left in the current run, front first.
func (b *Bag) Upcoming() []PieceType {
	out := make([]PieceType, len(b.pending))
	copy(out, b.pending)
	return out
}
