package core

// Sequence replays a fixed script of draws. It is used to pin generation to a
// known set of choices. Bool consumes one value and reports whether it is
// non-zero; IntRange consumes one value and returns lo plus that value modulo
// the range width. An exhausted sequence starts over from the beginning.
type Sequence struct {
	vals []int
	pos  int
}

// NewSequence returns a Sequence that replays vals in order.
func NewSequence(vals ...int) *Sequence {
	return &Sequence{vals: append([]int(nil), vals...)}
}

func (s *Sequence) next() int {
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[s.pos%len(s.vals)]
	s.pos++
	return v
}

// Bool returns true when the next scripted value is non-zero.
func (s *Sequence) Bool() bool { return s.next() != 0 }

// IntRange maps the next scripted value into [lo, hi).
func (s *Sequence) IntRange(lo, hi int) int {
	v := s.next()
	if hi <= lo {
		return lo
	}
	n := hi - lo
	return lo + ((v%n)+n)%n
}

// Consumed reports how many values have been drawn.
func (s *Sequence) Consumed() int { return s.pos }
