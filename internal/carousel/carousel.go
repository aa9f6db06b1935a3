// Package carousel tracks the current index of a carousel or lightbox over
// an already-sorted list. Navigation wraps with modulo arithmetic and an
// empty list clamps everything to "render nothing".
package carousel

// SwipeThreshold is the minimum horizontal drag, in pixels, that counts as a
// swipe rather than a tap.
const SwipeThreshold = 50

type State struct {
	index  int
	length int
}

func New(length int) *State {
	if length < 0 {
		length = 0
	}
	return &State{length: length}
}

// Index returns the current position, or -1 when there is nothing to show.
func (s *State) Index() int {
	if s.length == 0 {
		return -1
	}
	return s.index
}

func (s *State) Len() int { return s.length }

func (s *State) Next() int {
	return s.advance(1)
}

func (s *State) Prev() int {
	return s.advance(-1)
}

// Jump moves straight to position i, clamping out-of-range targets into the
// valid range instead of wrapping.
func (s *State) Jump(i int) int {
	if s.length == 0 {
		return -1
	}
	if i < 0 {
		i = 0
	}
	if i >= s.length {
		i = s.length - 1
	}
	s.index = i
	return s.index
}

// Swipe applies a touch delta: a drag past the threshold advances one slide
// in the drag direction, anything shorter is ignored.
func (s *State) Swipe(deltaX int) int {
	if deltaX <= -SwipeThreshold {
		return s.Next()
	}
	if deltaX >= SwipeThreshold {
		return s.Prev()
	}
	return s.Index()
}

func (s *State) advance(step int) int {
	if s.length == 0 {
		return -1
	}
	s.index = ((s.index+step)%s.length + s.length) % s.length
	return s.index
}
