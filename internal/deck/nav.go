package deck

// Navigator tracks the position shown by the render loop. Index 0 is the
// title view; 1..slideCount address Slides[index-1]. The index never leaves
// [0, slideCount].
type Navigator struct {
	index      int
	slideCount int
}

// NewNavigator returns a navigator for a deck of slideCount slides,
// positioned on the title view.
func NewNavigator(slideCount int) *Navigator {
	return &Navigator{slideCount: max(slideCount, 0)}
}

// Current returns the shown index.
func (n *Navigator) Current() int { return n.index }

// SlideCount returns the upper bound of the index range.
func (n *Navigator) SlideCount() int { return n.slideCount }

// StepBack moves one position toward the title view, stopping there.
func (n *Navigator) StepBack() {
	n.index = max(n.index-1, 0)
}

// StepForward moves one position toward the last slide, stopping there.
func (n *Navigator) StepForward() {
	n.index = min(n.index+1, n.slideCount)
}

// SetSlideCount re-bounds the navigator after the deck changed size and
// clamps the index into the new range. The position is kept when it still
// exists.
func (n *Navigator) SetSlideCount(slideCount int) {
	n.slideCount = max(slideCount, 0)
	n.index = min(n.index, n.slideCount)
}
