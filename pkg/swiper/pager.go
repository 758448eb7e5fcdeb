package swiper

import "fmt"

// Scroller moves the physical strip. It is implemented by the swiper's
// viewport and by recording fakes in tests and the replay tool.
type Scroller interface {
	ScrollTo(offset float64, animated bool)
}

// ScrollerFunc adapts a function to [Scroller].
type ScrollerFunc func(offset float64, animated bool)

// ScrollTo calls f(offset, animated).
func (f ScrollerFunc) ScrollTo(offset float64, animated bool) {
	f(offset, animated)
}

// Direction is the direction of an index transition.
type Direction int

const (
	// DirectionNone means the index did not change.
	DirectionNone Direction = iota
	// DirectionBack moves to the previous item.
	DirectionBack
	// DirectionForward moves to the next item.
	DirectionForward
)

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "none"
	case DirectionBack:
		return "back"
	case DirectionForward:
		return "forward"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Transition is an accepted index change proposed at settle time.
type Transition struct {
	From      int
	To        int
	Direction Direction
	// Offset is the physical offset the strip settled at.
	Offset float64
}

// Resolve applies the settle policy to an offset observed when a scroll comes
// to rest. It returns the proposed index and true when the offset crossed
// into a neighbouring slot, and false when the gesture changed nothing:
//
//   - start stop with current 0: already at the beginning
//   - start stop: back to current-1
//   - end stop, or middle stop with current 0: forward to current+1,
//     unless current already equals length
//   - anything else: the strip returned to the middle, or the offset is not
//     a stop at all
//
// Resolve holds no state; [Pager] layers the scrolling guard on top of it.
func Resolve(offset float64, current, length int, width float64) (int, bool) {
	stop := Classify(offset, width)
	switch {
	case stop == StopStart && current == 0:
		return current, false
	case stop == StopStart:
		return current - 1, true
	case stop == StopEnd, stop == StopMiddle && current == 0:
		// The window bound elsewhere is length-1; this guard is kept at
		// length. Neither offset is reachable on the last item because the
		// strip has no next slot to scroll into.
		if current == length {
			return current, false
		}
		return current + 1, true
	default:
		return current, false
	}
}

// Pager is the windowed index state machine. It never owns the current
// index: every call receives the caller's index and the pager only proposes
// changes. Its single piece of state is the scrolling flag, which rejects
// programmatic swipes while a scroll is in flight.
//
// Pager is not safe for concurrent use; it runs on the UI thread.
type Pager struct {
	width     float64
	scroller  Scroller
	scrolling bool
}

// NewPager creates a pager for slots of the given width. scroller may be nil,
// in which case scroll requests only update the flag.
func NewPager(width float64, scroller Scroller) *Pager {
	return &Pager{width: width, scroller: scroller}
}

// Width returns the slot width.
func (p *Pager) Width() float64 {
	return p.width
}

// SetWidth updates the slot width, for example after a layout change.
func (p *Pager) SetWidth(width float64) {
	p.width = width
}

// Scrolling reports whether a scroll is in flight.
func (p *Pager) Scrolling() bool {
	return p.scrolling
}

// BeginScroll records user scroll movement.
func (p *Pager) BeginScroll() {
	p.scrolling = true
}

// Reset clears the scrolling flag without resolving a transition, for
// example when the caller replaces the index while a swipe is in flight.
func (p *Pager) Reset() {
	p.scrolling = false
}

// Advance requests an animated scroll to the next item. It returns false
// without side effects when current is the last item or a scroll is already
// in flight. It does not change the index; that happens at settle time.
func (p *Pager) Advance(current, length int) bool {
	if current >= length-1 || p.scrolling {
		return false
	}
	p.scrolling = true
	target := StopMiddle
	if current > 0 {
		target = StopEnd
	}
	p.scrollTo(target.Offset(p.width), true)
	return true
}

// Retreat requests an animated scroll to the previous item. It returns false
// without side effects when current is the first item or a scroll is already
// in flight.
func (p *Pager) Retreat(current int) bool {
	if current <= 0 || p.scrolling {
		return false
	}
	p.scrolling = true
	p.scrollTo(StopStart.Offset(p.width), true)
	return true
}

// Settle handles the end of a momentum scroll. The scrolling flag is cleared
// whether or not the index changes.
func (p *Pager) Settle(offset float64, current, length int) (Transition, bool) {
	p.scrolling = false
	next, ok := Resolve(offset, current, length, p.width)
	if !ok {
		return Transition{From: current, To: current, Offset: offset}, false
	}
	dir := DirectionForward
	if next < current {
		dir = DirectionBack
	}
	return Transition{From: current, To: next, Direction: dir, Offset: offset}, true
}

// Recenter jumps the strip back to the middle slot after the caller applied
// next. When next is 0 there is no previous slot, so the strip stays at the
// start. Calling it more than once has no further effect.
func (p *Pager) Recenter(next int) {
	if next == 0 {
		return
	}
	p.scrollTo(StopMiddle.Offset(p.width), false)
}

// RecenterFunc returns a closure calling Recenter(next), in the form handed
// to OnSwipeEnd callbacks.
func (p *Pager) RecenterFunc(next int) func() {
	return func() { p.Recenter(next) }
}

func (p *Pager) scrollTo(offset float64, animated bool) {
	if p.scroller != nil {
		p.scroller.ScrollTo(offset, animated)
	}
}
