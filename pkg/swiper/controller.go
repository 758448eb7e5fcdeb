package swiper

// swipeTarget is implemented by the mounted swiper state.
type swipeTarget interface {
	swipeNext() bool
	swipeBack() bool
	currentIndex() int
	isScrolling() bool
}

// SwipeController drives a mounted [Swiper] from outside its gesture stream
// and reports accepted transitions.
//
//	controller := &swiper.SwipeController{}
//	controller.AddListener(func(t swiper.Transition) {
//	    log.Printf("swiped %v to %d", t.Direction, t.To)
//	})
//
//	// later, from a button
//	controller.Next()
//
// A controller attaches to one swiper at a time. Calls on a detached
// controller are no-ops.
type SwipeController struct {
	target         swipeTarget
	listeners      []listenerEntry
	nextListenerID int
}

type listenerEntry struct {
	id int
	fn func(Transition)
}

// Next animates to the next item. It returns false when the swiper is on the
// last item, a swipe is already in flight, or no swiper is attached.
func (c *SwipeController) Next() bool {
	if c.target == nil {
		return false
	}
	return c.target.swipeNext()
}

// Back animates to the previous item. It returns false when the swiper is on
// the first item, a swipe is already in flight, or no swiper is attached.
func (c *SwipeController) Back() bool {
	if c.target == nil {
		return false
	}
	return c.target.swipeBack()
}

// Index returns the current index of the attached swiper, or -1.
func (c *SwipeController) Index() int {
	if c.target == nil {
		return -1
	}
	return c.target.currentIndex()
}

// Scrolling reports whether the attached swiper is mid-swipe.
func (c *SwipeController) Scrolling() bool {
	return c.target != nil && c.target.isScrolling()
}

// Attached reports whether a swiper is using this controller.
func (c *SwipeController) Attached() bool {
	return c.target != nil
}

// AddListener registers a callback for accepted transitions. Listeners run
// in registration order, all before OnSwipeEnd. Returns an unsubscribe
// function.
func (c *SwipeController) AddListener(listener func(Transition)) func() {
	if listener == nil {
		return func() {}
	}
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners = append(c.listeners, listenerEntry{id: id, fn: listener})
	return func() {
		for i, entry := range c.listeners {
			if entry.id == id {
				c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

func (c *SwipeController) attach(target swipeTarget) {
	c.target = target
}

func (c *SwipeController) detach(target swipeTarget) {
	if c.target == target {
		c.target = nil
	}
}

func (c *SwipeController) notify(t Transition) {
	// Snapshot so a listener may unsubscribe while being notified.
	for _, entry := range append([]listenerEntry(nil), c.listeners...) {
		entry.fn(t)
	}
}
