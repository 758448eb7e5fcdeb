package swiper

import (
	"math"
	"time"

	"github.com/go-drift/drift/pkg/animation"
	"github.com/go-drift/drift/pkg/core"
	drifterrors "github.com/go-drift/drift/pkg/errors"
	"github.com/go-drift/drift/pkg/gestures"
	"github.com/go-drift/drift/pkg/widgets"
)

const (
	// DefaultDuration is the settle animation length when Duration is zero.
	DefaultDuration = 250 * time.Millisecond
	// FlingVelocity is the release speed, in units per second, above which a
	// drag moves one page in the fling direction instead of snapping to the
	// nearest page.
	FlingVelocity = 300.0
)

// Swiper shows one item of Items at a time and pages horizontally between
// them. Only the items at CurrentIndex-1, CurrentIndex and CurrentIndex+1
// are built.
//
// CurrentIndex belongs to the caller. When a swipe settles on a neighbouring
// item, OnSwipeEnd receives the proposed index and a recenter function; the
// caller applies the index and then calls recenter so the strip snaps back to
// the middle slot. Until the caller does so the swiper keeps showing the old
// window.
//
// ItemBuilder and OnSwipeEnd are required; a Swiper without them panics when
// mounted.
//
// # Gestures
//
// By default the swiper claims horizontal drags only (see [HorizontalCapture]),
// so it can sit inside a vertical [widgets.ScrollView]. Releasing a drag snaps
// to the nearest page, or one page in the fling direction when released faster
// than [FlingVelocity]. Use [NoCapture] together with a [SwipeController] for a
// swiper that only moves programmatically.
type Swiper[T any] struct {
	core.StatefulBase

	// CurrentIndex is the index of the visible item.
	CurrentIndex int
	// Items is the backing sequence. It is read, never modified.
	Items []T
	// Width is the width of one page. Zero uses the width the swiper is laid
	// out with, which is the viewport width for a full-screen swiper.
	Width float64
	// ItemBuilder builds the widget for one item.
	ItemBuilder func(ctx core.BuildContext, item T, index int) core.Widget
	// OnSwipeEnd is called once per accepted transition.
	OnSwipeEnd func(next int, recenter func())
	// Controller optionally drives the swiper programmatically.
	Controller *SwipeController
	// Capture selects which pointer movements the swiper claims.
	// Defaults to HorizontalCapture.
	Capture PanCapture
	// Duration is the length of the settle animation. Defaults to DefaultDuration.
	Duration time.Duration
}

func (s Swiper[T]) CreateState() core.State {
	if s.ItemBuilder == nil {
		panic("swiper: Swiper.ItemBuilder is required")
	}
	if s.OnSwipeEnd == nil {
		panic("swiper: Swiper.OnSwipeEnd is required")
	}
	return &swiperState[T]{}
}

func (s Swiper[T]) duration() time.Duration {
	if s.Duration <= 0 {
		return DefaultDuration
	}
	return s.Duration
}

type swiperState[T any] struct {
	core.StateBase
	pager      *Pager
	position   *stripPosition
	extent     *pageExtent
	anim       *animation.AnimationController
	from       float64
	to         float64
	controller *SwipeController
	handlers   DragHandlers
	// proposed is the index last handed to OnSwipeEnd, or -1.
	proposed int
}

func (s *swiperState[T]) InitState() {
	widgetValue, ok := s.currentWidget()
	if !ok {
		return
	}
	s.proposed = -1
	s.position = &stripPosition{offset: InitialOffset(widgetValue.CurrentIndex, widgetValue.Width)}
	s.pager = NewPager(widgetValue.Width, ScrollerFunc(s.scrollTo))
	s.extent = &pageExtent{width: widgetValue.Width, onResize: s.onPageResize}
	s.handlers = DragHandlers{
		OnStart:  s.onDragStart,
		OnUpdate: s.onDragUpdate,
		OnEnd:    s.onDragEnd,
		OnCancel: s.onDragCancel,
	}

	s.anim = animation.NewAnimationController(widgetValue.duration())
	core.UseDisposable(s, s.anim)
	s.anim.Curve = animation.EaseOut
	s.anim.AddListener(s.onTick)
	s.anim.AddStatusListener(s.onStatus)

	s.attachController(widgetValue.Controller)
}

func (s *swiperState[T]) Build(ctx core.BuildContext) core.Widget {
	widgetValue, ok := s.currentWidget()
	if !ok {
		return nil
	}
	if widgetValue.Width > 0 {
		s.extent.resolve(widgetValue.Width)
	}
	// Slots read the page width from the extent at layout time.
	slots := Materialize(widgetValue.CurrentIndex, widgetValue.Items, func(item T, index int) core.Widget {
		return pageSlot{
			Extent: s.extent,
			Child:  widgetValue.ItemBuilder(ctx, item, index),
		}
	})
	return swipeViewport{
		Child: widgets.Row{
			Children:           slots,
			CrossAxisAlignment: widgets.CrossAxisAlignmentStretch,
			MainAxisSize:       widgets.MainAxisSizeMin,
		},
		Position:  s.position,
		Extent:    s.extent,
		PageWidth: widgetValue.Width,
		Capture:   widgetValue.Capture,
		Handlers:  s.handlers,
	}
}

// onPageResize runs when the viewport lays out with a new page width.
func (s *swiperState[T]) onPageResize(width float64) {
	widgetValue, ok := s.currentWidget()
	if !ok {
		return
	}
	s.resolveWidth(widgetValue, width)
}

func (s *swiperState[T]) DidUpdateWidget(oldWidget core.StatefulWidget) {
	old, ok := oldWidget.(Swiper[T])
	if !ok {
		return
	}
	current, ok := s.currentWidget()
	if !ok {
		return
	}
	if old.Controller != current.Controller {
		s.detachController()
		s.attachController(current.Controller)
	}
	if old.Duration != current.Duration {
		s.anim.Duration = current.duration()
	}
	if old.CurrentIndex != current.CurrentIndex {
		if current.CurrentIndex != s.proposed {
			// Index changed by the caller, not by a swipe: jump to the
			// resting offset of the new window.
			s.anim.Stop()
			s.pager.Reset()
			s.position.SetOffset(InitialOffset(current.CurrentIndex, s.pager.Width()))
		}
		s.proposed = -1
	}
	s.clampOffset(current)
}

func (s *swiperState[T]) Dispose() {
	s.detachController()
	s.StateBase.Dispose()
}

func (s *swiperState[T]) currentWidget() (Swiper[T], bool) {
	if s.Element() == nil {
		return Swiper[T]{}, false
	}
	widgetValue, ok := s.Element().Widget().(Swiper[T])
	return widgetValue, ok
}

// resolveWidth keeps the pager and strip position in step with the page
// width, preserving the relative offset when the width changes.
func (s *swiperState[T]) resolveWidth(widgetValue Swiper[T], width float64) {
	old := s.pager.Width()
	if width == old {
		return
	}
	s.pager.SetWidth(width)
	if old > 0 {
		s.position.SetOffset(s.position.Offset() / old * width)
		return
	}
	s.position.SetOffset(InitialOffset(widgetValue.CurrentIndex, width))
}

func (s *swiperState[T]) clampOffset(widgetValue Swiper[T]) {
	limit := MaxOffset(widgetValue.CurrentIndex, len(widgetValue.Items), s.pager.Width())
	s.position.SetOffset(widgets.Clamp(s.position.Offset(), 0, limit))
}

// scrollTo is the pager's Scroller.
func (s *swiperState[T]) scrollTo(offset float64, animated bool) {
	if !animated {
		s.anim.Stop()
		s.position.SetOffset(offset)
		return
	}
	s.animateTo(offset)
}

func (s *swiperState[T]) animateTo(offset float64) {
	s.from = s.position.Offset()
	s.to = offset
	s.anim.Reset()
	s.anim.Forward()
}

func (s *swiperState[T]) onTick() {
	s.position.SetOffset(s.from + (s.to-s.from)*s.anim.Value)
}

func (s *swiperState[T]) onStatus(status animation.AnimationStatus) {
	if status == animation.AnimationCompleted {
		s.settle(s.to)
	}
}

func (s *swiperState[T]) onDragStart(gestures.DragStartDetails) {
	s.anim.Stop()
	s.pager.BeginScroll()
}

func (s *swiperState[T]) onDragUpdate(details gestures.DragUpdateDetails) {
	widgetValue, ok := s.currentWidget()
	if !ok {
		return
	}
	s.pager.BeginScroll()
	limit := MaxOffset(widgetValue.CurrentIndex, len(widgetValue.Items), s.pager.Width())
	s.position.SetOffset(widgets.Clamp(s.position.Offset()-details.PrimaryDelta, 0, limit))
}

func (s *swiperState[T]) onDragEnd(details gestures.DragEndDetails) {
	s.snap(-details.PrimaryVelocity)
}

func (s *swiperState[T]) onDragCancel() {
	s.snap(0)
}

// snap animates to the page the strip should rest on after a release with
// the given offset velocity.
func (s *swiperState[T]) snap(velocity float64) {
	widgetValue, ok := s.currentWidget()
	if !ok {
		return
	}
	width := s.pager.Width()
	if width <= 0 {
		s.pager.Reset()
		return
	}
	limit := MaxOffset(widgetValue.CurrentIndex, len(widgetValue.Items), width)
	s.animateTo(SnapOffset(s.position.Offset(), width, velocity, limit))
}

// SnapOffset returns the page-aligned offset a strip released at offset with
// the given offset velocity comes to rest on: the nearest page, or the next
// page in the direction of travel when |velocity| exceeds FlingVelocity. The
// result is clamped to [0, limit].
func SnapOffset(offset, width, velocity, limit float64) float64 {
	if width <= 0 {
		return 0
	}
	page := offset / width
	target := math.Round(page)
	switch {
	case velocity > FlingVelocity:
		target = math.Floor(page) + 1
	case velocity < -FlingVelocity:
		target = math.Ceil(page) - 1
	}
	return widgets.Clamp(target*width, 0, limit)
}

func (s *swiperState[T]) settle(offset float64) {
	widgetValue, ok := s.currentWidget()
	if !ok {
		return
	}
	transition, accepted := s.pager.Settle(offset, widgetValue.CurrentIndex, len(widgetValue.Items))
	if !accepted {
		return
	}
	s.proposed = transition.To
	if s.controller != nil {
		s.controller.notify(transition)
	}
	defer drifterrors.Recover("swiper.OnSwipeEnd")
	widgetValue.OnSwipeEnd(transition.To, s.pager.RecenterFunc(transition.To))
}

func (s *swiperState[T]) attachController(controller *SwipeController) {
	if controller == nil {
		return
	}
	s.controller = controller
	controller.attach(s)
}

func (s *swiperState[T]) detachController() {
	if s.controller == nil {
		return
	}
	s.controller.detach(s)
	s.controller = nil
}

func (s *swiperState[T]) swipeNext() bool {
	widgetValue, ok := s.currentWidget()
	if !ok {
		return false
	}
	return s.pager.Advance(widgetValue.CurrentIndex, len(widgetValue.Items))
}

func (s *swiperState[T]) swipeBack() bool {
	widgetValue, ok := s.currentWidget()
	if !ok {
		return false
	}
	return s.pager.Retreat(widgetValue.CurrentIndex)
}

func (s *swiperState[T]) currentIndex() int {
	widgetValue, ok := s.currentWidget()
	if !ok {
		return -1
	}
	return widgetValue.CurrentIndex
}

func (s *swiperState[T]) isScrolling() bool {
	return s.pager.Scrolling()
}
