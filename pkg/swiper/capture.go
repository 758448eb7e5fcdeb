package swiper

import "github.com/go-drift/drift/pkg/gestures"

// DragHandlers receive the horizontal drag stream captured for the strip.
type DragHandlers struct {
	OnStart  func(gestures.DragStartDetails)
	OnUpdate func(gestures.DragUpdateDetails)
	OnEnd    func(gestures.DragEndDetails)
	OnCancel func()
}

// DragRecognizer is the part of a drift gesture recognizer the viewport
// forwards pointer events to.
type DragRecognizer interface {
	AddPointer(gestures.PointerEvent)
	HandleEvent(gestures.PointerEvent)
	Dispose()
}

// PanCapture decides which pointer movements the swiper claims. The default,
// [HorizontalCapture], only claims horizontal drags so a vertical gesture
// still reaches an enclosing vertical ScrollView.
//
// Implementations must be comparable; the viewport recreates its recognizer
// when the capture value changes.
type PanCapture interface {
	// Recognizer returns a recognizer wired to handlers, or nil to ignore
	// pointer input entirely.
	Recognizer(handlers DragHandlers) DragRecognizer
}

// HorizontalCapture locks the swiper to horizontal pans using drift's
// horizontal drag recognizer in the default gesture arena.
type HorizontalCapture struct{}

// Recognizer returns a horizontal drag recognizer.
func (HorizontalCapture) Recognizer(handlers DragHandlers) DragRecognizer {
	recognizer := gestures.NewHorizontalDragGestureRecognizer(gestures.DefaultArena)
	recognizer.OnStart = handlers.OnStart
	recognizer.OnUpdate = handlers.OnUpdate
	recognizer.OnEnd = handlers.OnEnd
	recognizer.OnCancel = handlers.OnCancel
	return recognizer
}

// NoCapture ignores pointer input. Swipes can still be driven through a
// [SwipeController].
type NoCapture struct{}

// Recognizer returns nil.
func (NoCapture) Recognizer(DragHandlers) DragRecognizer {
	return nil
}
