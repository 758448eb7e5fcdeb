package swiper

import (
	"fmt"
	"testing"
	"time"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/gestures"
	"github.com/go-drift/drift/pkg/graphics"
	drifttest "github.com/go-drift/drift/pkg/testing"
	"github.com/go-drift/drift/pkg/widgets"
)

// dragHost mounts a 320-wide swiper with the default horizontal capture.
type dragHost struct {
	core.StatefulBase
	length int
	start  int
	swipes *[]int
}

func (h dragHost) CreateState() core.State {
	return &dragHostState{}
}

type dragHostState struct {
	core.StateBase
	index int
}

func (s *dragHostState) InitState() {
	s.index = s.Element().Widget().(dragHost).start
}

func (s *dragHostState) Build(ctx core.BuildContext) core.Widget {
	host := s.Element().Widget().(dragHost)
	items := make([]int, host.length)
	for i := range items {
		items[i] = i
	}
	return Swiper[int]{
		CurrentIndex: s.index,
		Items:        items,
		Width:        320,
		ItemBuilder: func(ctx core.BuildContext, item int, index int) core.Widget {
			return widgets.Text{Content: fmt.Sprintf("page %d", item)}
		},
		OnSwipeEnd: func(next int, recenter func()) {
			*host.swipes = append(*host.swipes, next)
			s.SetState(func() { s.index = next })
			recenter()
		},
	}
}

func mountDragHost(t *testing.T, length, start int) (*drifttest.WidgetTester, *[]int) {
	t.Helper()
	swipes := &[]int{}
	tester := drifttest.NewWidgetTesterWithT(t)
	tester.PumpWidget(dragHost{length: length, start: start, swipes: swipes})
	return tester, swipes
}

func findViewport(t *testing.T, tester *drifttest.WidgetTester) *renderSwipeViewport {
	t.Helper()
	viewport, ok := tester.Find(drifttest.ByType[swipeViewport]()).RenderObject().(*renderSwipeViewport)
	if !ok {
		t.Fatal("swiper has no viewport render object")
	}
	return viewport
}

func pumpSettled(t *testing.T, tester *drifttest.WidgetTester) {
	t.Helper()
	if err := tester.PumpAndSettle(2 * time.Second); err != nil {
		t.Fatalf("PumpAndSettle: %v", err)
	}
}

// slowDrag moves the pointer by delta, holds still long enough for the
// recognizer's velocity estimate to decay below FlingVelocity, and releases.
func slowDrag(t *testing.T, tester *drifttest.WidgetTester, id int, start, delta graphics.Offset) {
	t.Helper()
	end := graphics.Offset{X: start.X + delta.X, Y: start.Y + delta.Y}
	if err := tester.SendPointerDown(start, id); err != nil {
		t.Fatalf("SendPointerDown: %v", err)
	}
	if err := tester.SendPointerMove(end, id); err != nil {
		t.Fatalf("SendPointerMove: %v", err)
	}
	time.Sleep(300 * time.Millisecond)
	if err := tester.SendPointerMove(end, id); err != nil {
		t.Fatalf("SendPointerMove: %v", err)
	}
	if err := tester.SendPointerUp(end, id); err != nil {
		t.Fatalf("SendPointerUp: %v", err)
	}
}

func TestSwiper_DragPastHalfAdvances(t *testing.T) {
	tester, swipes := mountDragHost(t, 10, 4)

	if err := tester.DragFrom(graphics.Offset{X: 160, Y: 100}, graphics.Offset{X: -200}); err != nil {
		t.Fatalf("DragFrom: %v", err)
	}
	pumpSettled(t, tester)

	if len(*swipes) != 1 || (*swipes)[0] != 5 {
		t.Fatalf("OnSwipeEnd calls = %v, want [5]", *swipes)
	}
	if !tester.Find(drifttest.ByText("page 6")).Exists() {
		t.Error("window should move to 4..6")
	}
	if got := findViewport(t, tester).offset(); got != 320 {
		t.Errorf("offset after recenter = %v, want 320", got)
	}
}

func TestSwiper_ShortDragSnapsBack(t *testing.T) {
	tester, swipes := mountDragHost(t, 10, 4)

	slowDrag(t, tester, 903, graphics.Offset{X: 160, Y: 100}, graphics.Offset{X: 60})
	pumpSettled(t, tester)

	if len(*swipes) != 0 {
		t.Errorf("short drag should not call OnSwipeEnd, got %v", *swipes)
	}
	if got := findViewport(t, tester).offset(); got != 320 {
		t.Errorf("offset = %v, want 320", got)
	}
	if !tester.Find(drifttest.ByText("page 3")).Exists() || tester.Find(drifttest.ByText("page 2")).Exists() {
		t.Error("window should stay on 3..5")
	}
}

func TestSwiper_FastShortFlingAdvances(t *testing.T) {
	tester, swipes := mountDragHost(t, 10, 4)
	viewport := findViewport(t, tester)

	// A 40 unit flick is well short of half a page; only the release
	// velocity carries it to the next item.
	viewport.handlers.OnStart(gestures.DragStartDetails{})
	viewport.handlers.OnUpdate(gestures.DragUpdateDetails{PrimaryDelta: -40})
	viewport.handlers.OnEnd(gestures.DragEndDetails{PrimaryVelocity: -1200})
	pumpSettled(t, tester)

	if len(*swipes) != 1 || (*swipes)[0] != 5 {
		t.Fatalf("OnSwipeEnd calls = %v, want [5]", *swipes)
	}

	// The same flick released slowly snaps back.
	viewport.handlers.OnStart(gestures.DragStartDetails{})
	viewport.handlers.OnUpdate(gestures.DragUpdateDetails{PrimaryDelta: -40})
	viewport.handlers.OnEnd(gestures.DragEndDetails{PrimaryVelocity: -100})
	pumpSettled(t, tester)

	if len(*swipes) != 1 {
		t.Errorf("slow release should not call OnSwipeEnd, got %v", *swipes)
	}
}

func TestSwiper_DragClampedAtFirstItem(t *testing.T) {
	tester, swipes := mountDragHost(t, 10, 0)
	viewport := findViewport(t, tester)

	if err := tester.SendPointerDown(graphics.Offset{X: 160, Y: 100}, 901); err != nil {
		t.Fatalf("SendPointerDown: %v", err)
	}
	if err := tester.SendPointerMove(graphics.Offset{X: 360, Y: 100}, 901); err != nil {
		t.Fatalf("SendPointerMove: %v", err)
	}
	if got := viewport.offset(); got != 0 {
		t.Errorf("offset while dragging before the first item = %v, want 0", got)
	}
	if err := tester.SendPointerUp(graphics.Offset{X: 360, Y: 100}, 901); err != nil {
		t.Fatalf("SendPointerUp: %v", err)
	}
	pumpSettled(t, tester)
	if len(*swipes) != 0 {
		t.Fatalf("drag past the first item should not call OnSwipeEnd, got %v", *swipes)
	}

	if err := tester.SendPointerDown(graphics.Offset{X: 700, Y: 100}, 902); err != nil {
		t.Fatalf("SendPointerDown: %v", err)
	}
	if err := tester.SendPointerMove(graphics.Offset{X: 100, Y: 100}, 902); err != nil {
		t.Fatalf("SendPointerMove: %v", err)
	}
	if got := viewport.offset(); got != 320 {
		t.Errorf("offset while dragging far forward = %v, want 320", got)
	}
	if err := tester.SendPointerUp(graphics.Offset{X: 100, Y: 100}, 902); err != nil {
		t.Fatalf("SendPointerUp: %v", err)
	}
	pumpSettled(t, tester)

	if len(*swipes) != 1 || (*swipes)[0] != 1 {
		t.Fatalf("OnSwipeEnd calls = %v, want [1]", *swipes)
	}
}

func TestSnapOffset(t *testing.T) {
	tests := []struct {
		name     string
		offset   float64
		velocity float64
		want     float64
	}{
		{name: "past half advances", offset: 520, want: 640},
		{name: "short drag snaps back", offset: 260, want: 320},
		{name: "fast forward flick", offset: 360, velocity: 1200, want: 640},
		{name: "fast backward flick", offset: 280, velocity: -1200, want: 0},
		{name: "slow release rounds", offset: 360, velocity: 100, want: 320},
		{name: "clamped at limit", offset: 600, velocity: 1200, want: 640},
		{name: "clamped at zero", offset: 10, velocity: -1200, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SnapOffset(tt.offset, 320, tt.velocity, 640); got != tt.want {
				t.Errorf("SnapOffset(%v, 320, %v, 640) = %v, want %v", tt.offset, tt.velocity, got, tt.want)
			}
		})
	}
}
