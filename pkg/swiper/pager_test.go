package swiper

import "testing"

const testWidth = 400.0

type scrollCall struct {
	offset   float64
	animated bool
}

// recordingScroller keeps the strip offset and every ScrollTo call.
type recordingScroller struct {
	offset float64
	calls  []scrollCall
}

func (r *recordingScroller) ScrollTo(offset float64, animated bool) {
	r.offset = offset
	r.calls = append(r.calls, scrollCall{offset: offset, animated: animated})
}

func (r *recordingScroller) last() (scrollCall, bool) {
	if len(r.calls) == 0 {
		return scrollCall{}, false
	}
	return r.calls[len(r.calls)-1], true
}

func TestPager_AdvanceTargets(t *testing.T) {
	scroller := &recordingScroller{}
	pager := NewPager(testWidth, scroller)

	if !pager.Advance(0, 5) {
		t.Fatal("advance from first item should be accepted")
	}
	call, _ := scroller.last()
	if call.offset != testWidth || !call.animated {
		t.Errorf("advance from 0 scrolled to %+v, want animated %v", call, testWidth)
	}

	pager.Settle(testWidth, 0, 5)
	if !pager.Advance(2, 5) {
		t.Fatal("advance from interior item should be accepted")
	}
	call, _ = scroller.last()
	if call.offset != 2*testWidth || !call.animated {
		t.Errorf("advance from 2 scrolled to %+v, want animated %v", call, 2*testWidth)
	}
}

func TestPager_AdvanceNoops(t *testing.T) {
	scroller := &recordingScroller{}
	pager := NewPager(testWidth, scroller)

	if pager.Advance(4, 5) {
		t.Error("advance on last item should be rejected")
	}
	if pager.Scrolling() {
		t.Error("rejected advance should not set scrolling")
	}

	pager.BeginScroll()
	if pager.Advance(1, 5) {
		t.Error("advance while scrolling should be rejected")
	}
	if len(scroller.calls) != 0 {
		t.Errorf("rejected advances scrolled: %+v", scroller.calls)
	}
}

func TestPager_RetreatNoops(t *testing.T) {
	scroller := &recordingScroller{}
	pager := NewPager(testWidth, scroller)

	if pager.Retreat(0) {
		t.Error("retreat on first item should be rejected")
	}
	if !pager.Retreat(3) {
		t.Fatal("retreat from interior item should be accepted")
	}
	call, _ := scroller.last()
	if call.offset != 0 || !call.animated {
		t.Errorf("retreat scrolled to %+v, want animated 0", call)
	}
	if pager.Retreat(3) {
		t.Error("second retreat before settle should be rejected")
	}
	if len(scroller.calls) != 1 {
		t.Errorf("expected one scroll, got %d", len(scroller.calls))
	}
}

func TestPager_Settle(t *testing.T) {
	tests := []struct {
		name    string
		offset  float64
		current int
		length  int
		want    int
		ok      bool
		dir     Direction
	}{
		{"start at first item", 0, 0, 10, 0, false, DirectionNone},
		{"start goes back", 0, 5, 10, 4, true, DirectionBack},
		{"end goes forward", 2 * testWidth, 3, 10, 4, true, DirectionForward},
		{"middle at first item goes forward", testWidth, 0, 10, 1, true, DirectionForward},
		{"middle elsewhere is neutral", testWidth, 3, 10, 3, false, DirectionNone},
		{"non-canonical offset", 123.4, 3, 10, 3, false, DirectionNone},
		{"end guard at length", 2 * testWidth, 10, 10, 10, false, DirectionNone},
		{"float noise at end", 2*testWidth - 0.2, 3, 10, 4, true, DirectionForward},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pager := NewPager(testWidth, nil)
			pager.BeginScroll()
			tr, ok := pager.Settle(tt.offset, tt.current, tt.length)
			if ok != tt.ok {
				t.Fatalf("Settle ok = %v, want %v", ok, tt.ok)
			}
			if tr.To != tt.want || tr.From != tt.current || tr.Direction != tt.dir {
				t.Errorf("Settle = %+v, want to=%d dir=%v", tr, tt.want, tt.dir)
			}
			if pager.Scrolling() {
				t.Error("settle should always clear scrolling")
			}
		})
	}
}

func TestResolve_MatchesPager(t *testing.T) {
	for current := 0; current < 5; current++ {
		for _, stop := range []Stop{StopStart, StopMiddle, StopEnd} {
			offset := stop.Offset(testWidth)
			next, ok := Resolve(offset, current, 5, testWidth)
			tr, trOK := NewPager(testWidth, nil).Settle(offset, current, 5)
			if ok != trOK || next != tr.To {
				t.Errorf("current %d stop %v: Resolve=(%d,%v) Settle=(%d,%v)", current, stop, next, ok, tr.To, trOK)
			}
		}
	}
}

func TestPager_RecenterIdempotent(t *testing.T) {
	scroller := &recordingScroller{}
	pager := NewPager(testWidth, scroller)

	pager.Recenter(0)
	pager.Recenter(0)
	if scroller.offset != 0 || len(scroller.calls) != 0 {
		t.Errorf("recenter at 0 moved the strip: %+v", scroller.calls)
	}

	recenter := pager.RecenterFunc(4)
	recenter()
	recenter()
	if scroller.offset != testWidth {
		t.Errorf("offset after recenter = %v, want %v", scroller.offset, testWidth)
	}
	for _, call := range scroller.calls {
		if call.animated {
			t.Error("recenter should not animate")
		}
	}
}

func TestPager_RoundTrip(t *testing.T) {
	for start := 1; start < 8; start++ {
		scroller := &recordingScroller{offset: testWidth}
		pager := NewPager(testWidth, scroller)
		index := start

		apply := func() {
			tr, ok := pager.Settle(scroller.offset, index, 10)
			if !ok {
				t.Fatalf("start %d: settle at %v rejected", start, scroller.offset)
			}
			index = tr.To
			pager.Recenter(index)
		}

		if !pager.Advance(index, 10) {
			t.Fatalf("start %d: advance rejected", start)
		}
		apply()
		if !pager.Retreat(index) {
			t.Fatalf("start %d: retreat rejected", start)
		}
		apply()

		if index != start {
			t.Errorf("advance+retreat from %d ended at %d", start, index)
		}
		if scroller.offset != testWidth {
			t.Errorf("start %d: offset %v, want %v", start, scroller.offset, testWidth)
		}
	}
}

func TestPager_RetreatToFirstStaysAtStart(t *testing.T) {
	scroller := &recordingScroller{offset: testWidth}
	pager := NewPager(testWidth, scroller)

	pager.Retreat(1)
	tr, ok := pager.Settle(scroller.offset, 1, 10)
	if !ok || tr.To != 0 {
		t.Fatalf("expected transition to 0, got %+v ok=%v", tr, ok)
	}
	pager.Recenter(tr.To)
	if scroller.offset != 0 {
		t.Errorf("offset after recentering on first item = %v, want 0", scroller.offset)
	}

	if !pager.Advance(0, 10) {
		t.Fatal("advance from first item should be accepted")
	}
	tr, ok = pager.Settle(scroller.offset, 0, 10)
	if !ok || tr.To != 1 {
		t.Errorf("expected transition to 1, got %+v ok=%v", tr, ok)
	}
}

func TestPager_ResetClearsScrolling(t *testing.T) {
	pager := NewPager(testWidth, nil)
	pager.Advance(2, 5)
	if !pager.Scrolling() {
		t.Fatal("advance should set scrolling")
	}
	pager.Reset()
	if pager.Scrolling() {
		t.Error("reset should clear scrolling")
	}
	if !pager.Advance(2, 5) {
		t.Error("advance after reset should be accepted")
	}
}
