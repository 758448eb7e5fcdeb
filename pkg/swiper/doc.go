// Package swiper provides a horizontally paged view that keeps only three
// items alive: the previous, current, and next entry of a caller-owned list.
//
// # Ownership
//
// The caller owns the current index. [Swiper] never changes it; when a swipe
// settles on a neighbouring page it calls OnSwipeEnd with the proposed index and
// a recenter function. The caller stores the new index (usually in SetState)
// and then calls recenter, which moves the strip back to the middle slot without
// animation so the window can shift without a visible jump:
//
//	swiper.Swiper[Photo]{
//	    CurrentIndex: s.index,
//	    Items:        s.photos,
//	    ItemBuilder: func(ctx core.BuildContext, p Photo, i int) core.Widget {
//	        return PhotoCard{Photo: p}
//	    },
//	    OnSwipeEnd: func(next int, recenter func()) {
//	        s.SetState(func() { s.index = next })
//	        recenter()
//	    },
//	}
//
// # Offsets
//
// The strip is at most three slots wide. At rest its scroll offset is one of
// three stops: 0 (only when the first item is current), width (the middle slot)
// or 2*width (transient, while settling on the next slot). [Pager] turns the
// offset observed at settle time into an index transition; any other offset is
// ignored. The same state machine is usable without a widget tree, see
// [Resolve] and [Pager].
package swiper
