package swiper

import (
	"math"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/gestures"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
)

// stripPosition holds the physical offset of the slot strip. The swiper state
// writes it; the attached viewport repaints on every change without a rebuild.
type stripPosition struct {
	offset   float64
	onChange func()
}

func (p *stripPosition) Offset() float64 {
	return p.offset
}

func (p *stripPosition) SetOffset(offset float64) {
	if offset == p.offset {
		return
	}
	p.offset = offset
	if p.onChange != nil {
		p.onChange()
	}
}

// pageExtent is the page width shared between the viewport, which resolves it
// during layout, and the page slots that size themselves from it.
type pageExtent struct {
	width    float64
	slots    map[*renderPageSlot]struct{}
	onResize func(width float64)
}

func (e *pageExtent) Width() float64 {
	return e.width
}

// resolve records the laid-out page width. Slots are marked for layout and
// onResize runs only when the width changes.
func (e *pageExtent) resolve(width float64) {
	if width == e.width {
		return
	}
	e.width = width
	for slot := range e.slots {
		slot.MarkNeedsLayout()
	}
	if e.onResize != nil {
		e.onResize(width)
	}
}

func (e *pageExtent) attach(slot *renderPageSlot) {
	if e.slots == nil {
		e.slots = make(map[*renderPageSlot]struct{})
	}
	e.slots[slot] = struct{}{}
}

func (e *pageExtent) detach(slot *renderPageSlot) {
	delete(e.slots, slot)
}

// pageSlot sizes its child to exactly one page width.
type pageSlot struct {
	core.RenderObjectBase
	Extent *pageExtent
	Child  core.Widget
}

func (p pageSlot) ChildWidget() core.Widget {
	return p.Child
}

func (p pageSlot) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	slot := &renderPageSlot{}
	slot.SetSelf(slot)
	slot.setExtent(p.Extent)
	return slot
}

func (p pageSlot) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if slot, ok := renderObject.(*renderPageSlot); ok && slot.extent != p.Extent {
		slot.setExtent(p.Extent)
		slot.MarkNeedsLayout()
	}
}

type renderPageSlot struct {
	layout.RenderBoxBase
	child  layout.RenderBox
	extent *pageExtent
}

func (r *renderPageSlot) setExtent(extent *pageExtent) {
	if r.extent != nil {
		r.extent.detach(r)
	}
	r.extent = extent
	if r.extent != nil {
		r.extent.attach(r)
	}
}

func (r *renderPageSlot) SetChild(child layout.RenderObject) {
	layout.SetParentOnChild(r.child, nil)
	r.child = layout.AsRenderBox(child)
	layout.SetParentOnChild(r.child, r)
}

func (r *renderPageSlot) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderPageSlot) PerformLayout() {
	constraints := r.Constraints()
	width := 0.0
	if r.extent != nil {
		width = r.extent.Width()
	}
	constrained := constraints.Constrain(graphics.Size{Width: width})
	if r.child == nil {
		r.SetSize(constrained)
		return
	}
	childConstraints := constraints
	childConstraints.MinWidth = constrained.Width
	childConstraints.MaxWidth = constrained.Width
	r.child.Layout(childConstraints, true)
	r.child.SetParentData(&layout.BoxParentData{})
	size := r.child.Size()
	size.Width = constrained.Width
	r.SetSize(constraints.Constrain(size))
}

func (r *renderPageSlot) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChildWithLayer(r.child, graphics.Offset{})
	}
}

func (r *renderPageSlot) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, r.Size()) {
		return false
	}
	if r.child != nil && r.child.HitTest(position, result) {
		return true
	}
	result.Add(r)
	return true
}

func (r *renderPageSlot) Dispose() {
	if r.extent != nil {
		r.extent.detach(r)
		r.extent = nil
	}
	r.RenderBoxBase.Dispose()
}

// swipeViewport clips its child to its own bounds and shows it scrolled
// horizontally by the strip position. Pointer input goes to the recognizer
// built by Capture. The page width, PageWidth or else the laid-out width, is
// published to Extent before the strip is laid out.
type swipeViewport struct {
	core.RenderObjectBase
	Child     core.Widget
	Position  *stripPosition
	Extent    *pageExtent
	PageWidth float64
	Capture   PanCapture
	Handlers  DragHandlers
}

func (v swipeViewport) ChildWidget() core.Widget {
	return v.Child
}

func (v swipeViewport) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	viewport := &renderSwipeViewport{}
	viewport.SetSelf(viewport)
	viewport.configure(v)
	return viewport
}

func (v swipeViewport) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if viewport, ok := renderObject.(*renderSwipeViewport); ok {
		viewport.configure(v)
		viewport.MarkNeedsLayout()
		viewport.MarkNeedsPaint()
	}
}

type renderSwipeViewport struct {
	layout.RenderBoxBase
	child      layout.RenderBox
	position   *stripPosition
	extent     *pageExtent
	pageWidth  float64
	capture    PanCapture
	handlers   DragHandlers
	recognizer DragRecognizer
}

// IsRepaintBoundary returns true so strip movement does not repaint the parent.
func (r *renderSwipeViewport) IsRepaintBoundary() bool {
	return true
}

func (r *renderSwipeViewport) SetChild(child layout.RenderObject) {
	layout.SetParentOnChild(r.child, nil)
	r.child = layout.AsRenderBox(child)
	layout.SetParentOnChild(r.child, r)
}

func (r *renderSwipeViewport) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderSwipeViewport) configure(v swipeViewport) {
	if r.position != v.Position {
		if r.position != nil {
			r.position.onChange = nil
		}
		r.position = v.Position
		if r.position != nil {
			r.position.onChange = r.MarkNeedsPaint
		}
	}

	r.extent = v.Extent
	r.pageWidth = v.PageWidth
	r.handlers = v.Handlers
	capture := v.Capture
	if capture == nil {
		capture = HorizontalCapture{}
	}
	if r.recognizer != nil && r.capture == capture {
		return
	}
	if r.recognizer != nil {
		r.recognizer.Dispose()
	}
	r.capture = capture
	// Handlers are read through r so updates take effect without
	// rebuilding the recognizer.
	r.recognizer = capture.Recognizer(DragHandlers{
		OnStart: func(d gestures.DragStartDetails) {
			if r.handlers.OnStart != nil {
				r.handlers.OnStart(d)
			}
		},
		OnUpdate: func(d gestures.DragUpdateDetails) {
			if r.handlers.OnUpdate != nil {
				r.handlers.OnUpdate(d)
			}
		},
		OnEnd: func(d gestures.DragEndDetails) {
			if r.handlers.OnEnd != nil {
				r.handlers.OnEnd(d)
			}
		},
		OnCancel: func() {
			if r.handlers.OnCancel != nil {
				r.handlers.OnCancel()
			}
		},
	})
}

func (r *renderSwipeViewport) PerformLayout() {
	constraints := r.Constraints()
	width := constraints.MaxWidth
	if math.IsInf(width, 1) || width >= math.MaxFloat64 {
		width = constraints.MinWidth
	}
	page := width
	if r.pageWidth > 0 {
		page = r.pageWidth
	}
	if r.extent != nil {
		r.extent.resolve(page)
	}

	height := constraints.MaxHeight
	bounded := !math.IsInf(height, 1) && height < math.MaxFloat64
	if r.child != nil {
		childConstraints := layout.Constraints{
			MinWidth:  0,
			MaxWidth:  math.MaxFloat64,
			MinHeight: 0,
			MaxHeight: math.MaxFloat64,
		}
		if bounded {
			childConstraints.MinHeight = height
			childConstraints.MaxHeight = height
		}
		r.child.Layout(childConstraints, true) // true: unbounded height reads child.Size()
		r.child.SetParentData(&layout.BoxParentData{})
		if !bounded {
			height = r.child.Size().Height
		}
	} else if !bounded {
		height = constraints.MinHeight
	}
	if width <= 0 {
		width = page
	}
	r.SetSize(constraints.Constrain(graphics.Size{Width: width, Height: height}))
}

func (r *renderSwipeViewport) Paint(ctx *layout.PaintContext) {
	if r.child == nil {
		return
	}
	size := r.Size()
	clipRect := graphics.RectFromLTWH(0, 0, size.Width, size.Height)

	ctx.Canvas.Save()
	ctx.Canvas.ClipRect(clipRect)
	ctx.PushClipRect(clipRect)

	offset := r.offset()
	ctx.Canvas.Translate(-offset, 0)
	ctx.PushTranslation(-offset, 0)

	r.child.Paint(ctx)

	ctx.PopTranslation()
	ctx.PopClipRect()
	ctx.Canvas.Restore()
}

func (r *renderSwipeViewport) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, r.Size()) {
		return false
	}
	if r.child != nil {
		local := position
		local.X += r.offset()
		r.child.HitTest(local, result)
	}
	result.Add(r)
	return true
}

func (r *renderSwipeViewport) HandlePointer(event gestures.PointerEvent) {
	if r.recognizer == nil {
		return
	}
	if event.Phase == gestures.PointerPhaseDown {
		r.recognizer.AddPointer(event)
		return
	}
	r.recognizer.HandleEvent(event)
}

// ScrollOffset reports the strip translation for hit-test and semantics consumers.
func (r *renderSwipeViewport) ScrollOffset() graphics.Offset {
	return graphics.Offset{X: -r.offset()}
}

func (r *renderSwipeViewport) Dispose() {
	if r.recognizer != nil {
		r.recognizer.Dispose()
		r.recognizer = nil
	}
	if r.position != nil {
		r.position.onChange = nil
	}
	r.RenderBoxBase.Dispose()
}

func (r *renderSwipeViewport) offset() float64 {
	if r.position == nil {
		return 0
	}
	return r.position.Offset()
}
