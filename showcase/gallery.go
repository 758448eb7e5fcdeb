package main

import (
	"fmt"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/go-drift/swiper/pkg/swiper"
)

type photo struct {
	Title string
	Color graphics.Color
}

func samplePhotos(n int) []photo {
	photos := make([]photo, n)
	for i := range photos {
		photos[i] = photo{Title: fmt.Sprintf("Photo %d", i+1), Color: pageColor(i)}
	}
	return photos
}

func photoCard(p photo) core.Widget {
	return widgets.Container{
		Color: p.Color,
		Child: widgets.Center{
			Child: widgets.Text{
				Content: p.Title,
				Style:   graphics.TextStyle{Color: graphics.ColorWhite, FontSize: 28, FontWeight: graphics.FontWeightBold},
			},
		},
	}
}

// galleryPage is a full-screen swiper that owns its index.
type galleryPage struct {
	core.StatefulBase
	photos     []photo
	height     float64
	controller *swiper.SwipeController
	capture    swiper.PanCapture
}

func (g galleryPage) CreateState() core.State {
	return &galleryState{}
}

type galleryState struct {
	core.StateBase
	index int
}

func (s *galleryState) Build(ctx core.BuildContext) core.Widget {
	page := s.Element().Widget().(galleryPage)
	_, colors, _ := theme.UseTheme(ctx)

	return widgets.Column{
		CrossAxisAlignment: widgets.CrossAxisAlignmentStretch,
		MainAxisSize:       widgets.MainAxisSizeMin,
		Children: []core.Widget{
			widgets.SizedBox{
				Height: page.height,
				Child: swiper.Swiper[photo]{
					CurrentIndex: s.index,
					Items:        page.photos,
					Controller:   page.controller,
					Capture:      page.capture,
					ItemBuilder: func(ctx core.BuildContext, p photo, index int) core.Widget {
						return photoCard(p)
					},
					OnSwipeEnd: func(next int, recenter func()) {
						s.SetState(func() { s.index = next })
						recenter()
					},
				},
			},
			widgets.VSpace(8),
			widgets.Text{
				Content: fmt.Sprintf("%d / %d", s.index+1, len(page.photos)),
				Style:   labelStyle(colors),
			},
		},
	}
}

func buildGalleryPage(ctx core.BuildContext) core.Widget {
	_, colors, _ := theme.UseTheme(ctx)
	return demoPage(ctx,
		sectionTitle("Gallery", colors),
		widgets.VSpace(8),
		widgets.Text{Content: "Drag left or right. Only three photos are built at a time.", Style: labelStyle(colors)},
		widgets.VSpace(16),
		galleryPage{photos: samplePhotos(50), height: 420},
	)
}

func buildControllerPage(ctx core.BuildContext) core.Widget {
	_, colors, _ := theme.UseTheme(ctx)
	controller := &swiper.SwipeController{}
	return demoPage(ctx,
		sectionTitle("Controller", colors),
		widgets.VSpace(8),
		widgets.Text{Content: "Input is disabled; the buttons page through the items.", Style: labelStyle(colors)},
		widgets.VSpace(16),
		galleryPage{photos: samplePhotos(8), height: 300, controller: controller, capture: swiper.NoCapture{}},
		widgets.VSpace(12),
		widgets.Row{
			MainAxisAlignment: widgets.MainAxisAlignmentSpaceBetween,
			Children: []core.Widget{
				smallButton("Back", func() { controller.Back() }, colors),
				smallButton("Next", func() { controller.Next() }, colors),
			},
		},
	)
}

func buildNestedPage(ctx core.BuildContext) core.Widget {
	_, colors, _ := theme.UseTheme(ctx)
	items := []core.Widget{
		sectionTitle("Nested", colors),
		widgets.VSpace(8),
		widgets.Text{Content: "Vertical drags scroll the page; horizontal drags page each row.", Style: labelStyle(colors)},
		widgets.VSpace(16),
	}
	for row := 0; row < 6; row++ {
		items = append(items,
			galleryPage{photos: samplePhotos(10 + row), height: 160},
			widgets.VSpace(16),
		)
	}
	return demoPage(ctx, items...)
}
