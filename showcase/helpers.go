package main

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"
)

// sectionTitle creates a styled section header for demo pages.
func sectionTitle(text string, colors theme.ColorScheme) core.Widget {
	return widgets.Text{
		Content: text,
		Style: graphics.TextStyle{
			Color:      colors.Primary,
			FontSize:   20,
			FontWeight: graphics.FontWeightBold,
		},
	}
}

// labelStyle returns a text style for descriptive labels.
func labelStyle(colors theme.ColorScheme) graphics.TextStyle {
	return graphics.TextStyle{
		Color:    colors.OnSurfaceVariant,
		FontSize: 14,
	}
}

// smallButton creates a compact tappable button for secondary actions.
func smallButton(label string, onTap func(), colors theme.ColorScheme) core.Widget {
	return widgets.GestureDetector{
		OnTap: onTap,
		Child: widgets.Container{
			Color:        colors.SurfaceContainerHigh,
			BorderRadius: 6,
			Padding:      layout.EdgeInsetsSymmetric(12, 6),
			Child: widgets.Text{
				Content: label,
				Style: graphics.TextStyle{
					Color:    colors.OnSurface,
					FontSize: 13,
				},
			},
		},
	}
}

// demoPage creates a padded, vertically scrolling column.
func demoPage(ctx core.BuildContext, items ...core.Widget) core.Widget {
	_, colors, _ := theme.UseTheme(ctx)
	return widgets.Container{
		Color: colors.Background,
		Child: widgets.ScrollView{
			ScrollDirection: widgets.AxisVertical,
			Physics:         widgets.BouncingScrollPhysics{},
			Padding:         layout.EdgeInsetsAll(20),
			Child: widgets.Column{
				MainAxisAlignment:  widgets.MainAxisAlignmentStart,
				CrossAxisAlignment: widgets.CrossAxisAlignmentStart,
				MainAxisSize:       widgets.MainAxisSizeMin,
				Children:           items,
			},
		},
	}
}

// demoCard is a tappable row on the home page.
func demoCard(demo Demo, colors theme.ColorScheme, onTap func()) core.Widget {
	return widgets.GestureDetector{
		OnTap: onTap,
		Child: widgets.Container{
			Color:        colors.Surface,
			BorderRadius: 12,
			Padding:      layout.EdgeInsetsAll(16),
			Child: widgets.Column{
				CrossAxisAlignment: widgets.CrossAxisAlignmentStart,
				MainAxisSize:       widgets.MainAxisSizeMin,
				Children: []core.Widget{
					widgets.Text{Content: demo.Title, Style: graphics.TextStyle{Color: colors.OnSurface, FontSize: 16, FontWeight: graphics.FontWeightBold}},
					widgets.VSpace(4),
					widgets.Text{Content: demo.Subtitle, Style: labelStyle(colors)},
				},
			},
		},
	}
}

// pageColor picks a distinct background for page n.
func pageColor(n int) graphics.Color {
	palette := []graphics.Color{
		graphics.RGB(233, 30, 99),
		graphics.RGB(33, 150, 243),
		graphics.RGB(76, 175, 80),
		graphics.RGB(255, 152, 0),
		graphics.RGB(156, 39, 176),
	}
	return palette[n%len(palette)]
}
