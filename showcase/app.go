// Package main provides the swiper demo application.
package main

import (
	"log"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/engine"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/navigation"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"
)

// App returns the root widget for the swiper showcase.
func App() core.Widget {
	return ShowcaseApp{}
}

// ShowcaseApp is the demo root. It owns the theme and routes to the demos
// in the registry.
type ShowcaseApp struct {
	core.StatefulBase
}

func (ShowcaseApp) CreateState() core.State {
	return &showcaseState{}
}

type showcaseState struct {
	core.StateBase
	themeData *theme.AppThemeData
}

func (s *showcaseState) InitState() {
	s.themeData = theme.NewAppThemeData(theme.TargetPlatformMaterial, theme.BrightnessDark)
	engine.SetBackgroundColor(graphics.Color(s.themeData.Material.ColorScheme.Background))
}

func (s *showcaseState) Build(ctx core.BuildContext) core.Widget {
	navigator := navigation.Navigator{
		InitialRoute: "/",
		OnGenerateRoute: func(settings navigation.RouteSettings) navigation.Route {
			if settings.Name == "/" {
				return navigation.NewMaterialPageRoute(buildHomePage, settings)
			}
			for _, demo := range demos {
				if settings.Name == demo.Route {
					return navigation.NewMaterialPageRoute(demo.Builder, settings)
				}
			}
			log.Printf("unknown route %q", settings.Name)
			return nil
		},
	}
	return theme.AppTheme{
		Data:  s.themeData,
		Child: navigator,
	}
}

// buildHomePage lists the demos.
func buildHomePage(ctx core.BuildContext) core.Widget {
	_, colors, _ := theme.UseTheme(ctx)
	items := []core.Widget{
		sectionTitle("Swiper", colors),
		widgets.VSpace(8),
		widgets.Text{Content: "Three-slot horizontal pager for drift", Style: labelStyle(colors)},
		widgets.VSpace(20),
	}
	for _, demo := range demos {
		route := demo.Route
		items = append(items,
			demoCard(demo, colors, func() {
				if nav := navigation.NavigatorOf(ctx); nav != nil {
					nav.PushNamed(route, nil)
				}
			}),
			widgets.VSpace(12),
		)
	}
	return demoPage(ctx, items...)
}
