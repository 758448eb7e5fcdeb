package main

import (
	"github.com/go-drift/drift/pkg/core"
)

// Demo represents a showcase demo page.
type Demo struct {
	Route    string
	Title    string
	Subtitle string
	Builder  func(ctx core.BuildContext) core.Widget
}

// demos is the registry of all showcase demo pages.
var demos = []Demo{
	{"/gallery", "Gallery", "Full-width pages swiped by hand", buildGalleryPage},
	{"/controller", "Controller", "Buttons driving a SwipeController", buildControllerPage},
	{"/nested", "Nested", "Swipers inside a vertical scroll view", buildNestedPage},
}
