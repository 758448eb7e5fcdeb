package swiper

import (
	"math"
	"testing"
)

func TestClassify(t *testing.T) {
	const width = 375.0
	tests := []struct {
		name   string
		offset float64
		want   Stop
	}{
		{"zero", 0, StopStart},
		{"start noise", 0.4, StopStart},
		{"middle", 375, StopMiddle},
		{"middle truncated", 375.9, StopMiddle},
		{"middle below", 374.7, StopMiddle},
		{"end", 750, StopEnd},
		{"end below", 749.9, StopEnd},
		{"between", 123.4, StopNone},
		{"past end", 900, StopNone},
		{"negative overscroll", -40, StopNone},
		{"nan", math.NaN(), StopNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.offset, width); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.offset, got, tt.want)
			}
		})
	}
}

func TestClassify_ZeroWidth(t *testing.T) {
	if got := Classify(0, 0); got != StopNone {
		t.Errorf("zero width should never match a stop, got %v", got)
	}
}

func TestClassify_NarrowWidths(t *testing.T) {
	tests := []struct {
		name   string
		offset float64
		width  float64
		want   Stop
	}{
		{"end of half-unit strip", 1.0, 0.5, StopNone},
		{"start of half-unit strip", 0, 0.5, StopNone},
		{"nearest stop wins", 0.6, 1, StopMiddle},
		{"tie keeps lower stop", 0.5, 1, StopStart},
		{"unit end", 2, 1, StopEnd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.offset, tt.width); got != tt.want {
				t.Errorf("Classify(%v, %v) = %v, want %v", tt.offset, tt.width, got, tt.want)
			}
		})
	}
}

func TestParseStop(t *testing.T) {
	for _, stop := range []Stop{StopStart, StopMiddle, StopEnd} {
		got, err := ParseStop(stop.String())
		if err != nil {
			t.Fatalf("ParseStop(%q): %v", stop, err)
		}
		if got != stop {
			t.Errorf("ParseStop(%q) = %v", stop, got)
		}
	}
	if _, err := ParseStop("left"); err == nil {
		t.Error("expected error for unknown stop")
	}
}
