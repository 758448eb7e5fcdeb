package swiper

import (
	"fmt"
	"math"
)

// Tolerance is how far, in distance units, a settle offset may sit from a stop
// and still match it.
const Tolerance = 0.5

// Stop identifies one of the canonical resting offsets of the strip.
type Stop int

const (
	// StopNone is any offset that is not a canonical stop.
	StopNone Stop = iota
	// StopStart is offset 0.
	StopStart
	// StopMiddle is offset width.
	StopMiddle
	// StopEnd is offset 2*width.
	StopEnd
)

// String returns a human-readable representation of the stop.
func (s Stop) String() string {
	switch s {
	case StopNone:
		return "none"
	case StopStart:
		return "start"
	case StopMiddle:
		return "middle"
	case StopEnd:
		return "end"
	default:
		return fmt.Sprintf("Stop(%d)", int(s))
	}
}

// Offset returns the scroll offset of the stop for the given slot width.
func (s Stop) Offset(width float64) float64 {
	switch s {
	case StopMiddle:
		return width
	case StopEnd:
		return 2 * width
	default:
		return 0
	}
}

// ParseStop converts "start", "middle" or "end" to a Stop.
func ParseStop(name string) (Stop, error) {
	switch name {
	case "start":
		return StopStart, nil
	case "middle":
		return StopMiddle, nil
	case "end":
		return StopEnd, nil
	default:
		return StopNone, fmt.Errorf("unknown stop %q (use start, middle or end)", name)
	}
}

// Classify maps a physical offset to a stop. Both sides are truncated to
// integers before comparison, and offsets within Tolerance of a stop also
// match, so float noise from the scroll simulation does not drop a settle.
// When an offset matches more than one stop the nearest wins. Widths below
// 2*Tolerance cannot separate the stops and classify every offset as StopNone.
func Classify(offset, width float64) Stop {
	if math.IsNaN(offset) || math.IsInf(offset, 0) || width < 2*Tolerance {
		return StopNone
	}
	match, best := StopNone, math.Inf(1)
	for _, stop := range [...]Stop{StopStart, StopMiddle, StopEnd} {
		target := stop.Offset(width)
		distance := math.Abs(offset - target)
		if math.Trunc(offset) != math.Trunc(target) && distance > Tolerance {
			continue
		}
		if distance < best {
			match, best = stop, distance
		}
	}
	return match
}
