package swiper

// Slot is one materialized entry of the three-slot window.
type Slot struct {
	// Index is the position of the item in the caller's sequence.
	Index int
	// Position is the physical slot, counted from the left edge of the strip.
	Position int
}

// Window returns the slots to materialize around current for a sequence of
// the given length, in left-to-right order. Indices outside [0, length-1]
// are skipped, so the result has between zero and three entries.
func Window(current, length int) []Slot {
	slots := make([]Slot, 0, 3)
	for delta := -1; delta <= 1; delta++ {
		index := current + delta
		if index < 0 || index >= length {
			continue
		}
		slots = append(slots, Slot{Index: index, Position: len(slots)})
	}
	return slots
}

// Materialize renders the window around current. render is never called
// with an index outside the sequence.
func Materialize[T, W any](current int, items []T, render func(item T, index int) W) []W {
	slots := Window(current, len(items))
	out := make([]W, 0, len(slots))
	for _, slot := range slots {
		out = append(out, render(items[slot.Index], slot.Index))
	}
	return out
}

// MaxOffset is the furthest the strip can scroll for the window around current.
func MaxOffset(current, length int, width float64) float64 {
	slots := len(Window(current, length))
	if slots <= 1 {
		return 0
	}
	return float64(slots-1) * width
}

// InitialOffset is the resting offset for current: the first item sits at 0,
// every other item sits in the middle slot.
func InitialOffset(current int, width float64) float64 {
	if current == 0 {
		return 0
	}
	return width
}
