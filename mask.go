package linestack

import "strings"

// Mask is a bitmask of the four directional line segments a box-drawing
// character connects to. Bits run clockwise from the top, least significant
// first: up, right, down, left. The zero value means no segments (a blank cell).
type Mask uint8

const (
	MaskUp Mask = 1 << iota
	MaskRight
	MaskDown
	MaskLeft
)

// MaskNone is the empty mask (blank cell, no segments).
const MaskNone Mask = 0

// MaskAll has all four segments set (the full cross).
const MaskAll Mask = MaskUp | MaskRight | MaskDown | MaskLeft

// Has returns true if every segment in seg is set.
func (m Mask) Has(seg Mask) bool {
	return m&seg == seg
}

// With returns a copy of the mask with the specified segments added.
func (m Mask) With(seg Mask) Mask {
	return m | seg
}

// Without returns a copy of the mask with the specified segments removed.
func (m Mask) Without(seg Mask) Mask {
	return m &^ seg
}

// Valid returns true if the mask fits in 4 bits (0 through 15).
func (m Mask) Valid() bool {
	return m <= MaskAll
}

// String returns the segment names joined by "|" (e.g. "up|right"), or "none"
// for the empty mask. Segments outside the low 4 bits are ignored.
func (m Mask) String() string {
	if m&MaskAll == 0 {
		return "none"
	}
	names := make([]string, 0, 4)
	if m.Has(MaskUp) {
		names = append(names, "up")
	}
	if m.Has(MaskRight) {
		names = append(names, "right")
	}
	if m.Has(MaskDown) {
		names = append(names, "down")
	}
	if m.Has(MaskLeft) {
		names = append(names, "left")
	}
	return strings.Join(names, "|")
}
