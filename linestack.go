package linestack

import "fmt"

// lineDrawingChars maps each 4-bit segment mask to the box-drawing rune whose
// glyph shows exactly those segments. The index is the mask: bit 0 up, bit 1
// right, bit 2 down, bit 3 left.
var lineDrawingChars = [16]rune{
	' ', // 0000
	'╵', // 0001
	'╶', // 0010
	'└', // 0011
	'╷', // 0100
	'│', // 0101
	'┌', // 0110
	'├', // 0111
	'╴', // 1000
	'┘', // 1001
	'─', // 1010
	'┴', // 1011
	'┐', // 1100
	'┤', // 1101
	'┬', // 1110
	'┼', // 1111
}

// CharToMask returns the segment mask for a line-drawing rune. The second
// return value is false if r is not one of the 16 recognized runes.
func CharToMask(r rune) (Mask, bool) {
	// 16 entries: a linear scan beats any map trickery.
	for i, c := range lineDrawingChars {
		if c == r {
			return Mask(i), true
		}
	}
	return 0, false
}

// MaskToChar returns the line-drawing rune for a segment mask. Mask 0 is the
// space character; mask 15 (MaskAll) is the full cross.
//
// It panics if m does not fit in 4 bits.
func MaskToChar(m Mask) rune {
	if !m.Valid() {
		panic(fmt.Sprintf("linestack: mask must be between 0 and 15 inclusive but got %d", uint8(m)))
	}
	return lineDrawingChars[m]
}

// Stack overlays two line-drawing runes and returns the rune whose segments
// are the union of both inputs' segments. Stacking with a space returns the
// other rune unchanged. The second return value is false if either input is
// not a recognized line-drawing rune.
func Stack(a, b rune) (rune, bool) {
	ma, ok := CharToMask(a)
	if !ok {
		return 0, false
	}
	mb, ok := CharToMask(b)
	if !ok {
		return 0, false
	}
	return MaskToChar(ma | mb), true
}

// IsLineChar returns true if r is one of the 16 recognized line-drawing runes
// (including space).
func IsLineChar(r rune) bool {
	_, ok := CharToMask(r)
	return ok
}
