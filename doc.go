// Package linestack merges Unicode box-drawing characters that occupy the
// same grid cell.
//
// Each of the 16 single-weight box-drawing characters (including space) maps
// to a 4-bit [Mask] describing which of the four directions its glyph connects
// to: up, right, down, left, one bit per direction clockwise from the top,
// least significant bit first. Stacking two characters takes the union of
// their segments and returns the character showing the combined shape.
//
// # Quick Start
//
// Combine two line characters in the same cell:
//
//	combo, ok := linestack.Stack('─', '│')
//	fmt.Printf("%c %v\n", combo, ok) // ┼ true
//
// Convert between characters and masks directly:
//
//	mask, ok := linestack.CharToMask('┬')
//	fmt.Printf("%04b %v\n", mask, ok) // 1110 true
//
//	c := linestack.MaskToChar(linestack.MaskUp | linestack.MaskLeft)
//	fmt.Println(string(c)) // ┘
//
// # Recognized Characters
//
// The mapping covers space plus 15 single-weight characters from the U+2500
// block: every corner, tee, straight line, half line, and the full
// cross. Double-line, rounded, and dashed variants are not recognized;
// [CharToMask] and [Stack] report ok=false for them and for any other rune.
//
// # Errors
//
// Unrecognized input is not an error: [CharToMask] and [Stack] return
// ok=false and never panic, so they are safe to run over arbitrary text.
// [MaskToChar] is different: a mask outside 0-15 is a bug in the caller, and
// it panics rather than guess at a glyph.
//
// # Thread Safety
//
// All functions are pure lookups over an immutable table. They may be called
// concurrently from any number of goroutines without locking.
//
// To combine more than two characters, fold pairwise:
//
//	result := ' '
//	for _, c := range []rune{'─', '│', '└'} {
//	    result, _ = linestack.Stack(result, c)
//	}
package linestack
