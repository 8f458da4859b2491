// Package input turns the raw colour argument into an RGB value.
//
// Classification happens first and decides between two modes:
//
//   - hex: every character is a hex digit, e.g. "ff3342"
//   - triplet: three decimal values separated by ',' or ':', e.g. "255,128,64"
//
// Mixing both separators is rejected with ErrAmbiguousDelimiter; anything
// else that is not hex is rejected with ErrUnrecognizedFormat.
//
// Parsing then validates the hex length (5 or 6 digits) or the segment count
// (exactly 3) and converts every chunk to an 8-bit channel. Failures are
// returned as sentinel errors or as *InvalidDigitError and
// *WrongSegmentCountError; callers decide how to report them.
package input
