// Package matrix provides a dense, row-major matrix of mixed exact/approximate
// numeric cells (see package scalar) and the algebra over it.
//
// The matrix package provides:
//
//   - Dense, created all-zero with NewDense and filled wholesale with
//     Fill/FillStrings/FillFloats/FillRandom or per cell with Set.
//   - Pure operations returning fresh matrices: Add, Sub, Mul, Scale,
//     Transpose, Power, Copy.
//   - Builders sharing NewDense validation: NewIdentity, NewZeros, NewOnes,
//     NewDiagonal.
//   - Tolerance equality (Equal, EqualWithin) and the display encoding
//     (String, Format, DisplayGrid).
//
// Dimensions are bounded by DefaultMaxDim unless WithMaxDim/WithUnbounded is
// supplied. Integer and Rational cells stay exact through every operation;
// any Float operand turns the affected cell into a Float.
//
// Operations never mutate their operands and never share storage with them.
// Concurrent reads of one matrix are safe; writers must be serialized by the
// caller.
package matrix
