// SPDX-License-Identifier: MIT

// Package gridio reads and writes matrices as a plain text grid.
//
// The format is one matrix row per line. Cells are separated by commas or,
// when a line carries no comma, by runs of whitespace. Blank lines and lines
// starting with '#' are ignored. Each cell uses the scalar cell grammar:
//
//	# 2x3, mixed kinds
//	1, 1/2, -3
//	0.25, 4, 7/3
//
// Write emits a grid that Read parses back to the same cell kinds and values;
// Float cells are written with the shortest round-tripping representation.
package gridio
