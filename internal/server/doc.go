// SPDX-License-Identifier: MIT

// Package server exposes matrixgen over HTTP with JSON bodies.
//
// Routes (all under /v1 unless noted):
//
//	POST   /ops/:op          add sub mul scale pow transpose equal
//	POST   /linalg/:op       det inv rank norm eigen svd qr cholesky cond
//	POST   /random           generate a random matrix
//	GET    /matrices         list stored matrices
//	PUT    /matrices/:name   store a matrix
//	GET    /matrices/:name   fetch a stored matrix
//	DELETE /matrices/:name   remove a stored matrix
//	GET    /history          operation history
//	GET    /metrics          Prometheus exposition (no prefix)
//	GET    /healthz          liveness (no prefix)
//
// Matrices travel as arrays of rows of cell strings ("3", "-1/2", "0.25").
// An operand is given inline ("a", "b") or by stored name ("a_ref", "b_ref").
// Matrix results carry rows, cols, grid (display strings) and cells
// (lossless strings that parse back to the same values).
package server
