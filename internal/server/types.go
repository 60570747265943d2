// SPDX-License-Identifier: MIT

package server

import (
	"math"
	"strconv"

	"github.com/katalvlaran/matrixgen/gridio"
	"github.com/katalvlaran/matrixgen/internal/registry"
	"github.com/katalvlaran/matrixgen/matrix"
	"github.com/katalvlaran/matrixgen/scalar"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	// Error is the error message.
	Error string `json:"error"`

	// Code is a stable machine-readable error code.
	Code string `json:"code"`

	// Details carries the underlying cause, when useful.
	Details string `json:"details,omitempty"`
}

// OpRequest is the body of POST /v1/ops/:op and /v1/linalg/:op.
type OpRequest struct {
	A    [][]string `json:"a,omitempty"`
	B    [][]string `json:"b,omitempty"`
	ARef string     `json:"a_ref,omitempty"`
	BRef string     `json:"b_ref,omitempty"`

	Scalar    string   `json:"scalar,omitempty"`    // scale
	Exponent  int      `json:"exponent,omitempty"`  // pow
	Norm      string   `json:"norm,omitempty"`      // norm
	Tolerance *float64 `json:"tolerance,omitempty"` // equal

	// Store saves a matrix result under this name.
	Store string `json:"store,omitempty"`
}

// PutRequest is the body of PUT /v1/matrices/:name.
type PutRequest struct {
	Grid [][]string `json:"grid" binding:"required"`
}

// RandomRequest is the body of POST /v1/random. Unset fields fall back to
// the configured random defaults.
type RandomRequest struct {
	Rows  int      `json:"rows" binding:"required"`
	Cols  int      `json:"cols" binding:"required"`
	Min   *float64 `json:"min,omitempty"`
	Max   *float64 `json:"max,omitempty"`
	Kind  string   `json:"kind,omitempty"`
	Seed  int64    `json:"seed,omitempty"`
	Store string   `json:"store,omitempty"`
}

// MatrixJSON is the wire form of a matrix.
type MatrixJSON struct {
	Rows  int        `json:"rows"`
	Cols  int        `json:"cols"`
	Grid  [][]string `json:"grid"`
	Cells [][]string `json:"cells"`
	Exact bool       `json:"exact"`
}

func encodeMatrix(m *matrix.Dense) *MatrixJSON {
	cells := make([][]string, m.Rows())
	for i := range cells {
		cells[i] = make([]string, m.Cols())
	}
	m.Do(func(i, j int, v scalar.Value) bool {
		cells[i][j] = gridio.EncodeCell(v)
		return true
	})

	return &MatrixJSON{
		Rows:  m.Rows(),
		Cols:  m.Cols(),
		Grid:  m.DisplayGrid(),
		Cells: cells,
		Exact: matrix.IsExact(m),
	}
}

// OpResponse is the reply to an operation. Matrix results are inlined
// (rows, cols, grid, cells); the other fields appear only when set.
type OpResponse struct {
	Op      string `json:"op"`
	Backend string `json:"backend,omitempty"`
	*MatrixJSON
	Value   *Number               `json:"value,omitempty"`
	Rank    *int                  `json:"rank,omitempty"`
	Equal   *bool                 `json:"equal,omitempty"`
	Values  []Number              `json:"values,omitempty"`
	Factors map[string]MatrixJSON `json:"factors,omitempty"`
	Stored  string                `json:"stored,omitempty"`
}

// NamedMatrix is the reply of GET /v1/matrices/:name.
type NamedMatrix struct {
	Name string `json:"name"`
	*MatrixJSON
}

// ListResponse is the reply of GET /v1/matrices.
type ListResponse struct {
	Matrices []registry.Entry `json:"matrices"`
}

// HistoryResponse is the reply of GET /v1/history.
type HistoryResponse struct {
	History []registry.Record `json:"history"`
}

// Number is a float64 whose non-finite values encode as the strings
// "+Inf", "-Inf" and "NaN".
type Number float64

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	}

	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

func numbers(xs []float64) []Number {
	if xs == nil {
		return nil
	}
	out := make([]Number, len(xs))
	for i, x := range xs {
		out[i] = Number(x)
	}

	return out
}
