// SPDX-License-Identifier: MIT

// Package ops dispatches named matrix operations over the matrix and linalg
// packages, records them in a registry and logs them.
//
// It is the single evaluation path shared by the CLI, the interactive shell
// and the HTTP server:
//
//	eng := ops.New(backend, ops.WithRegistry(reg), ops.WithLogger(log))
//	res, err := eng.Do(ops.Request{Op: ops.Mul, Operands: []*matrix.Dense{a, b}})
package ops

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Op names an operation.
type Op string

// Algebra operations (exact, scalar.Value cells).
const (
	Add       Op = "add"
	Sub       Op = "sub"
	Mul       Op = "mul"
	Scale     Op = "scale"
	Pow       Op = "pow"
	Transpose Op = "transpose"
	Equal     Op = "equal"
)

// Numeric operations delegated to a linalg.Backend.
const (
	Det      Op = "det"
	Inv      Op = "inv"
	Rank     Op = "rank"
	Norm     Op = "norm"
	Eigen    Op = "eigen"
	SVD      Op = "svd"
	QR       Op = "qr"
	Cholesky Op = "cholesky"
	Cond     Op = "cond"
)

// Group separates exact algebra from backend-delegated linear algebra.
type Group uint8

const (
	// Algebra operations keep exact cells.
	Algebra Group = iota
	// Linalg operations run in float64 on a backend.
	Linalg
)

var (
	// ErrUnknownOp indicates an operation name outside the table.
	ErrUnknownOp = errors.New("ops: unknown operation")

	// ErrArity indicates the wrong number of operands for an operation.
	ErrArity = errors.New("ops: wrong number of operands")
)

type opInfo struct {
	arity int
	group Group
}

var table = map[Op]opInfo{
	Add:       {2, Algebra},
	Sub:       {2, Algebra},
	Mul:       {2, Algebra},
	Scale:     {1, Algebra},
	Pow:       {1, Algebra},
	Transpose: {1, Algebra},
	Equal:     {2, Algebra},
	Det:       {1, Linalg},
	Inv:       {1, Linalg},
	Rank:      {1, Linalg},
	Norm:      {1, Linalg},
	Eigen:     {1, Linalg},
	SVD:       {1, Linalg},
	QR:        {1, Linalg},
	Cholesky:  {1, Linalg},
	Cond:      {1, Linalg},
}

// aliases maps alternative spellings used by the shell and CLI.
var aliases = map[string]Op{
	"t":       Transpose,
	"chol":    Cholesky,
	"eq":      Equal,
	"inverse": Inv,
	"power":   Pow,
}

// Parse resolves a (case-insensitive) operation name or alias.
func Parse(name string) (Op, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if op, ok := aliases[s]; ok {
		return op, nil
	}
	if _, ok := table[Op(s)]; ok {
		return Op(s), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownOp, name)
}

// Arity reports how many matrix operands op takes (0 for unknown ops).
func (op Op) Arity() int { return table[op].arity }

// Group reports the operation family.
func (op Op) Group() Group { return table[op].group }

// Valid reports whether op is in the table.
func (op Op) Valid() bool {
	_, ok := table[op]
	return ok
}

// All lists every operation in the given group, sorted by name.
func All(g Group) []Op {
	var out []Op
	for op, s := range table {
		if s.group == g {
			out = append(out, op)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
