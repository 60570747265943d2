// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/katalvlaran/matrixgen/internal/registry"
	"github.com/katalvlaran/matrixgen/linalg"
	"github.com/katalvlaran/matrixgen/matrix"
	"github.com/katalvlaran/matrixgen/scalar"
)

// Request describes one operation call.
type Request struct {
	Op       Op
	Operands []*matrix.Dense

	// Names label the operands in history; missing names are shown as shapes.
	Names []string

	Scalar    scalar.Value    // Scale
	Exponent  int             // Pow
	Norm      linalg.NormKind // Norm ("" selects Frobenius)
	Tolerance *float64        // Equal; nil selects the engine tolerance

	// Store saves a matrix result in the registry under this name.
	Store string
}

// Result holds whichever outputs the operation produces.
//
//   - Matrix: add, sub, mul, scale, pow, transpose, inv, cholesky (L).
//   - Number: det, norm, cond.
//   - Count:  rank.
//   - Flag:   equal.
//   - Values + Factors["vectors"]: eigen.
//   - Values + Factors["u"], Factors["vt"]: svd.
//   - Factors["q"], Factors["r"]: qr.
type Result struct {
	Op      Op
	Matrix  *matrix.Dense
	Number  float64
	Count   int
	Flag    bool
	Values  []float64
	Factors map[string]*matrix.Dense
	Stored  string
}

// Summary renders a short description of the result for history and logs.
func (r Result) Summary() string {
	switch {
	case r.Stored != "":
		return r.Stored
	case r.Matrix != nil:
		return shape(r.Matrix)
	}
	switch r.Op {
	case Det, Norm, Cond:
		return strconv.FormatFloat(r.Number, 'g', 8, 64)
	case Rank:
		return strconv.Itoa(r.Count)
	case Equal:
		return strconv.FormatBool(r.Flag)
	case QR:
		return "q, r"
	}

	return fmt.Sprintf("%d values", len(r.Values))
}

// Option configures an Engine.
type Option func(*Engine)

// WithRegistry records every call in reg and enables Request.Store.
func WithRegistry(reg *registry.Registry) Option {
	return func(e *Engine) { e.reg = reg }
}

// WithLogger sets the logger for per-operation debug lines.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithTolerance sets the default tolerance for Equal. Panics on tol < 0.
func WithTolerance(tol float64) Option {
	if tol < 0 {
		panic("ops: WithTolerance: tolerance must be >= 0")
	}

	return func(e *Engine) { e.tol = tol }
}

// DefaultMaxExponent bounds Pow exponents unless WithMaxExponent overrides it.
const DefaultMaxExponent = 1024

// WithMaxExponent caps the Pow exponent; 0 removes the cap. Panics on n < 0.
func WithMaxExponent(n int) Option {
	if n < 0 {
		panic("ops: WithMaxExponent: limit must be >= 0")
	}

	return func(e *Engine) { e.maxExp = n }
}

// Engine evaluates Requests. It is safe for concurrent use when its backend
// and registry are.
type Engine struct {
	backend linalg.Backend
	reg     *registry.Registry
	log     *slog.Logger
	tol     float64
	maxExp  int
}

// New returns an Engine delegating numeric work to backend.
func New(backend linalg.Backend, opts ...Option) *Engine {
	if backend == nil {
		backend = linalg.NewNative()
	}
	e := &Engine{
		backend: backend,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		tol:     matrix.DefaultTolerance,
		maxExp:  DefaultMaxExponent,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Backend returns the numeric backend in use.
func (e *Engine) Backend() linalg.Backend { return e.backend }

// MaxExponent returns the Pow exponent cap; 0 means no cap.
func (e *Engine) MaxExponent() int { return e.maxExp }

// Registry returns the attached registry, or nil.
func (e *Engine) Registry() *registry.Registry { return e.reg }

// Do validates and runs req.
//
// Implementation:
//   - Stage 1: check op and operand count (ErrUnknownOp, ErrArity).
//   - Stage 2: dispatch to matrix (Algebra) or the backend (Linalg).
//   - Stage 3: store a matrix result when req.Store is set.
//   - Stage 4: record the call in the registry and log it.
func (e *Engine) Do(req Request) (res Result, err error) {
	start := time.Now()
	defer func() {
		e.finish(req, res, err, time.Since(start))
	}()

	if !req.Op.Valid() {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownOp, req.Op)
	}
	if len(req.Operands) != req.Op.Arity() {
		return Result{}, fmt.Errorf("%w: %s takes %d, got %d",
			ErrArity, req.Op, req.Op.Arity(), len(req.Operands))
	}

	if req.Op.Group() == Algebra {
		res, err = e.algebra(req)
	} else {
		res, err = e.linalg(req)
	}
	if err != nil {
		return Result{}, err
	}
	res.Op = req.Op

	if req.Store != "" && e.reg != nil {
		if res.Matrix == nil {
			return Result{}, fmt.Errorf("ops: %s: result is not a matrix, cannot store as %q", req.Op, req.Store)
		}
		if _, err = e.reg.Put(req.Store, res.Matrix); err != nil {
			return Result{}, err
		}
		res.Stored = req.Store
	}

	return res, nil
}

func (e *Engine) algebra(req Request) (Result, error) {
	a := req.Operands[0]
	var (
		m   *matrix.Dense
		err error
	)
	switch req.Op {
	case Add:
		m, err = matrix.Add(a, req.Operands[1])
	case Sub:
		m, err = matrix.Sub(a, req.Operands[1])
	case Mul:
		m, err = matrix.Mul(a, req.Operands[1])
	case Scale:
		m, err = matrix.Scale(a, req.Scalar)
	case Pow:
		// Shape errors outrank the exponent cap, as in matrix.Power.
		if e.maxExp > 0 && req.Exponent > e.maxExp && matrix.ValidateSquareNonNil(a) == nil {
			return Result{}, fmt.Errorf("%w: %d exceeds limit %d", matrix.ErrInvalidExponent, req.Exponent, e.maxExp)
		}
		m, err = matrix.Power(a, req.Exponent)
	case Transpose:
		m, err = matrix.Transpose(a)
	case Equal:
		for _, x := range req.Operands {
			if err = matrix.ValidateNotNil(x); err != nil {
				return Result{}, err
			}
		}
		tol := e.tol
		if req.Tolerance != nil {
			tol = *req.Tolerance
		}
		return Result{Flag: matrix.EqualWithin(a, req.Operands[1], tol)}, nil
	}
	if err != nil {
		return Result{}, err
	}

	return Result{Matrix: m}, nil
}

func (e *Engine) linalg(req Request) (Result, error) {
	a, err := linalg.FromMatrix(req.Operands[0])
	if err != nil {
		return Result{}, err
	}
	b := e.backend

	switch req.Op {
	case Det:
		v, err := b.Determinant(a)
		return Result{Number: v}, err
	case Norm:
		kind := req.Norm
		if kind == "" {
			kind = linalg.NormFrobenius
		}
		v, err := b.Norm(a, kind)
		return Result{Number: v}, err
	case Cond:
		v, err := b.Cond(a)
		return Result{Number: v}, err
	case Rank:
		n, err := b.Rank(a)
		return Result{Count: n}, err
	case Inv:
		inv, err := b.Inverse(a)
		if err != nil {
			return Result{}, err
		}
		return matrixResult(inv)
	case Cholesky:
		l, err := b.Cholesky(a)
		if err != nil {
			return Result{}, err
		}
		return matrixResult(l)
	case Eigen:
		er, err := b.Eigen(a)
		if err != nil {
			return Result{}, err
		}
		return factorResult(er.Values, map[string]*linalg.Dense{"vectors": er.Vectors})
	case SVD:
		sr, err := b.SVD(a)
		if err != nil {
			return Result{}, err
		}
		return factorResult(sr.S, map[string]*linalg.Dense{"u": sr.U, "vt": sr.Vt})
	case QR:
		q, r, err := b.QR(a)
		if err != nil {
			return Result{}, err
		}
		return factorResult(nil, map[string]*linalg.Dense{"q": q, "r": r})
	}

	return Result{}, fmt.Errorf("%w: %q", ErrUnknownOp, req.Op)
}

func matrixResult(d *linalg.Dense) (Result, error) {
	m, err := linalg.ToMatrix(d)
	if err != nil {
		return Result{}, err
	}

	return Result{Matrix: m}, nil
}

func factorResult(values []float64, factors map[string]*linalg.Dense) (Result, error) {
	res := Result{Values: values, Factors: make(map[string]*matrix.Dense, len(factors))}
	for name, d := range factors {
		m, err := linalg.ToMatrix(d)
		if err != nil {
			return Result{}, err
		}
		res.Factors[name] = m
	}

	return res, nil
}

// finish records the call and emits one log line.
func (e *Engine) finish(req Request, res Result, err error, took time.Duration) {
	operands := make([]string, len(req.Operands))
	for i, m := range req.Operands {
		if i < len(req.Names) && req.Names[i] != "" {
			operands[i] = req.Names[i]
		} else {
			operands[i] = shape(m)
		}
	}
	if e.reg != nil {
		e.reg.Record(string(req.Op), operands, res.Summary(), err)
	}
	if err != nil {
		e.log.Info("operation failed", "op", req.Op, "operands", operands, "error", err)
		return
	}
	e.log.Debug("operation done", "op", req.Op, "operands", operands,
		"result", res.Summary(), "backend", e.backend.Name(), "took", took)
}

func shape(m *matrix.Dense) string {
	if m == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%dx%d", m.Rows(), m.Cols())
}
