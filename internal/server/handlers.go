// SPDX-License-Identifier: MIT

package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/matrixgen/internal/ops"
	"github.com/katalvlaran/matrixgen/linalg"
	"github.com/katalvlaran/matrixgen/matrix"
	"github.com/katalvlaran/matrixgen/scalar"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "backend": s.eng.Backend().Name()})
}

// handleOp serves POST /v1/ops/:op and /v1/linalg/:op.
//
// Response:
//
//	200 OK: OpResponse
//	400 Bad Request: malformed body, cell or argument
//	404 Not Found: unknown operation or operand reference
//	422 Unprocessable Entity: shape or numeric precondition failed
func (s *Server) handleOp(group ops.Group) gin.HandlerFunc {
	return func(c *gin.Context) {
		op, err := ops.Parse(c.Param("op"))
		if err == nil && op.Group() != group {
			err = fmt.Errorf("%w: %q", ops.ErrUnknownOp, c.Param("op"))
		}
		if err != nil {
			s.fail(c, err)
			return
		}

		var body OpRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			s.badBody(c, err)
			return
		}
		req, err := s.buildRequest(op, body)
		if err != nil {
			s.metrics.operations.WithLabelValues(string(op), codeOf(err)).Inc()
			s.fail(c, err)
			return
		}
		for _, m := range req.Operands {
			s.metrics.cells.WithLabelValues(string(op)).Observe(float64(m.Rows() * m.Cols()))
		}

		res, err := s.eng.Do(req)
		if err != nil {
			s.metrics.operations.WithLabelValues(string(op), codeOf(err)).Inc()
			s.fail(c, err)
			return
		}
		s.metrics.operations.WithLabelValues(string(op), "ok").Inc()
		c.JSON(http.StatusOK, s.opResponse(res))
	}
}

func codeOf(err error) string {
	_, code := classify(err)
	return code
}

// buildRequest resolves operands and arguments for op.
func (s *Server) buildRequest(op ops.Op, body OpRequest) (ops.Request, error) {
	req := ops.Request{Op: op, Exponent: body.Exponent, Tolerance: body.Tolerance, Store: body.Store}

	grids := [][][]string{body.A, body.B}
	refs := []string{body.ARef, body.BRef}
	for i := 0; i < op.Arity(); i++ {
		m, name, err := s.operand(grids[i], refs[i])
		if err != nil {
			return ops.Request{}, fmt.Errorf("operand %c: %w", 'a'+i, err)
		}
		req.Operands = append(req.Operands, m)
		req.Names = append(req.Names, name)
	}

	switch op {
	case ops.Scale:
		if body.Scalar == "" {
			return ops.Request{}, fmt.Errorf("%w: scalar", errMissingArgument)
		}
		v, err := scalar.Parse(body.Scalar)
		if err != nil {
			return ops.Request{}, fmt.Errorf("scalar: %w", err)
		}
		req.Scalar = v
	case ops.Norm:
		kind, err := linalg.ParseNormKind(body.Norm)
		if err != nil {
			return ops.Request{}, err
		}
		req.Norm = kind
	}

	return req, nil
}

// operand builds a matrix from an inline grid or fetches a stored one.
func (s *Server) operand(grid [][]string, ref string) (*matrix.Dense, string, error) {
	switch {
	case ref != "":
		m, err := s.reg.Get(ref)
		return m, ref, err
	case grid != nil:
		m, err := matrix.FromStrings(grid, s.cfg.MatrixOptions()...)
		return m, "", err
	default:
		return nil, "", errMissingOperand
	}
}

func (s *Server) opResponse(res ops.Result) OpResponse {
	out := OpResponse{
		Op:     string(res.Op),
		Values: numbers(res.Values),
		Stored: res.Stored,
	}
	if res.Op.Group() == ops.Linalg {
		out.Backend = s.eng.Backend().Name()
	}
	if res.Matrix != nil {
		out.MatrixJSON = encodeMatrix(res.Matrix)
	}
	switch res.Op {
	case ops.Det, ops.Norm, ops.Cond:
		n := Number(res.Number)
		out.Value = &n
	case ops.Rank:
		r := res.Count
		out.Rank = &r
	case ops.Equal:
		eq := res.Flag
		out.Equal = &eq
	}
	if len(res.Factors) > 0 {
		out.Factors = make(map[string]MatrixJSON, len(res.Factors))
		for name, m := range res.Factors {
			out.Factors[name] = *encodeMatrix(m)
		}
	}

	return out
}

// handleRandom serves POST /v1/random.
func (s *Server) handleRandom(c *gin.Context) {
	var body RandomRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		s.badBody(c, err)
		return
	}
	lo, hi := s.cfg.Random.Min, s.cfg.Random.Max
	if body.Min != nil {
		lo = *body.Min
	}
	if body.Max != nil {
		hi = *body.Max
	}
	kind := s.cfg.ElementKind()
	if body.Kind != "" {
		k, err := matrix.ParseElementKind(body.Kind)
		if err != nil {
			s.fail(c, fmt.Errorf("%w: %v", errMissingArgument, err))
			return
		}
		kind = k
	}
	seed := body.Seed
	if seed == 0 {
		seed = s.cfg.Random.Seed
	}

	m, err := matrix.NewDense(body.Rows, body.Cols, s.cfg.MatrixOptions()...)
	if err == nil {
		err = m.FillRandom(matrix.NewGenerator(seed, kind), lo, hi)
	}
	if err == nil && body.Store != "" {
		_, err = s.reg.Put(body.Store, m)
	}
	s.reg.Record("random", nil, body.Store, err)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, OpResponse{Op: "random", MatrixJSON: encodeMatrix(m), Stored: body.Store})
}

func (s *Server) handleList(c *gin.Context) {
	c.JSON(http.StatusOK, ListResponse{Matrices: s.reg.List()})
}

// handlePut serves PUT /v1/matrices/:name: 201 on create, 200 on replace.
func (s *Server) handlePut(c *gin.Context) {
	name := c.Param("name")
	var body PutRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		s.badBody(c, err)
		return
	}
	m, err := matrix.FromStrings(body.Grid, s.cfg.MatrixOptions()...)
	if err != nil {
		s.fail(c, err)
		return
	}
	replaced, err := s.reg.Put(name, m)
	s.reg.Record("put", nil, name, err)
	if err != nil {
		s.fail(c, err)
		return
	}
	status := http.StatusCreated
	if replaced {
		status = http.StatusOK
	}
	c.JSON(status, NamedMatrix{Name: name, MatrixJSON: encodeMatrix(m)})
}

func (s *Server) handleGet(c *gin.Context) {
	name := c.Param("name")
	m, err := s.reg.Get(name)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, NamedMatrix{Name: name, MatrixJSON: encodeMatrix(m)})
}

func (s *Server) handleDelete(c *gin.Context) {
	name := c.Param("name")
	err := s.reg.Delete(name)
	s.reg.Record("delete", []string{name}, "", err)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleHistory(c *gin.Context) {
	c.JSON(http.StatusOK, HistoryResponse{History: s.reg.History()})
}
