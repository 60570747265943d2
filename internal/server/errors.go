// SPDX-License-Identifier: MIT

package server

import (
	"errors"
	"net/http"

	"github.com/katalvlaran/matrixgen/internal/ops"
	"github.com/katalvlaran/matrixgen/internal/registry"
	"github.com/katalvlaran/matrixgen/linalg"
	"github.com/katalvlaran/matrixgen/matrix"
	"github.com/katalvlaran/matrixgen/scalar"
)

var (
	// errMissingOperand indicates neither an inline grid nor a reference was given.
	errMissingOperand = errors.New("server: missing operand")

	// errMissingArgument indicates a required non-matrix argument is absent.
	errMissingArgument = errors.New("server: missing argument")
)

// Error codes.
const (
	codeInvalidRequest    = "INVALID_REQUEST"
	codeInvalidElement    = "INVALID_ELEMENT"
	codeInvalidDimensions = "INVALID_DIMENSIONS"
	codeInvalidName       = "INVALID_NAME"
	codeInvalidArgument   = "INVALID_ARGUMENT"
	codeUnknownOp         = "UNKNOWN_OPERATION"
	codeNotFound          = "NOT_FOUND"
	codeDimension         = "DIMENSION_MISMATCH"
	codeSingular          = "SINGULAR"
	codeUnsupported       = "UNSUPPORTED_MATRIX"
	codeNoConvergence     = "NO_CONVERGENCE"
	codeNonFinite         = "NON_FINITE_RESULT"
	codeInternal          = "INTERNAL"
)

// classify maps an error to an HTTP status and an error code.
// Order matters: element errors also wrap scalar sentinels.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, registry.ErrNotFound):
		return http.StatusNotFound, codeNotFound
	case errors.Is(err, ops.ErrUnknownOp):
		return http.StatusNotFound, codeUnknownOp
	case errors.Is(err, matrix.ErrInvalidElement),
		errors.Is(err, scalar.ErrInvalidNumber),
		errors.Is(err, scalar.ErrInvalidFraction):
		return http.StatusBadRequest, codeInvalidElement
	case errors.Is(err, matrix.ErrShapeMismatch),
		errors.Is(err, matrix.ErrInvalidDimensions):
		return http.StatusBadRequest, codeInvalidDimensions
	case errors.Is(err, registry.ErrInvalidName):
		return http.StatusBadRequest, codeInvalidName
	case errors.Is(err, ops.ErrArity),
		errors.Is(err, errMissingOperand),
		errors.Is(err, errMissingArgument),
		errors.Is(err, matrix.ErrNilMatrix):
		return http.StatusBadRequest, codeInvalidRequest
	case errors.Is(err, matrix.ErrInvalidExponent),
		errors.Is(err, matrix.ErrInvalidRange),
		errors.Is(err, linalg.ErrUnknownNorm):
		return http.StatusBadRequest, codeInvalidArgument
	case errors.Is(err, matrix.ErrDimensionMismatch),
		errors.Is(err, linalg.ErrNonSquare),
		errors.Is(err, linalg.ErrDimensionMismatch),
		errors.Is(err, linalg.ErrEmpty):
		return http.StatusUnprocessableEntity, codeDimension
	case errors.Is(err, linalg.ErrSingular):
		return http.StatusUnprocessableEntity, codeSingular
	case errors.Is(err, linalg.ErrNotSymmetric),
		errors.Is(err, linalg.ErrNotPositiveDefinite),
		errors.Is(err, linalg.ErrComplexEigen):
		return http.StatusUnprocessableEntity, codeUnsupported
	case errors.Is(err, linalg.ErrNoConvergence):
		return http.StatusUnprocessableEntity, codeNoConvergence
	case errors.Is(err, matrix.ErrNonFinite):
		return http.StatusUnprocessableEntity, codeNonFinite
	default:
		return http.StatusInternalServerError, codeInternal
	}
}
