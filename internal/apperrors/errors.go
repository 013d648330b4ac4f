package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the actor is not allowed to perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrStorageIO indicates a blob put/get/delete failure. Put failures abort
// the upload; delete failures during cleanup are downgraded to warnings by
// the lifecycle orchestrator.
var ErrStorageIO = errors.New("storage i/o error")

// ErrAnalysisDispatch indicates a transient failure reaching the analysis
// service (timeout, network, rate limit). Retried with bounded attempts.
var ErrAnalysisDispatch = errors.New("analysis dispatch failed")

// ErrAnalysisParse indicates the model output could not be parsed into the
// structured schema. Never retried: the same input would likely reproduce
// the same malformed output.
var ErrAnalysisParse = errors.New("analysis output unparsable")

// ErrConflict indicates the operation lost a status-guarded compare-and-set,
// e.g. a concurrent dispatch already claimed the document.
var ErrConflict = errors.New("conflicting concurrent update")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
