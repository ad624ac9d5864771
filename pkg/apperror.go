package pkg

import (
	"errors"
	"log"
	"net/http"
)

// Error codes surfaced by the OS service API.
//
// Classified errors are logged at informational level and returned with their
// code and message. Anything unclassified is logged in full and collapsed
// into CodeUnexpectedError before leaving the process.
const (
	CodeNotAllowed        = "NOT_ALLOWED"
	CodeResourceNotFound  = "RESOURCE_NOT_FOUND"
	CodeReferenceNotFound = "REFERENCE_NOT_FOUND"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeDomainRuleBroken  = "DOMAIN_RULE_BROKEN"
	CodeConflict          = "CONFLICT"
	CodeUnexpectedError   = "UNEXPECTED_ERROR"
)

// AppError is the error shape shared by handlers and webhooks.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPError is the JSON body returned for failed requests.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewNotAllowed(message string) *AppError {
	return NewDomainErrorSimple(CodeNotAllowed, message, http.StatusForbidden)
}

func NewResourceNotFound(message string) *AppError {
	return NewDomainErrorSimple(CodeResourceNotFound, message, http.StatusNotFound)
}

func NewReferenceNotFound(message string) *AppError {
	return NewDomainErrorSimple(CodeReferenceNotFound, message, http.StatusUnprocessableEntity)
}

func NewInvalidInput(message string) *AppError {
	return NewDomainErrorSimple(CodeInvalidInput, message, http.StatusBadRequest)
}

func NewDomainRuleBroken(message string) *AppError {
	return NewDomainErrorSimple(CodeDomainRuleBroken, message, http.StatusUnprocessableEntity)
}

func NewConflict(message string) *AppError {
	return NewDomainErrorSimple(CodeConflict, message, http.StatusConflict)
}

func NewUnexpected(err error) *AppError {
	return NewDomainError(CodeUnexpectedError, "An internal error occurred", err, http.StatusInternalServerError)
}

// Classify returns err as an *AppError, wrapping unclassified errors into
// UNEXPECTED_ERROR so callers never leak internal details.
func Classify(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewUnexpected(err)
}

// LogAndClassify applies the logging policy from the error design: classified
// errors at info level with code only, unclassified with full detail.
func LogAndClassify(area string, err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		log.Printf("[%s] request failed code=%s message=%q", area, appErr.Code, appErr.Message)
		return appErr
	}
	log.Printf("[%s] unexpected error: %v", area, err)
	return NewUnexpected(err)
}
