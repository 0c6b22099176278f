package pkg

import "fmt"

// AppError is the handler-facing error carrying the HTTP status and the JSON
// envelope rendered to clients. Handlers translate every usecase error into
// one of these; nothing propagates to the transport layer uncaught.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
	Details    any
	// Response carries a user-facing fallback string for surfaces that must
	// never show a raw error (chat widget).
	Response string
}

func NewDomainError(code string, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code string, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// WithDetails returns a copy carrying per-field detail; the receiver (often a
// shared package-level error) is left untouched.
func (e *AppError) WithDetails(details any) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// WithResponse returns a copy carrying a user-facing fallback string.
func (e *AppError) WithResponse(response string) *AppError {
	clone := *e
	clone.Response = response
	return &clone
}

// HTTPError is the error envelope every endpoint renders.
type HTTPError struct {
	Success  bool   `json:"success"`
	Error    string `json:"error"`
	Details  any    `json:"details,omitempty"`
	Response string `json:"response,omitempty"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{
		Success:  false,
		Error:    e.Message,
		Details:  e.Details,
		Response: e.Response,
	}
}
