package pkg

import "fmt"

// AppError is the error envelope every handler answers with.
//
// Code is a stable machine-readable identifier (e.g. VALIDATION_FAILED), Message is
// the user-facing notification title and Details its optional subtitle. Step is only
// set for wizard validation notices so the client knows which step to show.
type AppError struct {
	Code       string
	Message    string
	Details    string
	Step       *int
	HTTPStatus int
	Err        error
}

// HTTPError is the JSON body written for an AppError.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Step    *int   `json:"step,omitempty"`
}

func NewDomainError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: status}
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// WithDetails returns a copy carrying a subtitle.
func (e *AppError) WithDetails(details string) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// WithStep returns a copy tagged with the wizard step that failed.
func (e *AppError) WithStep(step int) *AppError {
	cp := *e
	cp.Step = &step
	return &cp
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Details: e.Details, Step: e.Step}
}
