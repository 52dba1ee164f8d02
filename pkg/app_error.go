package pkg

import "fmt"

// AppError is the error shape handlers send back to clients.
type AppError struct {
	Code       string
	Message    string
	Details    map[string]any
	Err        error
	HTTPStatus int
}

// HTTPError is the JSON envelope: {"error":{"code":...,"message":...}}.
type HTTPError struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ToHTTPError drops the wrapped cause so internals never reach the client.
// Details are sent as set.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Error: ErrorBody{Code: e.Code, Message: e.Message, Details: e.Details}}
}
