// Package apperr maps errors raised while serving tracks to HTTP responses.
package apperr

// ValidationError rejects a malformed request before any track is loaded.
// Field names the offending request parameter or body member, if known.
type ValidationError struct {
	Message string
	Field   string
	Err     error
}

func (e *ValidationError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// OnField records the request field the error refers to.
func (e *ValidationError) OnField(field string) *ValidationError {
	e.Field = field
	return e
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}
