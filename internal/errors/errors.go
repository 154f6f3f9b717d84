// Package errors defines the domain error model shared by every service.
package errors

// FallbackMessage is shown when the backend fails without a usable message.
const FallbackMessage = "something went wrong, please try again"

// DomainError is a user-presentable error with a stable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string { return e.Message }

// Backend wraps a backend-provided failure. The message is carried verbatim;
// the fallback applies only when the backend supplied none.
func Backend(code, message string) *DomainError {
	if code == "" {
		code = "BACKEND_ERROR"
	}
	if message == "" {
		message = FallbackMessage
	}
	return &DomainError{Code: code, Message: message}
}
