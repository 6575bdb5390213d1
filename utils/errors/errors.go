package errors

import (
	"errors"

	"github.com/petlove/backend/constant"
)

// CustomError is the error type returned by application services. It wraps a
// constant.ErrorType so transport can map it to a wire code and an HTTP
// status without inspecting error strings.
type CustomError struct {
	errType constant.ErrorType
	message string
}

func (c CustomError) Error() string {
	if c.message != "" {
		return c.message
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

// Type returns the underlying taxonomy entry.
func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetCustomErrorMessage keeps the wire code and HTTP status of errorType but
// replaces the canned message, for failures where the caller should see what
// was wrong with the request.
func SetCustomErrorMessage(errorType constant.ErrorType, message string) CustomError {
	return CustomError{
		errType: errorType,
		message: message,
	}
}

// IsType reports whether err is a CustomError of the given taxonomy entry.
func IsType(err error, errorType constant.ErrorType) bool {
	var ce CustomError
	if !errors.As(err, &ce) {
		return false
	}
	return ce.errType == errorType
}
