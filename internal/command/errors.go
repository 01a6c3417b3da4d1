package command

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a command failure so the dispatcher can pick the right
// embed color and wording without parsing messages.
type ErrorKind int

const (
	// KindValidation means the caller supplied bad input (out-of-range
	// numbers, malformed colors, missing targets).
	KindValidation ErrorKind = iota
	// KindPermission means the hierarchy or permission check said no.
	KindPermission
	// KindNotFound means the referenced entity does not exist.
	KindNotFound
	// KindExternalRejection means Discord rejected the operation.
	KindExternalRejection
	// KindExternalUnavailable means an upstream service could not be reached.
	KindExternalUnavailable
)

// Error is a user-facing command failure. Message is shown verbatim in an
// ephemeral embed, so keep it readable.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func Validationf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Permissionf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindPermission, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// ExternalRejection wraps a Discord API refusal. The original error is folded
// into the message since the caller cannot act on it anyway.
func ExternalRejection(action string, err error) *Error {
	return &Error{Kind: KindExternalRejection, Message: fmt.Sprintf("Failed to %s: %v", action, err)}
}

func ExternalUnavailable(service string) *Error {
	return &Error{Kind: KindExternalUnavailable, Message: fmt.Sprintf("%s is currently unavailable. Try again later.", service)}
}

// AsError extracts a *Error from err, if it is one.
func AsError(err error) (*Error, bool) {
	var cmdErr *Error
	if errors.As(err, &cmdErr) {
		return cmdErr, true
	}
	return nil, false
}
