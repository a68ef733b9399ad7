package core

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MsgEmployeeNotFound     = "Employee not found"
	MsgEmployeeIDExists     = "Employee ID already exists"
	MsgEmailExists          = "Email already exists"
	MsgEmployeeExists       = "Employee ID or email already exists"
	MsgAttendanceExists     = "Attendance already marked for this date"
	MsgInvalidAttendanceDay = "Field 'date' must be a valid date (YYYY-MM-DD)"
	MsgInvalidStatus        = "Field 'status' must be one of Present, Absent"
)

type Kind int

const (
	KindUnexpected Kind = iota
	KindNotFound
	KindConflict
	KindInvalidInput
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindConflict:
		return "Conflict"
	case KindInvalidInput:
		return "InvalidInput"
	}
	return "Unexpected"
}

// Error is the outcome of a failed directory or ledger operation. Details
// holds one message per violated field for KindInvalidInput.
type Error struct {
	Kind    Kind
	Message string
	Details []string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func InvalidInput(details ...string) *Error {
	return &Error{Kind: KindInvalidInput, Message: strings.Join(details, ", "), Details: details}
}

func Unexpected(message string, err error) *Error {
	return &Error{Kind: KindUnexpected, Message: message, Err: err}
}

// KindOf reports the kind of err; anything that is not an *Error is unexpected.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

var (
	// ErrDuplicateKey is matched by every unique index violation a store reports.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrNoRecord is returned by store deletes that matched nothing.
	ErrNoRecord = errors.New("no record")
)

// DuplicateKeyError carries the field of the violated unique index when the
// backend reports it. Field is empty when it could not be determined.
type DuplicateKeyError struct {
	Field string
	Err   error
}

func (e *DuplicateKeyError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("duplicate key: %v", e.Err)
	}
	return fmt.Sprintf("duplicate key on %s: %v", e.Field, e.Err)
}

func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

func (e *DuplicateKeyError) Unwrap() error {
	return e.Err
}

func duplicateField(err error) string {
	var dup *DuplicateKeyError
	if errors.As(err, &dup) {
		return dup.Field
	}
	return ""
}
