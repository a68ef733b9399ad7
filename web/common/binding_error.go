package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"hrmslite.com/hrms/hrms/core"
)

// BindingError turns a request decoding failure into an InvalidInput error.
func BindingError(err error) error {
	if err == nil {
		return nil
	}
	if messages := core.FieldMessages(err); len(messages) > 0 {
		return core.InvalidInput(messages...)
	}
	return core.InvalidInput(FormatBindingError(err))
}

func FormatBindingError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, io.EOF) {
		return "Request body is empty"
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Sprintf("Invalid JSON at byte offset %d", syntaxErr.Offset)
	}

	// e.g. a number where a string is expected
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("Field '%s' should be of type %s", typeErr.Field, typeErr.Type.String())
	}

	if errors.Is(err, io.ErrUnexpectedEOF) {
		return "Request body is truncated"
	}

	return err.Error()
}
