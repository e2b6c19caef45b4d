package errs

import (
	"fmt"
	"net/http"

	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

type Error struct {
	HttpStatus int    `json:"-"`
	Message    string `json:"message"`
}

func NewError(status int, message string) *Error {
	return &Error{
		HttpStatus: status,
		Message:    message,
	}
}

func NewInternalError(message string) *Error {
	return NewError(http.StatusInternalServerError, message)
}

func NewNotFoundError(message string) *Error {
	return NewError(http.StatusNotFound, message)
}

func NewInvalidFormatError(message string) *Error {
	return NewError(http.StatusUnprocessableEntity, message)
}

func NewConflictError(message string) *Error {
	return NewError(http.StatusConflict, message)
}

func NewBadGatewayError(message string) *Error {
	return NewError(http.StatusBadGateway, message)
}

func (err Error) Error() string {
	return err.Message
}

func (err Error) MarshalEasyJSON(out *jwriter.Writer) {
	out.RawString(`{"message":`)
	out.String(err.Message)
	out.RawByte('}')
}

func (err *Error) UnmarshalEasyJSON(in *jlexer.Lexer) {
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "message":
			err.Message = in.String()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

// MalformedRecordError reports a server record that failed hydration.
// Field names the offending attribute, Raw carries the value as received.
type MalformedRecordError struct {
	Field string
	Raw   string
}

func NewMalformedRecordError(field, raw string) *MalformedRecordError {
	return &MalformedRecordError{
		Field: field,
		Raw:   raw,
	}
}

func (err *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record: field %q has invalid value %q", err.Field, err.Raw)
}
