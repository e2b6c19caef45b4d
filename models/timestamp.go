package models

import (
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

// NullTimestamp is a date-time value that may be absent.
// The absent value marshals as JSON null.
type NullTimestamp struct {
	Valid     bool
	Timestamp strfmt.DateTime
}

func NewNullTimestamp(t time.Time) NullTimestamp {
	return NullTimestamp{
		Valid:     true,
		Timestamp: strfmt.DateTime(t),
	}
}

func (t NullTimestamp) MarshalEasyJSON(out *jwriter.Writer) {
	if t.Valid {
		out.String(t.Timestamp.String())
	} else {
		out.RawString("null")
	}
}

func (t *NullTimestamp) UnmarshalEasyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		*t = NullTimestamp{}
		return
	}

	tStamp, err := strfmt.ParseDateTime(in.String())
	if err != nil {
		in.AddError(err)
		return
	}

	*t = NullTimestamp{Valid: true, Timestamp: tStamp}
}
