package models

import (
	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

// VersionCheckResult is the admin check endpoint's answer. It lives for a
// single check cycle and is never persisted.
type VersionCheckResult struct {
	IsError bool   `json:"is_error"`
	Message string `json:"message"`
}

func (r VersionCheckResult) MarshalEasyJSON(out *jwriter.Writer) {
	out.RawString(`{"is_error":`)
	out.Bool(r.IsError)
	out.RawString(`,"message":`)
	out.String(r.Message)
	out.RawByte('}')
}

func (r *VersionCheckResult) UnmarshalEasyJSON(in *jlexer.Lexer) {
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "is_error":
			r.IsError = in.Bool()
		case "message":
			r.Message = in.String()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}
