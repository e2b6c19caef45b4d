package models

import (
	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

// Status carries the entity counts shown by the admin DB-stats panel.
type Status struct {
	NumUsers   int32 `json:"user"`
	NumForums  int32 `json:"forum"`
	NumThreads int32 `json:"thread"`
	NumPosts   int64 `json:"post"`
}

func (s Status) MarshalEasyJSON(out *jwriter.Writer) {
	out.RawString(`{"user":`)
	out.Int32(s.NumUsers)
	out.RawString(`,"forum":`)
	out.Int32(s.NumForums)
	out.RawString(`,"thread":`)
	out.Int32(s.NumThreads)
	out.RawString(`,"post":`)
	out.Int64(s.NumPosts)
	out.RawByte('}')
}

func (s *Status) UnmarshalEasyJSON(in *jlexer.Lexer) {
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "user":
			s.NumUsers = in.Int32()
		case "forum":
			s.NumForums = in.Int32()
		case "thread":
			s.NumThreads = in.Int32()
		case "post":
			s.NumPosts = in.Int64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}
