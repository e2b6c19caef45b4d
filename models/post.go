package models

import (
	"encoding/json"
	"sort"

	"github.com/go-openapi/strfmt"
	"github.com/mailru/easyjson/jwriter"
)

// Post is the runtime representation of a forum post: a typed header the
// state slice manipulates plus the remaining server fields kept verbatim
// in Content. The three Is* flags are UI-transient and never come from
// the server.
type Post struct {
	ID         int64
	PostedOn   strfmt.DateTime
	UpdatedOn  strfmt.DateTime
	HiddenOn   NullTimestamp
	IsSelected bool
	IsBusy     bool
	IsDeleted  bool
	Content    map[string]interface{}
}

// PostPatch is a partial override of Post fields. Nil pointers and absent
// Content keys mean "retain the current value".
type PostPatch struct {
	PostedOn   *strfmt.DateTime
	UpdatedOn  *strfmt.DateTime
	HiddenOn   *NullTimestamp
	IsSelected *bool
	IsBusy     *bool
	IsDeleted  *bool
	Content    map[string]interface{}
}

// Merge returns a new record equal to p with the patch fields overriding.
// Neither p nor its Content map is modified.
func (p *Post) Merge(patch PostPatch) *Post {
	next := *p

	next.Content = make(map[string]interface{}, len(p.Content)+len(patch.Content))
	for k, v := range p.Content {
		next.Content[k] = v
	}
	for k, v := range patch.Content {
		next.Content[k] = v
	}

	if patch.PostedOn != nil {
		next.PostedOn = *patch.PostedOn
	}
	if patch.UpdatedOn != nil {
		next.UpdatedOn = *patch.UpdatedOn
	}
	if patch.HiddenOn != nil {
		next.HiddenOn = *patch.HiddenOn
	}
	if patch.IsSelected != nil {
		next.IsSelected = *patch.IsSelected
	}
	if patch.IsBusy != nil {
		next.IsBusy = *patch.IsBusy
	}
	if patch.IsDeleted != nil {
		next.IsDeleted = *patch.IsDeleted
	}

	return &next
}

func (p Post) MarshalEasyJSON(out *jwriter.Writer) {
	out.RawString(`{"id":`)
	out.Int64(p.ID)
	out.RawString(`,"posted_on":`)
	out.String(p.PostedOn.String())
	out.RawString(`,"updated_on":`)
	out.String(p.UpdatedOn.String())
	out.RawString(`,"hidden_on":`)
	p.HiddenOn.MarshalEasyJSON(out)
	out.RawString(`,"isSelected":`)
	out.Bool(p.IsSelected)
	out.RawString(`,"isBusy":`)
	out.Bool(p.IsBusy)
	out.RawString(`,"isDeleted":`)
	out.Bool(p.IsDeleted)
	for _, key := range sortedKeys(p.Content) {
		out.RawByte(',')
		out.String(key)
		out.RawByte(':')
		out.Raw(json.Marshal(p.Content[key]))
	}
	out.RawByte('}')
}

func (p Post) MarshalJSON() ([]byte, error) {
	out := jwriter.Writer{}
	p.MarshalEasyJSON(&out)
	return out.Buffer.BuildBytes(), out.Error
}

func (p PostPatch) MarshalEasyJSON(out *jwriter.Writer) {
	out.RawByte('{')
	first := true
	field := func(name string) {
		if !first {
			out.RawByte(',')
		}
		first = false
		out.String(name)
		out.RawByte(':')
	}

	if p.PostedOn != nil {
		field("posted_on")
		out.String(p.PostedOn.String())
	}
	if p.UpdatedOn != nil {
		field("updated_on")
		out.String(p.UpdatedOn.String())
	}
	if p.HiddenOn != nil {
		field("hidden_on")
		p.HiddenOn.MarshalEasyJSON(out)
	}
	if p.IsSelected != nil {
		field("isSelected")
		out.Bool(*p.IsSelected)
	}
	if p.IsBusy != nil {
		field("isBusy")
		out.Bool(*p.IsBusy)
	}
	if p.IsDeleted != nil {
		field("isDeleted")
		out.Bool(*p.IsDeleted)
	}
	for _, key := range sortedKeys(p.Content) {
		field(key)
		out.Raw(json.Marshal(p.Content[key]))
	}
	out.RawByte('}')
}

func (p PostPatch) MarshalJSON() ([]byte, error) {
	out := jwriter.Writer{}
	p.MarshalEasyJSON(&out)
	return out.Buffer.BuildBytes(), out.Error
}

// Bool returns a pointer suitable for a PostPatch flag override.
func Bool(v bool) *bool {
	return &v
}

// DateTime returns a pointer suitable for a PostPatch timestamp override.
func DateTime(v strfmt.DateTime) *strfmt.DateTime {
	return &v
}

// Content keys are written in sorted order so output is deterministic.
func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
