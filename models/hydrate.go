package models

import (
	"encoding/json"
	"strconv"

	"github.com/go-openapi/strfmt"
	"github.com/mailru/easyjson/jlexer"

	"github.com/jimforte/Misago/consts"
	"github.com/jimforte/Misago/errs"
)

// HydratePost turns a raw server post record into a runtime Post.
//
// The three timestamp fields are parsed into date-time values, the three
// UI flags are forced to false, and every other field is copied verbatim
// into Content. A missing or unparseable required field aborts hydration
// with errs.MalformedRecordError. The input is never modified.
func HydratePost(data []byte) (*Post, error) {
	post := &Post{
		Content: make(map[string]interface{}),
	}

	var seenID, seenPosted, seenUpdated bool

	in := jlexer.Lexer{Data: data}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.String()
		in.WantColon()

		switch key {
		case "id":
			raw := in.Raw()
			id, err := strconv.ParseInt(string(raw), 10, 64)
			if err != nil {
				return nil, errs.NewMalformedRecordError(key, string(raw))
			}
			post.ID = id
			seenID = true
		case "posted_on":
			tStamp, err := parseTimestamp(key, in.Raw())
			if err != nil {
				return nil, err
			}
			post.PostedOn = tStamp
			seenPosted = true
		case "updated_on":
			tStamp, err := parseTimestamp(key, in.Raw())
			if err != nil {
				return nil, err
			}
			post.UpdatedOn = tStamp
			seenUpdated = true
		case "hidden_on":
			raw := in.Raw()
			if string(raw) == "null" {
				break
			}
			tStamp, err := parseTimestamp(key, raw)
			if err != nil {
				return nil, err
			}
			post.HiddenOn = NullTimestamp{Valid: true, Timestamp: tStamp}
		case "isSelected", "isBusy", "isDeleted":
			// UI-transient flags always start false, whatever the server says.
			in.SkipRecursive()
		default:
			post.Content[key] = in.Interface()
		}

		in.WantComma()
	}
	in.Delim('}')
	in.Consumed()

	if err := in.Error(); err != nil {
		return nil, err
	}

	if !seenID {
		return nil, errs.NewMalformedRecordError("id", consts.EmptyString)
	}
	if !seenPosted {
		return nil, errs.NewMalformedRecordError("posted_on", consts.EmptyString)
	}
	if !seenUpdated {
		return nil, errs.NewMalformedRecordError("updated_on", consts.EmptyString)
	}

	return post, nil
}

// HydratePosts hydrates a JSON array of raw post records.
func HydratePosts(data []byte) ([]*Post, error) {
	var posts []*Post

	in := jlexer.Lexer{Data: data}
	in.Delim('[')
	for !in.IsDelim(']') {
		post, err := HydratePost(in.Raw())
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
		in.WantComma()
	}
	in.Delim(']')
	in.Consumed()

	if err := in.Error(); err != nil {
		return nil, err
	}

	return posts, nil
}

func parseTimestamp(field string, raw []byte) (strfmt.DateTime, error) {
	var str string
	if err := json.Unmarshal(raw, &str); err != nil {
		return strfmt.DateTime{}, errs.NewMalformedRecordError(field, string(raw))
	}

	// strfmt treats the empty string as the zero date instead of failing.
	if str == consts.EmptyString {
		return strfmt.DateTime{}, errs.NewMalformedRecordError(field, str)
	}

	tStamp, err := strfmt.ParseDateTime(str)
	if err != nil {
		return strfmt.DateTime{}, errs.NewMalformedRecordError(field, str)
	}
	return tStamp, nil
}
