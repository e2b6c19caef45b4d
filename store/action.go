package store

import (
	"github.com/mailru/easyjson/jwriter"

	"github.com/jimforte/Misago/models"
)

const KindPatchPost = "PATCH_POST"

// Action is anything the root store can dispatch. Reducers must treat
// kinds they do not recognize as no-ops.
type Action interface {
	ActionKind() string
}

// PostRef identifies a stored post. Matching is strict on the int64 id.
type PostRef struct {
	ID int64 `json:"id"`
}

// Ref is a convenience for building a PostRef from a hydrated post.
func Ref(post *models.Post) PostRef {
	return PostRef{ID: post.ID}
}

// PatchPost overwrites a subset of one post's fields.
type PatchPost struct {
	Post  PostRef
	Patch models.PostPatch
}

func (PatchPost) ActionKind() string {
	return KindPatchPost
}

// Patch builds a PATCH_POST action. The changes are not validated here;
// callers own the shape of what they overwrite.
func Patch(post PostRef, changes models.PostPatch) PatchPost {
	return PatchPost{
		Post:  post,
		Patch: changes,
	}
}

func (a PatchPost) MarshalEasyJSON(out *jwriter.Writer) {
	out.RawString(`{"kind":`)
	out.String(KindPatchPost)
	out.RawString(`,"post":{"id":`)
	out.Int64(a.Post.ID)
	out.RawString(`},"patch":`)
	a.Patch.MarshalEasyJSON(out)
	out.RawByte('}')
}

func (a PatchPost) MarshalJSON() ([]byte, error) {
	out := jwriter.Writer{}
	a.MarshalEasyJSON(&out)
	return out.Buffer.BuildBytes(), out.Error
}
