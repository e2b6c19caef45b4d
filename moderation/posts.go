package moderation

import (
	"strings"
	"time"

	"github.com/jimforte/Misago/models"
	"github.com/jimforte/Misago/store"
)

// Moderation operations are expressed as PATCH_POST actions so that every
// change still flows through the reducer. Each function reports whether it
// produced a change; applying an operation to a post already in the target
// state is a no-op, mirroring the forum's moderation rules.

// Hide stamps the post with the hiding user and the current time.
func Hide(user string, post *models.Post) (store.PatchPost, bool) {
	if post.HiddenOn.Valid {
		return store.PatchPost{}, false
	}

	hiddenOn := models.NewNullTimestamp(time.Now().UTC())
	action := store.Patch(store.Ref(post), models.PostPatch{
		HiddenOn: &hiddenOn,
		Content: map[string]interface{}{
			"hidden_by_name": user,
			"hidden_by_slug": strings.ToLower(user),
		},
	})
	return action, true
}

// Unhide makes the post visible again and clears the hiding attribution.
func Unhide(post *models.Post) (store.PatchPost, bool) {
	if !post.HiddenOn.Valid {
		return store.PatchPost{}, false
	}

	action := store.Patch(store.Ref(post), models.PostPatch{
		HiddenOn: &models.NullTimestamp{},
		Content: map[string]interface{}{
			"hidden_by_name": nil,
			"hidden_by_slug": nil,
		},
	})
	return action, true
}

// Delete marks the post deleted. Removal from the collection is the
// surrounding store's policy, not ours.
func Delete(post *models.Post) (store.PatchPost, bool) {
	if post.IsDeleted {
		return store.PatchPost{}, false
	}

	action := store.Patch(store.Ref(post), models.PostPatch{
		IsDeleted: models.Bool(true),
	})
	return action, true
}

// Restore reverts Delete.
func Restore(post *models.Post) (store.PatchPost, bool) {
	if !post.IsDeleted {
		return store.PatchPost{}, false
	}

	action := store.Patch(store.Ref(post), models.PostPatch{
		IsDeleted: models.Bool(false),
	})
	return action, true
}
