package store

import (
	"github.com/jimforte/Misago/models"
)

// ReducePosts applies an action to the post collection.
//
// On PATCH_POST the matching entry is replaced by a merged copy and every
// other entry keeps its exact pointer, so consumers can change-detect by
// reference. A miss, and any action kind this reducer does not recognize,
// returns the input slice itself. The input is never mutated.
func ReducePosts(state []*models.Post, action Action) []*models.Post {
	switch a := action.(type) {
	case PatchPost:
		return patchPost(state, a)
	default:
		return state
	}
}

func patchPost(state []*models.Post, action PatchPost) []*models.Post {
	for i, post := range state {
		if post.ID != action.Post.ID {
			continue
		}

		next := make([]*models.Post, len(state))
		copy(next, state)
		next[i] = post.Merge(action.Patch)
		return next
	}
	return state
}
