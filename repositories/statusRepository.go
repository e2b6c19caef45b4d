package repositories

import (
	"sync"

	"github.com/jimforte/Misago/errs"
	"github.com/jimforte/Misago/models"
	"github.com/jimforte/Misago/store"
)

// StatusRepository feeds the admin DB-stats panel. The post count tracks
// the live store snapshot; the remaining counts are set by whoever owns
// those entities. How the server aggregates its own counts is not this
// module's concern.
type StatusRepository struct {
	mu         sync.RWMutex
	numUsers   int32
	numForums  int32
	numThreads int32

	posts *store.Store
}

func NewStatusRepository(posts *store.Store) *StatusRepository {
	return &StatusRepository{
		posts: posts,
	}
}

func (r *StatusRepository) SetCounts(users, forums, threads int32) {
	r.mu.Lock()
	r.numUsers = users
	r.numForums = forums
	r.numThreads = threads
	r.mu.Unlock()
}

func (r *StatusRepository) GetStatus(status *models.Status) *errs.Error {
	r.mu.RLock()
	status.NumUsers = r.numUsers
	status.NumForums = r.numForums
	status.NumThreads = r.numThreads
	r.mu.RUnlock()

	status.NumPosts = int64(len(r.posts.State().Posts))
	return nil
}
