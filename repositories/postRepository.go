package repositories

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/valyala/fasthttp"

	"github.com/jimforte/Misago/models"
)

const DefaultFetchTimeout = 5 * time.Second

// PostRepository is the initial-load path of the post slice: it fetches a
// thread's raw post records from the forum API and hydrates them into
// runtime records for the store.
type PostRepository struct {
	client  *fasthttp.Client
	baseURL string
	timeout time.Duration
}

func NewPostRepository(client *fasthttp.Client, baseURL string, timeout time.Duration) *PostRepository {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &PostRepository{
		client:  client,
		baseURL: baseURL,
		timeout: timeout,
	}
}

func (r *PostRepository) FetchThreadPosts(threadID int32) ([]*models.Post, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.Header.SetMethod(fasthttp.MethodGet)
	req.SetRequestURI(fmt.Sprintf("%s/api/thread/%d/posts", r.baseURL, threadID))

	if err := r.client.DoTimeout(req, resp, r.timeout); err != nil {
		return nil, errors.Wrap(err, "fetch thread posts")
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, errors.Errorf("fetch thread posts: unexpected status %d", resp.StatusCode())
	}

	posts, err := models.HydratePosts(resp.Body())
	if err != nil {
		return nil, errors.Wrap(err, "hydrate thread posts")
	}
	return posts, nil
}
