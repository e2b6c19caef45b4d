package services

import (
	"testing"
	"time"

	"github.com/mailru/easyjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/jimforte/Misago/models"
	"github.com/jimforte/Misago/repositories"
	"github.com/jimforte/Misago/store"
)

type staticSource struct {
	version string
	err     error
}

func (s staticSource) Latest() (string, error) {
	return s.version, s.err
}

func newTestServer(source VersionSource, posts *store.Store) *Server {
	statusRepository := repositories.NewStatusRepository(posts)
	statusRepository.SetCounts(12, 3, 8)

	return NewServer(
		ServerConfig{Host: "127.0.0.1", Port: "0"},
		ServerComponents{
			VersionChecker:   NewVersionChecker("0.6.0", source),
			StatusRepository: statusRepository,
		},
	)
}

func postForm(t *testing.T, client *fasthttp.Client, url string) models.VersionCheckResult {
	t.Helper()

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType(FormContentType)
	req.SetRequestURI(url)
	req.SetBodyString("csrf_token=f00ba7")

	require.NoError(t, client.DoTimeout(req, resp, time.Second))
	require.Equal(t, fasthttp.StatusOK, resp.StatusCode())

	var result models.VersionCheckResult
	require.NoError(t, easyjson.Unmarshal(resp.Body(), &result))
	return result
}

func TestCheckVersionUpToDate(t *testing.T) {
	srv := newTestServer(staticSource{version: "0.6.0"}, store.New(store.State{}))
	client := serveInmemory(t, srv.Handler())

	result := postForm(t, client, checkURL)
	assert.False(t, result.IsError)
	assert.Contains(t, result.Message, "Up to date")
}

func TestCheckVersionOutdated(t *testing.T) {
	srv := newTestServer(staticSource{version: "0.7.0"}, store.New(store.State{}))
	client := serveInmemory(t, srv.Handler())

	result := postForm(t, client, checkURL)
	assert.True(t, result.IsError)
	assert.Contains(t, result.Message, "0.7.0")
}

func TestCheckVersionIndexUnreachable(t *testing.T) {
	srv := newTestServer(staticSource{err: assert.AnError}, store.New(store.State{}))
	client := serveInmemory(t, srv.Handler())

	result := postForm(t, client, checkURL)
	assert.True(t, result.IsError)
	assert.Equal(t, VersionIndexFailedMessage, result.Message)
}

func TestGetStatusTracksStore(t *testing.T) {
	post, err := models.HydratePost([]byte(
		`{"id":1,"posted_on":"2020-01-01T00:00:00Z","updated_on":"2020-01-01T00:00:00Z","hidden_on":null}`,
	))
	require.NoError(t, err)

	posts := store.New(store.State{Posts: []*models.Post{post}})
	srv := newTestServer(staticSource{version: "0.6.0"}, posts)
	client := serveInmemory(t, srv.Handler())

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.Header.SetMethod(fasthttp.MethodGet)
	req.SetRequestURI("http://admin.local/api/admin/status")

	require.NoError(t, client.DoTimeout(req, resp, time.Second))
	require.Equal(t, fasthttp.StatusOK, resp.StatusCode())

	var status models.Status
	require.NoError(t, easyjson.Unmarshal(resp.Body(), &status))

	assert.EqualValues(t, 12, status.NumUsers)
	assert.EqualValues(t, 3, status.NumForums)
	assert.EqualValues(t, 8, status.NumThreads)
	assert.EqualValues(t, 1, status.NumPosts)
}

func TestCheckVersionRejectsNonFormBody(t *testing.T) {
	srv := newTestServer(staticSource{version: "0.6.0"}, store.New(store.State{}))
	client := serveInmemory(t, srv.Handler())

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType(JsonType)
	req.SetRequestURI(checkURL)
	req.SetBodyString(`{}`)

	require.NoError(t, client.DoTimeout(req, resp, time.Second))
	assert.Equal(t, fasthttp.StatusUnprocessableEntity, resp.StatusCode())
}

// The controller against the real endpoint: the full widget round trip.
func TestControllerAgainstServer(t *testing.T) {
	srv := newTestServer(staticSource{version: "0.6.0"}, store.New(store.State{}))
	client := serveInmemory(t, srv.Handler())

	c := NewVersionCheckController(client, checkURL, time.Second)

	form := fasthttp.AcquireArgs()
	defer fasthttp.ReleaseArgs(form)
	form.Set("csrf_token", "f00ba7")

	result, err := c.Submit(form)
	require.NoError(t, err)

	assert.False(t, result.IsError)
	assert.Contains(t, result.Message, "Up to date")
	assert.Equal(t, StateSettled, c.State())
}
