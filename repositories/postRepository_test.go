package repositories

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"

	"github.com/jimforte/Misago/errs"
)

func serveInmemory(t *testing.T, handler fasthttp.RequestHandler) *fasthttp.Client {
	t.Helper()

	ln := fasthttputil.NewInmemoryListener()
	go func() {
		_ = fasthttp.Serve(ln, handler)
	}()
	t.Cleanup(func() {
		_ = ln.Close()
	})

	return &fasthttp.Client{
		Dial: func(addr string) (net.Conn, error) {
			return ln.Dial()
		},
	}
}

func TestFetchThreadPosts(t *testing.T) {
	var gotPath string
	client := serveInmemory(t, func(ctx *fasthttp.RequestCtx) {
		gotPath = string(ctx.Path())
		ctx.Response.Header.SetContentType("application/json")
		ctx.SetBodyString(`[
			{"id":1,"posted_on":"2020-01-01T00:00:00Z","updated_on":"2020-01-01T00:00:00Z","hidden_on":null,"poster_name":"Bob"},
			{"id":2,"posted_on":"2020-01-02T00:00:00Z","updated_on":"2020-01-02T00:00:00Z","hidden_on":null,"poster_name":"Eve"}
		]`)
	})

	r := NewPostRepository(client, "http://forum.local", time.Second)

	posts, err := r.FetchThreadPosts(7)
	require.NoError(t, err)

	assert.Equal(t, "/api/thread/7/posts", gotPath)
	require.Len(t, posts, 2)
	assert.EqualValues(t, 1, posts[0].ID)
	assert.Equal(t, "Eve", posts[1].Content["poster_name"])
	assert.False(t, posts[0].IsBusy)
}

func TestFetchThreadPostsBadStatus(t *testing.T) {
	client := serveInmemory(t, func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusNotFound)
	})

	r := NewPostRepository(client, "http://forum.local", time.Second)

	_, err := r.FetchThreadPosts(7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 404")
}

func TestFetchThreadPostsMalformedRecord(t *testing.T) {
	client := serveInmemory(t, func(ctx *fasthttp.RequestCtx) {
		ctx.Response.Header.SetContentType("application/json")
		ctx.SetBodyString(`[{"id":1,"posted_on":"bad","updated_on":"2020-01-01T00:00:00Z"}]`)
	})

	r := NewPostRepository(client, "http://forum.local", time.Second)

	_, err := r.FetchThreadPosts(7)
	require.Error(t, err)

	var mErr *errs.MalformedRecordError
	require.ErrorAs(t, err, &mErr)
	assert.Equal(t, "posted_on", mErr.Field)
}
