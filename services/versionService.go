package services

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"github.com/jimforte/Misago/models"
)

const (
	VersionIndexFailedMessage = "Failed to reach the version index."
)

// VersionSource tells which software version is the latest available.
type VersionSource interface {
	Latest() (string, error)
}

// VersionChecker compares the running version against a VersionSource and
// produces the result rendered by the admin panel.
type VersionChecker struct {
	running string
	source  VersionSource
}

func NewVersionChecker(running string, source VersionSource) *VersionChecker {
	return &VersionChecker{
		running: running,
		source:  source,
	}
}

func (c *VersionChecker) Check() models.VersionCheckResult {
	latest, err := c.source.Latest()
	if err != nil {
		return models.VersionCheckResult{
			IsError: true,
			Message: VersionIndexFailedMessage,
		}
	}

	if latest != c.running {
		return models.VersionCheckResult{
			IsError: true,
			Message: fmt.Sprintf("Outdated: %s is available, you are running %s.", latest, c.running),
		}
	}

	return models.VersionCheckResult{
		IsError: false,
		Message: fmt.Sprintf("Up to date! You are running %s.", c.running),
	}
}

func (srv *Server) checkVersion(ctx *fasthttp.RequestCtx) {
	if !bytes.HasPrefix(ctx.Request.Header.ContentType(), []byte(FormContentType)) {
		srv.WriteError(ctx, srv.invalidFormatErr)
		return
	}

	// The submitted form (CSRF token included) is opaque to the check.
	srv.log.WithFields(logrus.Fields{
		"fields": ctx.PostArgs().Len(),
	}).Info("version check requested")

	result := srv.components.VersionChecker.Check()
	srv.WriteJSON(ctx, http.StatusOK, &result)
}

// IndexVersionSource fetches the latest released version string from a
// plain-text index endpoint.
type IndexVersionSource struct {
	client  *fasthttp.Client
	url     string
	timeout time.Duration
}

func NewIndexVersionSource(client *fasthttp.Client, url string, timeout time.Duration) *IndexVersionSource {
	return &IndexVersionSource{
		client:  client,
		url:     url,
		timeout: timeout,
	}
}

func (s *IndexVersionSource) Latest() (string, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.Header.SetMethod(fasthttp.MethodGet)
	req.SetRequestURI(s.url)

	if err := s.client.DoTimeout(req, resp, s.timeout); err != nil {
		return "", errors.Wrap(err, "fetch latest version")
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return "", errors.Errorf("fetch latest version: unexpected status %d", resp.StatusCode())
	}

	return strings.TrimSpace(string(resp.Body())), nil
}
