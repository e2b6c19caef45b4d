package services

import (
	"sync"
	"time"

	"github.com/mailru/easyjson"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"github.com/jimforte/Misago/models"
)

// CheckState is the version-check control's observable state.
type CheckState int

const (
	StateIdle CheckState = iota
	StateChecking
	StateSettled
)

func (s CheckState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateChecking:
		return "checking"
	case StateSettled:
		return "settled"
	}
	return "unknown"
}

var (
	ErrCheckInProgress = errors.New("version check already in progress")
	ErrCheckSettled    = errors.New("version check already settled")
)

const (
	DefaultCheckTimeout = 10 * time.Second

	CheckFailedMessage = "Version check failed. Try again later."

	FormContentType = "application/x-www-form-urlencoded"
)

// VersionCheckController drives the admin version-check control through
// its three states. Idle accepts exactly one submission; while the request
// is outstanding the control reads as Checking and rejects resubmission;
// the first response settles it for good. A fresh controller is the page
// reload.
//
// A transport failure or timeout does not strand the control in Checking:
// the cycle settles into an error-styled result with a generic message.
type VersionCheckController struct {
	mu     sync.Mutex
	state  CheckState
	result models.VersionCheckResult

	client  *fasthttp.Client
	url     string
	timeout time.Duration
	log     *logrus.Entry
}

func NewVersionCheckController(client *fasthttp.Client, url string, timeout time.Duration) *VersionCheckController {
	if timeout <= 0 {
		timeout = DefaultCheckTimeout
	}
	return &VersionCheckController{
		client:  client,
		url:     url,
		timeout: timeout,
		log:     logrus.WithField("component", "version-check"),
	}
}

// Submit runs one check cycle and returns the settled result. The form's
// fields are forwarded verbatim to the check endpoint.
func (c *VersionCheckController) Submit(form *fasthttp.Args) (models.VersionCheckResult, error) {
	c.mu.Lock()
	switch c.state {
	case StateChecking:
		c.mu.Unlock()
		return models.VersionCheckResult{}, ErrCheckInProgress
	case StateSettled:
		result := c.result
		c.mu.Unlock()
		return result, ErrCheckSettled
	}
	c.state = StateChecking
	c.mu.Unlock()

	c.log.Info("version check submitted")
	result := c.check(form)

	c.mu.Lock()
	c.state = StateSettled
	c.result = result
	c.mu.Unlock()

	c.log.WithField("is_error", result.IsError).Info("version check settled")
	return result, nil
}

func (c *VersionCheckController) check(form *fasthttp.Args) models.VersionCheckResult {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType(FormContentType)
	req.SetRequestURI(c.url)
	if form != nil {
		req.SetBody(form.QueryString())
	}

	if err := c.client.DoTimeout(req, resp, c.timeout); err != nil {
		c.log.WithError(err).Warn("version check request failed")
		return models.VersionCheckResult{IsError: true, Message: CheckFailedMessage}
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		c.log.WithField("status", resp.StatusCode()).Warn("version check rejected")
		return models.VersionCheckResult{IsError: true, Message: CheckFailedMessage}
	}

	var result models.VersionCheckResult
	if err := easyjson.Unmarshal(resp.Body(), &result); err != nil {
		c.log.WithError(err).Warn("version check response unreadable")
		return models.VersionCheckResult{IsError: true, Message: CheckFailedMessage}
	}
	return result
}

func (c *VersionCheckController) State() CheckState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Result returns the settled result; ok is false until the cycle settles.
func (c *VersionCheckController) Result() (models.VersionCheckResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result, c.state == StateSettled
}
