package services

import (
	"github.com/fasthttp/router"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"github.com/jimforte/Misago/errs"
	"github.com/jimforte/Misago/repositories"
)

const (
	InvalidFormatErrMessage = "invalid request parameter"
)

type ServerConfig struct {
	Host string
	Port string
}

type ServerComponents struct {
	VersionChecker   *VersionChecker
	StatusRepository *repositories.StatusRepository
}

// Server is the admin-side service: it answers the version-check request
// and feeds the DB-stats panel.
type Server struct {
	router *router.Router
	http   *fasthttp.Server

	config     ServerConfig
	components ServerComponents

	log              *logrus.Entry
	invalidFormatErr *errs.Error
}

func NewServer(config ServerConfig, components ServerComponents) *Server {
	srv := &Server{
		config:           config,
		components:       components,
		log:              logrus.WithField("component", "admin-server"),
		invalidFormatErr: errs.NewInvalidFormatError(InvalidFormatErrMessage),
	}

	r := router.New()

	r.POST("/api/admin/version-check", srv.checkVersion)
	r.GET("/api/admin/status", srv.getStatus)

	srv.router = r
	srv.http = &fasthttp.Server{
		Handler: r.Handler,
	}
	return srv
}

// Handler exposes the routed handler so tests can serve it over an
// in-memory listener.
func (srv *Server) Handler() fasthttp.RequestHandler {
	return srv.router.Handler
}

func (srv *Server) Run() error {
	addr := srv.config.Host + ":" + srv.config.Port
	srv.log.WithField("addr", addr).Info("admin server listening")
	return srv.http.ListenAndServe(addr)
}

func (srv *Server) Shutdown() error {
	return srv.http.Shutdown()
}
