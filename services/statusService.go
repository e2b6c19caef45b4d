package services

import (
	"net/http"

	"github.com/valyala/fasthttp"

	"github.com/jimforte/Misago/models"
)

func (srv *Server) getStatus(ctx *fasthttp.RequestCtx) {
	var status models.Status
	_ = srv.components.StatusRepository.GetStatus(&status)
	srv.WriteJSON(ctx, http.StatusOK, &status)
}
