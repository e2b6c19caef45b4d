package services

import (
	"github.com/mailru/easyjson"
	"github.com/valyala/fasthttp"

	"github.com/jimforte/Misago/errs"
)

const (
	JsonType = "application/json"
)

func (srv *Server) WriteJSON(ctx *fasthttp.RequestCtx, status int, v easyjson.Marshaler) {
	b, _ := easyjson.Marshal(v)
	ctx.SetStatusCode(status)
	ctx.Response.Header.SetContentType(JsonType)
	ctx.Response.SetBody(b)
}

func (srv *Server) WriteError(ctx *fasthttp.RequestCtx, err *errs.Error) {
	srv.WriteJSON(ctx, err.HttpStatus, err)
}
