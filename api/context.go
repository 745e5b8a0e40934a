package api

import (
	"context"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/airdroplab/backend/config"
	"github.com/airdroplab/backend/pkg/logger"
)

// Handler is a middleware step. Returning an error aborts the endpoint; the
// middleware is expected to have written the response already.
type Handler func(ctx *Context) error

type Context struct {
	context.Context

	r *http.Request
	w http.ResponseWriter

	configs  config.Configs
	logger   logger.Logger
	sessions sessions.Store
}

func (ctx *Context) Request() *http.Request { return ctx.r }

func (ctx *Context) Writer() http.ResponseWriter { return ctx.w }

// Query returns the named query parameter, empty when absent.
func (ctx *Context) Query(name string) string {
	return ctx.r.URL.Query().Get(name)
}
