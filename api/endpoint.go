package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strconv"

	"github.com/gorilla/sessions"

	"github.com/airdroplab/backend/config"
	"github.com/airdroplab/backend/pkg/errorx"
	"github.com/airdroplab/backend/pkg/logger"
)

// Endpoint binds one domain operation to a route. GET and DELETE requests
// decode their parameters from the query string by json tag, other methods
// from the JSON body.
type Endpoint[Request, Response any] struct {
	Method string
	Path   string
	Before []Handler
	Handle func(ctx context.Context, req *Request) (*Response, error)
}

// Router carries the shared pieces every endpoint needs.
type Router struct {
	Mux      *http.ServeMux
	Configs  config.Configs
	Logger   logger.Logger
	Sessions sessions.Store
}

func NewRouter(cfg config.Configs, logger logger.Logger) *Router {
	return &Router{
		Mux:      http.NewServeMux(),
		Configs:  cfg,
		Logger:   logger,
		Sessions: sessions.NewCookieStore([]byte(cfg.Admin.SessionSecret)),
	}
}

func (e *Endpoint[Request, Response]) Register(router *Router) {
	router.Mux.HandleFunc(e.Path, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != e.Method {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		ctx := &Context{
			Context:  r.Context(),
			r:        r,
			w:        w,
			configs:  router.Configs,
			logger:   router.Logger,
			sessions: router.Sessions,
		}

		for _, h := range e.Before {
			if err := h(ctx); err != nil {
				return
			}
		}

		var req Request
		if err := e.readRequest(ctx, &req); err != nil {
			writeError(w, errorx.New(errorx.BadRequest, "Cannot parse request"))
			return
		}

		resp, err := e.Handle(ctx, &req)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	})
}

func (e *Endpoint[Request, Response]) readRequest(ctx *Context, req *Request) error {
	switch e.Method {
	case http.MethodGet, http.MethodDelete:
		v := reflect.ValueOf(req).Elem()
		for i := 0; i < v.NumField(); i++ {
			name := v.Type().Field(i).Tag.Get("json")
			queryVal := ctx.Query(name)
			if queryVal == "" {
				continue
			}

			switch field := v.Field(i); field.Kind() {
			case reflect.String:
				field.SetString(queryVal)

			case reflect.Int, reflect.Int64:
				val, err := strconv.ParseInt(queryVal, 10, 64)
				if err != nil {
					return err
				}
				field.SetInt(val)

			case reflect.Bool:
				val, err := strconv.ParseBool(queryVal)
				if err != nil {
					return err
				}
				field.SetBool(val)
			}
		}

		return nil

	default:
		b, err := io.ReadAll(ctx.r.Body)
		if err != nil {
			return err
		}

		if len(b) == 0 {
			return nil
		}

		return json.Unmarshal(b, req)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, err error) {
	xerr := errorx.Unknown
	if e, ok := err.(errorx.Error); ok {
		xerr = e
	}

	writeJSON(w, httpStatus(xerr.Code), errorBody{
		Code:    int(xerr.Code),
		Message: xerr.Message,
	})
}

func httpStatus(code errorx.Code) int {
	switch code {
	case errorx.BadRequest, errorx.WalletRejected:
		return http.StatusBadRequest
	case errorx.PermissionDenied:
		return http.StatusForbidden
	case errorx.NotFound:
		return http.StatusNotFound
	case errorx.AlreadyExists:
		return http.StatusConflict
	case errorx.Unavailable, errorx.WalletNotAvailable:
		return http.StatusServiceUnavailable
	case errorx.NotImplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
