package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/airdroplab/backend/config"
	"github.com/airdroplab/backend/internal/kv"
	"github.com/airdroplab/backend/internal/testutil"
	"github.com/airdroplab/backend/pkg/errorx"
)

type echoRequest struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type echoResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestRouter(t *testing.T) *Router {
	return NewRouter(config.Default(), testutil.NewLogger())
}

func TestEndpointDecodesQueryParams(t *testing.T) {
	router := newTestRouter(t)

	endpoint := &Endpoint[echoRequest, echoResponse]{
		Method: http.MethodGet,
		Path:   "/echo",
		Handle: func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
			return &echoResponse{Name: req.Name, Count: req.Count}, nil
		},
	}
	endpoint.Register(router)

	w := httptest.NewRecorder()
	router.Mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/echo?name=abc&count=7", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp echoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "abc", resp.Name)
	require.Equal(t, 7, resp.Count)
}

func TestEndpointDecodesJSONBody(t *testing.T) {
	router := newTestRouter(t)

	endpoint := &Endpoint[echoRequest, echoResponse]{
		Method: http.MethodPost,
		Path:   "/echo",
		Handle: func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
			return &echoResponse{Name: req.Name, Count: req.Count}, nil
		},
	}
	endpoint.Register(router)

	body := strings.NewReader(`{"name":"abc","count":7}`)
	w := httptest.NewRecorder()
	router.Mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", body))

	require.Equal(t, http.StatusOK, w.Code)

	var resp echoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "abc", resp.Name)
}

func TestEndpointRejectsWrongMethod(t *testing.T) {
	router := newTestRouter(t)

	endpoint := &Endpoint[echoRequest, echoResponse]{
		Method: http.MethodPost,
		Path:   "/echo",
		Handle: func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
			return &echoResponse{}, nil
		},
	}
	endpoint.Register(router)

	w := httptest.NewRecorder()
	router.Mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/echo", nil))
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestEndpointMapsErrorCodes(t *testing.T) {
	router := newTestRouter(t)

	endpoint := &Endpoint[echoRequest, echoResponse]{
		Method: http.MethodGet,
		Path:   "/missing",
		Handle: func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
			return nil, errorx.New(errorx.NotFound, "Airdrop not found")
		},
	}
	endpoint.Register(router)

	w := httptest.NewRecorder()
	router.Mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	require.Equal(t, http.StatusNotFound, w.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, int(errorx.NotFound), body.Code)
	require.Equal(t, "Airdrop not found", body.Message)
}

func TestRequireAdmin(t *testing.T) {
	router := newTestRouter(t)
	store := testutil.NewKVStore(t.TempDir())

	endpoint := &Endpoint[echoRequest, echoResponse]{
		Method: http.MethodGet,
		Path:   "/admin-only",
		Before: []Handler{AdminGate(store), RequireAdmin},
		Handle: func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
			return &echoResponse{Name: "ok"}, nil
		},
	}
	endpoint.Register(router)

	w := httptest.NewRecorder()
	router.Mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-only", nil))
	require.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	router.Mux.ServeHTTP(w,
		httptest.NewRequest(http.MethodGet, "/admin-only?admin=secret", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, kv.Get(store, kv.KeyIsAdmin, false))
}

func TestAdminGateMasterKey(t *testing.T) {
	router := newTestRouter(t)
	store := testutil.NewKVStore(t.TempDir())

	endpoint := &Endpoint[echoRequest, echoResponse]{
		Method: http.MethodGet,
		Path:   "/gate",
		Before: []Handler{AdminGate(store)},
		Handle: func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
			return &echoResponse{}, nil
		},
	}
	endpoint.Register(router)

	w := httptest.NewRecorder()
	router.Mux.ServeHTTP(w,
		httptest.NewRequest(http.MethodGet, "/gate?admin=secret&key=master2025", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, kv.Get(store, kv.KeyIsAdmin, false))
	require.True(t, kv.Get(store, kv.KeyIsAdminAuthenticated, false))
}
