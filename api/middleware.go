package api

import (
	"net/http"

	"github.com/airdroplab/backend/internal/kv"
	"github.com/airdroplab/backend/pkg/errorx"
)

const adminSession = "airdrop_admin"

// RequestLogger logs method and path before the handler runs.
func RequestLogger(ctx *Context) error {
	ctx.logger.Debugf("%s %s", ctx.r.Method, ctx.r.URL.Path)
	return nil
}

// AdminGate evaluates the query-parameter admin switches. `admin=<secret>`
// flips admin mode on, `admin=false` flips it off, and `key=<master key>`
// additionally unlocks the authenticated panel. The flags live in the session
// cookie and are mirrored into the key-value store.
func AdminGate(store *kv.Store) Handler {
	return func(ctx *Context) error {
		session, _ := ctx.sessions.Get(ctx.r, adminSession)

		changed := false
		switch ctx.Query("admin") {
		case ctx.configs.Admin.Secret:
			session.Values["isAdmin"] = true
			kv.Set(store, kv.KeyIsAdmin, true)
			changed = true

		case "false":
			session.Values["isAdmin"] = false
			session.Values["isAdminAuthenticated"] = false
			kv.Set(store, kv.KeyIsAdmin, false)
			kv.Set(store, kv.KeyIsAdminAuthenticated, false)
			changed = true
		}

		if ctx.Query("key") == ctx.configs.Admin.MasterKey {
			session.Values["isAdminAuthenticated"] = true
			kv.Set(store, kv.KeyIsAdminAuthenticated, true)
			changed = true
		}

		if changed {
			if err := session.Save(ctx.r, ctx.w); err != nil {
				ctx.logger.Warnf("Cannot save admin session: %v", err)
			}
		}

		return nil
	}
}

// RequireAdmin rejects the request unless admin mode was switched on earlier
// in this session or in this very request.
func RequireAdmin(ctx *Context) error {
	session, _ := ctx.sessions.Get(ctx.r, adminSession)

	isAdmin, _ := session.Values["isAdmin"].(bool)
	if !isAdmin && ctx.Query("admin") != ctx.configs.Admin.Secret {
		writeError(ctx.w, errorx.New(errorx.PermissionDenied, "Admin access required"))
		return http.ErrAbortHandler
	}

	return nil
}
