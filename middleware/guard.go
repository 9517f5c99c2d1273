package middleware

import (
	"context"
	"net/http"

	iphauthz "github.com/victoroteroviz/iph-authz"
	"github.com/victoroteroviz/iph-authz/role"
)

type roleSetContextKey struct{}

// RolesFromContext returns the role set injected by a guard, if any.
func RolesFromContext(ctx context.Context) (role.Set, bool) {
	set, ok := ctx.Value(roleSetContextKey{}).(role.Set)
	return set, ok
}

// SessionResolver extracts the caller's session ID from a request.
type SessionResolver func(r *http.Request) (string, bool)

// FromHeader resolves the session ID from a request header.
func FromHeader(name string) SessionResolver {
	return func(r *http.Request) (string, bool) {
		value := r.Header.Get(name)
		return value, value != ""
	}
}

// FromCookie resolves the session ID from a cookie.
func FromCookie(name string) SessionResolver {
	return func(r *http.Request) (string, bool) {
		cookie, err := r.Cookie(name)
		if err != nil || cookie.Value == "" {
			return "", false
		}
		return cookie.Value, true
	}
}

// FromContext resolves the session ID previously attached with
// [iphauthz.WithSessionID], for stacks where an outer middleware has
// already identified the session.
func FromContext() SessionResolver {
	return func(r *http.Request) (string, bool) {
		return iphauthz.SessionIDFromContext(r.Context())
	}
}

// RequireRank guards a route behind a minimum role rank. Requests
// without a resolvable session, with a store failure, or below the
// minimum are rejected; everything about the decision is fail-closed.
func RequireRank(engine *iphauthz.Engine, minimum role.Name, resolve SessionResolver) func(http.Handler) http.Handler {
	return guard(engine, resolve, func(set role.Set) bool {
		return set.CanAccess(minimum)
	})
}

// RequireRole guards a route behind explicit membership of one role
// name. Hierarchy is not consulted: a higher rank does not pass.
func RequireRole(engine *iphauthz.Engine, name role.Name, resolve SessionResolver) func(http.Handler) http.Handler {
	return guard(engine, resolve, func(set role.Set) bool {
		return set.Has(name)
	})
}

func guard(engine *iphauthz.Engine, resolve SessionResolver, allowed func(role.Set) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if engine == nil || resolve == nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			sessionID, ok := resolve(r)
			if !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			set, err := engine.GetUserRoles(r.Context(), sessionID)
			if err != nil {
				// Store failure denies; it must never grant by default.
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			if !allowed(set) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), roleSetContextKey{}, set)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
