package middleware

import (
	"context"
	"net/http"
	"strings"

	"paie/internal/auth"
	"paie/internal/transport/http/api"
)

type Operator struct {
	Subject string
	Role    string
}

type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Auth attaches the operator from a valid bearer token. Requests without a
// usable token pass through anonymously; RequireOperator enforces access.
func Auth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok || verifier == nil {
				next.ServeHTTP(w, r)
				return
			}
			claims, err := verifier.Verify(token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeyOperator, Operator{Subject: claims.Subject, Role: claims.Role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequireOperator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		op, ok := GetOperator(r.Context())
		if !ok {
			w.Header().Set("WWW-Authenticate", `Bearer realm="paie"`)
			api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
			return
		}
		if op.Role != auth.RoleOperator {
			api.Fail(w, http.StatusForbidden, "forbidden", "insufficient permissions", GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func GetOperator(ctx context.Context) (Operator, bool) {
	op, ok := ctx.Value(ctxKeyOperator).(Operator)
	return op, ok
}

func bearerToken(r *http.Request) (string, bool) {
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}
