package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	accountapp "github.com/prettyirrelevant/ecx-property-hub-hackathon/application/account"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/constant"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/authz"
	utilsContext "github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/context"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/errors"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/logger"
	"go.uber.org/zap"
)

// AuthMiddleware resolves the bearer token into a principal using AccountApp.
// Public routes, the swagger UI and internal routes pass through untouched.
func AuthMiddleware(accountApp accountapp.AccountApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if skipAuth(r) {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			principal, err := accountApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			if rec, ok := w.(*statusRecorder); ok {
				rec.accountID = principal.AccountID
			}

			ctx := utilsContext.WithPrincipal(r.Context(), principal.AccountID, principal.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AuthzMiddleware checks the caller's role against the route policy.
func AuthzMiddleware(authorizer *authz.Authorizer) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if skipAuth(r) {
				next.ServeHTTP(w, r)
				return
			}

			role, ok := utilsContext.GetUserRole(r.Context())
			if !ok {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			allowed, err := authorizer.Allowed(role, r.URL.Path, r.Method)
			if err != nil {
				logger.Error("[AuthzMiddleware] err Allowed", zap.String("error", err.Error()))
				writeError(w, errors.SetCustomError(constant.ErrInternal))
				return
			}
			if !allowed {
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func skipAuth(r *http.Request) bool {
	path := r.URL.Path
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	return authz.IsPublic(path, r.Method)
}
