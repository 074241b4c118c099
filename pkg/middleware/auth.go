package middleware

import (
	"context"
	"net/http"

	"renovation-tracker/internal/access"
	"renovation-tracker/pkg/metrics"
	"renovation-tracker/pkg/utils"

	"go.uber.org/zap"
)

// SessionResolver maps a session cookie token to the caller.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (*access.Identity, error)
}

// LoadSession puts the caller's identity in the request context when the
// session cookie is valid. Requests without a valid session continue anonymously.
func LoadSession(resolver SessionResolver, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := utils.SessionToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := resolver.ResolveSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to resolve session", zap.Error(err), zap.String("path", r.URL.Path))
				next.ServeHTTP(w, r)
				return
			}

			if identity == nil {
				logger.Debug("Invalid or expired session", zap.String("path", r.URL.Path))
				next.ServeHTTP(w, r)
				return
			}

			ctx := access.WithIdentity(r.Context(), identity)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAction lets the request through only if access.Can allows action.
// Anonymous callers are sent to the login page, callers lacking the role to
// the dashboard. Either way the handler never runs.
func RequireAction(action access.Action, source access.IdentitySource, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, _ := source.CurrentIdentity(r.Context())
			if access.Can(identity, action) {
				next.ServeHTTP(w, r)
				return
			}

			if !access.IsAuthenticated(identity) && access.RequiresLogin(action) {
				metrics.AccessDeniedTotal.WithLabelValues("unauthenticated").Inc()
				logger.Info("Anonymous access attempt",
					zap.String("action", string(action)),
					zap.String("path", r.URL.Path))
				utils.RedirectWithFlash(w, r, "/login", utils.FlashDanger, "Please log in to access this page.")
				return
			}

			userID := "anonymous"
			if identity != nil {
				userID = identity.UserID.String()
			}
			metrics.AccessDeniedTotal.WithLabelValues("forbidden").Inc()
			logger.Warn("Access denied",
				zap.String("user_id", userID),
				zap.String("action", string(action)),
				zap.String("path", r.URL.Path))
			utils.RedirectWithFlash(w, r, "/", utils.FlashDanger, "You are not authorized to access this page.")
		})
	}
}
