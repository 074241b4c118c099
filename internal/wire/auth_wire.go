package wire

import (
	"net/http"

	"renovation-tracker/internal/access"
	"renovation-tracker/internal/adaptor"
	"renovation-tracker/pkg/middleware"
	"renovation-tracker/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	gate func(access.Action) func(http.Handler) http.Handler,
	config *utils.Config,
	log *zap.Logger,
) {
	limiter := middleware.NewClientLimiter(config.RateLimit.LoginPerSecond, config.RateLimit.LoginBurst)

	r.Get("/login", authHandler.LoginPage)
	r.With(middleware.RateLimit(limiter, authHandler.Throttled, log)).Post("/login", authHandler.Login)

	r.With(gate(access.Logout)).Get("/logout", authHandler.Logout)
}
