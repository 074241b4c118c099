package wire

import (
	"net/http"

	"renovation-tracker/internal/access"
	"renovation-tracker/internal/adaptor"
	"renovation-tracker/internal/data/repository"
	"renovation-tracker/internal/usecase"
	"renovation-tracker/pkg/database"
	"renovation-tracker/pkg/middleware"
	"renovation-tracker/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the wired application
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds services, handlers and the router.
func Wiring(repo *repository.Repository, db database.PgxIface, config *utils.Config, logger *zap.Logger) (*App, error) {
	service := usecase.NewService(repo, config, logger)

	view, err := adaptor.NewView(access.ContextSource{}, logger)
	if err != nil {
		return nil, err
	}
	handler := adaptor.NewHandler(service, view, config, db, logger)

	router := setupRouter(handler, service, view, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}, nil
}

func setupRouter(
	handler *adaptor.Handler,
	service *usecase.Service,
	view *adaptor.View,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.LoadSession(service.Auth, logger))

	r.NotFound(view.NotFound)
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	gate := func(action access.Action) func(http.Handler) http.Handler {
		return middleware.RequireAction(action, access.ContextSource{}, logger)
	}

	r.With(gate(access.ViewDashboard)).Get("/", handler.Home.Dashboard)

	wireAuth(r, handler.Auth, gate, config, logger)
	wireCustomer(r, handler.Customer, gate)
	wireExport(r, handler.Export, gate)

	r.Get("/health", handler.Health.Health)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
