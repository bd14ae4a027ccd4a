package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zhouzirui/article-relay/backend/internal/handler/article"
	"github.com/zhouzirui/article-relay/backend/internal/handler/health"
	middlewarePkg "github.com/zhouzirui/article-relay/backend/internal/middleware"
	"github.com/zhouzirui/article-relay/backend/internal/service/relay"
	"github.com/zhouzirui/article-relay/backend/pkg/utils"
)

// NewRouter wires HTTP routes to the relay service.
func NewRouter(relaySvc *relay.Service, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS(allowedOrigins))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	health.New(relaySvc).RegisterRoutes(r)

	r.Route("/api", func(api chi.Router) {
		article.New(relaySvc).RegisterRoutes(api)
	})

	return r
}
