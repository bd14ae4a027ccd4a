package health

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/article-relay/backend/pkg/utils"
)

// WebhookStatus reports whether the downstream webhook is configured.
type WebhookStatus interface {
	Configured() bool
}

// Handler serves the liveness endpoints.
type Handler struct {
	webhook WebhookStatus
	now     func() time.Time
}

// New 创建健康检查处理器
func New(webhook WebhookStatus) *Handler {
	return &Handler{webhook: webhook, now: time.Now}
}

// RegisterRoutes 注册根路径与健康检查路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleRoot)
	r.Get("/health", h.handleHealth)
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"message": "AI Article Processor API is running",
		"status":  "healthy",
		"endpoints": map[string]string{
			"process_article": "/api/process-article",
			"health":          "/health",
		},
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"status":             "healthy",
		"webhook_configured": h.webhook.Configured(),
		"timestamp":          h.now().UTC().Format(time.RFC3339Nano),
	})
}
