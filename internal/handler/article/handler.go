package article

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/zhouzirui/article-relay/backend/internal/model/article"
	"github.com/zhouzirui/article-relay/backend/internal/service/relay"
	"github.com/zhouzirui/article-relay/backend/pkg/utils"
)

// maxBodyBytes caps the request body; the payload is two short strings.
const maxBodyBytes = 64 << 10

// Processor 抽象文章转发业务，便于测试与替换实现
type Processor interface {
	Process(ctx context.Context, req article.Request) (article.Response, error)
}

// Handler 文章处理的HTTP处理器
type Handler struct {
	processor Processor
	validate  *validator.Validate
}

// New 创建文章处理器
func New(processor Processor) *Handler {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handler{
		processor: processor,
		validate:  validate,
	}
}

// RegisterRoutes 注册文章相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/process-article", h.handleProcessArticle)
}

// handleProcessArticle 校验请求并转发至工作流 webhook
func (h *Handler) handleProcessArticle(w http.ResponseWriter, r *http.Request) {
	var req article.Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			utils.RespondError(w, http.StatusUnprocessableEntity, fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type))
			return
		}
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		utils.RespondError(w, http.StatusUnprocessableEntity, describeValidationError(err))
		return
	}

	resp, err := h.processor.Process(r.Context(), req)
	if err != nil {
		var relayErr *relay.Error
		if errors.As(err, &relayErr) {
			utils.RespondError(w, relayErr.StatusCode(), relayErr.Error())
			return
		}
		log.Printf("[article] unexpected processing error: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, fmt.Sprintf("internal server error: %v", err))
		return
	}

	utils.RespondJSON(w, http.StatusOK, resp)
}

func describeValidationError(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "invalid request"
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", fe.Field()))
		case "email":
			messages = append(messages, fmt.Sprintf("%s must be a valid email address", fe.Field()))
		default:
			messages = append(messages, fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(messages, "; ")
}
