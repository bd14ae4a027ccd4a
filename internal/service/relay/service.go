package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/zhouzirui/article-relay/backend/internal/model/article"
)

// DefaultTimeout bounds a single webhook call.
const DefaultTimeout = 30 * time.Second

// SuccessMessage is returned to callers once the webhook accepted the payload.
const SuccessMessage = "Article processing started! Check your email in a few moments."

// maxLoggedBody caps how much of a failed webhook response gets logged.
const maxLoggedBody = 1 << 10

// Service forwards article requests to the workflow webhook.
// It holds only read-only state and is safe for concurrent use.
type Service struct {
	webhookURL string
	client     *http.Client
	timeout    time.Duration
	now        func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithHTTPClient replaces the HTTP client used for webhook calls.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		if client != nil {
			s.client = client
		}
	}
}

// WithTimeout overrides DefaultTimeout.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// WithClock overrides the time source used for payload timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService 创建转发服务，webhookURL 为空时 Process 返回配置错误。
func NewService(webhookURL string, opts ...Option) *Service {
	s := &Service{
		webhookURL: webhookURL,
		client:     &http.Client{},
		timeout:    DefaultTimeout,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Configured reports whether a webhook URL is set.
func (s *Service) Configured() bool {
	return s.webhookURL != ""
}

// Process mints a session id, posts the payload to the webhook once and maps
// the outcome. Every failure is returned as *Error.
func (s *Service) Process(ctx context.Context, req article.Request) (article.Response, error) {
	if !s.Configured() {
		return article.Response{}, configError()
	}

	sessionID := uuid.NewString()
	payload := article.NewPayload(req, sessionID, s.now())

	body, err := json.Marshal(payload)
	if err != nil {
		return article.Response{}, unexpectedError(err)
	}

	log.Printf("[relay] sending session=%s to webhook %s", sessionID, s.webhookURL)
	log.Printf("[relay] payload: %s", body)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
	if err != nil {
		return article.Response{}, unexpectedError(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		relayErr := classifyTransportError(err)
		log.Printf("[relay] session=%s webhook call failed (%s): %v", sessionID, relayErr.Kind, err)
		return article.Response{}, relayErr
	}
	defer resp.Body.Close()

	log.Printf("[relay] session=%s webhook status: %d", sessionID, resp.StatusCode)

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		_, _ = io.Copy(io.Discard, resp.Body)
		return article.Response{
			Status:    article.StatusSuccess,
			Message:   SuccessMessage,
			SessionID: sessionID,
		}, nil
	default:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxLoggedBody))
		log.Printf("[relay] session=%s webhook error response: %s", sessionID, snippet)
		return article.Response{}, rejectedError(resp.StatusCode)
	}
}
