package article

// StatusSuccess marks a response whose payload the webhook accepted.
const StatusSuccess = "success"

// Response 文章处理响应
type Response struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}
