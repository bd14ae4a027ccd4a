package article

import "time"

// SourceAPI marks payloads that originated from this HTTP API.
const SourceAPI = "api"

// Payload is the JSON body forwarded to the workflow webhook.
type Payload struct {
	Email      string    `json:"email"`
	ArticleURL string    `json:"article_url"`
	SessionID  string    `json:"session_id"`
	Timestamp  time.Time `json:"timestamp"`
	Source     string    `json:"source"`
}

// NewPayload derives the outbound payload from a request, a freshly minted
// session id and the call time. The timestamp is always stored in UTC.
func NewPayload(req Request, sessionID string, now time.Time) Payload {
	return Payload{
		Email:      req.Email,
		ArticleURL: req.ArticleURL,
		SessionID:  sessionID,
		Timestamp:  now.UTC(),
		Source:     SourceAPI,
	}
}
