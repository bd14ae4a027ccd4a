package utils

import (
	"encoding/json"
	"log"
	"net/http"
)

// StatusError is the status field of every error response.
const StatusError = "error"

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Status string `json:"status"`
	Detail string `json:"detail"`
}

// RespondJSON 发送JSON响应
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// RespondError 发送错误响应
func RespondError(w http.ResponseWriter, status int, detail string) {
	RespondJSON(w, status, ErrorBody{Status: StatusError, Detail: detail})
}
