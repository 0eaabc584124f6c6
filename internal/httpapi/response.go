package httpapi

import (
	"encoding/json"
	"net/http"
)

type summaryResponse struct {
	Summary   string `json:"summary"`
	Source    string `json:"source"`
	Model     string `json:"model"`
	Words     int    `json:"words"`
	RequestID string `json:"request_id"`
}

type errorResponse struct {
	Error     string `json:"error"`
	Reason    string `json:"reason"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
