package utils

import (
	"net/http"

	"github.com/goccy/go-json"
)

// Envelope is the body of every gateway response.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// WriteData writes a successful envelope.
func WriteData(w http.ResponseWriter, status int, data interface{}) {
	WriteJSON(w, status, Envelope{Success: true, Data: data})
}

// WriteMessage writes a successful envelope with a message and no data.
func WriteMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Envelope{Success: true, Message: message})
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Envelope{Success: false, Message: message})
}
