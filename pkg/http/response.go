package http

import (
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"
)

// Error тело ответа с ошибкой
type Error struct {
	Error string `json:"error"`
}

// JSONResponse пишет data в формате JSON с указанным статусом
func JSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// ErrorResponse пишет {"error": message}
func ErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	JSONResponse(w, statusCode, Error{Error: message})
}
