package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/lmeyers/users-api/internal/redact"
)

// successEnvelope is the response shape for every successful request:
// {"success":true,"data":...}. Data is always present, even when null
// (delete responses carry data:null).
type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// errorEnvelope is the response shape for every failed request:
// {"success":false,"err":"..."}.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Err     string `json:"err"`
}

// respondJSON writes the payload as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithData writes a success envelope with the given status and data.
// Pass nil data for operations that succeed without a result payload.
func RespondWithData(w http.ResponseWriter, r *http.Request, status int, data any) {
	respondJSON(w, status, successEnvelope{Success: true, Data: data})
}

// RespondWithError writes an error envelope with the given status and
// client-facing message.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	respondJSON(w, status, errorEnvelope{Success: false, Err: message})
}

// RespondWithErrorAndLog writes an error envelope carrying only the safe
// client-facing message and logs the underlying error for operators.
// The raw error string never reaches the response body, and it is redacted
// before it reaches the logs.
//
// Log level strategy: 5xx at ERROR, 4xx at WARN.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}

	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	respondJSON(w, status, errorEnvelope{Success: false, Err: userMessage})
}
