package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// FailureResponse is the single outward error shape. Status defaults to 500
// and Data to empty when the failure carries neither.
type FailureResponse struct {
	Message string   `json:"message"`
	Status  int      `json:"status"`
	Data    []string `json:"data"`
	TraceID string   `json:"traceId,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithFailure writes the outward failure shape with the given status
// and logs the underlying error for operator visibility. Server errors log
// at ERROR level; expected client rejections at DEBUG.
func RespondWithFailure(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	message string,
	data []string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	if data == nil {
		data = []string{}
	}
	failure := FailureResponse{
		Message: message,
		Status:  status,
		Data:    data,
		TraceID: traceID,
	}

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("message", message),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", err.Error()),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	slog.LogAttrs(r.Context(), logLevel, "operation failed", logAttrs...)

	RespondWithJSON(w, r, status, failure)
}
