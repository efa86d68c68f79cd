package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hemadri138/veritas-project/util"
	"github.com/hemadri138/veritas-project/util/tracing"
	"github.com/hemadri138/veritas-project/util/values"
)

type ServerResponse struct {
	Message    string      `json:"message"`
	Status     string      `json:"status"`
	StatusCode int         `json:"-"`
	Data       interface{} `json:"data,omitempty"`
}

// respondWithError logs err against the request and builds a response that
// never exposes it. Internal failures always carry the generic message.
func respondWithError(err error, message, status string, tc *tracing.Context) *ServerResponse {
	attrs := append(tc.LogAttrs(), slog.String("status", status), slog.String("message", message))
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	if status == values.Error {
		slog.Error("request failed", attrs...)
		message = values.SystemErr
	} else {
		slog.Debug("request rejected", attrs...)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}

// writeErrorResponse is for middleware that fails before a Handler runs.
func writeErrorResponse(w http.ResponseWriter, err error, status, message string) {
	if err != nil {
		slog.Error("request failed", "status", status, "message", message, "error", err)
	}
	if status == values.Error {
		message = values.SystemErr
	}

	resp := ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
	respByte, _ := json.Marshal(resp)
	writeJSONResponse(w, respByte, resp.StatusCode)
}

func writeJSONResponse(w http.ResponseWriter, body []byte, statusCode int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}
