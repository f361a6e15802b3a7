package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"mailflow/internal/core/port"
)

const maxBodyBytes = 1 << 20

// envelope is the body of every successful JSON response carrying data.
type envelope struct {
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

type messageBody struct {
	Message string `json:"message"`
}

// errorBody is the body of every error response.
type errorBody struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// decodeJSON reads a single JSON value from the request body into dst.
// Trailing content after the value is rejected. Any decoding problem is
// reported as a *port.ValidationError.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return port.NewValidationError("body", "invalid JSON")
	}
	return nil
}

func decodeError(err error) error {
	var (
		typeErr *json.UnmarshalTypeError
		timeErr *time.ParseError
	)
	switch {
	case errors.Is(err, io.EOF):
		return port.NewValidationError("body", "must not be empty")
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return port.NewValidationError(typeErr.Field, fmt.Sprintf("must be of type %s", typeErr.Type))
	case errors.As(err, &timeErr):
		return port.NewValidationError("body", fmt.Sprintf("invalid datetime %s, want RFC 3339", timeErr.Value))
	default:
		return port.NewValidationError("body", "invalid JSON")
	}
}

// decodeAutomation decodes an automation payload. The schedule key must be
// present; null means unscheduled.
func decodeAutomation(w http.ResponseWriter, r *http.Request) (port.AutomationInput, error) {
	var (
		raw  json.RawMessage
		in   port.AutomationInput
		keys struct {
			Schedule json.RawMessage `json:"schedule"`
		}
	)
	if err := decodeJSON(w, r, &raw); err != nil {
		return in, err
	}
	if err := json.Unmarshal(raw, &in); err != nil {
		return in, decodeError(err)
	}
	if err := json.Unmarshal(raw, &keys); err != nil {
		return in, decodeError(err)
	}
	if keys.Schedule == nil {
		return in, port.NewValidationError("schedule", "is required, use null for no schedule")
	}
	return in, nil
}

// pathID parses the {id} URL parameter as a positive integer.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, port.NewValidationError("id", "must be a positive integer")
	}
	return id, nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// fail maps err to a status code. notFound is the message used for
// port.ErrNotFound.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	var ve *port.ValidationError
	switch {
	case errors.As(err, &ve):
		h.writeJSON(w, http.StatusBadRequest, errorBody{Message: "Validation failed", Errors: ve.Fields})
	case errors.Is(err, port.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, errorBody{Message: notFound})
	case errors.Is(err, port.ErrConflict):
		h.writeJSON(w, http.StatusConflict, errorBody{Message: "Resource conflicts with existing data"})
	default:
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		h.writeJSON(w, http.StatusInternalServerError, errorBody{Message: "Internal server error"})
	}
}
