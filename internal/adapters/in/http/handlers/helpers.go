// internal/adapters/in/http/handlers/helpers.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	usecase "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/application/usecase"
	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/infra/logger"
)

const maxBodyBytes = 1 << 20

var errEmptyBody = errors.New("request body is required")

// messageBody is the envelope for every non-entity response.
type messageBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, messageBody{Message: strings.TrimSpace(msg)})
}

// writeErr maps usecase errors to status codes. Only client errors expose their
// text; anything unclassified is logged and answered with a generic 500.
func writeErr(w http.ResponseWriter, log *logger.Logger, op string, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidArgument):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, usecase.ErrConflict):
		writeMessage(w, http.StatusConflict, err.Error())
	case errors.Is(err, usecase.ErrProductImagesNotConfigured):
		writeMessage(w, http.StatusNotImplemented, "image uploads are not configured")
	default:
		logger.OrNop(log).Error("["+op+"] store error", "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

// badRequest writes a 400 for decode/shape errors found in the handler itself.
func badRequest(w http.ResponseWriter, msg string) {
	writeMessage(w, http.StatusBadRequest, msg)
}

// readJSON decodes one JSON value from the body into dst.
func readJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return errEmptyBody
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// splitPath returns the path segments after prefix ("/orders/abc" -> ["abc"]).
func splitPath(path, prefix string) []string {
	rest := strings.Trim(strings.TrimPrefix(path, prefix), "/")
	if rest == "" {
		return nil
	}
	return strings.Split(rest, "/")
}

func parseIntDefault(s string, def int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("must be a positive integer, got %q", s)
	}
	return n, nil
}
