package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/npillmayer/sarf/arabic"
	"github.com/npillmayer/sarf/patterns"
)

type errorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps engine errors to status codes. Validation failures carry
// their reason only.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), errorResponse{Status: "error", Error: arabic.Reason(err)})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, arabic.ErrValidation), errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, patterns.ErrPatternNotFound), errors.Is(err, errNotFound):
		return http.StatusNotFound
	case errors.Is(err, patterns.ErrPatternExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

var (
	errBadRequest = errors.New("invalid request body")
	errNotFound   = errors.New("not found")
)

// decode reads a JSON body into v. An empty body leaves v untouched.
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return errBadRequest
	}
	return nil
}

func nonNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}
