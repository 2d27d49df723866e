package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/matzehuels/lottiedoc/pkg/doc"
	"github.com/matzehuels/lottiedoc/pkg/errors"
	"github.com/matzehuels/lottiedoc/pkg/observability"
)

type errorResponse struct {
	Code        errors.Code  `json:"code"`
	Message     string       `json:"message"`
	RequestID   string       `json:"request_id"`
	Differences []difference `json:"differences,omitempty"`
}

// StatusFor maps an error to its HTTP status.
func StatusFor(err error) int {
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidComposition, errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeSnapshotMismatch:
		return http.StatusConflict
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	writeErrorWithDiffs(w, r, err, nil)
}

func writeErrorWithDiffs(w http.ResponseWriter, r *http.Request, err error, diffs []doc.Difference) {
	writeErrorStatus(w, r, StatusFor(err), err, diffs)
}

func writeErrorStatus(w http.ResponseWriter, r *http.Request, status int, err error, diffs []doc.Difference) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status == http.StatusRequestEntityTooLarge {
		code = errors.ErrCodeInvalidInput
	}

	observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)

	resp := errorResponse{
		Code:      code,
		Message:   errors.UserMessage(err),
		RequestID: RequestIDFrom(r.Context()),
	}
	if len(diffs) > 0 {
		resp.Differences = toDifferences(diffs)
	}
	if status == http.StatusInternalServerError {
		resp.Message = "internal error"
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
