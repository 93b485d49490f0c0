package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"mrp-access/internal/domain"
	"mrp-access/internal/middleware"
)

// httpStatusFromDomainError maps domain errors to HTTP status codes.
func httpStatusFromDomainError(err error) int {
	var notFound *domain.NotFoundError
	var accessDenied *domain.AccessDeniedError
	var validation *domain.ValidationError
	var conflict *domain.ConflictError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &accessDenied):
		return http.StatusForbidden
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &conflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// errorCodeFromError returns the HTTP status code for building error JSON responses.
func errorCodeFromError(err error) int32 {
	return int32(httpStatusFromDomainError(err)) //nolint:gosec // HTTP status codes are always in [100,599]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// requestError answers malformed parameters and bodies with 400.
func (h *APIHandler) requestError(w http.ResponseWriter, _ *http.Request, err error) {
	writeJSON(w, http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: err.Error()})
}

// responseError writes an error returned by a handler. Internal errors are
// logged with the request ID and their message is not exposed.
func (h *APIHandler) responseError(w http.ResponseWriter, r *http.Request, err error) {
	code := errorCodeFromError(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		h.logger.Error("request failed",
			"method", r.Method, "path", r.URL.Path,
			"request_id", middleware.RequestIDFromContext(r.Context()),
			"error", err)
		msg = "internal error"
	}
	writeJSON(w, int(code), Error{Code: code, Message: msg})
}
