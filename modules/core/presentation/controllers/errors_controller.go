package controllers

import (
	"net/http"
	"strings"

	"github.com/fmstack/fmstack/pkg/application"
	"github.com/fmstack/fmstack/pkg/composables"
	"github.com/fmstack/fmstack/pkg/middleware"
)

func isAPIRequest(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/") ||
		strings.Contains(r.Header.Get("Accept"), "application/json")
}

func handler404(w http.ResponseWriter, r *http.Request) {
	pageCtx := composables.UsePageCtx(r.Context())
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte(pageCtx.TSafe("Errors.NotFound")))
}

func NotFound(app application.Application) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if isAPIRequest(r) {
			meta := map[string]string{"path": r.URL.Path}
			if requestID := requestIDFromResponse(w, r); requestID != "" {
				meta["request_id"] = requestID
			}
			writeJSONError(w, http.StatusNotFound, "NOT_FOUND", "not found", meta)
			return
		}

		handler := middleware.WithPageContext()(http.HandlerFunc(handler404))
		handler = middleware.ProvideLocalizer(app)(handler)
		handler.ServeHTTP(w, r)
	}
}

func MethodNotAllowed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if isAPIRequest(r) {
			meta := map[string]string{
				"method": r.Method,
				"path":   r.URL.Path,
			}
			if requestID := requestIDFromResponse(w, r); requestID != "" {
				meta["request_id"] = requestID
			}
			writeJSONError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", meta)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func requestIDFromResponse(w http.ResponseWriter, r *http.Request) string {
	if w != nil {
		if requestID := strings.TrimSpace(w.Header().Get("X-Request-Id")); requestID != "" {
			return requestID
		}
	}
	if r != nil {
		return strings.TrimSpace(r.Header.Get("X-Request-Id"))
	}
	return ""
}
