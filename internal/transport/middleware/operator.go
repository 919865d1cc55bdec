package middleware

import (
	"net/http"
	"strings"

	"github.com/harborline/freightdesk-backend/pkg/ctxutil"
)

// Operator extracts the acting operator label from the X-Operator header and
// puts it on the request context. Requests without the header pass through
// unchanged; the service layer falls back to the configured default.
func Operator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if operator := strings.TrimSpace(r.Header.Get("X-Operator")); operator != "" {
			r = r.WithContext(ctxutil.WithOperator(r.Context(), operator))
		}
		next.ServeHTTP(w, r)
	})
}
