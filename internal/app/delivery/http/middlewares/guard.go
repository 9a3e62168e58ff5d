package middlewares

import (
	"healthpredict-client/internal/pkg/constvars"
	"healthpredict-client/internal/pkg/exceptions"
	"healthpredict-client/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// RouteGuard keeps unauthenticated traffic out of protected routes. Browser
// navigation is redirected to the login entry point; API calls get the
// normalized 401 body instead, a redirect would only confuse a JSON caller.
// It never checks token validity or expiry: possession of any token passes,
// and a stale one surfaces as a backend rejection later.
func (m *Middlewares) RouteGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.SessionStore.IsAuthenticated() {
			next.ServeHTTP(w, r)
			return
		}

		requestID := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY)
		m.Log.Info("RouteGuard redirecting unauthenticated request",
			zap.Any(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
		)

		if wantsHTML(r) {
			http.Redirect(w, r, constvars.LoginEntryPath, constvars.StatusFound)
			return
		}
		utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotAuthenticated(nil))
	})
}

func wantsHTML(r *http.Request) bool {
	if r.Method != constvars.MethodGet {
		return false
	}
	return strings.Contains(r.Header.Get(constvars.HeaderAccept), constvars.MIMETextHTML)
}
