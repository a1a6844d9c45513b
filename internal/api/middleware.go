package api

import "net/http"

const headerWebID = "X-Agent-WebID"

// authMiddleware extracts the agent's WebID from the X-Agent-WebID
// header and adds it to the request context.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		webID := r.Header.Get(headerWebID)
		if webID == "" {
			http.Error(w, "missing X-Agent-WebID header", http.StatusUnauthorized)

			return
		}

		ctx := withWebID(r.Context(), webID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
