package middleware

import (
	"net/http"
	"os"
	"strings"
)

// defaultOrigins are the hosted frontend plus the local Vite dev server.
var defaultOrigins = []string{
	"https://standfindr.web.app",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

// allowedOrigins builds the origin allowlist, taking a comma-separated
// CORS_ORIGINS override from the environment.
func allowedOrigins() map[string]bool {
	origins := defaultOrigins
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		origins = strings.Split(raw, ",")
	}

	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			allowed[o] = true
		}
	}
	return allowed
}

// EnableCORS wraps the router so browser clients on the known frontend
// origins can call the API. Unknown origins get no CORS headers and the
// browser blocks them.
func EnableCORS(next http.Handler) http.Handler {
	allowed := allowedOrigins()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin != "" && allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
		}

		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		// Continue to next handler
		next.ServeHTTP(w, r)
	})
}
