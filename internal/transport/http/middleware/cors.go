package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows browser callers from origins. "*" allows any origin;
// credentials are never allowed.
func CORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", HeaderXRequestID},
		ExposedHeaders: []string{HeaderXRequestID},
		MaxAge:         3600,
	})
}
