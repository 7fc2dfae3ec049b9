package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	logrus.WithField("origins", allowedOrigins).Info("cors configured")

	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Authorization", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
