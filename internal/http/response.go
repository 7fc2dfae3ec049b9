package http

import (
	"net/http"

	"github.com/Esraa00Tarek/SuperStore-sub000/internal/httpjson"
)

// APIError is the error body every failing route returns.
type APIError struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	httpjson.Write(w, status, v)
}

func Fail(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, APIError{Message: msg})
}
