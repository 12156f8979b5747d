package api

import (
	"net/http"

	"github.com/phrazzld/api-wrapper/internal/api/shared"
)

// WelcomeResponse is the body served at the API root.
type WelcomeResponse struct {
	Message  string            `json:"message"`
	Versions map[string]string `json:"versions"`
}

var welcome = WelcomeResponse{
	Message:  "Welcome to the API Wrapper Example",
	Versions: map[string]string{"v1": "/v1"},
}

// Root handles GET / and never contacts the upstream.
func Root(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, welcome)
}

// Health handles GET /health.
func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
