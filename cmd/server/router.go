package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/api-wrapper/internal/api"
	apiMiddleware "github.com/phrazzld/api-wrapper/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
// Every data route calls the shared upstream client at most once per request.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(middleware.Recoverer)

	r.NotFound(api.NotFound)
	r.MethodNotAllowed(api.MethodNotAllowed)

	postHandler := api.NewPostHandler(app.postClient, app.logger)

	r.Get("/", api.Root)
	r.Get("/health", api.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/posts", postHandler.ListPosts)
		r.Get("/posts/{post_id}", postHandler.GetPost)
		r.Get("/users/{user_id}/posts", postHandler.ListUserPosts)
	})

	return r
}
