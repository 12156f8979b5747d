package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/api-wrapper/internal/api/shared"
	"github.com/phrazzld/api-wrapper/internal/platform/jsonplaceholder"
	"github.com/phrazzld/api-wrapper/internal/platform/logger"
)

// PostSource is the upstream the post handlers read from.
// *jsonplaceholder.Client satisfies it.
type PostSource interface {
	FetchPosts(ctx context.Context) ([]jsonplaceholder.Post, error)
	FetchPost(ctx context.Context, id int) (jsonplaceholder.Post, error)
	FetchUserPosts(ctx context.Context, userID int) ([]jsonplaceholder.Post, error)
}

// PostHandler handles post-related HTTP requests
type PostHandler struct {
	posts  PostSource
	logger *slog.Logger
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(posts PostSource, logger *slog.Logger) *PostHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostHandler{
		posts:  posts,
		logger: logger.With("component", "post_handler"),
	}
}

// ListPosts handles GET /v1/posts requests
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.FetchPosts(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, posts)
}

// GetPost handles GET /v1/posts/{post_id} requests
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	postID, err := getPathInt(r, "post_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	post, err := h.posts.FetchPost(r.Context(), postID)
	if errors.Is(err, jsonplaceholder.ErrPostNotFound) || (err == nil && jsonplaceholder.IsEmpty(post)) {
		log.DebugContext(r.Context(), "post not found", slog.Int("post_id", postID))
		shared.RespondWithError(w, r, http.StatusNotFound, MsgPostNotFound)
		return
	}
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, post)
}

// ListUserPosts handles GET /v1/users/{user_id}/posts requests.
// A user with no posts is reported as 404.
func (h *PostHandler) ListUserPosts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, err := getPathInt(r, "user_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	posts, err := h.posts.FetchUserPosts(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if len(posts) == 0 {
		log.DebugContext(r.Context(), "no posts for user", slog.Int("user_id", userID))
		shared.RespondWithError(w, r, http.StatusNotFound, MsgNoPostsForUser)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, posts)
}
