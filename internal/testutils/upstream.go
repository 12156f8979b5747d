package testutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
)

// Cleanuper is the subset of testing.TB the fake upstream needs. It is
// satisfied by *testing.T and by ginkgo's GinkgoT().
type Cleanuper interface {
	Helper()
	Cleanup(func())
}

// FakePost mirrors the JSONPlaceholder post shape.
type FakePost struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// DefaultPosts is the dataset served by a new FakeUpstream.
// Users 1 and 2 own posts; no other user does, and post 999 does not exist.
func DefaultPosts() []FakePost {
	return []FakePost{
		{UserID: 1, ID: 1, Title: "sunt aut facere", Body: "quia et suscipit"},
		{UserID: 1, ID: 2, Title: "qui est esse", Body: "est rerum tempore"},
		{UserID: 2, ID: 3, Title: "ea molestias quasi", Body: "et iusto sed quo"},
	}
}

// FakeUpstream is an in-process stand-in for the upstream posts API.
type FakeUpstream struct {
	Server *httptest.Server

	mu       sync.Mutex
	posts    []FakePost
	requests []string
	failWith int
	delay    time.Duration
}

// NewFakeUpstream starts a fake upstream serving DefaultPosts. The server is
// closed when the test finishes.
func NewFakeUpstream(t Cleanuper) *FakeUpstream {
	t.Helper()

	f := &FakeUpstream{posts: DefaultPosts()}

	r := chi.NewRouter()
	r.Use(f.record)
	r.Get("/posts", f.listPosts)
	r.Get("/posts/{id}", f.getPost)

	f.Server = httptest.NewServer(r)
	t.Cleanup(f.Server.Close)

	return f
}

// URL returns the base URL of the fake upstream.
func (f *FakeUpstream) URL() string {
	return f.Server.URL
}

// SetPosts replaces the served dataset.
func (f *FakeUpstream) SetPosts(posts []FakePost) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posts = posts
}

// FailWith makes every subsequent request answer with status. Zero restores
// normal behavior.
func (f *FakeUpstream) FailWith(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failWith = status
}

// SetDelay makes every subsequent request wait d before answering, or until
// the caller gives up.
func (f *FakeUpstream) SetDelay(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.delay = d
}

// Requests returns the request URIs received so far, in arrival order.
func (f *FakeUpstream) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

// RequestCount returns how many requests the fake has received.
func (f *FakeUpstream) RequestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *FakeUpstream) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.URL.RequestURI())
		failWith, delay := f.failWith, f.delay
		f.mu.Unlock()

		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-r.Context().Done():
				return
			}
		}

		if failWith != 0 {
			writeJSON(w, failWith, map[string]string{"error": http.StatusText(failWith)})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (f *FakeUpstream) listPosts(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	filter := r.URL.Query().Get("userId")
	out := make([]FakePost, 0, len(f.posts))
	for _, p := range f.posts {
		if filter != "" && strconv.Itoa(p.UserID) != filter {
			continue
		}
		out = append(out, p)
	}

	writeJSON(w, http.StatusOK, out)
}

func (f *FakeUpstream) getPost(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := chi.URLParam(r, "id")
	for _, p := range f.posts {
		if strconv.Itoa(p.ID) == id {
			writeJSON(w, http.StatusOK, p)
			return
		}
	}

	// JSONPlaceholder answers unknown posts with an empty object
	writeJSON(w, http.StatusNotFound, struct{}{})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
