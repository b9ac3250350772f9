package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/dewinson2/MJCL/internal/cache"
	"github.com/dewinson2/MJCL/internal/contact"
	"github.com/dewinson2/MJCL/internal/event"
	"github.com/dewinson2/MJCL/internal/job"
	"github.com/dewinson2/MJCL/internal/repository"
	"github.com/dewinson2/MJCL/internal/slug"
	"github.com/dewinson2/MJCL/internal/storage"
	"github.com/dewinson2/MJCL/internal/storage/memory"
)

// outageExecutor fails every read while down is set
type outageExecutor struct {
	storage.Executor
	down atomic.Bool
}

func (e *outageExecutor) Select(ctx context.Context, q storage.Select) ([]storage.Row, error) {
	if e.down.Load() {
		return nil, errors.New("connection refused")
	}
	return e.Executor.Select(ctx, q)
}

// testEnv wires real services over an empty in-memory store
type testEnv struct {
	router  chi.Router
	cache   *cache.LRU
	storage *outageExecutor
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	exec := &outageExecutor{Executor: memory.New(memory.WithoutSeed())}
	client := storage.NewClient(exec)
	jobRepo := repository.NewJobPostingRepository(client)
	contactRepo := repository.NewContactInfoRepository(client)

	bus := event.NewMemoryBus()
	c := cache.NewLRU(64, time.Minute)
	cache.RegisterInvalidation(bus, c)

	jobs := NewJobHandler(job.NewService(jobRepo, slug.NewGenerator(jobRepo), bus), c)
	contacts := NewContactHandler(contact.NewService(contactRepo, bus), c)

	r := chi.NewRouter()
	r.Get("/jobs", jobs.HandleListActive)
	r.Get("/jobs/grouped", jobs.HandleListGrouped)
	r.Get("/jobs/{slug}", jobs.HandleGetBySlug)
	r.Get("/contact", contacts.HandleGet)
	r.Route("/admin", func(r chi.Router) {
		r.Get("/jobs", jobs.HandleAdminList)
		r.Post("/jobs", jobs.HandleCreate)
		r.Get("/jobs/{id}", jobs.HandleAdminGet)
		r.Put("/jobs/{id}", jobs.HandleUpdate)
		r.Delete("/jobs/{id}", jobs.HandleDelete)
		r.Get("/contact", contacts.HandleAdminGet)
		r.Put("/contact", contacts.HandleUpdate)
	})

	return &testEnv{router: r, cache: c, storage: exec}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func newRequest(method, path string) *http.Request {
	return httptest.NewRequest(method, path, nil)
}

func (e *testEnv) get(path string) *httptest.ResponseRecorder {
	return e.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (e *testEnv) sendJSON(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return e.do(req)
}

func (e *testEnv) sendForm(method, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return e.do(req)
}

func decode[T any](t *testing.T, body io.Reader) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(body).Decode(&v))
	return v
}
