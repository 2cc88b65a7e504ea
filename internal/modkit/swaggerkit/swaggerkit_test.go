package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "commentsweep/internal/platform/net/http"
	"commentsweep/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func TestSpec_BaseDocumentAndMutators(t *testing.T) {
	testkit.Serial(t)
	testkit.Swap(t, &mutators, nil)

	Register(nil)
	Register(func(spec map[string]any) {
		AddPath(spec, "/moderation/comments", "post", map[string]any{"summary": "fetch"})
		AddSchema(spec, "Comment", map[string]any{"type": "object"})
	})

	spec, err := Spec("/api/v1")
	if err != nil {
		t.Fatalf("Spec: %v", err)
	}
	if spec["openapi"] != "3.0.3" {
		t.Fatalf("openapi = %v", spec["openapi"])
	}
	paths := spec["paths"].(map[string]any)
	if _, ok := paths["/meta/health"]; !ok {
		t.Fatalf("base paths missing")
	}
	if _, ok := paths["/moderation/comments"].(map[string]any)["post"]; !ok {
		t.Fatalf("mutator path missing")
	}
	s := spec["components"].(map[string]any)["schemas"].(map[string]any)
	if _, ok := s["ErrorResponse"]; !ok {
		t.Fatalf("error envelope schema missing")
	}
	if _, ok := s["Comment"]; !ok {
		t.Fatalf("mutator schema missing")
	}
	servers := spec["servers"].([]any)
	if servers[0].(map[string]any)["url"] != "/api/v1" {
		t.Fatalf("servers = %v", servers)
	}
}

func TestMount_ServesDocAndUI(t *testing.T) {
	testkit.Serial(t)
	testkit.Swap(t, &mutators, nil)

	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), true)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("doc.json status = %d", rec.Code)
	}
	var doc map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("doc.json is not json: %v", err)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs", nil))
	if rec.Code != http.StatusPermanentRedirect {
		t.Fatalf("redirect status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/index.html", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("ui status = %d", rec.Code)
	}
}

func TestMount_BrokenDocument(t *testing.T) {
	testkit.Serial(t)
	testkit.Swap(t, &docReader, func() []byte { return []byte("{") })

	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), true)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestMount_Disabled(t *testing.T) {
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), false)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}
