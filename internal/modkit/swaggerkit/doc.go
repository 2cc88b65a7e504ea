package swaggerkit

import (
	_ "embed"
	"encoding/json"
	"net/http"
	"sync"
)

//go:embed openapi.json
var baseDoc []byte

// SpecMutator lets modules add their paths and schemas before the spec is served
type SpecMutator func(spec map[string]any)

var (
	mu       sync.RWMutex
	mutators []SpecMutator
)

// docReader is a seam so tests can inject a broken document
var docReader = func() []byte { return baseDoc }

// Register adds a spec mutator, nil is ignored
func Register(m SpecMutator) {
	if m == nil {
		return
	}
	mu.Lock()
	mutators = append(mutators, m)
	mu.Unlock()
}

// Spec builds the document with every registered mutator applied
func Spec(serverURL string) (map[string]any, error) {
	var spec map[string]any
	if err := json.Unmarshal(docReader(), &spec); err != nil {
		return nil, err
	}
	if _, ok := spec["servers"]; !ok && serverURL != "" {
		spec["servers"] = []any{map[string]any{"url": serverURL}}
	}
	ensureErrorEnvelope(spec)

	mu.RLock()
	defer mu.RUnlock()
	for _, m := range mutators {
		m(spec)
	}
	return spec, nil
}

// AddPath sets one operation on the spec, creating the path item if needed
func AddPath(spec map[string]any, path, method string, op map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		paths = map[string]any{}
		spec["paths"] = paths
	}
	item, ok := paths[path].(map[string]any)
	if !ok {
		item = map[string]any{}
		paths[path] = item
	}
	item[method] = op
}

// AddSchema registers a named component schema
func AddSchema(spec map[string]any, name string, schema map[string]any) {
	schemas(spec)[name] = schema
}

func schemas(spec map[string]any) map[string]any {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	s, ok := comps["schemas"].(map[string]any)
	if !ok {
		s = map[string]any{}
		comps["schemas"] = s
	}
	return s
}

// ensureErrorEnvelope mirrors the runtime error wire
func ensureErrorEnvelope(spec map[string]any) {
	s := schemas(spec)
	if _, ok := s["ErrorResponse"]; ok {
		return
	}
	s["ErrorResponse"] = map[string]any{
		"type": "object",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer"},
			"error":       map[string]any{"type": "string"},
			"reason":      map[string]any{"type": "string"},
			"details":     map[string]any{},
			"request_id":  map[string]any{"type": "string"},
		},
	}
}

func serveDocJSON(serverURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		spec, err := Spec(serverURL)
		if err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}
