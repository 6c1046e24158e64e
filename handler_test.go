package manifest

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/broady/manifest/testutil"
)

func newTestHandler() *HTTPHandler {
	reg := NewRegistry()
	reg.Register("Int", Int)
	reg.Register("Ints", ArrayType(Int))
	reg.Register("Any", Any)
	reg.Register("String", ClassOf(reflect.TypeFor[string]()))
	return NewHTTPHandler(reg)
}

func TestHTTPHandler_List(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/types", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertHeader(t, w, "Content-Type", "application/json")

	var res listResponse
	testutil.DecodeJSON(t, w, &res)
	if res.Count != 4 {
		t.Errorf("Count = %d, want 4", res.Count)
	}
	if len(res.Types) != 4 || res.Types[0].Name != "Int" {
		t.Errorf("Types = %v, want registration order starting with Int", res.Types)
	}
}

func TestHTTPHandler_ListFilters(t *testing.T) {
	h := newTestHandler()

	tests := []struct {
		name      string
		query     string
		wantCount int
	}{
		{"by kind", "?kind=primitive", 1},
		{"by phantom kind", "?kind=phantom", 1},
		{"by class kind", "?kind=class", 2},
		{"by prefix", "?prefix=Int", 2},
		{"kind and prefix", "?kind=class&prefix=Int", 1},
		{"limit", "?limit=2", 2},
		{"no match", "?prefix=Zzz", 0},
		{"unknown key ignored", "?bogus=1", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/types"+tt.query, nil)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)
			var res listResponse
			testutil.DecodeJSON(t, w, &res)
			if res.Count != tt.wantCount {
				t.Errorf("Count = %d, want %d", res.Count, tt.wantCount)
			}
		})
	}
}

func TestHTTPHandler_ListValidation(t *testing.T) {
	h := newTestHandler()

	tests := []struct {
		name  string
		query string
	}{
		{"bad kind", "?kind=bogus"},
		{"limit too large", "?limit=5000"},
		{"non-numeric limit", "?limit=abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/types"+tt.query, nil)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, http.StatusBadRequest)
			testutil.AssertJSONError(t, w, "invalid_argument")
		})
	}
}

func TestHTTPHandler_One(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/types/Int", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var entry struct {
		Name       string `json:"name"`
		Kind       string `json:"kind"`
		Display    string `json:"display"`
		Descriptor struct {
			Kind string `json:"kind"`
			Name string `json:"name"`
		} `json:"descriptor"`
	}
	testutil.DecodeJSON(t, w, &entry)
	if entry.Name != "Int" || entry.Kind != "primitive" || entry.Display != "Int" {
		t.Errorf("entry = %+v", entry)
	}
	if entry.Descriptor.Kind != "primitive" || entry.Descriptor.Name != "Int" {
		t.Errorf("descriptor = %+v, want the wire form of Int", entry.Descriptor)
	}
}

func TestHTTPHandler_NotFound(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/types/missing", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
	testutil.AssertJSONError(t, w, "not_found")
}

func TestHTTPHandler_UnknownRoute(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/bogus", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
	testutil.AssertJSONError(t, w, "not_found")
}

func TestHTTPHandler_MethodNotAllowed(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/types", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusMethodNotAllowed)
	testutil.AssertJSONError(t, w, "method_not_allowed")
}

func TestHTTPHandler_PanicRecovery(t *testing.T) {
	reg := NewRegistry()
	// A wildcard with nil bounds panics in String; serving it exercises
	// the recovery path.
	reg.Register("bad", Wildcard(nil, nil))
	h := NewHTTPHandler(reg)

	req := httptest.NewRequest(http.MethodGet, "/types/bad", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
	testutil.AssertJSONError(t, w, "internal")
}
