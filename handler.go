package manifest

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
)

var (
	validate      = validator.New()
	schemaDecoder = schema.NewDecoder()
)

func init() {
	schemaDecoder.IgnoreUnknownKeys(true)
}

// listParams are the query parameters for the listing route.
type listParams struct {
	Kind   string `schema:"kind" validate:"omitempty,oneof=primitive phantom class singleton abstract wildcard intersection"`
	Prefix string `schema:"prefix"`
	Limit  int    `schema:"limit" validate:"gte=0,lte=1000"`
}

// typeEntry is one registered descriptor in a listing response.
type typeEntry struct {
	Name       string     `json:"name"`
	Kind       string     `json:"kind"`
	Display    string     `json:"display"`
	Descriptor Descriptor `json:"descriptor"`
}

type listResponse struct {
	Types []typeEntry `json:"types"`
	Count int         `json:"count"`
}

// HTTPHandler exposes a Registry over HTTP for introspection:
//
//	GET /types                 list registered descriptors
//	GET /types?kind=class      filter by kind, name prefix, limit
//	GET /types/{name}          one descriptor as wire JSON
//
// Responses are the package wire format; errors use the standard JSON
// error envelope.
type HTTPHandler struct {
	reg    *Registry
	logger *slog.Logger
}

// NewHTTPHandler creates an introspection handler for reg.
func NewHTTPHandler(reg *Registry) *HTTPHandler {
	return &HTTPHandler{reg: reg}
}

// WithLogger sets a custom logger for the handler.
// If not set, slog.Default() will be used.
func (h *HTTPHandler) WithLogger(logger *slog.Logger) *HTTPHandler {
	h.logger = logger
	return h
}

// ServeHTTP implements http.Handler.
func (h *HTTPHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			stack := debug.Stack()
			logger := h.logger
			if logger == nil {
				logger = slog.Default()
			}
			logger.Error("PANIC recovered",
				slog.Any("panic", rec),
				slog.String("stack", string(stack)))
			writeError(w, NewError(CodeInternal, fmt.Sprintf("internal server error (panic): %v", rec)), h.logger)
		}
	}()

	if req.Method != http.MethodGet {
		writeError(w, Errorf(CodeMethodNotAllowed, "method %s not allowed, expected GET", req.Method), h.logger)
		return
	}

	path := strings.Trim(req.URL.Path, "/")
	switch {
	case path == "types" || path == "":
		h.serveList(w, req)
	case strings.HasPrefix(path, "types/"):
		h.serveOne(w, strings.TrimPrefix(path, "types/"))
	default:
		writeError(w, NewError(CodeNotFound, "route not found"), h.logger)
	}
}

func (h *HTTPHandler) serveList(w http.ResponseWriter, req *http.Request) {
	var params listParams
	if err := schemaDecoder.Decode(&params, req.URL.Query()); err != nil {
		writeError(w, Errorf(CodeInvalidArgument, "failed to decode query: %v", err), h.logger)
		return
	}
	if err := validate.Struct(params); err != nil {
		writeError(w, toAPIError(err), h.logger)
		return
	}

	res := listResponse{Types: []typeEntry{}}
	for _, name := range h.reg.Names() {
		d, ok := h.reg.Lookup(name)
		if !ok {
			continue
		}
		if params.Kind != "" && d.Kind().String() != params.Kind {
			continue
		}
		if params.Prefix != "" && !strings.HasPrefix(name, params.Prefix) {
			continue
		}
		res.Types = append(res.Types, typeEntry{
			Name:       name,
			Kind:       d.Kind().String(),
			Display:    d.String(),
			Descriptor: d,
		})
		if params.Limit > 0 && len(res.Types) >= params.Limit {
			break
		}
	}
	res.Count = len(res.Types)
	h.writeJSON(w, res)
}

func (h *HTTPHandler) serveOne(w http.ResponseWriter, name string) {
	d, ok := h.reg.Lookup(name)
	if !ok {
		writeError(w, Errorf(CodeNotFound, "no descriptor registered as %q", name), h.logger)
		return
	}
	h.writeJSON(w, typeEntry{
		Name:       name,
		Kind:       d.Kind().String(),
		Display:    d.String(),
		Descriptor: d,
	})
}

func (h *HTTPHandler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger := h.logger
		if logger == nil {
			logger = slog.Default()
		}
		// Response may be partially written, nothing we can do.
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}
