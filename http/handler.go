package http

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"nosvault"
)

type Service interface {
	Get(ctx context.Context, path string) (io.ReadSeekCloser, string, error)
	Put(ctx context.Context, authHeader, path string, body io.Reader) (nosvault.SaveResult, error)
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int
}

// DefaultCORS allows any origin to read and to upload with an
// Authorization header, which is what browser-based clients need.
func DefaultCORS() CORSConfig {
	return CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}
}

type HandlerConfig struct {
	CORS CORSConfig
	// MaxUploadSize caps PUT bodies in bytes. 0 means no limit.
	MaxUploadSize int64
}

// Handler provides the HTTP surface for the file store.
type Handler struct {
	config  HandlerConfig
	service Service
}

// NewHandler creates a new Handler with the given configuration and service.
func NewHandler(config *HandlerConfig, service Service) *Handler {
	return &Handler{
		config:  *config,
		service: service,
	}
}

// Router returns an http.Handler with the store's routes: public GET,
// credential-checked PUT, and OPTIONS answering 204 with CORS headers.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.config.CORS.AllowedOrigins,
		AllowedMethods: h.config.CORS.AllowedMethods,
		AllowedHeaders: h.config.CORS.AllowedHeaders,
		MaxAge:         h.config.CORS.MaxAge,
	}))

	r.Get("/*", h.handleGet)
	r.Put("/*", h.handlePut)
	r.Options("/*", h.handleOptions)

	return r
}

// handleOptions answers bare OPTIONS probes with 204. Browser
// preflights never reach it: the cors middleware intercepts any OPTIONS
// carrying Access-Control-Request-Method and replies 200 with the
// allow-list headers, which CORS clients treat identically.
func (h *Handler) handleOptions(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/")

	content, contentType, err := h.service.Get(r.Context(), path)
	if err != nil {
		HandleError(w, err)
		return
	}
	defer func() { _ = content.Close() }()

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, content)
}

func (h *Handler) handlePut(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/")

	body := io.Reader(r.Body)
	if h.config.MaxUploadSize > 0 {
		body = http.MaxBytesReader(w, r.Body, h.config.MaxUploadSize)
	}

	_, err := h.service.Put(r.Context(), r.Header.Get("Authorization"), path, body)
	if err != nil {
		HandleError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}
