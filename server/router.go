package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lixenwraith/vi-tennis/render"
)

// RouterConfig contains the dependencies of the spectator router
type RouterConfig struct {
	// Hub provides snapshots and the websocket endpoint (required)
	Hub *Hub

	// Images renders /api/frame.png; nil uses an 800px renderer
	Images *render.ImageRenderer

	// Gatherer backs /metrics; nil uses the default registry
	Gatherer prometheus.Gatherer

	// CORSOrigins lists allowed origins; nil allows any
	CORSOrigins []string

	// DisableLogging drops the request logger middleware
	DisableLogging bool
}

// NewRouter builds the HTTP router. It starts no goroutines and opens no listeners.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	if !cfg.DisableLogging {
		// Request logs go to the application log, never to the terminal
		r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: log.Default(), NoColor: true}))
	}
	r.Use(middleware.Recoverer)

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	images := cfg.Images
	if images == nil {
		images = render.NewImageRenderer(800)
	}
	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	h := &handlers{hub: cfg.Hub, images: images}

	r.Get("/health", h.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Get("/ws", cfg.Hub.HandleWebSocket)

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", h.handleGetState)
		r.Get("/frame.png", h.handleGetFrame)
	})

	return r
}

type handlers struct {
	hub    *Hub
	images *render.ImageRenderer
}

func (h *handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"status":     "ok",
		"spectators": h.hub.ClientCount(),
	})
}

func (h *handlers) handleGetState(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.hub.Latest()
	if !ok {
		writeError(w, "no snapshot published yet", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, snap)
}

func (h *handlers) handleGetFrame(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.hub.Latest()
	if !ok {
		writeError(w, "no snapshot published yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if err := h.images.EncodePNG(w, snap); err != nil {
		log.Printf("server: encode frame: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
