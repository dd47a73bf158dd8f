package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"hotwords/internal/cache"
	"hotwords/internal/config"
	"hotwords/internal/gemini"
	"hotwords/internal/hotlist"
	"hotwords/internal/pipeline"
	"hotwords/internal/prompt"
)

// Server holds the HTTP server and its dependencies
type Server struct {
	config   *config.Config
	pipeline *pipeline.Pipeline
	cache    *cache.Memory
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config) *Server {
	hotlistClient := hotlist.NewClient(cfg.APIBase)
	geminiClient := gemini.NewClient(cfg.GoogleAPIKey, cfg.GoogleModel, prompt.NewLoader(cfg.PromptFile))

	return &Server{
		config:   cfg,
		pipeline: pipeline.New(hotlistClient, geminiClient),
		cache:    cache.NewMemory(time.Duration(cfg.CacheDuration) * time.Hour),
	}
}

// Routes configures HTTP routes
func (s *Server) Routes() *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(s.loggingMiddleware)

	api.HandleFunc("/health", s.healthHandler).Methods("GET")

	api.HandleFunc("/keywords", s.keywordsHandler).Methods("GET")
	api.HandleFunc("/keywords/{channel}", s.channelKeywordsHandler).Methods("GET")
	api.HandleFunc("/refresh", s.refreshHandler).Methods("POST")

	api.HandleFunc("/cache/stats", s.cacheStatsHandler).Methods("GET")

	return r
}

// Refresh runs the full pipeline over all discovered channels and
// repopulates the cache. Channels that fail any stage keep the
// all-or-nothing rule: no partial entries are cached.
func (s *Server) Refresh(ctx context.Context) int {
	log.Info("starting keyword refresh...")

	channels := s.pipeline.Channels(ctx)
	opts := pipeline.Options{Limit: s.config.Limit}

	refreshed := 0
	for _, channel := range channels {
		result, err := s.pipeline.ProcessChannel(ctx, channel, opts)
		if err != nil {
			log.Warnf("refresh skipped channel %s: %v", channel, err)
			continue
		}

		if err := s.cache.Set(ctx, &cache.Entry{
			Channel:     result.Channel,
			DisplayName: result.DisplayName,
			Keywords:    result.Keywords,
		}); err != nil {
			log.Errorf("caching keywords for channel %s: %v", channel, err)
			continue
		}
		refreshed++
	}

	log.Infof("refresh complete: %d of %d channels populated", refreshed, len(channels))
	return refreshed
}

// Close releases server resources.
func (s *Server) Close() {
	s.cache.Close()
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Wrap the ResponseWriter to capture status code
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		log.Infof("%s %s %d %v", r.Method, r.URL.Path, wrapped.statusCode, time.Since(start))
	})
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
