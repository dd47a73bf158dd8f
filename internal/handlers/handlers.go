package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"hotwords/internal/cache"
	"hotwords/internal/hotlist"
	"hotwords/internal/pipeline"
)

// healthHandler provides health check endpoint
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
	})
}

// keywordsHandler returns all cached channel keyword lists
func (s *Server) keywordsHandler(w http.ResponseWriter, r *http.Request) {
	entries := s.cache.Entries(r.Context())

	channels := make(map[string][]string, len(entries))
	for _, entry := range entries {
		channels[entry.DisplayName] = entry.Keywords
	}

	writeJSON(w, map[string]interface{}{
		"channels": channels,
		"count":    len(channels),
	})
}

// channelKeywordsHandler returns keywords for one channel, extracting
// on demand when the cache has no live entry
func (s *Server) channelKeywordsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	channel := mux.Vars(r)["channel"]

	if entry, err := s.cache.Get(ctx, channel); err == nil {
		writeJSON(w, entry)
		return
	}

	result, err := s.pipeline.ProcessChannel(ctx, channel, pipeline.Options{Limit: s.config.Limit})
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, pipeline.ErrNoData) || errors.Is(err, pipeline.ErrNoKeywords) {
			status = http.StatusNotFound
		}
		var apiErr *hotlist.Error
		if errors.As(err, &apiErr) && apiErr.Kind == hotlist.ErrUpstream {
			status = http.StatusNotFound
		}
		http.Error(w, fmt.Sprintf("processing channel %s: %v", channel, err), status)
		return
	}

	entry := &cache.Entry{
		Channel:     result.Channel,
		DisplayName: result.DisplayName,
		Keywords:    result.Keywords,
	}
	if err := s.cache.Set(ctx, entry); err != nil {
		log.Errorf("caching keywords for channel %s: %v", channel, err)
	}

	writeJSON(w, entry)
}

// refreshHandler re-runs the pipeline over all channels
func (s *Server) refreshHandler(w http.ResponseWriter, r *http.Request) {
	refreshed := s.Refresh(r.Context())

	writeJSON(w, map[string]interface{}{
		"status":    "success",
		"refreshed": refreshed,
	})
}

// cacheStatsHandler returns cache statistics
func (s *Server) cacheStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.cache.GetStats(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Error getting cache stats: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, stats)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
