package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"pastepad/svc/util"
)

type HealthResponse struct {
	Status string `json:"status"`
}

type ReadyResponse struct {
	Ready bool   `json:"ready"`
	Store string `json:"store"`
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(HealthResponse{Status: "ok"})
}

func (s *Server) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	resp := ReadyResponse{Ready: true, Store: "up"}
	if err := s.store.Ping(ctx); err != nil {
		util.Error().Err(err).Msg("store health check failed")
		resp.Store = "down"
		resp.Ready = false
	}
	w.Header().Set("Content-Type", "application/json")
	if !resp.Ready {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	json.NewEncoder(w).Encode(resp)
}
