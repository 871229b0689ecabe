package api

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"pastepad/cfg"
	"pastepad/svc/util"
)

type Mw struct {
	cfg *cfg.Cfg
}

func NewMw(c *cfg.Cfg) *Mw {
	return &Mw{cfg: c}
}

func (m *Mw) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := util.NewRequestID()
		ctx := util.SetRequestID(r.Context(), requestID)
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Mw) ContextTimeout(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), m.cfg.ContextTimeout)
		defer cancel()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Mw) SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		// Pages carry inline styles and the home form posts back to /api/paste.
		w.Header().Set("Content-Security-Policy", "default-src 'none'; style-src 'unsafe-inline'; form-action 'self'; base-uri 'none'")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

func (m *Mw) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				requestID := util.GetRequestID(r.Context())
				util.Error().
					Interface("panic", rvr).
					Str("request_id", requestID).
					Msg("panic recovered")
				if w.Header().Get("Content-Type") == "" {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(map[string]string{
						"error":      "internal server error",
						"request_id": requestID,
					})
				}
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (m *Mw) BasicAuthMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.cfg.MetricsUser == "" && m.cfg.MetricsPass.Value() == "" {
			next.ServeHTTP(w, r)
			return
		}
		user, pass, ok := r.BasicAuth()
		userMatch := 0
		passMatch := 0
		if ok {
			userMatch = subtle.ConstantTimeCompare([]byte(user), []byte(m.cfg.MetricsUser))
			passMatch = subtle.ConstantTimeCompare([]byte(pass), []byte(m.cfg.MetricsPass.Value()))
		}
		if !ok || userMatch != 1 || passMatch != 1 {
			w.Header().Set("WWW-Authenticate", `Basic realm="metrics"`)
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Unauthorized\n"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
