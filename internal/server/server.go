// Package server exposes the decoder over HTTP.
//
//	GET /{payload}  200 with the decode result, 500 with {"error": "..."}
//	GET /           400 {"error": "Missing payload"}
//	GET /healthz    liveness
//	GET /metrics    prometheus, when metrics are enabled
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/christiaansc/Codec-BoBAssistant/internal/config"
	"github.com/christiaansc/Codec-BoBAssistant/internal/decoder"
	"github.com/christiaansc/Codec-BoBAssistant/internal/monitor"
)

const requestIDHeader = "X-Request-Id"

type Server struct {
	cfg     config.ServerConfig
	log     logrus.FieldLogger
	decoder *decoder.Decoder
	metrics *monitor.Metrics
}

// New builds a server; metrics may be nil.
func New(cfg config.ServerConfig, log logrus.FieldLogger, metrics *monitor.Metrics) *Server {
	return &Server{
		cfg:     cfg,
		log:     log.WithField("component", "http"),
		decoder: decoder.New(metrics),
		metrics: metrics,
	}
}

// Handler returns the routing table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics.Handler())
	}
	mux.HandleFunc("GET /{$}", s.handleMissing)
	mux.HandleFunc("GET /{payload}", s.handleDecode)
	return s.withRequestID(mux)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	hs := &http.Server{
		Handler:           s.Handler(),
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      s.cfg.WriteTimeout,
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", ln.Addr().String()).Info("listening")
		errCh <- hs.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := hs.Shutdown(shCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	payload := r.PathValue("payload")
	log := s.log.WithFields(logrus.Fields{
		"request_id": w.Header().Get(requestIDHeader),
		"payload":    payload,
	})
	res, err := s.decoder.Decode(payload, log)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleMissing(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusBadRequest, "Missing payload")
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
