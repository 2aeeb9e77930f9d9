package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/locf/fill"
	"github.com/katalvlaran/locf/internal/config"
	"github.com/katalvlaran/locf/na"
)

// Server wires the HTTP routes to package fill.
type Server struct {
	cfg      config.Config
	logger   *slog.Logger
	metrics  *Metrics
	validate *validator.Validate
	router   chi.Router
}

// New builds a Server. Metrics are registered on reg and exposed from it.
func New(cfg config.Config, logger *slog.Logger, reg *prometheus.Registry) *Server {
	s := &Server{
		cfg:      cfg,
		logger:   logger.With(slog.String("component", "server")),
		metrics:  NewMetrics(reg),
		validate: validator.New(),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Route("/v1", func(r chi.Router) {
		r.Use(s.limitBody)
		r.Post("/locf", s.handleFill)
	})
	s.router = r

	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on cfg.Server.Addr until ctx is done, then shuts down gracefully
// within ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}

	return nil
}

// fillRequest is the body of POST /v1/locf.
type fillRequest struct {
	Values   []na.Value `json:"values" validate:"required"`
	Parallel bool       `json:"parallel"`
}

// fillResponse is the body of a successful POST /v1/locf.
type fillResponse struct {
	Values []na.Value `json:"values"`
	Stats  fill.Stats `json:"stats"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

func (s *Server) handleFill(w http.ResponseWriter, r *http.Request) {
	var req fillRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.fail(w, r, outcomeTooLarge, newAPIError(http.StatusRequestEntityTooLarge, codeTooLarge,
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit)))
			return
		}
		s.fail(w, r, outcomeBadRequest, newAPIError(http.StatusBadRequest, codeInvalidRequest, err.Error()))
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.fail(w, r, outcomeBadRequest, newAPIError(http.StatusBadRequest, codeValidationFailed, err.Error()))
		return
	}
	if n := len(req.Values); n > s.cfg.Server.MaxValues {
		s.fail(w, r, outcomeTooLarge, newAPIError(http.StatusRequestEntityTooLarge, codeTooLarge,
			fmt.Sprintf("%d values exceed the limit of %d", n, s.cfg.Server.MaxValues)))
		return
	}

	out, st, err := s.impute(r.Context(), req)
	if err != nil {
		s.fail(w, r, outcomeCanceled, newAPIError(http.StatusServiceUnavailable, codeUnavailable, err.Error()))
		return
	}

	s.metrics.requests.WithLabelValues(outcomeOK).Inc()
	s.metrics.seqLength.Observe(float64(st.Len))
	s.metrics.cellsFilled.Add(float64(st.Filled))

	render.JSON(w, r, fillResponse{Values: out, Stats: st})
}

// impute runs the sequential pass, or the parallel scan when the client asks
// for it or the input reaches ParallelThreshold.
func (s *Server) impute(ctx context.Context, req fillRequest) ([]na.Value, fill.Stats, error) {
	if !req.Parallel && len(req.Values) < s.cfg.Fill.ParallelThreshold {
		out, st := fill.LOCFWithStats(req.Values)
		return out, st, nil
	}

	opts := []fill.Option{fill.WithMinChunk(s.cfg.Fill.MinChunk)}
	if s.cfg.Fill.Workers > 0 {
		opts = append(opts, fill.WithWorkers(s.cfg.Fill.Workers))
	}
	out, err := fill.Parallel(ctx, req.Values, opts...)
	if err != nil {
		return nil, fill.Stats{}, err
	}

	return out, fill.Tally(req.Values), nil
}

// decodeJSON decodes exactly one JSON value from r into v. Anything other
// than whitespace after it is an error.
func decodeJSON(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after JSON body")
		}
		return err
	}

	return nil
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, outcome string, apiErr *APIError) {
	s.metrics.requests.WithLabelValues(outcome).Inc()
	s.logger.WarnContext(r.Context(), "fill request rejected",
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("code", apiErr.ErrorCode),
		slog.String("error", apiErr.Message))
	if err := render.Render(w, r, apiErr); err != nil {
		http.Error(w, apiErr.Message, apiErr.StatusCode)
	}
}

// limitBody caps request bodies at MaxBodyBytes.
func (s *Server) limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxBodyBytes)
		next.ServeHTTP(w, r)
	})
}

// logRequests emits one slog record per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.InfoContext(r.Context(), "request",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("duration", time.Since(start)))
	})
}
