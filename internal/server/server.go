// Package server exposes the label pipeline over HTTP. It serves raster
// previews and vector exports for back-office UIs that do not embed the
// rendering engine themselves.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/labelpress/labelpress/pkg/label"
	"github.com/labelpress/labelpress/pkg/pipeline"
)

// Server wires HTTP routes to a pipeline runner.
type Server struct {
	runner  *pipeline.Runner
	source  label.Source
	backend string
	logger  *log.Logger
}

// New creates a server. The backend URL only participates in cache keys;
// the source is the already configured back-office client.
func New(runner *pipeline.Runner, source label.Source, backendURL string, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		runner:  runner,
		source:  source,
		backend: backendURL,
		logger:  logger,
	}
}

// Routes builds the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Get("/media", s.handleMedia)

	r.Route("/labels/{id}", func(r chi.Router) {
		r.Get("/document.json", s.handleDocument)
		r.Get("/layout.json", s.handleLayout)
		r.Get("/preview.png", s.handlePreview)
		r.Get("/label.pdf", s.handleExport)
		r.Get("/label.svg", s.handleSVG)
		r.Get("/print.html", s.handlePrint)
	})

	return r
}

// ListenAndServe runs the server until ctx is canceled, then drains
// in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info("server listening", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// requestID tags every request with an X-Request-ID for log correlation,
// honoring an inbound header when a proxy already assigned one.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(withRequestID(r.Context(), id)))
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", requestIDFrom(r.Context()),
			"duration", time.Since(start))
	})
}

type ctxKey int

const requestIDKey ctxKey = iota

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
