package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/labelpress/labelpress/pkg/errors"
	"github.com/labelpress/labelpress/pkg/layout"
	"github.com/labelpress/labelpress/pkg/media"
	"github.com/labelpress/labelpress/pkg/pipeline"
)

// warningHeader carries non-fatal layout findings to the caller, e.g. a
// product without a barcode. The artifact is still produced.
const warningHeader = "X-Label-Warning"

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleMedia lists the supported media profiles so UIs can populate their
// size selectors without hardcoding the catalog.
func (s *Server) handleMedia(w http.ResponseWriter, r *http.Request) {
	type mediaEntry struct {
		Size      media.Size `json:"size"`
		WidthMM   float64    `json:"width_mm"`
		HeightMM  float64    `json:"height_mm"`
		Landscape bool       `json:"landscape"`
		Template  string     `json:"template"`
	}
	var out []mediaEntry
	for _, p := range media.All() {
		out = append(out, mediaEntry{
			Size:      p.Size,
			WidthMM:   p.WidthMM,
			HeightMM:  p.HeightMM,
			Landscape: p.Landscape(),
			Template:  string(layout.SelectTemplate(p.Size)),
		})
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	opts, err := s.options(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	doc, err := s.runner.Assemble(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	s.serveArtifact(w, r, pipeline.FormatJSON)
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	s.serveArtifact(w, r, pipeline.FormatPNG)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	s.serveArtifact(w, r, pipeline.FormatPDF)
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	s.serveArtifact(w, r, pipeline.FormatSVG)
}

func (s *Server) handlePrint(w http.ResponseWriter, r *http.Request) {
	s.serveArtifact(w, r, pipeline.FormatHTML)
}

func (s *Server) serveArtifact(w http.ResponseWriter, r *http.Request, format string) {
	opts, err := s.options(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Formats = []string{format}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if len(result.Warnings) > 0 {
		w.Header().Set(warningHeader, strings.Join(result.Warnings, "; "))
	}

	contentType := map[string]string{
		pipeline.FormatPDF:  "application/pdf",
		pipeline.FormatPNG:  "image/png",
		pipeline.FormatSVG:  "image/svg+xml",
		pipeline.FormatHTML: "text/html; charset=utf-8",
		pipeline.FormatJSON: "application/json",
	}[format]
	w.Header().Set("Content-Type", contentType)

	if format == pipeline.FormatPDF {
		filename := pipeline.ExportFilename(result.Document.SKU, opts.Size)
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	}

	_, _ = w.Write(result.Artifacts[format])
}

// options builds pipeline options from the request path and query.
func (s *Server) options(r *http.Request) (pipeline.Options, error) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		return pipeline.Options{}, errors.New(errors.ErrCodeInvalidInput, "product id is required")
	}

	size := media.DefaultSize
	if raw := r.URL.Query().Get("size"); raw != "" {
		parsed, err := media.Parse(raw)
		if err != nil {
			return pipeline.Options{}, err
		}
		size = parsed
	}

	return pipeline.Options{
		ProductID:  productID,
		BackendURL: s.backend,
		Refresh:    r.URL.Query().Get("refresh") == "true",
		Size:       size,
		Source:     s.source,
		Logger:     s.logger,
	}, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := statusFor(code)

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			"path", r.URL.Path,
			"request_id", requestIDFrom(r.Context()),
			"err", err)
	} else {
		s.logger.Debug("request rejected",
			"path", r.URL.Path,
			"request_id", requestIDFrom(r.Context()),
			"err", err)
	}

	s.writeJSON(w, status, errorResponse{
		Error:     errors.UserMessage(err),
		Code:      string(code),
		RequestID: requestIDFrom(r.Context()),
	})
}

// statusFor maps pipeline error codes onto HTTP statuses.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidSize,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidBarcode:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeProductNotFound,
		errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case errors.ErrCodeNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
