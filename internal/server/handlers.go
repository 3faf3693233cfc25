package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/dotkit/pkg/errors"
	"github.com/matzehuels/dotkit/pkg/graphio"
	"github.com/matzehuels/dotkit/pkg/pipeline"
	"github.com/matzehuels/dotkit/pkg/render"
)

// contentTypes per artifact format.
var contentTypes = map[render.Format]string{
	render.FormatDOT: "text/vnd.graphviz; charset=utf-8",
	render.FormatSVG: "image/svg+xml",
	render.FormatPNG: "image/png",
}

// buildRequest is the body of /v1/dot and /v1/render.
type buildRequest struct {
	Document *graphio.Document `json:"document"`
	Format   string            `json:"format,omitempty"`
	Refresh  bool              `json:"refresh,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleDot compiles a document body to DOT text.
func (s *Server) handleDot(w http.ResponseWriter, r *http.Request) {
	req, err := decodeBuildRequest(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	dot, err := s.cfg.Runner.Build(r.Context(), req.Document, pipeline.Options{
		Formats: []string{string(render.FormatDOT)},
		Refresh: req.Refresh,
		Logger:  s.cfg.Logger,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[render.FormatDOT])
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(dot))
}

// handleRender compiles and renders a document body in one request.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := decodeBuildRequest(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.renderDocument(w, r, req.Document, req.Format, req.Refresh)
}

func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := graphio.ReadJSON(r.Body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	created, err := s.cfg.Store.Create(r.Context(), doc)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.cfg.Store.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"documents": docs})
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.cfg.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleUpdateDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := graphio.ReadJSON(r.Body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	updated, err := s.cfg.Store.Update(r.Context(), chi.URLParam(r, "id"), doc)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := s.cfg.Store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleRenderDocument renders a stored document. The format comes from
// the ?format query parameter and defaults to svg.
func (s *Server) handleRenderDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.cfg.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = string(render.FormatSVG)
	}
	s.renderDocument(w, r, doc, format, r.URL.Query().Get("refresh") == "true")
}

func (s *Server) renderDocument(w http.ResponseWriter, r *http.Request, doc *graphio.Document, format string, refresh bool) {
	f, err := render.ParseFormat(format)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.cfg.Runner.Execute(r.Context(), doc, pipeline.Options{
		Formats: []string{string(f)},
		Refresh: refresh,
		Logger:  s.cfg.Logger,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[f])
	w.Header().Set("X-Doc-Hash", result.DocHash)
	w.WriteHeader(http.StatusOK)
	w.Write(result.Artifacts[string(f)])
}

func decodeBuildRequest(r *http.Request) (*buildRequest, error) {
	var req buildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request body")
	}
	if req.Document == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "request is missing the document field")
	}
	if err := req.Document.Validate(); err != nil {
		return nil, err
	}
	if req.Format == "" {
		req.Format = string(render.FormatDOT)
	}
	return &req, nil
}

// errorResponse is the JSON error body.
type errorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code,omitempty"`
}

// statusFor maps error codes to HTTP status codes.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidDocument, errors.ErrCodeInvalidStyle,
		errors.ErrCodeOutOfRange, errors.ErrCodeUnsupported:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := statusFor(code)
	if status >= 500 {
		s.cfg.Logger.Error("request failed",
			"path", r.URL.Path,
			"error", err,
			"request_id", r.Header.Get(requestIDHeader))
	}
	writeJSON(w, status, errorResponse{Error: errors.UserMessage(err), Code: code})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
