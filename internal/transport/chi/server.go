// Package chi exposes the faunakit SDK over a REST gateway.
package chi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/faunakit/faunakit"
	"github.com/faunakit/faunakit/internal/version"
)

// Server translates HTTP requests into SDK calls. The engine's JSON comes
// back to the caller as-is; only HTTP status codes are derived locally, from
// the driver's fault types.
type Server struct {
	client      *faunakit.Client
	maxPageSize int
	logger      *zap.Logger
}

// NewServer creates the gateway server.
func NewServer(client *faunakit.Client, maxPageSize int, logger *zap.Logger) *Server {
	return &Server{client: client, maxPageSize: maxPageSize, logger: logger}
}

// Routes mounts all gateway endpoints on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Post("/databases", s.handleCreateDatabase)
	r.Get("/databases/{name}", s.handleGetDatabase)
	r.Post("/databases/{name}/keys", s.handleCreateServerKey)
	r.Get("/databases/{name}/databases", s.handlePaginateDatabase)

	r.Post("/collections", s.handleCreateCollection)
	r.Post("/collections/{collection}/documents", s.handleCreateDocuments)
	r.Post("/collections/{collection}/documents/custom", s.handleCreateDocumentsWithID)
	r.Get("/collections/{collection}/documents/{ref}", s.handleGetDocument)
	r.Patch("/collections/{collection}/documents/{ref}", s.handleUpdateDocument)
	r.Put("/collections/{collection}/documents/{ref}", s.handleReplaceDocument)
	r.Delete("/collections/{collection}/documents/{ref}", s.handleDeleteDocument)

	r.Post("/indexes", s.handleCreateIndex)
	r.Get("/indexes/{name}/match", s.handleIndexMatch)
	r.Get("/indexes/{name}/refs", s.handleIndexRefs)
	r.Get("/indexes/{name}/documents", s.handleIndexDocs)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.Version,
		"commit":  version.Commit,
	})
}

type nameRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleCreateDatabase(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !decodeBody(w, r, &req) {
		return
	}
	v, err := s.client.Databases().Create(r.Context(), req.Name)
	s.respond(w, v, err)
}

func (s *Server) handleGetDatabase(w http.ResponseWriter, r *http.Request) {
	v, err := s.client.Databases().Get(r.Context(), chi.URLParam(r, "name"))
	s.respond(w, v, err)
}

func (s *Server) handleCreateServerKey(w http.ResponseWriter, r *http.Request) {
	v, err := s.client.Databases().CreateServerKey(r.Context(), chi.URLParam(r, "name"))
	s.respond(w, v, err)
}

func (s *Server) handlePaginateDatabase(w http.ResponseWriter, r *http.Request) {
	v, err := s.client.Databases().Paginate(
		r.Context(), chi.URLParam(r, "name"), s.sizeParam(r))
	s.respond(w, v, err)
}

func (s *Server) handleCreateCollection(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !decodeBody(w, r, &req) {
		return
	}
	v, err := s.client.Collections().Create(r.Context(), req.Name)
	s.respond(w, v, err)
}

type createDocumentsRequest struct {
	Data json.RawMessage `json:"data"`
}

func (s *Server) handleCreateDocuments(w http.ResponseWriter, r *http.Request) {
	var req createDocumentsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	docs := s.client.Documents(chi.URLParam(r, "collection"))

	// A JSON array means bulk creation; anything else is a single document.
	var many []interface{}
	if err := json.Unmarshal(req.Data, &many); err == nil {
		v, qerr := docs.CreateMany(r.Context(), many)
		s.respond(w, v, qerr)
		return
	}

	var one interface{}
	if err := json.Unmarshal(req.Data, &one); err != nil {
		writeError(w, http.StatusBadRequest, "data must be a JSON value")
		return
	}
	v, err := docs.Create(r.Context(), one)
	s.respond(w, v, err)
}

type customDocumentsRequest struct {
	Documents []struct {
		ID   string      `json:"id"`
		Data interface{} `json:"data"`
	} `json:"documents"`
}

func (s *Server) handleCreateDocumentsWithID(w http.ResponseWriter, r *http.Request) {
	var req customDocumentsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	pairs := make([]faunakit.DocumentWithID, len(req.Documents))
	for i, d := range req.Documents {
		pairs[i] = faunakit.DocumentWithID{ID: d.ID, Data: d.Data}
	}
	v, err := s.client.Documents(chi.URLParam(r, "collection")).
		CreateManyWithID(r.Context(), pairs)
	s.respond(w, v, err)
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	v, err := s.client.Documents(chi.URLParam(r, "collection")).
		Get(r.Context(), chi.URLParam(r, "ref"))
	s.respond(w, v, err)
}

type documentDataRequest struct {
	Data interface{} `json:"data"`
}

func (s *Server) handleUpdateDocument(w http.ResponseWriter, r *http.Request) {
	var req documentDataRequest
	if !decodeBody(w, r, &req) {
		return
	}
	v, err := s.client.Documents(chi.URLParam(r, "collection")).
		Update(r.Context(), chi.URLParam(r, "ref"), req.Data)
	s.respond(w, v, err)
}

func (s *Server) handleReplaceDocument(w http.ResponseWriter, r *http.Request) {
	var req documentDataRequest
	if !decodeBody(w, r, &req) {
		return
	}
	v, err := s.client.Documents(chi.URLParam(r, "collection")).
		Replace(r.Context(), chi.URLParam(r, "ref"), req.Data)
	s.respond(w, v, err)
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	v, err := s.client.Documents(chi.URLParam(r, "collection")).
		Delete(r.Context(), chi.URLParam(r, "ref"))
	s.respond(w, v, err)
}

type createIndexRequest struct {
	Name   string   `json:"name"`
	Source string   `json:"source"`
	Terms  []string `json:"terms"`
	Values []string `json:"values"`
}

func (s *Server) handleCreateIndex(w http.ResponseWriter, r *http.Request) {
	var req createIndexRequest
	if !decodeBody(w, r, &req) {
		return
	}
	var opts []faunakit.IndexOption
	if len(req.Terms) > 0 {
		opts = append(opts, faunakit.Terms(req.Terms...))
	}
	if len(req.Values) > 0 {
		opts = append(opts, faunakit.Values(req.Values...))
	}
	v, err := s.client.Indexes().Create(r.Context(), req.Name, req.Source, opts...)
	s.respond(w, v, err)
}

func (s *Server) handleIndexMatch(w http.ResponseWriter, r *http.Request) {
	term := jsonOrString(r.URL.Query().Get("term"))
	v, err := s.client.Indexes().Match(r.Context(), chi.URLParam(r, "name"), term)
	s.respond(w, v, err)
}

func (s *Server) handleIndexRefs(w http.ResponseWriter, r *http.Request) {
	v, err := s.client.Indexes().ListRefs(
		r.Context(), chi.URLParam(r, "name"), s.sizeParam(r))
	s.respond(w, v, err)
}

func (s *Server) handleIndexDocs(w http.ResponseWriter, r *http.Request) {
	opts := faunakit.PageOptions{
		Scope: r.URL.Query().Get("scope"),
		Size:  s.sizeParam(r),
	}
	if term := r.URL.Query().Get("term"); term != "" {
		opts.Term = jsonOrString(term)
	}
	opts.Before = cursorParam(r, "before")
	opts.After = cursorParam(r, "after")

	v, err := s.client.Indexes().ListDocs(r.Context(), chi.URLParam(r, "name"), opts)
	s.respond(w, v, err)
}

// sizeParam reads the size query parameter, clamped to the configured
// maximum. 0 lets the SDK apply its default.
func (s *Server) sizeParam(r *http.Request) int {
	raw := r.URL.Query().Get("size")
	if raw == "" {
		return 0
	}
	size, err := strconv.Atoi(raw)
	if err != nil || size < 0 {
		return 0
	}
	if s.maxPageSize > 0 && size > s.maxPageSize {
		return s.maxPageSize
	}
	return size
}

// cursorParam reads a cursor from query parameters: <name>_collection plus
// <name>_ref select the composite form, a bare <name> carries an opaque
// token (JSON or plain string).
func cursorParam(r *http.Request, name string) *faunakit.Cursor {
	q := r.URL.Query()
	if col, ref := q.Get(name+"_collection"), q.Get(name+"_ref"); col != "" && ref != "" {
		c := faunakit.CompositeCursor(col, ref)
		return &c
	}
	if raw := q.Get(name); raw != "" {
		c := faunakit.OpaqueCursor(jsonOrString(raw))
		return &c
	}
	return nil
}

// jsonOrString interprets raw as JSON when possible, else as a plain string.
func jsonOrString(raw string) interface{} {
	var v interface{}
	if err := json.Unmarshal([]byte(raw), &v); err == nil {
		return v
	}
	return raw
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// respond forwards the engine's value or maps its fault to an HTTP status.
func (s *Server) respond(w http.ResponseWriter, v interface{}, err error) {
	if err != nil {
		status := statusForErr(err)
		if s.logger != nil {
			s.logger.Warn("engine call failed", zap.Int("status", status), zap.Error(err))
		}
		writeError(w, status, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// statusForErr derives an HTTP status from the driver's fault types. The
// error body itself is the engine's message, untranslated.
func statusForErr(err error) int {
	switch {
	case faunakit.IsNotFound(err):
		return http.StatusNotFound
	case faunakit.IsBadRequest(err):
		return http.StatusBadRequest
	case faunakit.IsUnauthorized(err):
		return http.StatusUnauthorized
	case faunakit.IsPermissionDenied(err):
		return http.StatusForbidden
	default:
		return http.StatusBadGateway
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
