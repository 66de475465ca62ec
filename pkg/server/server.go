// Package server exposes snapshot storage and graph queries over HTTP.
//
// Snapshots are stored by content hash in a [cache.Cache], so identical
// graphs deduplicate and keys are stable across uploads. All query
// endpoints rebuild the graph from the stored snapshot on demand; the
// service itself is stateless.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tanglegraph/tangle/pkg/cache"
	"github.com/tanglegraph/tangle/pkg/dot"
	"github.com/tanglegraph/tangle/pkg/graph"
	"github.com/tanglegraph/tangle/pkg/snapshot"
)

const maxSnapshotBytes = 16 << 20

// Server handles snapshot uploads and graph queries.
type Server struct {
	store  cache.Cache
	logger *log.Logger
	ttl    time.Duration
}

// New creates a server storing snapshots in store with the given entry
// lifetime. A zero ttl keeps entries indefinitely.
func New(store cache.Cache, logger *log.Logger, ttl time.Duration) *Server {
	return &Server{store: store, logger: logger, ttl: ttl}
}

// Handler builds the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Route("/graphs", func(r chi.Router) {
		r.Post("/", s.handleCreate)
		r.Route("/{key}", func(r chi.Router) {
			r.Get("/", s.handleGet)
			r.Get("/stats", s.handleStats)
			r.Get("/order", s.handleOrder)
			r.Get("/dot", s.handleDot)
			r.Delete("/", s.handleDelete)
		})
	})

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

type createResponse struct {
	Key      string `json:"key"`
	Vertices int    `json:"vertices"`
	Edges    int    `json:"edges"`
}

type statsResponse struct {
	Vertices int      `json:"vertices"`
	Edges    int      `json:"edges"`
	Roots    []string `json:"roots"`
	Tips     []string `json:"tips"`
	Cyclic   bool     `json:"cyclic"`
}

type orderResponse struct {
	Order []string `json:"order"`
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, maxSnapshotBytes)
	var snap snapshot.Snapshot
	if err := json.NewDecoder(body).Decode(&snap); err != nil {
		writeError(w, http.StatusBadRequest, "invalid snapshot: "+err.Error())
		return
	}

	g, _, err := snapshot.ToGraph(snap)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	canonical, err := snapshot.Marshal(snapshot.FromGraph(g))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	key := cache.Hash(canonical)
	if err := s.store.Set(r.Context(), cache.SnapshotKey(key), canonical, s.ttl); err != nil {
		s.logger.Error("store snapshot", "key", key, "err", err)
		writeError(w, http.StatusInternalServerError, "store snapshot")
		return
	}

	writeJSON(w, http.StatusCreated, createResponse{
		Key:      key,
		Vertices: g.VertexCount(),
		Edges:    g.EdgeCount(),
	})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	data, ok := s.loadSnapshotBytes(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	g, ok := s.loadGraph(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		Vertices: g.VertexCount(),
		Edges:    g.EdgeCount(),
		Roots:    externalIDs(g, g.Roots()),
		Tips:     externalIDs(g, g.Tips()),
		Cyclic:   g.IsCyclic(),
	})
}

func (s *Server) handleOrder(w http.ResponseWriter, r *http.Request) {
	g, ok := s.loadGraph(w, r)
	if !ok {
		return
	}

	order, err := g.TopoSort()
	if errors.Is(err, graph.ErrGraphHasCycle) {
		writeError(w, http.StatusConflict, "graph contains a cycle")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, orderResponse{Order: externalIDs(g, order)})
}

func (s *Server) handleDot(w http.ResponseWriter, r *http.Request) {
	data, ok := s.loadSnapshotBytes(w, r)
	if !ok {
		return
	}

	snap, err := snapshot.Unmarshal(data)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	out, err := dot.FromSnapshot(snap, "G")
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/vnd.graphviz")
	_, _ = w.Write([]byte(out))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if err := s.store.Delete(r.Context(), cache.SnapshotKey(key)); err != nil {
		s.logger.Error("delete snapshot", "key", key, "err", err)
		writeError(w, http.StatusInternalServerError, "delete snapshot")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) loadSnapshotBytes(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	key := chi.URLParam(r, "key")
	data, hit, err := s.store.Get(r.Context(), cache.SnapshotKey(key))
	if err != nil {
		s.logger.Error("load snapshot", "key", key, "err", err)
		writeError(w, http.StatusInternalServerError, "load snapshot")
		return nil, false
	}
	if !hit {
		writeError(w, http.StatusNotFound, "graph not found")
		return nil, false
	}
	return data, true
}

func (s *Server) loadGraph(w http.ResponseWriter, r *http.Request) (*graph.Graph[snapshot.Node], bool) {
	data, ok := s.loadSnapshotBytes(w, r)
	if !ok {
		return nil, false
	}

	snap, err := snapshot.Unmarshal(data)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	g, _, err := snapshot.ToGraph(snap)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	return g, true
}

// externalIDs maps internal vertex identifiers back to the string ids
// the snapshot was uploaded with.
func externalIDs(g *graph.Graph[snapshot.Node], ids []graph.VertexID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if node, err := g.Fetch(id); err == nil {
			out = append(out, node.ID)
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
