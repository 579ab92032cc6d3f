// Package server serves a world map over HTTP as Mermaid, DOT, SVG and JSON.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/xrpg/pkg/buildinfo"
	"github.com/matzehuels/xrpg/pkg/cache"
	xerrors "github.com/matzehuels/xrpg/pkg/errors"
	"github.com/matzehuels/xrpg/pkg/observability"
	"github.com/matzehuels/xrpg/pkg/render/nodelink"
	"github.com/matzehuels/xrpg/pkg/worldmap"
)

const shutdownTimeout = 5 * time.Second

// Options configures a Server.
type Options struct {
	// Cache stores rendered SVGs. Nil disables caching.
	Cache cache.Cache

	// Logger receives server lifecycle messages. Nil uses log.Default().
	Logger *log.Logger
}

// Server exposes a single map. Reads share the map; removals take it
// exclusively, so every response reflects one consistent snapshot.
type Server struct {
	mu     sync.RWMutex
	m      *worldmap.Map
	cache  cache.Cache
	logger *log.Logger
}

// New creates a Server for m. The server owns m from then on.
func New(m *worldmap.Map, opts Options) *Server {
	if opts.Cache == nil {
		opts.Cache = cache.NewNullCache()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Server{m: m, cache: opts.Cache, logger: opts.Logger}
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(observe)

	r.Get("/healthz", s.handleHealth)
	r.Get("/mermaid", s.handleMermaid)
	r.Get("/dot", s.handleDOT)
	r.Get("/svg", s.handleSVG)
	r.Get("/paths", s.handlePaths)
	r.Route("/locations", func(r chi.Router) {
		r.Get("/", s.handleLocations)
		r.Get("/{name}", s.handleLocation)
		r.Delete("/{name}", s.handleRemoveLocation)
	})
	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
}

func (s *Server) handleMermaid(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	body := s.m.Mermaid()
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(body))
}

func (s *Server) handleDOT(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
	_, _ = w.Write([]byte(s.dot(r)))
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	dot := s.dot(r)
	svg, cached, err := cache.GetOrCompute(r.Context(), s.cache, cache.ArtifactKey(dot, "svg"), cache.DefaultTTL, func() ([]byte, error) {
		return nodelink.RenderSVG(r.Context(), dot)
	})
	if err != nil {
		writeError(w, xerrors.Wrap(xerrors.ErrCodeRenderFailed, err, "render svg"))
		return
	}
	if cached {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(svg)
}

func (s *Server) handleLocations(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	locs := s.m.Locations()
	s.mu.RUnlock()

	out := make([]locationJSON, len(locs))
	for i, loc := range locs {
		out[i] = toLocationJSON(loc)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleLocation(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.m.Index(name)
	if !ok {
		writeError(w, xerrors.New(xerrors.ErrCodeUnknownLocation, "no location named %q", name))
		return
	}
	loc, _ := s.m.Location(idx)
	out := detailJSON{locationJSON: toLocationJSON(loc), Neighbors: []neighborJSON{}}
	for _, to := range s.m.Neighbors(idx) {
		dest, _ := s.m.Location(to)
		if dest.Removed {
			continue
		}
		minutes, _ := s.m.Weight(idx, to)
		out.Neighbors = append(out.Neighbors, neighborJSON{
			Index:         to,
			Name:          dest.Name,
			Minutes:       minutes,
			Bidirectional: s.m.IsBidirectional(idx, to),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleRemoveLocation(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	s.mu.Lock()
	idx, ok := s.m.Index(name)
	if ok {
		s.m.RemoveNode(idx)
	}
	s.mu.Unlock()

	if !ok {
		writeError(w, xerrors.New(xerrors.ErrCodeUnknownLocation, "no location named %q", name))
		return
	}
	s.logger.Info("removed location", "name", name, "index", idx)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePaths(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	paths := s.m.Paths()
	s.mu.RUnlock()

	out := make([]pathJSON, len(paths))
	for i, p := range paths {
		out[i] = pathJSON{From: p.From, To: p.To, Minutes: p.Minutes}
	}
	writeJSON(w, http.StatusOK, out)
}

// dot snapshots the map as DOT. ?detailed=true prefixes labels with indices.
func (s *Server) dot(r *http.Request) string {
	opts := nodelink.Options{Detailed: r.URL.Query().Get("detailed") == "true"}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return nodelink.ToDOT(s.m, opts)
}

// =============================================================================
// Middleware
// =============================================================================

// observe reports each request and its response to the HTTP hooks.
func observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, time.Since(start))
	})
}
