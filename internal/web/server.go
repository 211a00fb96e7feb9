package web

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"typetrace/internal/model"
	"typetrace/internal/trace"
)

//go:embed static/*
var staticFS embed.FS

//go:embed help.md
var helpMD string

const cacheSize = 16

// Options configures the web server.
type Options struct {
	Dir     string // directory served when a request names none
	Jobs    int
	Samples int
	Logger  *zap.Logger
}

// Server serves trace reports over HTTP.
type Server struct {
	opts  Options
	log   *zap.Logger
	cache *lru.Cache[string, model.AnalysisResult]
	mu    sync.Mutex // serializes analyses so a directory is not analyzed twice at once
}

// NewServer builds a Server; analyses are cached per directory.
func NewServer(opts Options) (*Server, error) {
	cache, err := lru.New[string, model.AnalysisResult](cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "create report cache")
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{opts: opts, log: log, cache: cache}, nil
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	subFS, _ := fs.Sub(staticFS, "static")
	mux.Handle("/", http.FileServer(http.FS(subFS)))

	// API Endpoints
	mux.HandleFunc("/api/report", s.handleReport)
	mux.HandleFunc("/api/samples", s.handleSamples)
	mux.HandleFunc("/api/declaration", s.handleDeclaration)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/api/help", s.handleHelp)
	return mux
}

// StartServer listens on port until the server fails.
func StartServer(port int, opts Options) error {
	srv, err := NewServer(opts)
	if err != nil {
		return err
	}
	addr := ":" + strconv.Itoa(port)
	fmt.Printf("Starting typetrace web server at http://localhost%s\n", addr)
	fmt.Printf("Go to http://localhost%s in your browser.\n", addr)
	return http.ListenAndServe(addr, srv.Handler())
}

// analyze returns the cached result for dir unless refresh is set.
func (s *Server) analyze(ctx context.Context, dir string, refresh bool) (model.AnalysisResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !refresh {
		if res, ok := s.cache.Get(dir); ok {
			return res, nil
		}
	}
	analyzer := trace.NewAnalyzer(
		trace.WithJobs(s.opts.Jobs),
		trace.WithSamples(trace.NewSampleCollector(s.opts.Samples)),
		trace.WithLogger(s.log),
	)
	res, err := analyzer.Run(ctx, dir)
	if err != nil {
		return res, err
	}
	s.cache.Add(dir, res)
	return res, nil
}

func (s *Server) resolveDir(r *http.Request) (string, error) {
	dir := r.URL.Query().Get("dir")
	if dir == "" {
		dir = s.opts.Dir
	}
	if dir == "" {
		return "", errors.New("dir is required")
	}
	return filepath.Clean(expandTilde(dir)), nil
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	dir, err := s.resolveDir(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	refresh := r.URL.Query().Get("refresh") != ""
	res, err := s.analyze(r.Context(), dir, refresh)
	if err != nil {
		s.log.Warn("Analysis failed", zap.String("dir", dir), zap.Error(err))
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	response := struct {
		model.AnalysisResult
		Report        string `json:"report"`
		VerboseReport string `json:"verboseReport"`
		Version       string `json:"version"`
	}{
		AnalysisResult: res,
		Report:         trace.GenerateReport(res, false),
		VerboseReport:  trace.GenerateReport(res, true),
		Version:        model.Version,
	}
	s.writeJSON(w, response)
}

func (s *Server) handleSamples(w http.ResponseWriter, r *http.Request) {
	dir, err := s.resolveDir(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := s.analyze(r.Context(), dir, false)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	samples := res.Samples
	if samples == nil {
		samples = []model.Record{}
	}
	s.writeJSON(w, samples)
}

// handleDeclaration shows the source around an unknown sample's declaration.
func (s *Server) handleDeclaration(w http.ResponseWriter, r *http.Request) {
	dir, err := s.resolveDir(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	res, err := s.analyze(r.Context(), dir, false)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	for _, rec := range res.Samples {
		if rec.ID != model.TypeID(id) {
			continue
		}
		loc := rec.FirstDeclaration
		if loc == nil {
			loc = rec.ReferenceLocation
		}
		if loc == nil {
			http.Error(w, "sample has no declaration", http.StatusNotFound)
			return
		}
		s.writeJSON(w, model.GetLineContext(*loc))
		return
	}
	http.Error(w, "no such sample", http.StatusNotFound)
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"version": model.Version})
}

func (s *Server) handleHelp(w http.ResponseWriter, r *http.Request) {
	// Use the embedded help content
	text := strings.ReplaceAll(helpMD, "{{VERSION}}", model.Version)

	w.Header().Set("Content-Type", "text/markdown")
	if _, err := io.WriteString(w, text); err != nil {
		s.log.Warn("Writing help failed", zap.Error(err))
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		s.log.Warn("Writing response failed", zap.Error(err))
	}
}

func statusFor(err error) int {
	if errors.Is(err, trace.ErrNotExist) || errors.Is(err, trace.ErrNotDirectory) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// expandTilde expands ~ to the user's home directory
func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			return home
		}
	}
	return path
}
