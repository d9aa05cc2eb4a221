// Package api exposes the kernel's external operations over HTTP: a
// narrow interface per concern, a CORS-wrapped net/http.ServeMux, and
// a tiny writeJSON helper.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Mahdi-s/games-of-life/internal/config"
	"github.com/Mahdi-s/games-of-life/internal/grid"
	"github.com/Mahdi-s/games-of-life/internal/paint"
	"github.com/Mahdi-s/games-of-life/internal/rule"
	"github.com/Mahdi-s/games-of-life/internal/types"
)

// EngineProvider exposes the read/step operations of a running
// simulation kernel.
type EngineProvider interface {
	ID() string
	Snapshot() types.Snapshot
	GetCell(x, y int) (int, error)
	Generation() int
	AliveCount() int
	Step() error
	Rule() rule.Rule
	Reconfigure(r *rule.Rule) error
	Resize(width, height int) error
}

// SeedProvider exposes the seeding operations.
type SeedProvider interface {
	SeedRandom(density float64, includeDecay bool) error
	SeedPattern(name string, originX, originY, tileX, tileY int) error
	SeedShape(shape types.Shape, radius int, state int) error
}

// PaintProvider exposes the between-steps paint operation.
type PaintProvider interface {
	Paint(req paint.Request) error
}

// KernelProvider combines all provider interfaces a session offers.
type KernelProvider interface {
	EngineProvider
	SeedProvider
	PaintProvider
	Parameters() *config.EngineParameters
}

// Server provides the HTTP API for a kernel session.
type Server struct {
	port   int
	kernel KernelProvider
	server *http.Server
}

// New creates a new API server bound to the given kernel session.
func New(port int, kernel KernelProvider) (*Server, error) {
	return &Server{port: port, kernel: kernel}, nil
}

// Start begins the HTTP API server in a background goroutine.
func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/snapshot", s.handleSnapshot)
	mux.HandleFunc("/cell", s.handleCell)
	mux.HandleFunc("/step", s.handleStep)
	mux.HandleFunc("/generation", s.handleGeneration)
	mux.HandleFunc("/rule", s.handleRule)
	mux.HandleFunc("/resize", s.handleResize)
	mux.HandleFunc("/seed/random", s.handleSeedRandom)
	mux.HandleFunc("/seed/pattern", s.handleSeedPattern)
	mux.HandleFunc("/seed/shape", s.handleSeedShape)
	mux.HandleFunc("/paint", s.handlePaint)
	mux.HandleFunc("/config", s.handleConfig)

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.enableCORS(mux),
	}

	log.Printf("api: HTTP server starting on port %d", s.port)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("api: server error: %v", err)
		}
	}()

	return nil
}

// Stop gracefully shuts down the API server.
func (s *Server) Stop() {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(ctx); err != nil {
			log.Printf("api: shutdown error: %v", err)
		}
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.writeJSON(w, map[string]interface{}{
		"status":     "healthy",
		"kernel_id":  s.kernel.ID(),
		"generation": s.kernel.Generation(),
	})
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.writeJSON(w, s.kernel.Snapshot())
}

func (s *Server) handleCell(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	x, errX := strconv.Atoi(r.URL.Query().Get("x"))
	y, errY := strconv.Atoi(r.URL.Query().Get("y"))
	if errX != nil || errY != nil {
		http.Error(w, "x and y query params required", http.StatusBadRequest)
		return
	}
	state, err := s.kernel.GetCell(x, y)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.writeJSON(w, map[string]interface{}{"x": x, "y": y, "state": state})
}

func (s *Server) handleStep(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := s.kernel.Step(); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	s.writeJSON(w, map[string]interface{}{
		"generation":  s.kernel.Generation(),
		"alive_count": s.kernel.AliveCount(),
	})
}

func (s *Server) handleGeneration(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.writeJSON(w, map[string]interface{}{
		"generation":  s.kernel.Generation(),
		"alive_count": s.kernel.AliveCount(),
	})
}

// ruleRequest mirrors config.RuleFile so a rule update can be posted
// as JSON without depending on the config package's yaml tags.
type ruleRequest struct {
	Birth        []int           `json:"birth"`
	Survive      []int           `json:"survive"`
	NumStates    int             `json:"num_states"`
	Neighborhood string          `json:"neighborhood"`
	Boundary     string          `json:"boundary"`
	Vitality     []anchorRequest `json:"vitality,omitempty"`
}

type anchorRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (s *Server) handleRule(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		current := s.kernel.Rule()
		s.writeJSON(w, current)
	case http.MethodPut, http.MethodPost:
		var req ruleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		rf := config.RuleFile{
			Birth:        req.Birth,
			Survive:      req.Survive,
			NumStates:    req.NumStates,
			Neighborhood: req.Neighborhood,
			Boundary:     req.Boundary,
		}
		for _, a := range req.Vitality {
			rf.Vitality = append(rf.Vitality, config.AnchorFile{X: a.X, Y: a.Y})
		}
		newRule, err := rf.Build()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := s.kernel.Reconfigure(newRule); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.writeJSON(w, map[string]interface{}{"success": true})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleResize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := s.kernel.Resize(req.Width, req.Height); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.writeJSON(w, map[string]interface{}{"success": true})
}

func (s *Server) handleSeedRandom(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Density      float64 `json:"density"`
		IncludeDecay bool    `json:"include_decay"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := s.kernel.SeedRandom(req.Density, req.IncludeDecay); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.writeJSON(w, map[string]interface{}{"success": true})
}

func (s *Server) handleSeedPattern(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Name    string `json:"name"`
		OriginX int    `json:"origin_x"`
		OriginY int    `json:"origin_y"`
		TileX   int    `json:"tile_x"`
		TileY   int    `json:"tile_y"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := s.kernel.SeedPattern(req.Name, req.OriginX, req.OriginY, req.TileX, req.TileY); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.writeJSON(w, map[string]interface{}{"success": true})
}

func (s *Server) handleSeedShape(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Shape  string `json:"shape"`
		Radius int    `json:"radius"`
		State  int    `json:"state"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := s.kernel.SeedShape(types.Shape(req.Shape), req.Radius, req.State); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.writeJSON(w, map[string]interface{}{"success": true})
}

func (s *Server) handlePaint(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		CenterX int     `json:"center_x"`
		CenterY int     `json:"center_y"`
		Radius  int     `json:"radius"`
		State   int     `json:"state"`
		Shape   string  `json:"shape"`
		Density float64 `json:"density"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	density := req.Density
	if density == 0 {
		density = 1
	}
	err := s.kernel.Paint(paint.Request{
		CenterX: req.CenterX,
		CenterY: req.CenterY,
		Radius:  req.Radius,
		State:   grid.State(req.State),
		Shape:   types.Shape(req.Shape),
		Density: density,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.writeJSON(w, map[string]interface{}{"success": true})
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.writeJSON(w, s.kernel.Parameters().Clone())
	case http.MethodPost:
		var updates map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		results := s.kernel.Parameters().UpdateBatch(updates)
		s.writeJSON(w, map[string]interface{}{"results": results})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("api: failed to encode JSON response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (s *Server) enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
