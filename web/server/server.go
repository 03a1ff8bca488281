package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/df07/go-padvinder/pkg/loaders"
	"github.com/df07/go-padvinder/pkg/renderer"
	"github.com/df07/go-padvinder/pkg/scene"
)

// Request limits
const (
	maxResolution = 2000
	maxSamples    = 10000
	maxPathLength = 64
	maxWorkers    = 256
	maxSceneBytes = 1 << 20
)

// Server renders scenes over HTTP
type Server struct {
	port      int
	scenesDir string
	logger    zerolog.Logger
	console   *Console
	renders   atomic.Int64
}

// NewServer creates a new web server. YAML scenes are discovered in scenesDir;
// console may be nil when the recent log messages should not be served.
func NewServer(port int, scenesDir string, logger zerolog.Logger, console *Console) *Server {
	return &Server{
		port:      port,
		scenesDir: scenesDir,
		logger:    logger,
		console:   console,
	}
}

// Handler returns the routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene", s.handleScene)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/console", s.handleConsole)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info().Str("addr", addr).Msg("Starting web server")
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in and YAML scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := scene.ListScenes(s.scenesDir)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, scenes)
}

// handleConsole returns the recent server log messages
func (s *Server) handleConsole(w http.ResponseWriter, r *http.Request) {
	messages := []ConsoleMessage{}
	if s.console != nil {
		messages = s.console.Messages()
	}
	writeJSON(w, http.StatusOK, messages)
}

// loadScene resolves a built-in name or a "yaml:<name>" ID from scene discovery
func (s *Server) loadScene(name string) (scene.Setup, error) {
	if !strings.HasPrefix(name, scene.TypeYAML+":") {
		return scene.Builtin(name)
	}

	scenes, err := scene.ListScenes(s.scenesDir)
	if err != nil {
		return scene.Setup{}, err
	}
	for _, info := range scenes {
		if info.ID == name {
			return loaders.LoadScene(info.FilePath)
		}
	}
	return scene.Setup{}, fmt.Errorf("%w %q", scene.ErrUnknownScene, name)
}

// applyQuery overrides render settings from URL query parameters, keeping the
// scene's values for parameters that are absent, and checks the result against
// the server's limits
func applyQuery(config renderer.Config, values url.Values) (renderer.Config, error) {
	var err error
	if config.ResX, err = parseIntParam(values, "res_x", config.ResX, 1, maxResolution); err != nil {
		return config, err
	}
	if config.ResY, err = parseIntParam(values, "res_y", config.ResY, 1, maxResolution); err != nil {
		return config, err
	}
	if config.SamplesPerPixel, err = parseIntParam(values, "spp", config.SamplesPerPixel, 1, maxSamples); err != nil {
		return config, err
	}
	if config.PathLength, err = parseIntParam(values, "path_length", config.PathLength, 1, maxPathLength); err != nil {
		return config, err
	}
	if value := values.Get("seed"); value != "" {
		seed, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return config, fmt.Errorf("invalid seed: %s", value)
		}
		config.Seed = seed
	}
	return config, checkLimits(config)
}

// checkLimits bounds the merged render settings, whether they came from the query,
// a YAML body or a scene file. Unbounded path lengths would exhaust the stack.
func checkLimits(config renderer.Config) error {
	limits := []struct {
		name  string
		value int
		max   int
	}{
		{"res_x", config.ResX, maxResolution},
		{"res_y", config.ResY, maxResolution},
		{"samples_per_pixel", config.SamplesPerPixel, maxSamples},
		{"path_length", config.PathLength, maxPathLength},
		{"workers", config.NumWorkers, maxWorkers},
	}
	for _, l := range limits {
		if l.value > l.max {
			return fmt.Errorf("%s must be at most %d, got: %d", l.name, l.max, l.value)
		}
	}
	return nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error().Err(err).Msg("Request failed")
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// sceneStatus maps scene loading errors to HTTP status codes
func sceneStatus(err error) int {
	if errors.Is(err, scene.ErrUnknownScene) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}
