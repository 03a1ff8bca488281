package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-padvinder/pkg/export"
	"github.com/df07/go-padvinder/pkg/loaders"
	"github.com/df07/go-padvinder/pkg/renderer"
	"github.com/df07/go-padvinder/pkg/scene"
)

// handleRender renders the YAML scene in the request body and responds with a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		s.writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
		return
	}

	setup, err := loaders.ParseScene(http.MaxBytesReader(w, r.Body, maxSceneBytes))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.renderPNG(w, r, setup)
}

// handleScene renders a scene by name: a built-in or a discovered YAML scene
func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		name = "default"
	}

	setup, err := s.loadScene(name)
	if err != nil {
		s.writeError(w, sceneStatus(err), err)
		return
	}
	s.renderPNG(w, r, setup)
}

// renderPNG renders the setup with the query overrides applied. The request
// context cancels the render when the client goes away.
func (s *Server) renderPNG(w http.ResponseWriter, r *http.Request, setup scene.Setup) {
	query := r.URL.Query()
	config, err := applyQuery(setup.Config, query)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	gamma, err := parseFloatParam(query, "gamma", renderer.DefaultGamma, 0.1, 10)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	renderID := fmt.Sprintf("render-%d", s.renders.Add(1))
	logger := s.logger.With().Str("render_id", renderID).Logger()

	rt, err := renderer.New(config, logger)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	img, stats, err := rt.RenderContext(r.Context(), setup.Scene, setup.Camera)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		logger.Info().Msg("Client went away, render cancelled")
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	data, err := export.EncodePNG(img, gamma)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Id", renderID)
	w.Header().Set("X-Render-Duration-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.Header().Set("X-Render-Samples", strconv.Itoa(stats.TotalSamples))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
