// Package server exposes progressive rendering over HTTP. Render
// requests stream their passes to the client as server-sent events so
// the preview sharpens while the frame converges.
package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/JulianGoede/rtracer/pkg/log"
	"github.com/JulianGoede/rtracer/pkg/renderer"
	"github.com/JulianGoede/rtracer/pkg/scene"
)

// Server handles web requests for progressive rendering
type Server struct {
	mux    *http.ServeMux
	logger log.Logger
}

// New creates a server with all routes registered
func New() *Server {
	s := &Server{
		mux:    http.NewServeMux(),
		logger: log.New("web"),
	}
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/api/render", s.handleRender)
	s.mux.HandleFunc("/api/scenes", s.handleScenes)
	s.mux.HandleFunc("/api/health", s.handleHealth)
	return s
}

// Handler returns the route table, mainly for tests
func (s *Server) Handler() http.Handler { return s.mux }

// ListenAndServe blocks serving requests on addr
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene      string `json:"scene"`      // Scene name (e.g. "random-spheres")
	Width      int    `json:"width"`      // Image width
	Height     int    `json:"height"`     // Image height, 0 derives it from the scene aspect
	MaxSamples int    `json:"maxSamples"` // Sample budget per pixel, 0 uses the scene default
	MaxPasses  int    `json:"maxPasses"`  // Number of progressive passes
	Seed       int64  `json:"seed"`       // Seed for scene generation and sampling
}

// ProgressUpdate represents a single progressive update sent via SSE
type ProgressUpdate struct {
	PassNumber  int    `json:"passNumber"`
	TotalPasses int    `json:"totalPasses"`
	ImageData   string `json:"imageData"` // Base64 encoded PNG
	Stats       Stats  `json:"stats"`
	IsComplete  bool   `json:"isComplete"`
	ElapsedMs   int64  `json:"elapsedMs"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels      int     `json:"totalPixels"`
	TotalSamples     int     `json:"totalSamples"`
	AverageSamples   float64 `json:"averageSamples"`
	MaxSamples       int     `json:"maxSamples"`
	MinSamples       int     `json:"minSamples"`
	MaxSamplesUsed   int     `json:"maxSamplesUsed"`
	AverageLuminance float64 `json:"averageLuminance"`
}

// SceneInfo describes one built-in scene in the /api/scenes response
type SceneInfo struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	AspectRatio     float64 `json:"aspectRatio"`
	Width           int     `json:"width"`
	SamplesPerPixel int     `json:"samplesPerPixel"`
	MaxDepth        int     `json:"maxDepth"`
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes with their suggested settings
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	infos := scene.List()
	scenes := make([]SceneInfo, 0, len(infos))
	for _, info := range infos {
		scenes = append(scenes, SceneInfo{
			Name:            info.Name,
			Description:     info.Description,
			AspectRatio:     info.NativeAspect,
			Width:           info.Width,
			SamplesPerPixel: info.SamplesPerPixel,
			MaxDepth:        info.MaxDepth,
		})
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(scenes)
}

// handleRender handles progressive rendering requests with SSE
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req, err := parseRenderRequest(r)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("invalid request: %v", err))
		return
	}

	info, err := scene.Lookup(req.Scene)
	if err != nil {
		s.sendSSEError(w, err.Error())
		return
	}
	width, height, aspect := info.FrameSize(req.Width, req.Height)

	samples := req.MaxSamples
	if samples <= 0 {
		samples = info.SamplesPerPixel
	}
	if width*height > 800*600 && samples > 100 {
		s.logger.Warning("large frame with a high sample budget may render slowly")
	}

	sceneObj, err := scene.Create(req.Scene, aspect, rand.New(rand.NewSource(req.Seed)))
	if err != nil {
		s.sendSSEError(w, err.Error())
		return
	}

	options := renderer.Options{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samples,
		MaxDepth:        info.MaxDepth,
		Seed:            req.Seed,
	}
	frameRenderer, err := renderer.NewRenderer(sceneObj, options)
	if err != nil {
		s.sendSSEError(w, err.Error())
		return
	}

	progressiveConfig := renderer.DefaultProgressiveConfig()
	progressiveConfig.MaxPasses = req.MaxPasses
	progressive, err := renderer.NewProgressive(frameRenderer, progressiveConfig)
	if err != nil {
		s.sendSSEError(w, err.Error())
		return
	}

	s.logger.Noticef("rendering %s at %dx%d, %d samples over %d passes",
		req.Scene, width, height, samples, req.MaxPasses)

	// The request context cancels the render when the client disconnects
	startTime := time.Now()
	err = progressive.RenderProgressive(r.Context(), func(result renderer.PassResult) error {
		imageData, err := imageToBase64PNG(result.Image)
		if err != nil {
			return fmt.Errorf("failed to encode image: %w", err)
		}

		update := ProgressUpdate{
			PassNumber:  result.PassNumber,
			TotalPasses: req.MaxPasses,
			ImageData:   imageData,
			Stats: Stats{
				TotalPixels:      result.Stats.TotalPixels,
				TotalSamples:     result.Stats.TotalSamples,
				AverageSamples:   result.Stats.AverageSamples,
				MaxSamples:       result.Stats.MaxSamples,
				MinSamples:       result.Stats.MinSamples,
				MaxSamplesUsed:   result.Stats.MaxSamplesUsed,
				AverageLuminance: result.Stats.AverageLuminance,
			},
			IsComplete: result.IsLast,
			ElapsedMs:  time.Since(startTime).Milliseconds(),
		}
		return s.sendSSEUpdate(w, update)
	})
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("render error: %v", err))
		return
	}

	s.sendSSEEvent(w, "complete", "rendering completed")
}

// parseRenderRequest parses and validates the render query parameters
func parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}

	if name := r.URL.Query().Get("scene"); name != "" {
		req.Scene = name
	} else {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(r.URL.Query(), "width", 400, 16, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(r.URL.Query(), "height", 0, 0, 2000); err != nil {
		return nil, err
	}
	if req.MaxSamples, err = parseIntParam(r.URL.Query(), "maxSamples", 0, 0, 10000); err != nil {
		return nil, err
	}
	if req.MaxPasses, err = parseIntParam(r.URL.Query(), "maxPasses", renderer.DefaultProgressiveConfig().MaxPasses, 1, 100); err != nil {
		return nil, err
	}
	seed, err := parseIntParam(r.URL.Query(), "seed", 1, 0, 1<<31-1)
	if err != nil {
		return nil, err
	}
	req.Seed = int64(seed)

	return req, nil
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

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// sendSSEUpdate sends a progress update via SSE
func (s *Server) sendSSEUpdate(w http.ResponseWriter, update ProgressUpdate) error {
	data, err := json.Marshal(update)
	if err != nil {
		return err
	}
	return s.sendSSEEvent(w, "progress", string(data))
}

// sendSSEError sends an error via SSE
func (s *Server) sendSSEError(w http.ResponseWriter, message string) error {
	s.logger.Errorf("%s", message)
	return s.sendSSEEvent(w, "error", message)
}

// sendSSEEvent sends a generic SSE event
func (s *Server) sendSSEEvent(w http.ResponseWriter, event, data string) error {
	if flusher, ok := w.(http.Flusher); ok {
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
		flusher.Flush()
		return nil
	}
	return fmt.Errorf("streaming not supported")
}

// handleIndex serves the inline viewer page
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexHTML)
}
