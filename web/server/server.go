package server

import (
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Server presents the box scene over HTTP. Every mutator and every render
// runs under one mutex so the scene never changes during a pass.
type Server struct {
	port     int
	scene    *scene.Scene
	renderer *renderer.Renderer
	config   renderer.Config
	console  *Console
	echo     *echo.Echo
	logger   log.Logger

	mu sync.Mutex
}

// NewServer creates a web server for a scene. A nil console disables the
// /api/console endpoint's capture; it then always returns an empty list.
func NewServer(port int, s *scene.Scene, config renderer.Config, console *Console) *Server {
	if console == nil {
		console = NewConsole(0)
	}

	srv := &Server{
		port:     port,
		scene:    s,
		renderer: renderer.NewRenderer(s, config),
		config:   config,
		console:  console,
		logger:   log.New("server"),
	}
	srv.echo = srv.routes()
	return srv
}

func (s *Server) routes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.handleError

	e.GET("/", s.handleIndex)
	e.GET("/api/health", s.handleHealth)
	e.GET("/api/state", s.handleState)
	e.GET("/api/frame.png", s.handleFrame)
	e.GET("/api/inspect", s.handleInspect)
	e.GET("/api/console", s.handleConsole)

	e.POST("/api/lights/:index/toggle", s.handleToggleLight)
	e.POST("/api/bounding-volume/cycle", s.handleCycleBoundingVolume)
	e.POST("/api/bounding-volume/visibility", s.handleToggleBoundingVolumeVisibility)
	e.PUT("/api/view/:direction", s.handleSetView)
	e.PUT("/api/threading/:workers", s.handleSetThreading)

	return e
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start renders the first frame and serves until the listener fails
func (s *Server) Start() error {
	s.mu.Lock()
	_, err := s.render()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Noticef("Starting web server on http://localhost%s", addr)
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// render runs a full pass. Callers hold s.mu.
func (s *Server) render() (renderer.RenderStats, error) {
	stats, err := s.renderer.Render()
	if err != nil {
		s.logger.Errorf("Render failed: %v", err)
		return stats, err
	}
	return stats, nil
}

// frame returns the current framebuffer, rendering first if nothing has been
// rendered yet. Callers hold s.mu.
func (s *Server) frame() (*renderer.Framebuffer, error) {
	if fb := s.renderer.Framebuffer(); fb != nil {
		return fb, nil
	}
	if _, err := s.render(); err != nil {
		return nil, err
	}
	return s.renderer.Framebuffer(), nil
}

// handleError maps sentinel errors to status codes and replies with JSON
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := err.Error()

	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		code = he.Code
		message = fmt.Sprint(he.Message)
	case errors.Is(err, scene.ErrUnknownView),
		errors.Is(err, scene.ErrLightIndex),
		errors.Is(err, renderer.ErrUnsupportedThreading),
		errors.Is(err, errBadParameter):
		code = http.StatusBadRequest
	}

	if code >= http.StatusInternalServerError {
		s.logger.Errorf("%s %s: %v", c.Request().Method, c.Path(), err)
	}

	if err := c.JSON(code, ErrorResponse{Error: message}); err != nil {
		s.logger.Errorf("Writing error response: %v", err)
	}
}
