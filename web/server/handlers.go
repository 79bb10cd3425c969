package server

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

//go:embed static/index.html
var static embed.FS

var errBadParameter = errors.New("bad parameter")

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// LightState describes one point light. Indices are one-based.
type LightState struct {
	Index    int        `json:"index"`
	Active   bool       `json:"active"`
	Position [3]float64 `json:"position"`
	Color    [3]float64 `json:"color"`
}

// RenderState summarises the last render pass
type RenderState struct {
	Pixels          int     `json:"pixels"`
	Tiles           int     `json:"tiles"`
	ElapsedMs       int64   `json:"elapsedMs"`
	AverageDistance float64 `json:"averageDistance"`
}

// State is the presentation view of the scene and its last render
type State struct {
	Width              int          `json:"width"`
	Height             int          `json:"height"`
	View               string       `json:"view"`
	Threading          int          `json:"threading"`
	BoundingVolume     string       `json:"boundingVolume"`
	ShowBoundingVolume bool         `json:"showBoundingVolume"`
	Triangles          int          `json:"triangles"`
	Lights             []LightState `json:"lights"`
	Render             *RenderState `json:"render,omitempty"`
}

// state builds the response body. Callers hold s.mu.
func (s *Server) state() State {
	st := State{
		Width:              s.scene.Width,
		Height:             s.scene.Height,
		View:               s.scene.Plane.View.String(),
		Threading:          s.scene.Threading,
		BoundingVolume:     s.scene.BoundingVolume.String(),
		ShowBoundingVolume: s.scene.ShowBoundingVolume,
		Triangles:          s.scene.TriangleCount(),
		Lights:             make([]LightState, len(s.scene.Lights)),
	}

	for i, light := range s.scene.Lights {
		st.Lights[i] = LightState{
			Index:    i + 1,
			Active:   light.Active,
			Position: [3]float64{light.Position.X, light.Position.Y, light.Position.Z},
			Color:    [3]float64{light.Color.X, light.Color.Y, light.Color.Z},
		}
	}

	if s.renderer.Framebuffer() != nil {
		stats := s.renderer.Stats()
		st.Render = &RenderState{
			Pixels:          stats.TotalPixels(),
			Tiles:           len(stats.Tiles),
			ElapsedMs:       stats.Duration.Milliseconds(),
			AverageDistance: stats.AverageDistance(),
		}
	}

	return st
}

// mutate applies a scene change, re-renders and replies with the new state
func (s *Server) mutate(c echo.Context, apply func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := apply(); err != nil {
		return err
	}
	if _, err := s.render(); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s.state())
}

func (s *Server) handleIndex(c echo.Context) error {
	page, err := static.ReadFile("static/index.html")
	if err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, page)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleState(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, s.state())
}

func (s *Server) handleFrame(c echo.Context) error {
	s.mu.Lock()
	fb, err := s.frame()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	img := fb.Image()
	s.mu.Unlock()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encoding frame: %w", err)
	}

	c.Response().Header().Set("Cache-Control", "no-store")
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

func (s *Server) handleToggleLight(c echo.Context) error {
	index, err := intParam(c, "index")
	if err != nil {
		return err
	}
	return s.mutate(c, func() error {
		return s.scene.ToggleLight(index - 1)
	})
}

func (s *Server) handleCycleBoundingVolume(c echo.Context) error {
	return s.mutate(c, func() error {
		s.scene.CycleBoundingVolume()
		return nil
	})
}

func (s *Server) handleToggleBoundingVolumeVisibility(c echo.Context) error {
	return s.mutate(c, func() error {
		s.scene.ToggleBoundingVolumeVisibility()
		return nil
	})
}

func (s *Server) handleSetView(c echo.Context) error {
	view, err := scene.ParseView(c.Param("direction"))
	if err != nil {
		return err
	}
	return s.mutate(c, func() error {
		return s.scene.SetView(view)
	})
}

func (s *Server) handleSetThreading(c echo.Context) error {
	workers, err := intParam(c, "workers")
	if err != nil {
		return err
	}
	if _, err := renderer.ParseThreading(workers); err != nil {
		return err
	}
	return s.mutate(c, func() error {
		s.scene.SetThreading(workers)
		return nil
	})
}

func (s *Server) handleConsole(c echo.Context) error {
	return c.JSON(http.StatusOK, s.console.Messages())
}

func intParam(c echo.Context, name string) (int, error) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", name, c.Param(name), errBadParameter)
	}
	return value, nil
}
