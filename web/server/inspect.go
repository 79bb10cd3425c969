package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse is the JSON response for object inspection
type InspectResponse struct {
	Hit      bool           `json:"hit"`
	Object   string         `json:"object,omitempty"`
	Point    [3]float64     `json:"point"`
	Normal   [3]float64     `json:"normal"`
	Distance float64        `json:"distance"`
	Material *MaterialState `json:"material,omitempty"`
}

// MaterialState describes the material of an inspected surface
type MaterialState struct {
	Color        string     `json:"color"`
	Diffuse      [3]float64 `json:"diffuse"`
	Specular     [3]float64 `json:"specular"`
	Shininess    float64    `json:"shininess"`
	Reflectivity float64    `json:"reflectivity"`
	Refractivity float64    `json:"refractivity"`
}

func materialState(m scene.Material) *MaterialState {
	return &MaterialState{
		Color: fmt.Sprintf("#%02x%02x%02x",
			int(m.Diffuse.X*255), int(m.Diffuse.Y*255), int(m.Diffuse.Z*255)),
		Diffuse:      toArray(m.Diffuse),
		Specular:     toArray(m.Specular),
		Shininess:    m.Shininess,
		Reflectivity: m.Reflectivity,
		Refractivity: m.Refractivity,
	}
}

func toArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// inspectPixel casts the primary ray through an image pixel and reports the
// first surface it hits. Image rows count from the top.
func inspectPixel(s *scene.Scene, config integrator.Config, x, y int) InspectResponse {
	camera := renderer.NewCamera(s.Plane)
	ray := camera.GetRay(x, s.Height-1-y)

	hit, ok := integrator.NewWhitted(s, config).ClosestHit(ray, true)
	if !ok {
		return InspectResponse{Hit: false}
	}

	return InspectResponse{
		Hit:      true,
		Object:   hit.Category.String(),
		Point:    toArray(hit.Point),
		Normal:   toArray(hit.Normal),
		Distance: hit.Distance,
		Material: materialState(hit.Material),
	}
}

func (s *Server) handleInspect(c echo.Context) error {
	x, errX := strconv.Atoi(c.QueryParam("x"))
	y, errY := strconv.Atoi(c.QueryParam("y"))
	if errX != nil || errY != nil {
		return fmt.Errorf("x=%q y=%q: %w", c.QueryParam("x"), c.QueryParam("y"), errBadParameter)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if x < 0 || y < 0 || x >= s.scene.Width || y >= s.scene.Height {
		return fmt.Errorf("pixel (%d, %d) outside %dx%d: %w", x, y, s.scene.Width, s.scene.Height, errBadParameter)
	}

	return c.JSON(http.StatusOK, inspectPixel(s.scene, s.config.Integrator, x, y))
}
