package bounds

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// OOBBConfig controls the discrete orientation search about the Y axis
type OOBBConfig struct {
	AngleStep float64 // Degrees between evaluated orientations
	MaxAngle  float64 // Last evaluated orientation in degrees
}

// DefaultOOBBConfig returns the orientation search used by the box scene
func DefaultOOBBConfig() OOBBConfig {
	return OOBBConfig{
		AngleStep: 5,
		MaxAngle:  175,
	}
}

// Candidate is one evaluated orientation with the x/z extents of the
// centered vertices projected onto the rotated axes
type Candidate struct {
	AngleDeg   float64
	MinX, MaxX float64
	MinZ, MaxZ float64
	Area       float64
}

// SearchOrientation evaluates every orientation 0, step, ..., max about Y and
// returns the one with the smallest x/z rectangle together with all candidates.
// Ties keep the earliest angle.
func SearchOrientation(vertices []core.Vec3, cfg OOBBConfig) (Candidate, []Candidate, error) {
	if len(vertices) == 0 {
		return Candidate{}, nil, ErrNoVertices
	}
	if cfg.AngleStep <= 0 || cfg.AngleStep > 360 || cfg.MaxAngle < 0 {
		return Candidate{}, nil, fmt.Errorf("step %g, max %g: %w", cfg.AngleStep, cfg.MaxAngle, ErrInvalidAngle)
	}

	centroid := Centroid(vertices)
	steps := int(math.Floor(cfg.MaxAngle/cfg.AngleStep+1e-9)) + 1
	candidates := make([]Candidate, 0, steps)

	best := -1
	for i := 0; i < steps; i++ {
		candidate := project(vertices, centroid, float64(i)*cfg.AngleStep)
		candidates = append(candidates, candidate)
		if best < 0 || candidate.Area < candidates[best].Area {
			best = i
		}
	}

	return candidates[best], candidates, nil
}

// project measures the centered vertices in a frame rotated by angle about Y
func project(vertices []core.Vec3, centroid core.Vec3, angleDeg float64) Candidate {
	// Rotating points by -angle expresses them in the frame rotated by +angle
	toLocal := mgl64.Rotate3DY(mgl64.DegToRad(-angleDeg))

	c := Candidate{
		AngleDeg: angleDeg,
		MinX:     math.Inf(1),
		MaxX:     math.Inf(-1),
		MinZ:     math.Inf(1),
		MaxZ:     math.Inf(-1),
	}

	for _, v := range vertices {
		p := v.Subtract(centroid)
		local := toLocal.Mul3x1(mgl64.Vec3{p.X, 0, p.Z})
		c.MinX = math.Min(c.MinX, local[0])
		c.MaxX = math.Max(c.MaxX, local[0])
		c.MinZ = math.Min(c.MinZ, local[2])
		c.MaxZ = math.Max(c.MaxZ, local[2])
	}

	c.Area = (c.MaxX - c.MinX) * (c.MaxZ - c.MinZ)
	return c
}

// ComputeOOBB computes a box oriented about the Y axis that minimises the
// horizontal footprint. The vertical extent is the same as the AABB's.
func ComputeOOBB(vertices []core.Vec3, cfg OOBBConfig) (Volume, error) {
	best, _, err := SearchOrientation(vertices, cfg)
	if err != nil {
		return Volume{}, err
	}

	aabb, err := ComputeAABB(vertices)
	if err != nil {
		return Volume{}, err
	}

	centroid := Centroid(vertices)
	localMin := core.NewVec3(best.MinX, aabb.Min.Y, best.MinZ)
	localMax := core.NewVec3(best.MaxX, aabb.Max.Y, best.MaxZ)

	toWorld := mgl64.Rotate3DY(mgl64.DegToRad(best.AngleDeg))
	local := geometry.BoxCorners(localMin, localMax)

	var corners [8]core.Vec3
	for i, p := range local {
		r := toWorld.Mul3x1(mgl64.Vec3{p.X, 0, p.Z})
		corners[i] = core.NewVec3(centroid.X+r[0], p.Y, centroid.Z+r[2])
	}

	return Volume{
		Kind:     OOBB,
		Corners:  corners,
		Min:      localMin,
		Max:      localMax,
		AngleDeg: best.AngleDeg,
	}, nil
}

// Centroid returns the mean of the vertices
func Centroid(vertices []core.Vec3) core.Vec3 {
	if len(vertices) == 0 {
		return core.Vec3{}
	}

	var sum core.Vec3
	for _, v := range vertices {
		sum = sum.Add(v)
	}
	return sum.Multiply(1.0 / float64(len(vertices)))
}
