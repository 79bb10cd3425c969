package scene

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/bounds"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/log"
)

// BoxSceneConfig contains the adjustable settings of the box scene
type BoxSceneConfig struct {
	Width              int
	Height             int
	View               ViewDirection
	BoundingVolume     bounds.Kind
	ShowBoundingVolume bool
	Threading          int
	DetailedModel      *Model // nil uses the built-in ellipsoid
	OOBB               bounds.OOBBConfig
}

// DefaultBoxSceneConfig returns the settings the box scene starts with
func DefaultBoxSceneConfig() BoxSceneConfig {
	return BoxSceneConfig{
		Width:              640,
		Height:             640,
		View:               ViewFront,
		BoundingVolume:     bounds.AABB,
		ShowBoundingVolume: true,
		Threading:          4,
		OOBB:               bounds.DefaultOOBBConfig(),
	}
}

const (
	wallScale    = 2.0
	wallOffset   = wallScale / 1.99999
	cubeScale    = 0.4
	sphereRadius = 0.25
	detailScale  = 0.3
)

// wallPlacements rotates the +Y facing unit plane so every wall faces inward
var wallPlacements = []struct {
	slot        Category
	translation core.Vec3
	rotation    core.Vec3
}{
	{UpperWall, core.NewVec3(0, wallOffset, 0), core.NewVec3(180, 0, 0)},
	{LowerWall, core.NewVec3(0, -wallOffset, 0), core.NewVec3(0, 0, 0)},
	{RightWall, core.NewVec3(wallOffset, 0, 0), core.NewVec3(0, 0, 90)},
	{LeftWall, core.NewVec3(-wallOffset, 0, 0), core.NewVec3(0, 0, -90)},
	{FrontWall, core.NewVec3(0, 0, wallOffset), core.NewVec3(-90, 0, 0)},
	{RearWall, core.NewVec3(0, 0, -wallOffset), core.NewVec3(90, 0, 0)},
}

// NewBoxScene creates the closed box with a semi-transparent cube, a mirror,
// a sphere and a detailed mesh behind a bounding volume, lit by two point lights
func NewBoxScene(cfg BoxSceneConfig) (*Scene, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", cfg.Width, cfg.Height, ErrInvalidSize)
	}

	s := &Scene{
		BoundingVolume:     cfg.BoundingVolume,
		ShowBoundingVolume: cfg.ShowBoundingVolume,
		Threading:          cfg.Threading,
		Width:              cfg.Width,
		Height:             cfg.Height,
		logger:             log.New("scene"),
	}

	plane := PlaneModel()
	for _, wall := range wallPlacements {
		mesh, err := plane.Place(geometry.NewUniformTransform(wall.translation, wall.rotation, wallScale))
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", wall.slot, err)
		}
		s.Objects[wall.slot] = &MeshObject{Slot: wall.slot, Mesh: mesh, Material: WallMaterial()}
	}

	cube, err := CubeModel().Place(geometry.NewUniformTransform(
		core.NewVec3(-1.2*cubeScale, -0.79999, 1.2*cubeScale),
		core.NewVec3(0, -33, 0),
		cubeScale,
	))
	if err != nil {
		return nil, fmt.Errorf("loading cube: %w", err)
	}
	s.Objects[Cube] = &MeshObject{Slot: Cube, Mesh: cube, Material: CubeMaterial()}

	s.mirror, err = MirrorModel().Place(geometry.NewUniformTransform(core.Vec3{}, core.Vec3{}, 1))
	if err != nil {
		return nil, fmt.Errorf("loading mirror: %w", err)
	}

	s.Objects[SphereSlot] = &SphereObject{
		Sphere:   geometry.NewSphere(core.NewVec3(0, -0.799, -0.65), sphereRadius),
		Material: SphereMaterial(),
	}

	model := DetailedModel()
	if cfg.DetailedModel != nil {
		model = *cfg.DetailedModel
	}
	detailed, err := model.Place(geometry.NewUniformTransform(
		core.NewVec3(0.55, -0.999, -0.075),
		core.NewVec3(0, 45, 0),
		detailScale,
	))
	if err != nil {
		return nil, fmt.Errorf("loading detailed mesh: %w", err)
	}
	s.Objects[DetailedMesh] = &MeshObject{Slot: DetailedMesh, Mesh: detailed, Material: DetailedMeshMaterial()}

	// An empty model contributes no intersections and gets no bounding volume
	var volume *BoundingVolumeObject
	if detailed.Empty() {
		s.logger.Warningf("Detailed mesh has no triangles, bounding volume disabled")
	} else {
		volume, err = NewBoundingVolumeObject(DetailedMesh, detailed, cfg.OOBB)
		if err != nil {
			return nil, fmt.Errorf("bounding detailed mesh: %w", err)
		}
		s.Objects[BoundingVolume] = volume
	}

	s.Lights = []PointLight{
		NewPointLight(core.NewVec3(-0.25, 0.2, -0.5), core.NewVec3(0.9, 0.9, 0.9), 0.9),
		NewPointLight(core.NewVec3(0.2, 0.55, 0.75), core.NewVec3(1, 1, 0.9), 0.9),
	}

	if err := s.SetView(cfg.View); err != nil {
		return nil, err
	}

	s.logger.Infof("Loaded box scene: %d triangles, detailed mesh %d triangles", s.TriangleCount(), detailed.TriangleCount())
	if volume != nil {
		s.logger.Infof("Detailed mesh bounds: AABB volume %.4f, OOBB volume %.4f at %.0f deg",
			volume.AABB.Volume(), volume.OOBB.Volume(), volume.OOBB.AngleDeg)
	}

	return s, nil
}
