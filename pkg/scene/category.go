package scene

// Category identifies the fixed slot an object occupies in a scene
type Category int

const (
	FrontWall Category = iota
	RearWall
	UpperWall
	LowerWall
	LeftWall
	RightWall
	Cube
	Mirror
	SphereSlot
	BoundingVolume
	DetailedMesh
	NumCategories
)

var categoryNames = [NumCategories]string{
	FrontWall:      "front wall",
	RearWall:       "rear wall",
	UpperWall:      "upper wall",
	LowerWall:      "lower wall",
	LeftWall:       "left wall",
	RightWall:      "right wall",
	Cube:           "cube",
	Mirror:         "mirror",
	SphereSlot:     "sphere",
	BoundingVolume: "bounding volume",
	DetailedMesh:   "detailed mesh",
}

func (c Category) String() string {
	if c < 0 || c >= NumCategories {
		return "unknown"
	}
	return categoryNames[c]
}

// IsWall returns true for the six walls of the box
func (c Category) IsWall() bool {
	return c >= FrontWall && c <= RightWall
}
