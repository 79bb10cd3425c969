package core

// AABB is an axis-aligned box given by its two extreme corners
type AABB struct {
	Min Vec3
	Max Vec3
}

// NewAABBFromPoints scans the points once for their componentwise extrema.
// No points gives the zero box.
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	box := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box = box.Extend(p)
	}
	return box
}

// Extend returns the smallest box containing both the box and p
func (b AABB) Extend(p Vec3) AABB {
	return AABB{
		Min: Vec3{min(b.Min.X, p.X), min(b.Min.Y, p.Y), min(b.Min.Z, p.Z)},
		Max: Vec3{max(b.Max.X, p.X), max(b.Max.Y, p.Y), max(b.Max.Z, p.Z)},
	}
}

// Size returns the extent along each axis
func (b AABB) Size() Vec3 {
	return b.Max.Subtract(b.Min)
}

// Volume returns the enclosed volume
func (b AABB) Volume() float64 {
	size := b.Size()
	return size.X * size.Y * size.Z
}

// Contains reports whether p lies inside or on the box
func (b AABB) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}
