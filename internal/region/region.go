// Package region describes selections of block positions that edit operations
// run over. A region exposes its cuboid envelope plus a position walk; cuboid
// regions let callers take a straight nested-loop path instead.
package region

import (
	"voxedit.ai/internal/mathx"
	"voxedit.ai/internal/voxel"
)

type Region interface {
	Min() voxel.Vec3i
	Max() voxel.Vec3i
	Width() int  // X extent
	Height() int // Y extent
	Length() int // Z extent
	// Cuboid reports whether the region is exactly its axis-aligned envelope.
	Cuboid() bool
	// ForEach visits every contained position. The walk is lazy and may be
	// restarted; fn returning an error stops the walk and returns that error.
	ForEach(fn func(p voxel.Vec3i) error) error
}

// Cuboid is the axis-aligned box between two corners (inclusive).
type Cuboid struct {
	MinP voxel.Vec3i
	MaxP voxel.Vec3i
}

// NewCuboid builds a cuboid from any two opposing corners.
func NewCuboid(a, b voxel.Vec3i) Cuboid {
	return Cuboid{
		MinP: voxel.Vec3i{X: mathx.MinInt(a.X, b.X), Y: mathx.MinInt(a.Y, b.Y), Z: mathx.MinInt(a.Z, b.Z)},
		MaxP: voxel.Vec3i{X: mathx.MaxInt(a.X, b.X), Y: mathx.MaxInt(a.Y, b.Y), Z: mathx.MaxInt(a.Z, b.Z)},
	}
}

func (c Cuboid) Min() voxel.Vec3i { return c.MinP }
func (c Cuboid) Max() voxel.Vec3i { return c.MaxP }
func (c Cuboid) Width() int       { return c.MaxP.X - c.MinP.X + 1 }
func (c Cuboid) Height() int      { return c.MaxP.Y - c.MinP.Y + 1 }
func (c Cuboid) Length() int      { return c.MaxP.Z - c.MinP.Z + 1 }
func (c Cuboid) Cuboid() bool     { return true }

func (c Cuboid) ForEach(fn func(p voxel.Vec3i) error) error {
	for x := c.MinP.X; x <= c.MaxP.X; x++ {
		for y := c.MinP.Y; y <= c.MaxP.Y; y++ {
			for z := c.MinP.Z; z <= c.MaxP.Z; z++ {
				if err := fn(voxel.Vec3i{X: x, Y: y, Z: z}); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Sphere is the set of positions within Radius of Center (Euclidean,
// inclusive). It is the non-cuboid shape exercising the generic walk path.
type Sphere struct {
	Center voxel.Vec3i
	Radius int
}

func (s Sphere) Min() voxel.Vec3i {
	return voxel.Vec3i{X: s.Center.X - s.Radius, Y: s.Center.Y - s.Radius, Z: s.Center.Z - s.Radius}
}

func (s Sphere) Max() voxel.Vec3i {
	return voxel.Vec3i{X: s.Center.X + s.Radius, Y: s.Center.Y + s.Radius, Z: s.Center.Z + s.Radius}
}

func (s Sphere) Width() int   { return 2*s.Radius + 1 }
func (s Sphere) Height() int  { return 2*s.Radius + 1 }
func (s Sphere) Length() int  { return 2*s.Radius + 1 }
func (s Sphere) Cuboid() bool { return false }

func (s Sphere) contains(p voxel.Vec3i) bool {
	dx := p.X - s.Center.X
	dy := p.Y - s.Center.Y
	dz := p.Z - s.Center.Z
	return dx*dx+dy*dy+dz*dz <= s.Radius*s.Radius
}

func (s Sphere) ForEach(fn func(p voxel.Vec3i) error) error {
	min := s.Min()
	max := s.Max()
	for x := min.X; x <= max.X; x++ {
		for y := min.Y; y <= max.Y; y++ {
			for z := min.Z; z <= max.Z; z++ {
				p := voxel.Vec3i{X: x, Y: y, Z: z}
				if !s.contains(p) {
					continue
				}
				if err := fn(p); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
