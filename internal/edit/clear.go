package edit

import (
	"voxedit.ai/internal/mathx"
	"voxedit.ai/internal/voxel"
)

// RemoveAbove clears all non-empty blocks in a square column footprint from
// pos.Y upward, capped at the world ceiling. size is the half-width of the
// square (a size of 1 is the single column at pos).
func (s *Session) RemoveAbove(pos voxel.Vec3i, size, height int) (int, error) {
	maxY := mathx.MinInt(s.ceilY, pos.Y+height-1)
	size--
	affected := 0

	for x := pos.X - size; x <= pos.X+size; x++ {
		for z := pos.Z - size; z <= pos.Z+size; z++ {
			for y := pos.Y; y <= maxY; y++ {
				p := voxel.Vec3i{X: x, Y: y, Z: z}

				if s.GetBlock(p) != voxel.Air {
					if _, err := s.SetBlock(p, voxel.Air); err != nil {
						return affected, err
					}
					affected++
				}
			}
		}
	}

	return affected, nil
}

// RemoveBelow is RemoveAbove mirrored downward, floored at the world floor.
func (s *Session) RemoveBelow(pos voxel.Vec3i, size, height int) (int, error) {
	minY := mathx.MaxInt(s.floorY, pos.Y-height)
	size--
	affected := 0

	for x := pos.X - size; x <= pos.X+size; x++ {
		for z := pos.Z - size; z <= pos.Z+size; z++ {
			for y := pos.Y; y >= minY; y-- {
				p := voxel.Vec3i{X: x, Y: y, Z: z}

				if s.GetBlock(p) != voxel.Air {
					if _, err := s.SetBlock(p, voxel.Air); err != nil {
						return affected, err
					}
					affected++
				}
			}
		}
	}

	return affected, nil
}
