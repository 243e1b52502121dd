package edit

import (
	"math"

	"voxedit.ai/internal/voxel"
)

// FillXZ fills empty columns outward from the (x, z) column in the four
// horizontal directions, bounded by the Euclidean distance from origin's
// column. Each accepted column is filled downward from origin.Y until the
// first non-empty block, descending no further than origin.Y - depth + 1.
//
// The walk keeps an explicit stack rather than recursing, so a large radius
// costs memory, not stack depth. There is no visited set: a filled column
// reads non-empty and exits any later visit.
func (s *Session) FillXZ(x, z int, origin voxel.Vec3i, block voxel.BlockID, radius, depth int) (int, error) {
	minY := origin.Y - depth + 1
	affected := 0

	type column struct{ x, z int }
	stack := []column{{x, z}}

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		dx := float64(origin.X - c.x)
		dz := float64(origin.Z - c.z)
		if math.Sqrt(dx*dx+dz*dz) > float64(radius) {
			continue
		}

		if s.GetBlock(voxel.Vec3i{X: c.x, Y: origin.Y, Z: c.z}) != voxel.Air {
			continue
		}

		n, err := s.fillY(c.x, origin.Y, c.z, block, minY)
		affected += n
		if err != nil {
			return affected, err
		}

		stack = append(stack,
			column{c.x + 1, c.z},
			column{c.x - 1, c.z},
			column{c.x, c.z + 1},
			column{c.x, c.z - 1},
		)
	}

	return affected, nil
}

// fillY fills a block and below until it hits another block or minY.
func (s *Session) fillY(x, cy, z int, block voxel.BlockID, minY int) (int, error) {
	affected := 0

	for y := cy; y >= minY; y-- {
		p := voxel.Vec3i{X: x, Y: y, Z: z}

		if s.GetBlock(p) != voxel.Air {
			break
		}
		if _, err := s.SetBlock(p, block); err != nil {
			return affected, err
		}
		affected++
	}

	return affected, nil
}
