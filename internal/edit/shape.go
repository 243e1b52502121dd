package edit

import (
	"voxedit.ai/internal/mathx"
	"voxedit.ai/internal/region"
	"voxedit.ai/internal/voxel"
)

// SetBlocks sets every block inside r to block. Cuboid regions take a
// straight nested-loop path; any other shape goes through the region's own
// walk. Both cover the same positions and leave the store in the same state.
func (s *Session) SetBlocks(r region.Region, block voxel.BlockID) (int, error) {
	affected := 0

	if r.Cuboid() {
		min := r.Min()
		max := r.Max()

		for x := min.X; x <= max.X; x++ {
			for y := min.Y; y <= max.Y; y++ {
				for z := min.Z; z <= max.Z; z++ {
					changed, err := s.SetBlock(voxel.Vec3i{X: x, Y: y, Z: z}, block)
					if changed {
						affected++
					}
					if err != nil {
						return affected, err
					}
				}
			}
		}
		return affected, nil
	}

	err := r.ForEach(func(p voxel.Vec3i) error {
		changed, err := s.SetBlock(p, block)
		if changed {
			affected++
		}
		return err
	})
	return affected, err
}

// ReplaceBlocks is SetBlocks restricted to blocks matching from;
// voxel.MatchNonAir matches any non-air block.
func (s *Session) ReplaceBlocks(r region.Region, from, to voxel.BlockID) (int, error) {
	affected := 0

	match := func(b voxel.BlockID) bool {
		if from == voxel.MatchNonAir {
			return b != voxel.Air
		}
		return b == from
	}

	if r.Cuboid() {
		min := r.Min()
		max := r.Max()

		for x := min.X; x <= max.X; x++ {
			for y := min.Y; y <= max.Y; y++ {
				for z := min.Z; z <= max.Z; z++ {
					p := voxel.Vec3i{X: x, Y: y, Z: z}
					if !match(s.GetBlock(p)) {
						continue
					}
					changed, err := s.SetBlock(p, to)
					if changed {
						affected++
					}
					if err != nil {
						return affected, err
					}
				}
			}
		}
		return affected, nil
	}

	err := r.ForEach(func(p voxel.Vec3i) error {
		if !match(s.GetBlock(p)) {
			return nil
		}
		changed, err := s.SetBlock(p, to)
		if changed {
			affected++
		}
		return err
	})
	return affected, err
}

// MakeCuboidFaces sets the six faces of r's cuboid envelope to block.
func (s *Session) MakeCuboidFaces(r region.Region, block voxel.BlockID) (int, error) {
	affected := 0

	min := r.Min()
	max := r.Max()

	set := func(x, y, z int) error {
		changed, err := s.SetBlock(voxel.Vec3i{X: x, Y: y, Z: z}, block)
		if changed {
			affected++
		}
		return err
	}

	for x := min.X; x <= max.X; x++ {
		for y := min.Y; y <= max.Y; y++ {
			if err := set(x, y, min.Z); err != nil {
				return affected, err
			}
			if err := set(x, y, max.Z); err != nil {
				return affected, err
			}
		}
	}

	for y := min.Y; y <= max.Y; y++ {
		for z := min.Z; z <= max.Z; z++ {
			if err := set(min.X, y, z); err != nil {
				return affected, err
			}
			if err := set(max.X, y, z); err != nil {
				return affected, err
			}
		}
	}

	for z := min.Z; z <= max.Z; z++ {
		for x := min.X; x <= max.X; x++ {
			if err := set(x, min.Y, z); err != nil {
				return affected, err
			}
			if err := set(x, max.Y, z); err != nil {
				return affected, err
			}
		}
	}

	return affected, nil
}

// OverlayCuboidBlocks overlays a layer of block over the area of r: for each
// (x, z) column, the topmost non-empty block between one above and one below
// the region's vertical bounds (clamped to the world) gets block placed
// directly above it.
func (s *Session) OverlayCuboidBlocks(r region.Region, block voxel.BlockID) (int, error) {
	min := r.Min()
	max := r.Max()

	upperY := mathx.MinInt(s.ceilY, max.Y+1)
	lowerY := mathx.MaxInt(s.floorY, min.Y-1)

	affected := 0

	for x := min.X; x <= max.X; x++ {
		for z := min.Z; z <= max.Z; z++ {
			for y := upperY; y >= lowerY; y-- {
				if y+1 <= s.ceilY &&
					s.GetBlock(voxel.Vec3i{X: x, Y: y, Z: z}) != voxel.Air &&
					s.GetBlock(voxel.Vec3i{X: x, Y: y + 1, Z: z}) == voxel.Air {
					changed, err := s.SetBlock(voxel.Vec3i{X: x, Y: y + 1, Z: z}, block)
					if changed {
						affected++
					}
					if err != nil {
						return affected, err
					}
					break
				}
			}
		}
	}

	return affected, nil
}

// StackCuboidRegion copies r count times along the direction (xm, ym, zm),
// each step offset by the region's own dimensions, producing tiled repeats
// adjacent to the original. With copyAir false, empty source blocks are
// skipped and the destination is left untouched.
func (s *Session) StackCuboidRegion(r region.Region, xm, ym, zm, count int, copyAir bool) (int, error) {
	affected := 0

	min := r.Min()
	max := r.Max()
	xs := r.Width()
	ys := r.Height()
	zs := r.Length()

	for x := min.X; x <= max.X; x++ {
		for z := min.Z; z <= max.Z; z++ {
			for y := min.Y; y <= max.Y; y++ {
				block := s.GetBlock(voxel.Vec3i{X: x, Y: y, Z: z})

				if block == voxel.Air && !copyAir {
					continue
				}
				for i := 1; i <= count; i++ {
					p := voxel.Vec3i{X: x + xs*xm*i, Y: y + ys*ym*i, Z: z + zs*zm*i}
					changed, err := s.SetBlock(p, block)
					if changed {
						affected++
					}
					if err != nil {
						return affected, err
					}
				}
			}
		}
	}

	return affected, nil
}
