package edit

import (
	"testing"

	"voxedit.ai/internal/voxel"
)

func TestFillXZ_FillsPoolToRadiusAndDepth(t *testing.T) {
	// A flat floor at y=9 with an open basin above it: filling from the
	// origin column floods outward, one block deep.
	store := voxel.NewChunkStore(voxel.FlatWorld(1, 1, 9))
	s, err := NewSession(Config{Store: store, MaxBlocks: UnlimitedChanges})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	origin := voxel.Vec3i{X: 0, Y: 10, Z: 0}
	radius, depth := 3, 1
	affected, err := s.FillXZ(origin.X, origin.Z, origin, 9, radius, depth)
	if err != nil {
		t.Fatalf("fill: %v", err)
	}

	// Every column within the radius is filled at origin height; none
	// beyond; never below origin.Y - depth + 1.
	want := 0
	for x := -radius - 2; x <= radius+2; x++ {
		for z := -radius - 2; z <= radius+2; z++ {
			p := voxel.Vec3i{X: x, Y: origin.Y, Z: z}
			inside := x*x+z*z <= radius*radius
			if inside {
				want++
			}
			got := store.GetBlock(p)
			if inside && got != 9 {
				t.Fatalf("column (%d,%d) inside radius: got %d want 9", x, z, got)
			}
			if !inside && got != voxel.Air {
				t.Fatalf("column (%d,%d) outside radius: got %d want air", x, z, got)
			}
			if below := store.GetBlock(p.Add(0, -depth, 0)); below != 1 {
				t.Fatalf("column (%d,%d) below depth floor: got %d want untouched floor", x, z, below)
			}
		}
	}
	if affected != want {
		t.Fatalf("affected: got %d want %d", affected, want)
	}
}

func TestFillXZ_StopsAtWalls(t *testing.T) {
	store := voxel.NewChunkStore(nil)
	s, err := NewSession(Config{Store: store, MaxBlocks: UnlimitedChanges})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	// Wall off x=2 at the origin height; nothing past it gets filled even
	// though it is within the radius.
	origin := voxel.Vec3i{X: 0, Y: 5, Z: 0}
	for z := -10; z <= 10; z++ {
		store.SetBlock(voxel.Vec3i{X: 2, Y: 5, Z: z}, 1)
	}
	// Floor so fillY stops after one block.
	for x := -10; x <= 10; x++ {
		for z := -10; z <= 10; z++ {
			store.SetBlock(voxel.Vec3i{X: x, Y: 4, Z: z}, 1)
		}
	}

	if _, err := s.FillXZ(origin.X, origin.Z, origin, 3, 5, 1); err != nil {
		t.Fatalf("fill: %v", err)
	}
	for z := -3; z <= 3; z++ {
		if got := store.GetBlock(voxel.Vec3i{X: 3, Y: 5, Z: z}); got != voxel.Air {
			t.Fatalf("column past wall at z=%d: got %d want air", z, got)
		}
	}
	if got := store.GetBlock(voxel.Vec3i{X: 1, Y: 5, Z: 0}); got != 3 {
		t.Fatalf("column before wall: got %d want 3", got)
	}
}

func TestFillXZ_DeepColumnStopsAtFirstBlock(t *testing.T) {
	store := voxel.NewChunkStore(nil)
	s, err := NewSession(Config{Store: store, MaxBlocks: UnlimitedChanges})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	// Single column: blocks at y=2, open from y=3 to y=10.
	store.SetBlock(voxel.Vec3i{X: 0, Y: 2, Z: 0}, 1)
	// Walls around the origin column so the fill cannot spread.
	for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		store.SetBlock(voxel.Vec3i{X: d[0], Y: 10, Z: d[1]}, 1)
	}

	origin := voxel.Vec3i{X: 0, Y: 10, Z: 0}
	affected, err := s.FillXZ(origin.X, origin.Z, origin, 7, 2, 20)
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	// y=10 down to y=3 inclusive.
	if affected != 8 {
		t.Fatalf("affected: got %d want 8", affected)
	}
	for y := 3; y <= 10; y++ {
		if got := store.GetBlock(voxel.Vec3i{X: 0, Y: y, Z: 0}); got != 7 {
			t.Fatalf("y=%d: got %d want 7", y, got)
		}
	}
	if got := store.GetBlock(voxel.Vec3i{X: 0, Y: 2, Z: 0}); got != 1 {
		t.Fatalf("existing block below: got %d want 1", got)
	}
}

func TestFillXZ_PropagatesChangeLimit(t *testing.T) {
	store := voxel.NewChunkStore(voxel.FlatWorld(1, 1, 0))
	s, err := NewSession(Config{Store: store, MaxBlocks: 5})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	origin := voxel.Vec3i{X: 0, Y: 1, Z: 0}
	affected, err := s.FillXZ(origin.X, origin.Z, origin, 9, 10, 1)
	if err == nil {
		t.Fatalf("fill under a limit of 5: want MaxChangedBlocksError, filled %d", affected)
	}
	if affected > 5 {
		t.Fatalf("affected past the limit: %d", affected)
	}
	if got := s.Size(); got != 6 {
		t.Fatalf("size after limit error: got %d want 6", got)
	}
}
