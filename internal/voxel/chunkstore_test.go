package voxel

import "testing"

func TestChunkStore_SetGetAcrossChunkBorders(t *testing.T) {
	s := NewChunkStore(nil)

	points := []Vec3i{
		{X: 0, Y: 0, Z: 0},
		{X: 15, Y: 15, Z: 15},
		{X: 16, Y: 0, Z: 0},
		{X: -1, Y: -1, Z: -1},
		{X: -17, Y: 40, Z: 200},
	}
	for i, p := range points {
		if got := s.GetBlock(p); got != Air {
			t.Fatalf("fresh world at %v: got %d want air", p, got)
		}
		if changed := s.SetBlock(p, BlockID(i+1)); !changed {
			t.Fatalf("set %v: changed = false", p)
		}
		if changed := s.SetBlock(p, BlockID(i+1)); changed {
			t.Fatalf("set %v same value: changed = true", p)
		}
	}
	for i, p := range points {
		if got := s.GetBlock(p); got != BlockID(i+1) {
			t.Fatalf("get %v: got %d want %d", p, got, i+1)
		}
	}
}

func TestChunkStore_Generator(t *testing.T) {
	s := NewChunkStore(FlatWorld(2, 3, 10))

	if got := s.GetBlock(Vec3i{X: 5, Y: 10, Z: 5}); got != 2 {
		t.Fatalf("surface: got %d want 2", got)
	}
	if got := s.GetBlock(Vec3i{X: 5, Y: 9, Z: 5}); got != 3 {
		t.Fatalf("below surface: got %d want 3", got)
	}
	if got := s.GetBlock(Vec3i{X: 5, Y: 11, Z: 5}); got != Air {
		t.Fatalf("above surface: got %d want air", got)
	}
}

func TestChunkStore_DigestTracksContent(t *testing.T) {
	a := NewChunkStore(nil)
	b := NewChunkStore(nil)

	ops := []struct {
		p Vec3i
		b BlockID
	}{
		{Vec3i{X: 1, Y: 2, Z: 3}, 9},
		{Vec3i{X: -8, Y: 0, Z: 40}, 4},
	}
	for _, op := range ops {
		a.SetBlock(op.p, op.b)
		b.SetBlock(op.p, op.b)
	}
	if a.Digest() != b.Digest() {
		t.Fatalf("same writes, different digests")
	}

	b.SetBlock(Vec3i{X: 1, Y: 2, Z: 3}, 10)
	if a.Digest() == b.Digest() {
		t.Fatalf("diverged stores share a digest")
	}
}

func TestNeedsSupport(t *testing.T) {
	for _, b := range []BlockID{YellowFlower, RedRose, BrownMushroom, RedMushroom, Torch, Crops, Sign, RedstoneTorchOff, RedstoneTorchOn, Reed} {
		if !NeedsSupport(b) {
			t.Fatalf("block %d should need support", b)
		}
	}
	for _, b := range []BlockID{Air, 1, 2, 17, 49, MatchNonAir} {
		if NeedsSupport(b) {
			t.Fatalf("block %d should not need support", b)
		}
	}
}
