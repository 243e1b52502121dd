package worlddb

import (
	"path/filepath"
	"testing"

	"voxedit.ai/internal/edit"
	"voxedit.ai/internal/voxel"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	d, err := Open(filepath.Join(t.TempDir(), "world.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return d
}

func TestDB_SetGet(t *testing.T) {
	d := openTestDB(t)

	p := voxel.Vec3i{X: -3, Y: 64, Z: 1000}
	if got := d.GetBlock(p); got != voxel.Air {
		t.Fatalf("fresh db: got %d want air", got)
	}
	if !d.SetBlock(p, 17) {
		t.Fatalf("set air->log: changed = false")
	}
	if d.SetBlock(p, 17) {
		t.Fatalf("set same value: changed = true")
	}
	if got := d.GetBlock(p); got != 17 {
		t.Fatalf("get: got %d want 17", got)
	}

	// Writing air deletes the row.
	if !d.SetBlock(p, voxel.Air) {
		t.Fatalf("clear: changed = false")
	}
	n, err := d.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("rows after clear: got %d want 0", n)
	}
	if err := d.Err(); err != nil {
		t.Fatalf("store fault: %v", err)
	}
}

func TestDB_Persistence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.db")

	d, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	d.SetBlock(voxel.Vec3i{X: 1, Y: 2, Z: 3}, 45)
	if err := d.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	d2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer d2.Close()
	if got := d2.GetBlock(voxel.Vec3i{X: 1, Y: 2, Z: 3}); got != 45 {
		t.Fatalf("after reopen: got %d want 45", got)
	}
}

func TestDB_BacksAnEditSession(t *testing.T) {
	d := openTestDB(t)

	s, err := edit.NewSession(edit.Config{Store: d, MaxBlocks: edit.UnlimitedChanges})
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	p := voxel.Vec3i{X: 0, Y: 10, Z: 0}
	if _, err := s.SetBlock(p, 1); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := s.SetBlock(p, 2); err != nil {
		t.Fatalf("set: %v", err)
	}

	s.Undo()
	if got := d.GetBlock(p); got != voxel.Air {
		t.Fatalf("undo against sqlite: got %d want air", got)
	}
	s.Redo()
	if got := d.GetBlock(p); got != 2 {
		t.Fatalf("redo against sqlite: got %d want 2", got)
	}
	if err := d.Err(); err != nil {
		t.Fatalf("store fault: %v", err)
	}
}
