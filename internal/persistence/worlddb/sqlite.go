// Package worlddb is a SQLite-backed voxel store. Only non-air blocks are
// rows; a missing row reads as air. It satisfies voxel.Store so edit sessions
// can run against a durable world the same way they run against memory.
package worlddb

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"voxedit.ai/internal/voxel"
)

const schema = `
CREATE TABLE IF NOT EXISTS blocks (
  x  INTEGER NOT NULL,
  y  INTEGER NOT NULL,
  z  INTEGER NOT NULL,
  id INTEGER NOT NULL,
  PRIMARY KEY (x, y, z)
);
`

type DB struct {
	db *sql.DB

	mu      sync.Mutex
	lastErr error
}

func Open(path string) (*DB, error) {
	if path == "" {
		return nil, errors.New("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// Single-writer usage; sessions are single-threaded anyway.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("worlddb schema: %w", err)
	}
	return &DB{db: db}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

// Err returns the first store fault seen since the last call and clears it.
// The voxel.Store methods cannot report errors themselves; callers that care
// check Err after a batch.
func (d *DB) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	err := d.lastErr
	d.lastErr = nil
	return err
}

func (d *DB) fail(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.lastErr == nil {
		d.lastErr = err
	}
}

func (d *DB) GetBlock(p voxel.Vec3i) voxel.BlockID {
	var id int64
	err := d.db.QueryRow(`SELECT id FROM blocks WHERE x = ? AND y = ? AND z = ?`, p.X, p.Y, p.Z).Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return voxel.Air
	case err != nil:
		d.fail(fmt.Errorf("worlddb get (%d,%d,%d): %w", p.X, p.Y, p.Z, err))
		return voxel.Air
	}
	return voxel.BlockID(id)
}

func (d *DB) SetBlock(p voxel.Vec3i, b voxel.BlockID) bool {
	old := d.GetBlock(p)
	if old == b {
		return false
	}

	var err error
	if b == voxel.Air {
		_, err = d.db.Exec(`DELETE FROM blocks WHERE x = ? AND y = ? AND z = ?`, p.X, p.Y, p.Z)
	} else {
		_, err = d.db.Exec(`
INSERT INTO blocks (x, y, z, id) VALUES (?, ?, ?, ?)
ON CONFLICT (x, y, z) DO UPDATE SET id = excluded.id`, p.X, p.Y, p.Z, int64(b))
	}
	if err != nil {
		d.fail(fmt.Errorf("worlddb set (%d,%d,%d): %w", p.X, p.Y, p.Z, err))
		return false
	}
	return true
}

// Count returns the number of non-air blocks stored.
func (d *DB) Count() (int, error) {
	var n int
	if err := d.db.QueryRow(`SELECT COUNT(*) FROM blocks`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
