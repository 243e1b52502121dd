// Package edit wraps block mutations against a voxel.Store into one session
// that records the state of every block before modification, allowing easy
// undo and redo. A session can also run in "queue mode", which knows how to
// handle support-dependent blocks such as torches: those must be placed only
// after a block exists below them, otherwise the engine drops them as items.
package edit

import (
	"sort"

	"voxedit.ai/internal/voxel"
)

const (
	// UnlimitedChanges disables the block change limit.
	UnlimitedChanges = -1

	defaultCeilingY = 127
)

type Config struct {
	// Store is the authoritative world the session edits. Required.
	Store voxel.Store
	// MaxBlocks caps the number of distinct changed positions;
	// UnlimitedChanges disables the cap.
	MaxBlocks int
	// FloorY and CeilY bound column operations (RemoveAbove, RemoveBelow,
	// OverlayCuboidBlocks). When both are zero the world spans 0..127.
	FloorY int
	CeilY  int
}

// Session is a single-threaded edit batch. Create one per logical batch and
// discard it afterwards; undo state lives and dies with the session.
type Session struct {
	store voxel.Store

	floorY int
	ceilY  int

	// original holds, per position, the block seen strictly before the
	// session's first write there. Its size is the changed-block count.
	original map[voxel.Vec3i]voxel.BlockID
	// current holds the latest requested block per position.
	current map[voxel.Vec3i]voxel.BlockID
	// queue holds writes deferred until the next flush.
	queue map[voxel.Vec3i]voxel.BlockID

	maxBlocks int
	queued    bool
}

func NewSession(cfg Config) (*Session, error) {
	if cfg.Store == nil {
		return nil, errNilStore
	}
	if cfg.MaxBlocks < UnlimitedChanges {
		return nil, ErrBadChangeLimit
	}
	floor, ceil := cfg.FloorY, cfg.CeilY
	if floor == 0 && ceil == 0 {
		ceil = defaultCeilingY
	}
	return &Session{
		store:     cfg.Store,
		floorY:    floor,
		ceilY:     ceil,
		original:  map[voxel.Vec3i]voxel.BlockID{},
		current:   map[voxel.Vec3i]voxel.BlockID{},
		queue:     map[voxel.Vec3i]voxel.BlockID{},
		maxBlocks: cfg.MaxBlocks,
	}, nil
}

// GetBlock returns the block at p. In queue mode a position with a pending
// tracked write reads as its tracked value, so later logic sees writes that
// have not physically been committed yet.
func (s *Session) GetBlock(p voxel.Vec3i) voxel.BlockID {
	if s.queued {
		if b, ok := s.current[p]; ok {
			return b
		}
	}
	return s.store.GetBlock(p)
}

// SetBlock sets the block at p. In queue mode the block may not actually be
// written to the store until FlushQueue is called. The returned changed
// indicator is not entirely dependable: deferred and cascaded writes do not
// reflect the physical store at call time.
func (s *Session) SetBlock(p voxel.Vec3i, b voxel.BlockID) (bool, error) {
	if _, ok := s.original[p]; !ok {
		s.original[p] = s.GetBlock(p)

		// The offending entry is recorded before the size check fires;
		// Size() right after a limit error reads one past the limit.
		if s.maxBlocks != UnlimitedChanges && len(s.original) > s.maxBlocks {
			return false, &MaxChangedBlocksError{Limit: s.maxBlocks}
		}
	}

	s.current[p] = b

	return s.smartSetBlock(p, b), nil
}

// rawGetBlock reads the store, ignoring any tracked state.
func (s *Session) rawGetBlock(p voxel.Vec3i) voxel.BlockID {
	return s.store.GetBlock(p)
}

// rawSetBlock writes the store without touching history.
func (s *Session) rawSetBlock(p voxel.Vec3i, b voxel.BlockID) bool {
	return s.store.SetBlock(p, b)
}

// smartSetBlock actually sets the block, deferring through the queue when
// queue mode demands it.
func (s *Session) smartSetBlock(p voxel.Vec3i, b voxel.BlockID) bool {
	if s.queued {
		if b != voxel.Air && voxel.NeedsSupport(b) && s.rawGetBlock(p.Add(0, -1, 0)) == voxel.Air {
			s.queue[p] = b
			return s.GetBlock(p) != b
		}
		if b == voxel.Air && voxel.NeedsSupport(s.rawGetBlock(p.Add(0, 1, 0))) {
			// Clear the attachment first so the engine does not drop it
			// as an item. Untracked; undo does not restore it.
			s.rawSetBlock(p.Add(0, 1, 0), voxel.Air)
		}
	}

	return s.rawSetBlock(p, b)
}

// Undo restores every touched position to its pre-session block, then
// flushes. Positions are replayed in sorted (X, Y, Z) order; each targets a
// distinct position, so order does not affect the final state.
func (s *Session) Undo() {
	for _, p := range sortedKeys(s.original) {
		s.smartSetBlock(p, s.original[p])
	}
	s.FlushQueue()
}

// Redo re-applies the latest requested block for every touched position,
// then flushes. Same ordering as Undo.
func (s *Session) Redo() {
	for _, p := range sortedKeys(s.current) {
		s.smartSetBlock(p, s.current[p])
	}
	s.FlushQueue()
}

// Size returns the number of distinct changed positions.
func (s *Session) Size() int {
	return len(s.original)
}

// BlockChangeLimit returns the maximum number of positions that can be
// changed, or UnlimitedChanges.
func (s *Session) BlockChangeLimit() int {
	return s.maxBlocks
}

func (s *Session) SetBlockChangeLimit(maxBlocks int) error {
	if maxBlocks < UnlimitedChanges {
		return ErrBadChangeLimit
	}
	s.maxBlocks = maxBlocks
	return nil
}

func (s *Session) IsQueueEnabled() bool {
	return s.queued
}

// EnableQueue turns on deferred placement of support-dependent blocks.
func (s *Session) EnableQueue() {
	s.queued = true
}

// DisableQueue turns queue mode off, flushing any pending writes first.
func (s *Session) DisableQueue() {
	if s.queued {
		s.FlushQueue()
	}
	s.queued = false
}

// FlushQueue commits all deferred writes straight to the store (they are
// never re-deferred) and empties the queue. No-op when queue mode is off.
func (s *Session) FlushQueue() {
	if !s.queued {
		return
	}

	for _, p := range sortedKeys(s.queue) {
		s.rawSetBlock(p, s.queue[p])
	}
	s.queue = map[voxel.Vec3i]voxel.BlockID{}
}

func sortedKeys(m map[voxel.Vec3i]voxel.BlockID) []voxel.Vec3i {
	keys := make([]voxel.Vec3i, 0, len(m))
	for p := range m {
		keys = append(keys, p)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].X != keys[j].X {
			return keys[i].X < keys[j].X
		}
		if keys[i].Y != keys[j].Y {
			return keys[i].Y < keys[j].Y
		}
		return keys[i].Z < keys[j].Z
	})
	return keys
}
