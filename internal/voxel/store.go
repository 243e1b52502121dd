package voxel

// Store is the authoritative world state a session edits against. Each call is
// atomic for a single position only; there are no transactional guarantees.
// Sessions layer undo tracking and write deferral on top.
type Store interface {
	GetBlock(p Vec3i) BlockID
	// SetBlock reports whether the stored value changed.
	SetBlock(p Vec3i, b BlockID) bool
}
