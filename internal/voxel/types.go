package voxel

// Vec3i is an integer block position. It is comparable and used directly as a
// map key; two positions are the same key iff all three components match.
type Vec3i struct {
	X, Y, Z int
}

func (v Vec3i) Add(dx, dy, dz int) Vec3i {
	return Vec3i{X: v.X + dx, Y: v.Y + dy, Z: v.Z + dz}
}

// BlockID identifies a block kind. Air (0) means empty.
type BlockID uint16

const Air BlockID = 0

// MatchNonAir is reserved: it never names a real block. ReplaceBlocks treats
// it as "any non-air block".
const MatchNonAir BlockID = 0xFFFF

// Block ids that must sit on a non-air block. Placing one in the air makes the
// engine drop it as an item immediately, so batch edits defer these until the
// supporting geometry exists.
const (
	YellowFlower     BlockID = 37
	RedRose          BlockID = 38
	BrownMushroom    BlockID = 39
	RedMushroom      BlockID = 40
	Torch            BlockID = 50
	Crops            BlockID = 59
	Sign             BlockID = 63
	RedstoneTorchOff BlockID = 75
	RedstoneTorchOn  BlockID = 76
	Reed             BlockID = 84
)

var needsSupport = map[BlockID]struct{}{
	YellowFlower:     {},
	RedRose:          {},
	BrownMushroom:    {},
	RedMushroom:      {},
	Torch:            {},
	Crops:            {},
	Sign:             {},
	RedstoneTorchOff: {},
	RedstoneTorchOn:  {},
	Reed:             {},
}

// NeedsSupport reports whether b is one of the support-dependent block kinds.
// NeedsSupport(Air) is false.
func NeedsSupport(b BlockID) bool {
	_, ok := needsSupport[b]
	return ok
}
