package voxel

import (
	"crypto/sha256"
	"encoding/binary"
	"sort"

	"voxedit.ai/internal/mathx"
)

const chunkSize = 16

type ChunkKey struct {
	CX int
	CY int
	CZ int
}

type Chunk struct {
	CX, CY, CZ int
	Blocks     []uint16 // len = 16*16*16

	dirty bool
	hash  [32]byte
}

func (c *Chunk) index(x, y, z int) int {
	// x fastest, then z, then y
	return x + z*chunkSize + y*chunkSize*chunkSize
}

func (c *Chunk) Get(x, y, z int) BlockID {
	return BlockID(c.Blocks[c.index(x, y, z)])
}

func (c *Chunk) Set(x, y, z int, b BlockID) bool {
	i := c.index(x, y, z)
	if c.Blocks[i] == uint16(b) {
		return false
	}
	c.Blocks[i] = uint16(b)
	c.dirty = true
	return true
}

func (c *Chunk) Digest() [32]byte {
	if c.dirty || c.hash == ([32]byte{}) {
		// Hash the raw uint16 slice deterministically.
		h := sha256.New()
		var tmp [2]byte
		for _, v := range c.Blocks {
			binary.LittleEndian.PutUint16(tmp[:], v)
			h.Write(tmp[:])
		}
		copy(c.hash[:], h.Sum(nil))
		c.dirty = false
	}
	return c.hash
}

// ChunkStore is an in-memory Store backed by 16^3 chunks allocated on first
// touch. An optional generator seeds newly allocated chunks; without one the
// world starts as all air. Accessed only from the goroutine driving the
// session.
type ChunkStore struct {
	// Gen, when non-nil, provides the pristine block at a position.
	gen    func(p Vec3i) BlockID
	chunks map[ChunkKey]*Chunk
}

func NewChunkStore(gen func(p Vec3i) BlockID) *ChunkStore {
	return &ChunkStore{
		gen:    gen,
		chunks: map[ChunkKey]*Chunk{},
	}
}

// FlatWorld returns a generator producing a flat terrain: surface at y ==
// surfaceY, the below block under it, air above.
func FlatWorld(surface, below BlockID, surfaceY int) func(p Vec3i) BlockID {
	return func(p Vec3i) BlockID {
		switch {
		case p.Y == surfaceY:
			return surface
		case p.Y < surfaceY:
			return below
		default:
			return Air
		}
	}
}

func (s *ChunkStore) LoadedChunkKeys() []ChunkKey {
	keys := make([]ChunkKey, 0, len(s.chunks))
	for k := range s.chunks {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].CX != keys[j].CX {
			return keys[i].CX < keys[j].CX
		}
		if keys[i].CY != keys[j].CY {
			return keys[i].CY < keys[j].CY
		}
		return keys[i].CZ < keys[j].CZ
	})
	return keys
}

func (s *ChunkStore) GetBlock(p Vec3i) BlockID {
	ch := s.getOrGenChunk(s.keyOf(p))
	return ch.Get(s.local(p))
}

func (s *ChunkStore) SetBlock(p Vec3i, b BlockID) bool {
	ch := s.getOrGenChunk(s.keyOf(p))
	lx, ly, lz := s.local(p)
	return ch.Set(lx, ly, lz, b)
}

func (s *ChunkStore) keyOf(p Vec3i) ChunkKey {
	return ChunkKey{
		CX: mathx.FloorDiv(p.X, chunkSize),
		CY: mathx.FloorDiv(p.Y, chunkSize),
		CZ: mathx.FloorDiv(p.Z, chunkSize),
	}
}

func (s *ChunkStore) local(p Vec3i) (int, int, int) {
	return mathx.Mod(p.X, chunkSize), mathx.Mod(p.Y, chunkSize), mathx.Mod(p.Z, chunkSize)
}

func (s *ChunkStore) getOrGenChunk(k ChunkKey) *Chunk {
	if ch, ok := s.chunks[k]; ok {
		return ch
	}
	ch := &Chunk{
		CX:     k.CX,
		CY:     k.CY,
		CZ:     k.CZ,
		Blocks: make([]uint16, chunkSize*chunkSize*chunkSize),
	}
	if s.gen != nil {
		base := Vec3i{X: k.CX * chunkSize, Y: k.CY * chunkSize, Z: k.CZ * chunkSize}
		for y := 0; y < chunkSize; y++ {
			for z := 0; z < chunkSize; z++ {
				for x := 0; x < chunkSize; x++ {
					b := s.gen(Vec3i{X: base.X + x, Y: base.Y + y, Z: base.Z + z})
					if b != Air {
						ch.Blocks[ch.index(x, y, z)] = uint16(b)
					}
				}
			}
		}
	}
	ch.dirty = true
	_ = ch.Digest() // initialize digest
	s.chunks[k] = ch
	return ch
}

// Digest hashes all loaded chunks in key order. Two stores that saw the same
// writes over the same generator produce equal digests.
func (s *ChunkStore) Digest() [32]byte {
	h := sha256.New()
	for _, k := range s.LoadedChunkKeys() {
		d := s.chunks[k].Digest()
		h.Write(d[:])
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
