// Package catalog loads the block catalog from configs/blocks.json. The
// catalog names blocks for tooling; the edit core itself only deals in ids.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"voxedit.ai/internal/voxel"
)

type BlockDef struct {
	ID           uint16 `json:"id"`
	Name         string `json:"name"`
	Solid        bool   `json:"solid"`
	NeedsSupport bool   `json:"needs_support,omitempty"`
}

type Catalog struct {
	Defs []BlockDef

	byName map[string]voxel.BlockID
	byID   map[voxel.BlockID]string
}

func Load(dir string) (*Catalog, error) {
	raw, err := os.ReadFile(filepath.Join(dir, "blocks.json"))
	if err != nil {
		return nil, err
	}
	var defs []BlockDef
	if err := json.Unmarshal(raw, &defs); err != nil {
		return nil, fmt.Errorf("blocks.json: %w", err)
	}

	c := &Catalog{
		Defs:   defs,
		byName: map[string]voxel.BlockID{},
		byID:   map[voxel.BlockID]string{},
	}
	for _, d := range defs {
		if d.Name == "" {
			return nil, fmt.Errorf("blocks.json: block %d has no name", d.ID)
		}
		if _, ok := c.byName[d.Name]; ok {
			return nil, fmt.Errorf("blocks.json: duplicate name %q", d.Name)
		}
		if _, ok := c.byID[voxel.BlockID(d.ID)]; ok {
			return nil, fmt.Errorf("blocks.json: duplicate id %d", d.ID)
		}
		c.byName[d.Name] = voxel.BlockID(d.ID)
		c.byID[voxel.BlockID(d.ID)] = d.Name
	}
	if _, ok := c.byID[voxel.Air]; !ok {
		return nil, fmt.Errorf("blocks.json: missing AIR (id 0)")
	}
	return c, nil
}

func (c *Catalog) IDByName(name string) (voxel.BlockID, bool) {
	id, ok := c.byName[name]
	return id, ok
}

func (c *Catalog) NameByID(id voxel.BlockID) (string, bool) {
	name, ok := c.byID[id]
	return name, ok
}
