package tuning

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Tuning struct {
	WorldFloorY   int `yaml:"world_floor_y"`
	WorldCeilingY int `yaml:"world_ceiling_y"`

	// DefaultBlockChangeLimit caps distinct changed blocks per session;
	// -1 disables the cap.
	DefaultBlockChangeLimit int `yaml:"default_block_change_limit"`

	DataDir    string `yaml:"data_dir"`
	WorldDB    string `yaml:"world_db"`
	JournalDir string `yaml:"journal_dir"`
}

func Defaults() Tuning {
	return Tuning{
		WorldFloorY:             0,
		WorldCeilingY:           127,
		DefaultBlockChangeLimit: -1,
		DataDir:                 "./data",
		WorldDB:                 "./data/world.db",
		JournalDir:              "./data/journal",
	}
}

func Load(path string) (Tuning, error) {
	t := Defaults()
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	if t.WorldCeilingY < t.WorldFloorY {
		return t, fmt.Errorf("tuning.yaml: world_ceiling_y %d below world_floor_y %d", t.WorldCeilingY, t.WorldFloorY)
	}
	if t.DefaultBlockChangeLimit < -1 {
		return t, fmt.Errorf("tuning.yaml: default_block_change_limit must be >= -1, got %d", t.DefaultBlockChangeLimit)
	}
	return t, nil
}
