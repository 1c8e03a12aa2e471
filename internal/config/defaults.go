package config

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed defaults/settings.yaml
var defaultSettingsYAML []byte

//go:embed defaults/maps/*.yaml
var defaultMaps embed.FS

// DefaultMapName is the map used when none is requested.
const DefaultMapName = "default"

// DefaultSettings returns the stock match rules.
func DefaultSettings() Settings {
	return Settings{
		BoardSize:         19,
		RobotHP:           50,
		AttackRange:       [2]int{15, 20},
		CollisionDamage:   5,
		SuicideDamage:     10,
		SpawnEvery:        10,
		SpawnPerPlayer:    5,
		MaxTurns:          100,
		TurnIntervalMS:    100,
		DecisionTimeoutMS: 100,
	}
}

// BuiltinMaps returns the names of the embedded maps, sorted.
func BuiltinMaps() []string {
	entries, err := fs.ReadDir(defaultMaps, "defaults/maps")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

// builtinMapYAML returns the embedded YAML for a named map, or nil.
func builtinMapYAML(name string) []byte {
	data, err := defaultMaps.ReadFile("defaults/maps/" + name + ".yaml")
	if err != nil {
		return nil
	}
	return data
}
