package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadSettings loads match settings.
// Search order: customPath -> ~/.arena/settings.yaml -> ./configs/settings.yaml -> embedded default.
// Keys missing from a file keep their default values.
func LoadSettings(customPath string) (Settings, error) {
	cfg := DefaultSettings()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read settings %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse settings %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, p := range searchPaths("settings.yaml") {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		fileCfg := DefaultSettings()
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			return fileCfg, fileCfg.Validate()
		}
	}

	if err := yaml.Unmarshal(defaultSettingsYAML, &cfg); err != nil {
		return DefaultSettings(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// LoadMap loads a board map by file path or by name.
// A value containing a path separator or a .yaml/.yml suffix is read as a file.
// Otherwise the name is looked up in ~/.arena/maps, ./configs/maps and the embedded maps.
func LoadMap(nameOrPath string) (Map, error) {
	if nameOrPath == "" {
		nameOrPath = DefaultMapName
	}

	if isPath(nameOrPath) {
		data, err := os.ReadFile(nameOrPath)
		if err != nil {
			return Map{}, fmt.Errorf("failed to read map %s: %w", nameOrPath, err)
		}
		return ParseMap(data)
	}

	for _, p := range searchPaths(filepath.Join("maps", nameOrPath+".yaml")) {
		if data, err := os.ReadFile(p); err == nil {
			if m, err := ParseMap(data); err == nil {
				return m, nil
			}
		}
	}

	data := builtinMapYAML(nameOrPath)
	if data == nil {
		return Map{}, fmt.Errorf("unknown map %q", nameOrPath)
	}
	return ParseMap(data)
}

// ParseMap decodes a YAML map description.
func ParseMap(data []byte) (Map, error) {
	var m Map
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Map{}, fmt.Errorf("failed to parse map: %w", err)
	}
	return m, nil
}

// searchPaths returns the user and local locations for a config file.
func searchPaths(name string) []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".arena", name))
	}
	return append(paths, filepath.Join("configs", name))
}

func isPath(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return strings.ContainsRune(s, os.PathSeparator) || ext == ".yaml" || ext == ".yml"
}
