package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads a scene configuration.
// Search order: customPath -> ~/.shapelab/scenes/sandbox.yaml ->
// ./scenes/sandbox.yaml -> embedded default.
func Load(customPath string) (SceneConfig, error) {
	var cfg SceneConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read scene %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse scene %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user scene directory
	if userPath := userScenePath("sandbox.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local scenes directory
	if data, err := os.ReadFile("scenes/sandbox.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSandboxYAML, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse embedded default scene: %w", err)
	}
	return cfg, nil
}

// Parse decodes a scene from raw YAML, for scenes stored outside the
// filesystem (e.g. the database).
func Parse(data []byte) (SceneConfig, error) {
	var cfg SceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse scene: %w", err)
	}
	return cfg, nil
}

// userScenePath returns the path to a user scene file, or empty if home is
// unavailable.
func userScenePath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shapelab", "scenes", filename)
}
