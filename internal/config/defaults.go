package config

import (
	_ "embed"
)

//go:embed defaults/sandbox.yaml
var defaultSandboxYAML []byte

// DefaultSceneYAML returns the embedded default scene, for seeding the
// scene store.
func DefaultSceneYAML() []byte {
	out := make([]byte, len(defaultSandboxYAML))
	copy(out, defaultSandboxYAML)
	return out
}
