package deviceinfo

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Manifest describes the host application
type Manifest struct {
	BundleID string `yaml:"bundle_id"`
	Name     string `yaml:"name"`
	Version  string `yaml:"version"`
}

// LoadManifest reads an application manifest from a YAML file
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return ParseManifest(data)
}

// ParseManifest decodes an application manifest
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if m.BundleID == "" {
		return nil, fmt.Errorf("parse manifest: bundle_id is required")
	}
	return &m, nil
}
