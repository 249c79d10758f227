package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	snaperrors "codesnap/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads a YAML (or JSON) configuration file, applies defaults and validates it.
func Load(path string) (*SnapshotConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, snaperrors.NewParseError(path, 0, err)
	}

	cfg, err := decode(data)
	if err != nil {
		return nil, snaperrors.NewParseError(path, extractLine(err), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse is Load for an in-memory document.
func Parse(data []byte) (*SnapshotConfig, error) {
	cfg, err := decode(data)
	if err != nil {
		return nil, snaperrors.NewParseError("", extractLine(err), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ParseUnvalidated decodes and defaults data without validating it, so
// callers can fill in content before calling Validate.
func ParseUnvalidated(data []byte) (*SnapshotConfig, error) {
	cfg, err := decode(data)
	if err != nil {
		return nil, snaperrors.NewParseError("", extractLine(err), err)
	}
	return cfg, nil
}

func decode(data []byte) (*SnapshotConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Marshal encodes cfg back to YAML.
func Marshal(cfg *SnapshotConfig) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return out, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
