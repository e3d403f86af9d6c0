package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded names the built-in settings in Loaded.Source.
const SourceEmbedded = "embedded default"

// localConfigPath is the project-local settings file, relative to the working directory.
var localConfigPath = filepath.Join("configs", "blocks.yaml")

// Loaded is a settings file together with where it came from.
type Loaded struct {
	Config BlocksConfig
	Source string // File path, or SourceEmbedded
}

// LoadBlocks loads the block puzzle settings.
// Search order: customPath -> ~/.blocks/configs/blocks.yaml -> ./configs/blocks.yaml -> embedded default
//
// A custom path must exist and be valid. The other files are skipped when
// missing, malformed or invalid. Keys absent from a file keep their defaults.
func LoadBlocks(customPath string) (Loaded, error) {
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return Loaded{}, err
		}
		return Loaded{Config: cfg, Source: customPath}, nil
	}

	for _, path := range []string{UserConfigPath(), localConfigPath} {
		if path == "" {
			continue
		}
		if cfg, err := readFile(path); err == nil {
			return Loaded{Config: cfg, Source: path}, nil
		}
	}

	cfg, err := decode(defaultBlocksYAML)
	if err != nil {
		cfg = DefaultBlocksConfig() // Fallback to hardcoded if embed fails
	}
	return Loaded{Config: cfg, Source: SourceEmbedded}, nil
}

func readFile(path string) (BlocksConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BlocksConfig{}, fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	cfg, err := decode(data)
	if err != nil {
		return BlocksConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// decode parses data over the defaults and validates the result.
func decode(data []byte) (BlocksConfig, error) {
	cfg := DefaultBlocksConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return BlocksConfig{}, fmt.Errorf("cannot parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return BlocksConfig{}, err
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg BlocksConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Save validates cfg and writes it to path, creating parent directories.
func Save(path string, cfg BlocksConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: cannot create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: cannot write %s: %w", path, err)
	}
	return nil
}

// UserConfigPath returns ~/.blocks/configs/blocks.yaml, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blocks", "configs", "blocks.yaml")
}
