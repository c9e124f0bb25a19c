package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/lottery-wheel/internal/wheel"
)

// SettingsFile persists wheel settings as YAML at Path.
type SettingsFile struct {
	Path string
}

func NewSettingsFile(path string) *SettingsFile {
	return &SettingsFile{Path: path}
}

// Load reads the settings. A missing file yields the defaults; fields absent
// from the file keep their default values. The result is always clamped.
func (f *SettingsFile) Load() (wheel.Settings, error) {
	s := wheel.DefaultSettings()

	data, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return wheel.DefaultSettings(), fmt.Errorf("parse settings %s: %w", f.Path, err)
	}
	s.Clamp()
	return s, nil
}

// Save replaces the file atomically through a temp file in the same
// directory.
func (f *SettingsFile) Save(s wheel.Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	dir := filepath.Dir(f.Path)
	tmp, err := os.CreateTemp(dir, ".wheel-settings-*")
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("save settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
