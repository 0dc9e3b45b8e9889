package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type AppConfig struct {
	SeedPath           string `json:"seed_path"`
	LogFile            string `json:"log_file"`
	PageSize           int    `json:"page_size"`
	ResetDraftOnCancel bool   `json:"reset_draft_on_cancel"`
}

func Default() AppConfig {
	return AppConfig{
		LogFile:  "~/.noteboard/noteboard.log",
		PageSize: 1,
	}
}

func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// DefaultPath is where the config lives unless --config says otherwise.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".noteboard", "config.json")
}

// LoadOrInit reads the config at path (DefaultPath when empty), filling unset
// fields from Default, and writes the result back so the file exists for editing.
func LoadOrInit(path string) AppConfig {
	if path == "" {
		path = DefaultPath()
	}
	cfg, err := Load(path)
	if err != nil {
		cfg = Default()
	}
	_ = Save(path, cfg)
	return cfg
}

func Load(path string) (AppConfig, error) {
	cfg := Default()
	data, err := os.ReadFile(ExpandPath(path))
	if err != nil {
		return cfg, err
	}
	var loaded AppConfig
	if err := json.Unmarshal(data, &loaded); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if loaded.SeedPath != "" {
		cfg.SeedPath = loaded.SeedPath
	}
	if loaded.LogFile != "" {
		cfg.LogFile = loaded.LogFile
	}
	if loaded.PageSize > 0 {
		cfg.PageSize = loaded.PageSize
	}
	cfg.ResetDraftOnCancel = loaded.ResetDraftOnCancel
	return cfg, nil
}

func Save(path string, cfg AppConfig) error {
	path = ExpandPath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
