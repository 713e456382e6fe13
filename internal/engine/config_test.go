package engine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rustlike.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
seed = 42
max_monsters = 6
max_items = 1
frame_delay = "50ms"

[keys]
pickup = ["p", "g"]
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.MaxMonsters != 6 || cfg.MaxItems != 1 {
		t.Errorf("limits = %d/%d, want 6/1", cfg.MaxMonsters, cfg.MaxItems)
	}
	if cfg.FrameDelay != 50*time.Millisecond {
		t.Errorf("FrameDelay = %v, want 50ms", cfg.FrameDelay)
	}
	if got := cfg.Keys["pickup"]; len(got) != 2 {
		t.Errorf("Keys[pickup] = %v, want two keys", got)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "seed = 3\n"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.MaxMonsters != 4 || cfg.MaxItems != 2 {
		t.Errorf("limits = %d/%d, want defaults 4/2", cfg.MaxMonsters, cfg.MaxItems)
	}
	if cfg.FrameDelay != 16*time.Millisecond {
		t.Errorf("FrameDelay = %v, want 16ms", cfg.FrameDelay)
	}
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv(EnvSeed, "777")
	t.Setenv(EnvTemplates, "/tmp/monsters.yaml")
	t.Setenv(EnvRecord, "/tmp/run.rlkr")

	cfg, err := LoadConfig(writeConfig(t, "seed = 1\n"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Seed != 777 {
		t.Errorf("Seed = %d, want env override 777", cfg.Seed)
	}
	if cfg.TemplatesPath != "/tmp/monsters.yaml" || cfg.RecordPath != "/tmp/run.rlkr" {
		t.Errorf("paths = %q, %q", cfg.TemplatesPath, cfg.RecordPath)
	}
}

func TestLoadConfig_NoFile(t *testing.T) {
	t.Setenv(EnvSeed, "5")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\") error = %v", err)
	}
	if cfg.Seed != 5 {
		t.Errorf("Seed = %d, want 5", cfg.Seed)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		env     string
		invalid bool
	}{
		{name: "Broken TOML", body: "seed = ["},
		{name: "Negative monsters", body: "max_monsters = -1", invalid: true},
		{name: "Negative frame delay", body: `frame_delay = "-1s"`, invalid: true},
		{name: "Unknown top-level key", body: "max_monster = 3", invalid: true},
		{name: "Unknown binding", body: "[keys]\nfly = [\"f\"]", invalid: true},
		{name: "Unknown key", body: "[keys]\nwest = [\"F13\"]", invalid: true},
		{name: "Bad seed env", body: "seed = 1", env: "abc", invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env != "" {
				t.Setenv(EnvSeed, tt.env)
			}
			_, err := LoadConfig(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("LoadConfig() error = nil, want error")
			}
			if tt.invalid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("LoadConfig() error = %v, want ErrInvalidConfig", err)
			}
		})
	}

	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("LoadConfig() error = %v, want os.ErrNotExist", err)
		}
	})
}

func TestConfig_Templates(t *testing.T) {
	cfg := NewConfig()
	tpl, err := cfg.Templates()
	if err != nil {
		t.Fatalf("Templates() error = %v", err)
	}
	if tpl.Player.Name != "Player" {
		t.Errorf("Player.Name = %q, want built-in Player", tpl.Player.Name)
	}

	cfg.TemplatesPath = filepath.Join(t.TempDir(), "absent.yaml")
	if _, err := cfg.Templates(); err == nil {
		t.Error("Templates() with a missing file must fail")
	}
}
