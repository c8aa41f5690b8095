package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Game.FPS != 62 {
		t.Errorf("Expected 62 fps from the 16ms frame interval, got %d", cfg.Game.FPS)
	}
	if !cfg.Audio.Enabled || cfg.Audio.Volume != 0.5 {
		t.Errorf("Unexpected audio defaults %+v", cfg.Audio)
	}
	if cfg.Server.Enabled() {
		t.Error("Expected spectator server disabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Defaults should validate: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(EnvFPS, "30")
	t.Setenv(EnvSeed, "1234")
	t.Setenv(EnvHeadless, "true")
	t.Setenv(EnvKeys, "w=up,s=down")
	t.Setenv(EnvKeyFile, "keys.toml")
	t.Setenv(EnvAudio, "false")
	t.Setenv(EnvVolume, "0.25")
	t.Setenv(EnvServe, ":8080")
	t.Setenv(EnvSpectatorFPS, "10")
	t.Setenv(EnvCORSOrigins, "http://localhost:*, https://tennis.example ,")
	t.Setenv(EnvDebug, "1")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Game.FPS != 30 || cfg.Game.Seed != 1234 || !cfg.Game.Headless || cfg.Game.Keys != "w=up,s=down" {
		t.Errorf("Unexpected game config %+v", cfg.Game)
	}
	if cfg.Game.KeyFile != "keys.toml" {
		t.Errorf("Expected key file from env, got %q", cfg.Game.KeyFile)
	}
	if cfg.Audio.Enabled || cfg.Audio.Volume != 0.25 {
		t.Errorf("Unexpected audio config %+v", cfg.Audio)
	}
	if !cfg.Server.Enabled() || cfg.Server.Addr != ":8080" || cfg.Server.SpectatorFPS != 10 {
		t.Errorf("Unexpected server config %+v", cfg.Server)
	}
	if len(cfg.Server.CORSOrigins) != 2 || cfg.Server.CORSOrigins[1] != "https://tennis.example" {
		t.Errorf("Unexpected CORS origins %v", cfg.Server.CORSOrigins)
	}
	if !cfg.Log.Debug {
		t.Error("Expected debug logging")
	}
	if cfg.Game.FrameInterval() != time.Second/30 {
		t.Errorf("Unexpected frame interval %v", cfg.Game.FrameInterval())
	}
}

func TestLoadParseErrors(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{EnvFPS, "fast"},
		{EnvSeed, "1.5"},
		{EnvAudio, "maybe"},
		{EnvVolume, "loud"},
		{EnvSpectatorFPS, "often"},
		{EnvImageWidth, "wide"},
		{EnvDebug, "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(""); err == nil {
				t.Errorf("Expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestValidateRanges(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{EnvFPS, "0"},
		{EnvFPS, "5000"},
		{EnvVolume, "2"},
		{EnvVolume, "-0.1"},
		{EnvVolume, "NaN"},
		{EnvSpectatorFPS, "-1"},
		{EnvSpectatorFPS, "NaN"},
		{EnvSpectatorFPS, "+Inf"},
		{EnvImageWidth, "8"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			cfg, err := Load("")
			if err != nil {
				t.Fatalf("Load should only parse, got %v", err)
			}
			if err := cfg.Validate(); err == nil {
				t.Errorf("Expected validation error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestOutOfRangeEnvCanBeReplaced(t *testing.T) {
	t.Setenv(EnvFPS, "5000")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Validate() == nil {
		t.Fatal("Expected 5000 fps to fail validation")
	}

	// A command-line value applied after Load wins
	cfg.Game.FPS = 60
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected replaced fps to validate, got %v", err)
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("TENNIS_FPS=45\nTENNIS_VOLUME=0.1\n"), 0o644); err != nil {
		t.Fatalf("Write env file: %v", err)
	}
	// Environment wins over the file
	t.Setenv(EnvVolume, "0.9")
	t.Setenv(EnvFPS, "")
	os.Unsetenv(EnvFPS)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	os.Unsetenv(EnvFPS)

	if cfg.Game.FPS != 45 {
		t.Errorf("Expected fps from file, got %d", cfg.Game.FPS)
	}
	if cfg.Audio.Volume != 0.9 {
		t.Errorf("Expected environment to override file, got %v", cfg.Audio.Volume)
	}
}

func TestLoadMissingEnvFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("Expected missing env file to be ignored, got %v", err)
	}
}
