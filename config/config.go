// Package config builds the application configuration from defaults,
// an optional .env file and TENNIS_* environment variables.
// Command-line flags are applied on top by the caller.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-tennis/constants"
)

// Environment variable names
const (
	EnvFPS          = "TENNIS_FPS"
	EnvSeed         = "TENNIS_SEED"
	EnvHeadless     = "TENNIS_HEADLESS"
	EnvKeys         = "TENNIS_KEYS"
	EnvKeyFile      = "TENNIS_KEYFILE"
	EnvAudio        = "TENNIS_AUDIO"
	EnvVolume       = "TENNIS_VOLUME"
	EnvServe        = "TENNIS_SERVE"
	EnvSpectatorFPS = "TENNIS_SPECTATOR_FPS"
	EnvCORSOrigins  = "TENNIS_CORS_ORIGINS"
	EnvImageWidth   = "TENNIS_IMAGE_WIDTH"
	EnvDebug        = "TENNIS_DEBUG"
)

// =============================================================================
// GAME
// =============================================================================

// GameConfig holds frame loop settings
type GameConfig struct {
	FPS      int    // Target frame rate of the loop ticker
	Seed     int64  // RNG seed; 0 seeds from the clock
	Headless bool   // Attract mode without a terminal
	Keys     string // Keymap overrides, e.g. "w=up,s=down"; applied after KeyFile
	KeyFile  string // Optional TOML key binding file
}

// DefaultGame returns the default game configuration
func DefaultGame() GameConfig {
	return GameConfig{
		FPS: int(time.Second / constants.FrameUpdateInterval),
	}
}

// GameFromEnv returns the game configuration with environment overrides
func GameFromEnv() (GameConfig, error) {
	cfg := DefaultGame()
	var err error

	if cfg.FPS, err = envInt(EnvFPS, cfg.FPS); err != nil {
		return cfg, err
	}
	if cfg.Seed, err = envInt64(EnvSeed, cfg.Seed); err != nil {
		return cfg, err
	}
	if cfg.Headless, err = envBool(EnvHeadless, cfg.Headless); err != nil {
		return cfg, err
	}
	cfg.Keys = os.Getenv(EnvKeys)
	cfg.KeyFile = os.Getenv(EnvKeyFile)

	return cfg, nil
}

// FrameInterval returns the loop ticker period for FPS
func (c GameConfig) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return constants.FrameUpdateInterval
	}
	return time.Second / time.Duration(c.FPS)
}

// =============================================================================
// AUDIO
// =============================================================================

// AudioConfig holds sound settings
type AudioConfig struct {
	Enabled bool
	Volume  float64 // Master volume 0.0 to 1.0
}

// DefaultAudio returns the default audio configuration
func DefaultAudio() AudioConfig {
	return AudioConfig{
		Enabled: true,
		Volume:  0.5,
	}
}

// AudioFromEnv returns the audio configuration with environment overrides
func AudioFromEnv() (AudioConfig, error) {
	cfg := DefaultAudio()
	var err error

	if cfg.Enabled, err = envBool(EnvAudio, cfg.Enabled); err != nil {
		return cfg, err
	}
	if cfg.Volume, err = envFloat(EnvVolume, cfg.Volume); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// =============================================================================
// SPECTATOR SERVER
// =============================================================================

// ServerConfig holds spectator API settings
type ServerConfig struct {
	Addr         string // Listen address; empty disables the server
	SpectatorFPS float64
	CORSOrigins  []string
	ImageWidth   int
}

// DefaultServer returns the default server configuration (disabled)
func DefaultServer() ServerConfig {
	return ServerConfig{
		SpectatorFPS: 30,
		ImageWidth:   800,
	}
}

// ServerFromEnv returns the server configuration with environment overrides
func ServerFromEnv() (ServerConfig, error) {
	cfg := DefaultServer()
	var err error

	cfg.Addr = os.Getenv(EnvServe)
	if cfg.SpectatorFPS, err = envFloat(EnvSpectatorFPS, cfg.SpectatorFPS); err != nil {
		return cfg, err
	}
	if cfg.ImageWidth, err = envInt(EnvImageWidth, cfg.ImageWidth); err != nil {
		return cfg, err
	}
	if v := os.Getenv(EnvCORSOrigins); v != "" {
		cfg.CORSOrigins = splitList(v)
	}

	return cfg, nil
}

// Enabled reports whether the spectator server should run
func (c ServerConfig) Enabled() bool {
	return c.Addr != ""
}

// =============================================================================
// LOGGING
// =============================================================================

// LogConfig holds logging settings
type LogConfig struct {
	Debug bool // Write the log file; otherwise logs are discarded
}

// LogFromEnv returns the log configuration with environment overrides
func LogFromEnv() (LogConfig, error) {
	debug, err := envBool(EnvDebug, false)
	return LogConfig{Debug: debug}, err
}

// =============================================================================
// COMPLETE APP CONFIGURATION
// =============================================================================

// AppConfig holds the complete application configuration
type AppConfig struct {
	Game   GameConfig
	Audio  AudioConfig
	Server ServerConfig
	Log    LogConfig
}

// Default returns the configuration without any overrides
func Default() AppConfig {
	return AppConfig{
		Game:   DefaultGame(),
		Audio:  DefaultAudio(),
		Server: DefaultServer(),
	}
}

// Load reads envFile (missing is fine) and returns the configuration with environment
// overrides. Variables already set in the environment win over the file. Values are
// parsed but not range checked, so command-line flags can still replace them before Validate.
func Load(envFile string) (AppConfig, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(errors.Cause(err)) {
			return AppConfig{}, errors.Wrapf(err, "load %s", envFile)
		}
	}

	var cfg AppConfig
	var err error
	if cfg.Game, err = GameFromEnv(); err != nil {
		return cfg, err
	}
	if cfg.Audio, err = AudioFromEnv(); err != nil {
		return cfg, err
	}
	if cfg.Server, err = ServerFromEnv(); err != nil {
		return cfg, err
	}
	if cfg.Log, err = LogFromEnv(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks value ranges
func (c AppConfig) Validate() error {
	if c.Game.FPS <= 0 || c.Game.FPS > 1000 {
		return errors.Errorf("fps %d out of range 1-1000", c.Game.FPS)
	}
	if !(c.Audio.Volume >= 0 && c.Audio.Volume <= 1) {
		return errors.Errorf("volume %v out of range 0-1", c.Audio.Volume)
	}
	if !(c.Server.SpectatorFPS > 0 && c.Server.SpectatorFPS <= 1000) {
		return errors.Errorf("spectator fps %v out of range (0, 1000]", c.Server.SpectatorFPS)
	}
	if c.Server.ImageWidth < 16 || c.Server.ImageWidth > 4096 {
		return errors.Errorf("image width %d out of range 16-4096", c.Server.ImageWidth)
	}
	return nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def, errors.Wrapf(err, "parse %s", key)
	}
	return i, nil
}

func envInt64(key string, def int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return def, errors.Wrapf(err, "parse %s", key)
	}
	return i, nil
}

func envFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return def, errors.Wrapf(err, "parse %s", key)
	}
	return f, nil
}

func envBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return def, errors.Wrapf(err, "parse %s", key)
	}
	return b, nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
