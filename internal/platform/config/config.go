package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ProviderGemini  = "gemini"
	ProviderFixture = "fixture"
)

type PlannerConfig struct {
	Provider  string
	Model     string
	APIKey    string
	Timeout   time.Duration
	CacheSize int
}

type Config struct {
	DataPath    string
	StateDir    string
	DBPath      string
	LogPath     string
	LogLevel    string
	ProfileName string
	XPRollover  bool
	Planner     PlannerConfig
}

// New returns the default configuration rooted at dataPath.
func New(dataPath string) (Config, error) {
	return Load(dataPath, "")
}

// Load layers defaults, an optional YAML file and WAYNE_* environment
// variables. Without an explicit file, <data>/wayne.yaml is read when present.
func Load(dataPath, file string) (Config, error) {
	if strings.TrimSpace(dataPath) == "" {
		return Config{}, fmt.Errorf("data path is required")
	}
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("wayne")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("planner.api_key", "WAYNE_PLANNER_API_KEY", "GEMINI_API_KEY", "API_KEY"); err != nil {
		return Config{}, fmt.Errorf("bind api key env: %w", err)
	}

	v.SetConfigType("yaml")
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	} else {
		v.SetConfigName("wayne")
		v.AddConfigPath(dataPath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	stateDir := filepath.Join(dataPath, ".wayne")
	cfg := Config{
		DataPath:    dataPath,
		StateDir:    stateDir,
		DBPath:      filepath.Join(stateDir, "wayne.db"),
		LogPath:     filepath.Join(stateDir, "wayne.log"),
		LogLevel:    v.GetString("log.level"),
		ProfileName: strings.TrimSpace(v.GetString("profile.name")),
		XPRollover:  v.GetBool("progression.xp_rollover"),
		Planner: PlannerConfig{
			Provider:  strings.ToLower(strings.TrimSpace(v.GetString("planner.provider"))),
			Model:     strings.TrimSpace(v.GetString("planner.model")),
			APIKey:    strings.TrimSpace(v.GetString("planner.api_key")),
			Timeout:   v.GetDuration("planner.timeout"),
			CacheSize: v.GetInt("planner.cache_size"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Planner.Provider {
	case ProviderGemini, ProviderFixture:
	default:
		return fmt.Errorf("unsupported planner provider %q", c.Planner.Provider)
	}
	if c.Planner.Timeout <= 0 {
		return fmt.Errorf("planner timeout must be positive")
	}
	if c.Planner.CacheSize < 0 {
		return fmt.Errorf("planner cache size must be non-negative")
	}
	if c.ProfileName == "" {
		return fmt.Errorf("profile name is required")
	}
	return nil
}

// UseFixturePlanner reports whether the offline planner should serve requests.
func (c Config) UseFixturePlanner() bool {
	return c.Planner.Provider == ProviderFixture || c.Planner.APIKey == ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("profile.name", "Initiate")
	v.SetDefault("progression.xp_rollover", false)
	v.SetDefault("planner.provider", ProviderGemini)
	v.SetDefault("planner.model", "gemini-3-flash-preview")
	v.SetDefault("planner.api_key", "")
	v.SetDefault("planner.timeout", "60s")
	v.SetDefault("planner.cache_size", 16)
}
