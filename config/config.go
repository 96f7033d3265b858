package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

// ErrMissingAPIKey is fatal at startup: the service cannot generate
// copy without a credential and there is no degraded mode.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY not set in environment")

// AppConfig carries the whole service configuration. It is loaded once
// at process start and passed by reference into components; nothing
// reads ambient globals after Load returns.
type AppConfig struct {
	Logging         LoggingConfig `yaml:"logging"`
	Server          ServerConfig  `yaml:"server"`
	GeminiModel     string        `yaml:"gemini_model"`
	Agent           AgentConfig   `yaml:"agent"`
	Fonts           FontConfig    `yaml:"fonts"`
	Mongo           MongoConfig   `yaml:"mongo"`
	GenerationQuota QuotaConfig   `yaml:"generation_quota"`

	// GeminiAPIKey comes from the environment only, never from yaml.
	GeminiAPIKey string `yaml:"-"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

// AgentConfig holds the default operator identity shown on the poster
// footer when the form leaves a field empty.
type AgentConfig struct {
	Name  string `yaml:"name"`
	Role  string `yaml:"role"`
	Phone string `yaml:"phone"`
}

type FontConfig struct {
	RegularPath string `yaml:"regular"`
	BoldPath    string `yaml:"bold"`
}

// MongoConfig is optional: an empty URI disables generation logging.
type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

// QuotaConfig limits Gemini calls. Values of 0 or below disable the
// corresponding limit.
type QuotaConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
	RequestsPerDay    int `yaml:"requests_per_day"`
}

// Load reads .env and config.yaml and applies environment overrides.
func Load() (*AppConfig, error) {
	godotenv.Load(filepath.Join(basePath(), ENV_FILE))

	data, err := os.ReadFile(filepath.Join(basePath(), CONFIG_FILE))
	if err != nil {
		return nil, err
	}

	var c AppConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}

	c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	if c.GeminiAPIKey == "" {
		return nil, ErrMissingAPIKey
	}

	if v := os.Getenv("AGENT_NAME"); v != "" {
		c.Agent.Name = v
	}
	if v := os.Getenv("AGENT_ROLE"); v != "" {
		c.Agent.Role = v
	}
	if v := os.Getenv("AGENT_PHONE"); v != "" {
		c.Agent.Phone = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}

	if c.GeminiModel == "" {
		c.GeminiModel = "gemini-2.5-pro"
	}
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Fonts.RegularPath == "" {
		c.Fonts.RegularPath = filepath.Join(basePath(), "fonts", "NotoSansTamil-Regular.ttf")
	}
	if c.Fonts.BoldPath == "" {
		c.Fonts.BoldPath = filepath.Join(basePath(), "fonts", "NotoSansTamil-Bold.ttf")
	}

	return &c, nil
}

// basePath walks up from the working directory until it finds the
// directory holding config.yaml, so tests in nested packages resolve
// the same files as the binary.
func basePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
