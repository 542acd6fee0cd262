package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	LLM      LLMConfig      `yaml:"llm"`
	Analyzer AnalyzerConfig `yaml:"analyzer"`
	Store    StoreConfig    `yaml:"store"`
	Archive  ArchiveConfig  `yaml:"archive"`
	Auth     AuthConfig     `yaml:"auth"`
	Users    []User         `yaml:"users"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// LLMConfig selects and configures the generation backend.
type LLMConfig struct {
	Provider string       `yaml:"provider"` // gemini, openai
	Gemini   GeminiConfig `yaml:"gemini"`
	OpenAI   OpenAIConfig `yaml:"openai"`
}

type GeminiConfig struct {
	APIKey         string `yaml:"api_key"`
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type OpenAIConfig struct {
	APIKey         string `yaml:"api_key"`
	BaseURL        string `yaml:"base_url"` // any OpenAI-compatible endpoint
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// AnalyzerConfig holds the analysis parameters. Zero values fall back to the
// analyzer package defaults.
type AnalyzerConfig struct {
	DefaultModel         string `yaml:"default_model"`
	LongContextModel     string `yaml:"long_context_model"`
	LongContextThreshold int    `yaml:"long_context_threshold"`
	MaxWords             int    `yaml:"max_words"`
	ModelOverride        string `yaml:"model_override"`
}

type StoreConfig struct {
	MaxAnalyses int `yaml:"max_analyses"`
}

// ArchiveConfig configures the optional MinIO result archive.
type ArchiveConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Endpoint   string `yaml:"endpoint"`
	AccessKey  string `yaml:"access_key"`
	SecretKey  string `yaml:"secret_key"`
	Bucket     string `yaml:"bucket"`
	UseSSL     bool   `yaml:"use_ssl"`
	ExpireDays int    `yaml:"expire_days"`
}

type AuthConfig struct {
	JWTSecret        string `yaml:"jwt_secret"`
	TokenExpireHours int    `yaml:"token_expire_hours"`
}

type User struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Tenant   string `yaml:"tenant"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Set defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "gemini"
	}
	if cfg.LLM.Gemini.BaseURL == "" {
		cfg.LLM.Gemini.BaseURL = "https://generativelanguage.googleapis.com"
	}
	if cfg.LLM.Gemini.TimeoutSeconds == 0 {
		cfg.LLM.Gemini.TimeoutSeconds = 60
	}
	if cfg.LLM.OpenAI.TimeoutSeconds == 0 {
		cfg.LLM.OpenAI.TimeoutSeconds = 60
	}
	if cfg.Store.MaxAnalyses == 0 {
		cfg.Store.MaxAnalyses = 100
	}
	if cfg.Archive.ExpireDays == 0 {
		cfg.Archive.ExpireDays = 7
	}
	if cfg.Auth.TokenExpireHours == 0 {
		cfg.Auth.TokenExpireHours = 24
	}

	// API keys prefer the environment so secrets can stay out of the file
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		cfg.LLM.Gemini.APIKey = key
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.LLM.OpenAI.APIKey = key
	}

	return &cfg, nil
}

// FindUser finds a user by username
func (c *Config) FindUser(username string) *User {
	for i := range c.Users {
		if c.Users[i].Username == username {
			return &c.Users[i]
		}
	}
	return nil
}
