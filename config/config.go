package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Addr string `yaml:"-"` // computed after load
	} `yaml:"server"`
	DB struct {
		Path string `yaml:"path"` // SQLite database file
	} `yaml:"database"`
	Data struct {
		Dir string `yaml:"dir"` // directory with the JSON seed files
	} `yaml:"data"`
	HuggingFace struct {
		APIKey     string `yaml:"api_key"`
		Model      string `yaml:"model"`
		BaseURL    string `yaml:"base_url"`
		TimeoutSec int    `yaml:"timeout_sec"` // single attempt, no retry
	} `yaml:"huggingface"`
	Concierge struct {
		MinQuestionLen int `yaml:"min_question_len"` // shortest accepted prompt
		MaxSuggestions int `yaml:"max_suggestions"`  // shortlist size
	} `yaml:"concierge"`
	Admin struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"admin"`
	Log struct {
		Level    string `yaml:"level"`
		Format   string `yaml:"format"`
		Output   string `yaml:"output"`
		FilePath string `yaml:"file_path"`
	} `yaml:"log"`
	Scheduler struct {
		DemandRefreshSec int `yaml:"demand_refresh_sec"` // cuisine demand recompute interval
	} `yaml:"scheduler"`
}

// Load reads config.yaml, then lets environment variables override the
// sensitive fields. A missing config.yaml falls back to environment-only
// configuration so the service can still boot in containers.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	var cfg Config

	if data, err := os.ReadFile("config.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Printf("Error loading config.yaml: %v, falling back to environment variables", err)
			return loadFromEnv()
		}
		log.Println("Loading configuration from config.yaml")
		applyEnvOverrides(&cfg)
		applyDefaults(&cfg)
		return &cfg
	}

	return loadFromEnv()
}

// applyEnvOverrides pulls secrets and credentials from the environment so
// they never have to live inside config.yaml.
func applyEnvOverrides(cfg *Config) {
	if key := os.Getenv("HUGGINGFACE_API_KEY"); key != "" {
		cfg.HuggingFace.APIKey = key
	}
	if model := os.Getenv("HUGGINGFACE_MODEL"); model != "" {
		cfg.HuggingFace.Model = model
	}
	if user := os.Getenv("ADMIN_USERNAME"); user != "" {
		cfg.Admin.Username = user
	}
	if pass := os.Getenv("ADMIN_PASSWORD"); pass != "" {
		cfg.Admin.Password = pass
	}
	if path := os.Getenv("DB_PATH"); path != "" {
		cfg.DB.Path = path
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	cfg.Server.Addr = fmt.Sprintf(":%d", cfg.Server.Port)

	if cfg.DB.Path == "" {
		cfg.DB.Path = "finder.db"
	}
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = "data"
	}
	if cfg.HuggingFace.Model == "" {
		cfg.HuggingFace.Model = "mistralai/Mistral-7B-Instruct-v0.2"
	}
	if cfg.HuggingFace.BaseURL == "" {
		cfg.HuggingFace.BaseURL = "https://api-inference.huggingface.co"
	}
	if cfg.HuggingFace.TimeoutSec <= 0 {
		cfg.HuggingFace.TimeoutSec = 10
	}
	if cfg.Concierge.MinQuestionLen <= 0 {
		cfg.Concierge.MinQuestionLen = 4
	}
	if cfg.Concierge.MaxSuggestions <= 0 {
		cfg.Concierge.MaxSuggestions = 3
	}
	if cfg.Scheduler.DemandRefreshSec <= 0 {
		cfg.Scheduler.DemandRefreshSec = 300
	}
}

// loadFromEnv builds a minimal configuration when config.yaml is absent.
func loadFromEnv() *Config {
	var cfg Config

	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	log.Println("Configuration loaded from environment variables, some settings may be missing")
	return &cfg
}
