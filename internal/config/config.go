package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr         string        `yaml:"addr"`
	DatabasePath string        `yaml:"database_path"`
	Environment  string        `yaml:"environment"`
	APITimeout   time.Duration `yaml:"timeout"`
}

// LoadConfig builds the configuration from defaults, a .env file when one is
// present, environment variables, and finally an optional YAML file which
// overrides everything else.
func LoadConfig(path string) (*Config, error) {
	// ignore the error: a missing .env file just means plain env vars
	_ = godotenv.Load()

	cfg := &Config{
		Addr:         getEnv("TINYSTEPS_ADDR", ":8080"),
		DatabasePath: getEnv("TINYSTEPS_DATABASE_PATH", "tinysteps.db"),
		Environment:  getEnv("TINYSTEPS_ENV", "development"),
		APITimeout:   15 * time.Second,
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
