package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Gemini struct {
		Model  string `yaml:"model"`
		APIKey string `yaml:"apiKey"`
	} `yaml:"gemini"`

	Limits struct {
		MaxUploadMB   int `yaml:"maxUploadMB"`
		RatePerMinute int `yaml:"ratePerMinute"`
		Burst         int `yaml:"burst"`
	} `yaml:"limits"`
}

// Load baca file config.yaml. A missing file is not an error: every field has
// a default, and the credential can come from the environment or per request.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.applyDefaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-3-pro-preview"
	}
	if c.Limits.MaxUploadMB == 0 {
		c.Limits.MaxUploadMB = 100
	}
	if c.Limits.RatePerMinute == 0 {
		c.Limits.RatePerMinute = 30
	}
	if c.Limits.Burst == 0 {
		c.Limits.Burst = 10
	}
}

// FallbackAPIKey returns the server-side credential used when a request does
// not carry its own key: the configured value first, then the same env
// variables the Gemini tooling reads.
func (c *Config) FallbackAPIKey() string {
	if c.Gemini.APIKey != "" {
		return c.Gemini.APIKey
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		return v
	}
	return os.Getenv("GOOGLE_API_KEY")
}
