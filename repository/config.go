package repository

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the source file used when no path is configured.
const DefaultPath = "countries.json"

// Config controls where and how the repository loads its snapshot.
type Config struct {
	// Path locates the JSON country document.
	Path string `json:"path" yaml:"path"`
	// MaxRecords caps the number of decoded records (0 = unlimited).
	MaxRecords int `json:"max_records" yaml:"max_records"`
}

// NewConfig returns a configuration with default values.
func NewConfig() Config {
	return Config{Path: DefaultPath}
}

// WithDefaults fills zero-valued fields with defaults.
func (c Config) WithDefaults() Config {
	if c.Path == "" {
		c.Path = DefaultPath
	}
	return c
}

// LoadConfigFromFile loads configuration from a JSON or YAML file.
func LoadConfigFromFile(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", filename, err)
	}

	var config Config
	switch {
	case strings.HasSuffix(filename, ".json"):
		err = json.Unmarshal(data, &config)
	case strings.HasSuffix(filename, ".yaml"), strings.HasSuffix(filename, ".yml"):
		err = yaml.Unmarshal(data, &config)
	default:
		return Config{}, fmt.Errorf("unsupported config file format: %s", filename)
	}

	if err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", filename, err)
	}

	return config.WithDefaults(), nil
}
