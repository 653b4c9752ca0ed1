// Package config loads the optional ridewise.yaml project file.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Richard-Gidi/Ridewise/pkg/ridewise"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type StorageConfig struct {
	Bucket   string `yaml:"bucket"`
	Prefix   string `yaml:"prefix"`
	Region   string `yaml:"region,omitempty"`
	Endpoint string `yaml:"endpoint,omitempty"`
}

type ConnectionConfig struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	Username   string `yaml:"username"`
	Database   string `yaml:"database"`
	SSLMode    string `yaml:"sslmode"`
	AuthMethod string `yaml:"auth_method,omitempty"`
	AWSRegion  string `yaml:"aws_region,omitempty"`
}

// ProjectConfig is the ridewise.yaml shape. Credentials are never read
// from this file; the database password comes from $PGPASSWORD or a
// connection string, S3 credentials from the AWS default chain.
type ProjectConfig struct {
	Storage    StorageConfig    `yaml:"storage"`
	Connection ConnectionConfig `yaml:"connection"`
	Timeout    string           `yaml:"timeout"`
}

// Load reads ridewise.yaml from dir. A missing file returns
// ErrConfigNotFound; callers treat that as "no project config".
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ridewise.ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
