// Package config provides the configuration structure for the detection-service.
package config

import (
	"fmt"

	"github.com/book-expert/configurator"
	"github.com/book-expert/logger"
)

// NATSConfig holds the configuration for NATS.
type NATSConfig struct {
	URL                      string `toml:"url"`
	DetectionStreamName      string `toml:"detection_stream_name"`
	DetectionConsumerName    string `toml:"detection_consumer_name"`
	TextSubmittedSubject     string `toml:"text_submitted_subject"`
	AnalysisCompletedSubject string `toml:"analysis_completed_subject"`
	TextObjectStoreBucket    string `toml:"text_object_store_bucket"`
	ReportObjectStoreBucket  string `toml:"report_object_store_bucket"`
}

// DetectionConfig holds the specific configuration for the analysis engine.
type DetectionConfig struct {
	MinTextLength int `toml:"min_text_length"`
}

// HTTPConfig holds the configuration for the HTTP API.
type HTTPConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// PathsConfig holds the configuration for file paths.
type PathsConfig struct {
	BaseLogsDir string `toml:"base_logs_dir"`
}

// Config is the root configuration structure.
type Config struct {
	NATS      NATSConfig      `toml:"nats"`
	Detection DetectionConfig `toml:"detection"`
	HTTP      HTTPConfig      `toml:"http"`
	Paths     PathsConfig     `toml:"paths"`
}

// Load loads the configuration for the detection-service.
func Load(log *logger.Logger) (*Config, error) {
	var cfg Config

	err := configurator.Load(&cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration from configurator: %w", err)
	}

	return &cfg, nil
}

// ListenAddress returns the host:port pair the HTTP API binds to.
func (c *Config) ListenAddress() string {
	return fmt.Sprintf("%s:%d", c.HTTP.Host, c.HTTP.Port)
}
