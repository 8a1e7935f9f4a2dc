package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/alarm-led/internal/logger"
)

// Config holds the settings of the alarm-led service.
type Config struct {
	// LogLevel is the minimum level of the application logger.
	LogLevel string `yaml:"log_level"`
	// StatusAddress is the listen address of the gRPC status API; empty disables it.
	StatusAddress string `yaml:"status_addr,omitempty"`
	// MQTT holds the broker connection settings.
	MQTT MQTT `yaml:"mqtt"`
	// Properties are the component properties delivered on activation and update.
	Properties map[string]any `yaml:"properties"`
}

// MQTT holds the broker connection and topic settings.
type MQTT struct {
	// Broker is the broker URL, e.g. tcp://localhost:1883.
	Broker string `yaml:"broker"`
	// ClientID is the MQTT client identifier prefix.
	ClientID string `yaml:"client_id"`
	// Username is an optional broker user.
	Username string `yaml:"username,omitempty"`
	// Password is an optional broker password.
	Password string `yaml:"password,omitempty"`
	// DataTopic is the topic the sensor readings arrive on.
	DataTopic string `yaml:"data_topic"`
	// StatusTopic is the topic the alarm status is published to.
	StatusTopic string `yaml:"status_topic"`
	// QoS is the quality of service for both subscription and publishing.
	QoS byte `yaml:"qos"`
	// Retained marks published status messages as retained.
	Retained bool `yaml:"retained"`
	// Timeout bounds connect and publish acknowledgements.
	Timeout time.Duration `yaml:"timeout"`
	// LogLevel is the level the MQTT library's own log lines are written at.
	LogLevel string `yaml:"log_level,omitempty"`
}

const (
	// DefaultConfigFilename is the default filename for service settings.
	DefaultConfigFilename = "alarm-led-settings.yaml"

	// DefaultClientID is the MQTT client identifier prefix used when none is configured.
	DefaultClientID = "alarm-led"

	// DefaultTimeout is the default duration for network operations.
	DefaultTimeout = 5 * time.Second

	// DefaultLogLevel is used when no log level is configured.
	DefaultLogLevel = "info"

	// DefaultMQTTLogLevel is the level MQTT library diagnostics are written at.
	DefaultMQTTLogLevel = "warn"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600

	// maxQoS is the highest MQTT quality of service level.
	maxQoS = 2
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errBrokerRequired is returned when the broker URL is missing.
	errBrokerRequired = errors.New("mqtt broker must be provided")
	// errTopicRequired is returned when a data or status topic is missing.
	errTopicRequired = errors.New("mqtt data and status topics must be provided")
	// errInvalidQoS is returned when QoS is outside 0..2.
	errInvalidQoS = errors.New("mqtt qos must be 0, 1 or 2")
	// errInvalidLogLevel is returned for an unknown log level name.
	errInvalidLogLevel = errors.New("unknown log level")
)

// Load reads configuration from the provided path and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions, the file may hold broker credentials.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings for required fields and fills defaults.
//
//nolint:cyclop // A flat list of checks reads better than helpers here.
func Validate(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	if settings.LogLevel == "" {
		settings.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(settings.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errInvalidLogLevel, settings.LogLevel)
	}

	if settings.StatusAddress != "" {
		if _, err := net.ResolveTCPAddr("tcp", settings.StatusAddress); err != nil {
			return fmt.Errorf("invalid status address: %w", err)
		}
	}

	mqtt := &settings.MQTT
	if mqtt.Broker == "" {
		return errBrokerRequired
	}

	broker, err := url.Parse(mqtt.Broker)
	if err != nil || broker.Scheme == "" || broker.Host == "" {
		return fmt.Errorf("invalid mqtt broker %q: %w", mqtt.Broker, errBrokerRequired)
	}

	if mqtt.DataTopic == "" || mqtt.StatusTopic == "" {
		return errTopicRequired
	}

	if mqtt.QoS > maxQoS {
		return errInvalidQoS
	}

	if mqtt.ClientID == "" {
		mqtt.ClientID = DefaultClientID
	}

	// Set default timeout if not specified.
	if mqtt.Timeout <= 0 {
		mqtt.Timeout = DefaultTimeout
	}

	if mqtt.LogLevel == "" {
		mqtt.LogLevel = DefaultMQTTLogLevel
	}

	if _, ok := logger.ParseLogLevel(mqtt.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errInvalidLogLevel, mqtt.LogLevel)
	}

	if settings.Properties == nil {
		settings.Properties = make(map[string]any)
	}

	return nil
}
