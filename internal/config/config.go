package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	// Registry holds the capacities of every bounded list.
	Registry struct {
		CourseCapacity       int `yaml:"course_capacity" env:"REGISTRY_COURSE_CAPACITY"`
		StudentCapacity      int `yaml:"student_capacity" env:"REGISTRY_STUDENT_CAPACITY"`
		OfferingCapacity     int `yaml:"offering_capacity" env:"REGISTRY_OFFERING_CAPACITY"`
		PrerequisiteCapacity int `yaml:"prerequisite_capacity" env:"REGISTRY_PREREQUISITE_CAPACITY"`
		CompletedCapacity    int `yaml:"completed_capacity" env:"REGISTRY_COMPLETED_CAPACITY"`
		AttendeeCapacity     int `yaml:"attendee_capacity" env:"REGISTRY_ATTENDEE_CAPACITY"`
	} `yaml:"registry"`

	Seed struct {
		Path string `yaml:"path" env:"SEED_PATH"`
	} `yaml:"seed"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Default returns a configuration holding only the defaults.
func Default() *Config {
	config := &Config{}
	setDefaults(config)
	return config
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Registry.CourseCapacity = 50
	config.Registry.StudentCapacity = 50
	config.Registry.OfferingCapacity = 50
	config.Registry.PrerequisiteCapacity = 10
	config.Registry.CompletedCapacity = 50
	config.Registry.AttendeeCapacity = 15

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if strings.TrimSpace(config.Server.Port) == "" {
		return fmt.Errorf("server port is required")
	}
	if _, err := strconv.Atoi(config.Server.Port); err != nil {
		return fmt.Errorf("server port must be numeric: %w", err)
	}

	capacities := map[string]int{
		"course_capacity":       config.Registry.CourseCapacity,
		"student_capacity":      config.Registry.StudentCapacity,
		"offering_capacity":     config.Registry.OfferingCapacity,
		"prerequisite_capacity": config.Registry.PrerequisiteCapacity,
		"completed_capacity":    config.Registry.CompletedCapacity,
		"attendee_capacity":     config.Registry.AttendeeCapacity,
	}
	for name, value := range capacities {
		if value <= 0 {
			return fmt.Errorf("registry %s must be positive, got %d", name, value)
		}
	}

	switch strings.ToLower(config.Logging.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("logging format must be json or text, got %q", config.Logging.Format)
	}

	return nil
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
