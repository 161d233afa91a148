package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"     validate:"required"`
	Database   DatabaseConfig   `mapstructure:"database"   validate:"required"`
	Deployment DeploymentConfig `mapstructure:"deployment" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"             validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level"        validate:"required,oneof=debug info warn error"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL                 string        `mapstructure:"url"                   validate:"required,url"`
	ConnectTimeout      time.Duration `mapstructure:"connect_timeout"       validate:"gt=0"`
	HealthCheckInterval time.Duration `mapstructure:"health_check_interval" validate:"gt=0"`
	MaxOpenConns        int           `mapstructure:"max_open_conns"        validate:"gte=1"`
	MaxIdleConns        int           `mapstructure:"max_idle_conns"        validate:"gte=0"`
	// Seed inserts the demo task set when the tasks table is empty.
	Seed bool `mapstructure:"seed"`
}

// DeploymentConfig contains the labels describing where this instance runs.
// These values are echoed back by the environment endpoint, so nothing secret
// belongs here.
type DeploymentConfig struct {
	Environment string `mapstructure:"environment" validate:"required"`
	Cluster     string `mapstructure:"cluster"     validate:"required"`
	Version     string `mapstructure:"version"     validate:"required"`
	ID          string `mapstructure:"id"          validate:"required"`
}
