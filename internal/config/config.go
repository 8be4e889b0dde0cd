// Package config loads FileTransform settings from environment variables
// with defaults, and validates them on startup to fail fast on
// misconfiguration. A .env file next to the program is loaded by main
// before Load runs.
package config

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Batch   BatchConfig
	Logging LoggingConfig
}

// BatchConfig holds folder discovery settings.
type BatchConfig struct {
	// FolderName is the input folder looked up next to the program, then
	// one level up (default: FileTransform)
	FolderName string `env:"FILETRANSFORM_FOLDER" default:"FileTransform"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`

	// Dir receives one timestamped log file per run; "-" disables the
	// file and logs to stdout only (default: logs)
	Dir string `env:"LOG_DIR" envAlt:"FILETRANSFORM_LOG_DIR" default:"logs"`
}

// FileLoggingEnabled reports whether a log file should be written.
func (c *LoggingConfig) FileLoggingEnabled() bool {
	return c.Dir != "" && c.Dir != "-"
}
