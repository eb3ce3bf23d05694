package domain

import "time"

// Config represents the NSMS configuration loaded from nsms.yaml.
type Config struct {
	Server  ServerConfig
	Logging LoggingConfig
	Seed    SeedConfig
	Paths   PathsConfig
}

type ServerConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type LoggingConfig struct {
	Debug  bool
	Format string // json|text
	Dir    string // empty means stderr
}

type SeedConfig struct {
	File string
}

type PathsConfig struct {
	ReportsDir string
}

// DefaultConfig provides sane defaults if nsms.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Logging: LoggingConfig{
			Format: "json",
			Dir:    ".nsms/logs",
		},
		Seed: SeedConfig{
			File: "seed.yaml",
		},
		Paths: PathsConfig{
			ReportsDir: "reports",
		},
	}
}

// WorkspaceSpec describes where `nsms init` scaffolds files.
type WorkspaceSpec struct {
	Root string
}
