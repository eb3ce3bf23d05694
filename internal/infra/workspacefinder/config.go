package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/VakaruGIT/NSMS/internal/domain"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the name of the workspace configuration file.
const ConfigFile = "nsms.yaml"

// LoadConfig loads nsms.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	s := y.NSMS.Server
	if s.Addr != "" {
		cfg.Server.Addr = s.Addr
	}
	durations := []struct {
		field string
		raw   string
		dst   *time.Duration
	}{
		{"server.read_timeout", s.ReadTimeout, &cfg.Server.ReadTimeout},
		{"server.write_timeout", s.WriteTimeout, &cfg.Server.WriteTimeout},
		{"server.shutdown_timeout", s.ShutdownTimeout, &cfg.Server.ShutdownTimeout},
	}
	for _, d := range durations {
		if d.raw == "" {
			continue
		}
		v, err := time.ParseDuration(d.raw)
		if err != nil || v <= 0 {
			return cfg, &domain.OpError{
				Op:   "workspacefinder.loadconfig",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  fmt.Errorf("field %s: invalid duration %q: %w", d.field, d.raw, domain.ErrInvalidConfig),
			}
		}
		*d.dst = v
	}

	l := y.NSMS.Logging
	if l.Debug != nil {
		cfg.Logging.Debug = *l.Debug
	}
	switch l.Format {
	case "":
	case "json", "text":
		cfg.Logging.Format = l.Format
	default:
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("field logging.format: unsupported format %q: %w", l.Format, domain.ErrInvalidConfig),
		}
	}
	if l.Dir != nil {
		cfg.Logging.Dir = *l.Dir
	}

	if y.NSMS.Seed.File != "" {
		cfg.Seed.File = y.NSMS.Seed.File
	}
	if y.NSMS.Paths.ReportsDir != "" {
		cfg.Paths.ReportsDir = y.NSMS.Paths.ReportsDir
	}

	return cfg, nil
}

type yamlConfig struct {
	NSMS struct {
		Server struct {
			Addr            string `yaml:"addr"`
			ReadTimeout     string `yaml:"read_timeout"`
			WriteTimeout    string `yaml:"write_timeout"`
			ShutdownTimeout string `yaml:"shutdown_timeout"`
		} `yaml:"server"`

		Logging struct {
			Debug  *bool   `yaml:"debug"`
			Format string  `yaml:"format"`
			Dir    *string `yaml:"dir"`
		} `yaml:"logging"`

		Seed struct {
			File string `yaml:"file"`
		} `yaml:"seed"`

		Paths struct {
			ReportsDir string `yaml:"reports_dir"`
		} `yaml:"paths"`
	} `yaml:"nsms"`
}
