package config

import (
	"os"

	"github.com/VakaruGIT/NSMS/internal/domain"
	"github.com/VakaruGIT/NSMS/internal/ports"
	"gopkg.in/yaml.v3"
)

// SeedLoader reads seed files from the filesystem.
type SeedLoader struct{}

var _ ports.SeedLoader = SeedLoader{}

func (SeedLoader) LoadSeed(path string) (domain.Seed, error) {
	return LoadSeed(path)
}

func LoadSeed(path string) (domain.Seed, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Seed{}, &domain.OpError{
			Op:   "config.load_seed",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLSeed
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Seed{}, &domain.OpError{
			Op:   "config.load_seed",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapSeed(path, dto)
}
