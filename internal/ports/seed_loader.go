package ports

import "github.com/VakaruGIT/NSMS/internal/domain"

// SeedLoader loads initial agency content from a source (e.g., filesystem).
type SeedLoader interface {
	LoadSeed(path string) (domain.Seed, error)
}
