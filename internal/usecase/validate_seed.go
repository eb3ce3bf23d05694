package usecase

import (
	"github.com/VakaruGIT/NSMS/internal/domain"
	"github.com/VakaruGIT/NSMS/internal/ports"
)

// ValidateSeed checks a seed file without touching a live agency: the file is
// parsed and then applied to a scratch agency built by newAgency, so
// duplicate IDs and dangling references surface the same way they would at
// startup.
type ValidateSeed struct {
	loader    ports.SeedLoader
	newAgency func() ports.AgencyWriter
}

func NewValidateSeed(loader ports.SeedLoader, newAgency func() ports.AgencyWriter) *ValidateSeed {
	return &ValidateSeed{loader: loader, newAgency: newAgency}
}

func (uc *ValidateSeed) Execute(path string) (domain.SeedSummary, error) {
	seed, err := uc.loader.LoadSeed(path)
	if err != nil {
		return domain.SeedSummary{}, err
	}
	return ApplySeed(uc.newAgency(), seed)
}
