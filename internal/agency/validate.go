package agency

import (
	"math"
	"strings"

	"github.com/VakaruGIT/NSMS/internal/domain"
)

func validateNewspaper(op string, n domain.Newspaper) error {
	if strings.TrimSpace(n.Name) == "" {
		return domain.InvalidInput(op, "name", "newspaper name is required")
	}
	if n.Frequency <= 0 {
		return domain.InvalidInput(op, "frequency", "frequency must be a positive number of days")
	}
	if n.Price < 0 || math.IsNaN(n.Price) || math.IsInf(n.Price, 0) {
		return domain.InvalidInput(op, "price", "price must be a non-negative number")
	}
	return nil
}

func validatePerson(op, entity, name string) error {
	if strings.TrimSpace(name) == "" {
		return domain.InvalidInput(op, "name", entity+" name is required")
	}
	return nil
}

func validateIssue(op string, is domain.Issue) error {
	if is.Pages < 0 {
		return domain.InvalidInput(op, "pages", "page count cannot be negative")
	}
	return nil
}

func validateID(op, field string, id domain.ID) error {
	if id < 0 {
		return domain.InvalidInput(op, field, "identifier cannot be negative")
	}
	return nil
}
