package ports

import "github.com/VakaruGIT/NSMS/internal/domain"

// IDGenerator hands out identifiers for entities created without one.
type IDGenerator interface {
	NextID() domain.ID
}
