package ports

import "github.com/VakaruGIT/NSMS/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
