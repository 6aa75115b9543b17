package repositories

import (
	"context"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
)

// ProjectRepository is the reference lookup used to resolve voucher project
// tags and validate report filters.
type ProjectRepository interface {
	SaveProject(ctx context.Context, project domain.Project) error
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
	ListProjects(ctx context.Context, activeOnly bool) ([]domain.Project, error)
}
