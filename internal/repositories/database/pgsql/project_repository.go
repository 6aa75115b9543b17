package pgsql

import (
	"context"
	"errors"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	"github.com/bizbooks/bizbooks_backend/internal/models"
	"github.com/bizbooks/bizbooks_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxProjectRepository stores projects in PostgreSQL.
type PgxProjectRepository struct {
	BaseRepository
}

// newPgxProjectRepository creates a new repository for project data.
func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepository {
	return &PgxProjectRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ProjectRepository = (*PgxProjectRepository)(nil)

func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	model := mapping.ToModelProject(project)
	query := `
		INSERT INTO projects (
			project_id, name, description, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		model.ProjectID,
		model.Name,
		model.Description,
		model.IsActive,
		model.CreatedAt,
		model.CreatedBy,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert project "+model.ProjectID, err)
	}
	return nil
}

func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `
		SELECT project_id, name, description, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM projects
		WHERE project_id = $1;
	`
	var model models.Project
	err := r.Pool.QueryRow(ctx, query, projectID).Scan(
		&model.ProjectID,
		&model.Name,
		&model.Description,
		&model.IsActive,
		&model.CreatedAt,
		&model.CreatedBy,
		&model.LastUpdatedAt,
		&model.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find project by ID "+projectID, err)
	}
	project := mapping.ToDomainProject(model)
	return &project, nil
}

func (r *PgxProjectRepository) ListProjects(ctx context.Context, activeOnly bool) ([]domain.Project, error) {
	query := `
		SELECT project_id, name, description, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM projects
	`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name ASC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list projects", err)
	}
	defer rows.Close()

	projects := make([]domain.Project, 0)
	for rows.Next() {
		var model models.Project
		if err := rows.Scan(
			&model.ProjectID,
			&model.Name,
			&model.Description,
			&model.IsActive,
			&model.CreatedAt,
			&model.CreatedBy,
			&model.LastUpdatedAt,
			&model.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan project row", err)
		}
		projects = append(projects, mapping.ToDomainProject(model))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating project rows", err)
	}
	return projects, nil
}
