package models

// Project is the projects row.
type Project struct {
	ProjectID   string `db:"project_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	IsActive    bool   `db:"is_active"`
	AuditFields
}
