package domain

// Project is a reference entity used to tag vouchers and filter reports.
type Project struct {
	ProjectID   string `json:"projectID"` // Primary Key (UUID)
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}
