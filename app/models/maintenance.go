package models

// MaintenanceRequest represents a repair or service request, optionally tied
// to a tenant. Requests are soft-deleted via the Deleted flag.
type MaintenanceRequest struct {
	ID            int64    `json:"request_id"`
	TenantID      *int64   `json:"tenant_id"`
	Description   string   `json:"description"`
	Priority      Priority `json:"priority"`
	DateRequested string   `json:"date_requested"`
	Status        string   `json:"status"`
	Fee           float64  `json:"fee"`
	Staff         string   `json:"staff"`
	DateCompleted *string  `json:"date_completed,omitempty"`
	Deleted       bool     `json:"deleted"`

	// Joined from the tenants table by listing queries.
	TenantName string `json:"tenant_name,omitempty"`
}
