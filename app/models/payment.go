package models

// Payment represents a rent/utility payment or invoice for a tenant.
// Total is always recomputed from the three components at write time.
type Payment struct {
	ID          int64         `json:"payment_id"`
	TenantID    int64         `json:"tenant_id"`
	Rent        float64       `json:"rent"`
	Electricity float64       `json:"electricity"`
	Water       float64       `json:"water"`
	Total       float64       `json:"total"`
	DatePaid    *string       `json:"date_paid,omitempty"`
	Status      PaymentStatus `json:"status"`
	Note        string        `json:"note"`

	// Joined from the tenants table by listing queries.
	TenantName string `json:"tenant_name,omitempty"`
	TenantType string `json:"tenant_type,omitempty"`
}
