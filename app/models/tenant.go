package models

// Tenant represents a person renting a unit. Tenants are never hard-deleted;
// termination is a soft-delete that flips status and fills the move-out fields.
type Tenant struct {
	ID               int64        `json:"tenant_id"`
	Name             string       `json:"name"`
	Contact          string       `json:"contact"`
	UnitID           *int64       `json:"unit_id"`
	Type             UnitType     `json:"tenant_type"`
	MoveIn           string       `json:"move_in"`
	MoveOut          *string      `json:"move_out,omitempty"`
	Status           TenantStatus `json:"status"`
	GuardianName     string       `json:"guardian_name"`
	GuardianContact  string       `json:"guardian_contact"`
	GuardianRelation string       `json:"guardian_relation"`
	EmergencyContact string       `json:"emergency_contact"`
	AdvancePaid      float64      `json:"advance_paid"`
	DepositPaid      float64      `json:"deposit_paid"`
	MoveOutReason    string       `json:"move_out_reason"`

	// Joined from the units table by listing queries.
	UnitCode  string  `json:"unit_code,omitempty"`
	UnitType  string  `json:"unit_type,omitempty"`
	RoomPrice float64 `json:"room_price,omitempty"`
}
