package models

// TenantPatch is a partial update for a tenant row. Nil fields are left
// untouched. Only the fields listed here can be changed through an edit;
// lifecycle fields (status, move_out, move_out_reason) have their own
// operations and are deliberately absent.
type TenantPatch struct {
	Name             *string   `json:"name,omitempty"`
	Contact          *string   `json:"contact,omitempty"`
	UnitID           *int64    `json:"unit_id,omitempty"`
	Type             *UnitType `json:"tenant_type,omitempty"`
	MoveIn           *string   `json:"move_in,omitempty"`
	GuardianName     *string   `json:"guardian_name,omitempty"`
	GuardianContact  *string   `json:"guardian_contact,omitempty"`
	GuardianRelation *string   `json:"guardian_relation,omitempty"`
	EmergencyContact *string   `json:"emergency_contact,omitempty"`
	AdvancePaid      *float64  `json:"advance_paid,omitempty"`
	DepositPaid      *float64  `json:"deposit_paid,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p *TenantPatch) IsEmpty() bool {
	return p.Name == nil && p.Contact == nil && p.UnitID == nil && p.Type == nil &&
		p.MoveIn == nil && p.GuardianName == nil && p.GuardianContact == nil &&
		p.GuardianRelation == nil && p.EmergencyContact == nil &&
		p.AdvancePaid == nil && p.DepositPaid == nil
}

// UnitPatch is a partial update for a unit row. Status is absent on purpose:
// it is derived from the active tenant count and never set directly.
type UnitPatch struct {
	Code     *string  `json:"unit_code,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Capacity *int     `json:"capacity,omitempty"`
}

// StaffPatch is a partial update for a staff row.
type StaffPatch struct {
	Name    *string `json:"name,omitempty"`
	Contact *string `json:"contact,omitempty"`
	Role    *string `json:"role,omitempty"`
}
