package models

// DormDefaultCapacity caps how many active tenants a dorm unit can hold,
// even when the stored capacity column says more.
const DormDefaultCapacity = 6

// Unit represents a rentable unit in the complex.
type Unit struct {
	ID       int64      `json:"unit_id"`
	Code     string     `json:"unit_code"`
	Type     UnitType   `json:"unit_type"`
	Price    float64    `json:"price"`
	Status   UnitStatus `json:"status"`
	Capacity int        `json:"capacity"`

	// TenantCount is the number of active tenants, populated by listing queries.
	TenantCount int `json:"tenant_count,omitempty"`
}

// EffectiveCapacity returns the number of tenants the unit can actually hold.
// Dorm capacity is clamped to DormDefaultCapacity; other unit types hold one.
func (u *Unit) EffectiveCapacity() int {
	if u.Type != UnitDorm {
		return 1
	}
	cap := u.Capacity
	if cap <= 0 || cap > DormDefaultCapacity {
		cap = DormDefaultCapacity
	}
	return cap
}

// DormShare is the per-tenant advance/deposit minimum for a dorm unit:
// the unit's monthly price split across its effective capacity.
func (u *Unit) DormShare() float64 {
	cap := u.EffectiveCapacity()
	if cap == 0 {
		return 0
	}
	return u.Price / float64(cap)
}
