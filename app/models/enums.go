package models

// UnitType defines the category of a rentable unit.
type UnitType string

const (
	UnitSolo   UnitType = "Solo"
	UnitFamily UnitType = "Family"
	UnitDorm   UnitType = "Dorm"
)

// UnitStatus defines the derived occupancy status of a unit.
// It is only ever written by the occupancy recomputation, never set directly.
type UnitStatus string

const (
	UnitVacant   UnitStatus = "Vacant"
	UnitOccupied UnitStatus = "Occupied"
	UnitFull     UnitStatus = "Full"
)

// TenantStatus defines the lifecycle status of a tenant.
type TenantStatus string

const (
	TenantActive     TenantStatus = "Active"
	TenantTerminated TenantStatus = "Terminated"
)

// PaymentStatus defines the status of a payment record.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentDue     PaymentStatus = "Due"
	PaymentOverdue PaymentStatus = "Overdue"
	PaymentRefund  PaymentStatus = "Refund"
)

// Priority defines the urgency of a maintenance request.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// MaintenancePending is the initial status of every maintenance request.
const MaintenancePending = "Pending"

// StaffStatus defines the lifecycle status of a staff member.
type StaffStatus string

const (
	StaffActive   StaffStatus = "Active"
	StaffArchived StaffStatus = "Archived"
)
