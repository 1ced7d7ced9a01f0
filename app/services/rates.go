package services

import "strings"

// Fixed monthly utility rates per tenant category. Base rent is read from
// the tenant's unit record, not from here.
const (
	SoloElectricity   = 1500.0
	SoloWater         = 150.0
	FamilyElectricity = 2500.0
	FamilyWater       = 300.0
	DormElectricity   = 150.0
	DormWater         = 80.0
)

// UtilityRates returns the fixed monthly electricity and water charges for a
// tenant category. The lookup is case-insensitive; unknown categories are
// billed nothing.
func UtilityRates(tenantType string) (electricity, water float64) {
	switch strings.ToLower(strings.TrimSpace(tenantType)) {
	case "solo":
		return SoloElectricity, SoloWater
	case "family":
		return FamilyElectricity, FamilyWater
	case "dorm":
		return DormElectricity, DormWater
	default:
		return 0, 0
	}
}
