package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUtilityRates(t *testing.T) {
	tests := []struct {
		name       string
		tenantType string
		wantElec   float64
		wantWater  float64
	}{
		{"solo", "Solo", 1500.0, 150.0},
		{"family", "Family", 2500.0, 300.0},
		{"dorm", "Dorm", 150.0, 80.0},
		{"case insensitive", "dOrM", 150.0, 80.0},
		{"whitespace trimmed", "  solo ", 1500.0, 150.0},
		{"unknown category billed nothing", "Penthouse", 0.0, 0.0},
		{"empty", "", 0.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elec, water := UtilityRates(tt.tenantType)
			assert.Equal(t, tt.wantElec, elec)
			assert.Equal(t, tt.wantWater, water)
		})
	}
}
