package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jaesumin02/Apartment-Billing-System/app/database"
	"github.com/jaesumin02/Apartment-Billing-System/app/models"
)

// RecomputeUnitStatus derives a unit's occupancy status from its live active
// tenant count and persists it. It runs synchronously after every tenancy
// mutation that touches the unit; units never change status any other way.
func RecomputeUnitStatus(db *sql.DB, unitID int64) error {
	unit, err := database.GetUnitByID(db, unitID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("recompute unit %d: %w", unitID, ErrNotFound)
		}
		return err
	}

	n, err := database.CountActiveTenantsInUnit(db, unitID)
	if err != nil {
		return err
	}

	status := deriveStatus(unit, n)
	if status == unit.Status {
		return nil
	}
	return database.UpdateUnitStatus(db, unitID, status)
}

func deriveStatus(unit *models.Unit, activeCount int) models.UnitStatus {
	if unit.Type == models.UnitDorm {
		switch {
		case activeCount >= unit.EffectiveCapacity():
			return models.UnitFull
		case activeCount > 0:
			return models.UnitOccupied
		default:
			return models.UnitVacant
		}
	}
	if activeCount > 0 {
		return models.UnitOccupied
	}
	return models.UnitVacant
}
