package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jaesumin02/Apartment-Billing-System/app/database"
	"github.com/jaesumin02/Apartment-Billing-System/app/models"
)

// ValidateTenantFields applies the field rules the original intake form
// enforced: two-token full names for tenant and guardian, digits-only
// guardian contact. The dorm rules are checked separately at write time.
func ValidateTenantFields(name, guardianName, guardianContact string) error {
	if len(strings.Fields(name)) < 2 {
		return &ValidationError{Field: "name", Message: "full name (first and last) is required"}
	}
	if len(strings.Fields(guardianName)) < 2 {
		return &ValidationError{Field: "guardian_name", Message: "guardian full name is required for all tenants"}
	}
	if guardianContact == "" || !isDigits(guardianContact) {
		return &ValidationError{Field: "guardian_contact", Message: "guardian contact is required and must contain digits only"}
	}
	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// checkDormRules enforces the two hard dorm invariants against a target
// unit: the capacity ceiling and the minimum per-tenant advance share.
// excludeSelf discounts the tenant's own existing occupancy of the unit,
// for edits that keep the tenant in place.
func checkDormRules(db *sql.DB, unit *models.Unit, advancePaid float64, excludeSelf bool) error {
	if unit.Type != models.UnitDorm {
		return nil
	}

	cap := unit.EffectiveCapacity()
	existing, err := database.CountActiveTenantsInUnit(db, unit.ID)
	if err != nil {
		return err
	}
	if excludeSelf {
		existing--
	}
	if existing >= cap {
		return fmt.Errorf("dorm %s holds %d of %d: %w", unit.Code, existing, cap, ErrCapacityExceeded)
	}

	share := unit.DormShare()
	if share > 0 && advancePaid < share {
		return fmt.Errorf("advance %.2f below per-tenant share %.2f: %w", advancePaid, share, ErrInsufficientAdvance)
	}
	return nil
}

// CreateTenant inserts a new active tenant after enforcing the dorm capacity
// and advance rules, then brings the unit's occupancy status up to date.
func CreateTenant(db *sql.DB, t *models.Tenant) (int64, error) {
	t.Status = models.TenantActive
	t.MoveOut = nil
	t.MoveOutReason = ""

	if t.UnitID != nil {
		unit, err := database.GetUnitByID(db, *t.UnitID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return 0, fmt.Errorf("unit %d: %w", *t.UnitID, ErrNotFound)
			}
			return 0, err
		}
		if err := checkDormRules(db, unit, t.AdvancePaid, false); err != nil {
			return 0, err
		}
	}

	id, err := database.CreateTenant(db, t)
	if err != nil {
		return 0, err
	}

	if t.UnitID != nil {
		if err := RecomputeUnitStatus(db, *t.UnitID); err != nil {
			return id, err
		}
	}
	return id, nil
}

// TransferOrEdit applies a typed patch to a tenant. A unit change is
// re-validated against the new unit's dorm rules, discounting the tenant's
// own prior occupancy, and both units' statuses are recomputed.
func TransferOrEdit(db *sql.DB, tenantID int64, patch *models.TenantPatch) error {
	current, err := database.GetTenantByID(db, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("tenant %d: %w", tenantID, ErrNotFound)
		}
		return err
	}
	if patch.IsEmpty() {
		return nil
	}

	var oldUnitID *int64
	if current.UnitID != nil {
		id := *current.UnitID
		oldUnitID = &id
	}

	unitChanged := patch.UnitID != nil && (current.UnitID == nil || *patch.UnitID != *current.UnitID)
	if patch.UnitID != nil {
		newUnit, err := database.GetUnitByID(db, *patch.UnitID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("unit %d: %w", *patch.UnitID, ErrNotFound)
			}
			return err
		}

		advance := current.AdvancePaid
		if patch.AdvancePaid != nil {
			advance = *patch.AdvancePaid
		}

		sameUnit := current.UnitID != nil && *current.UnitID == newUnit.ID
		if err := checkDormRules(db, newUnit, advance, sameUnit && current.Status == models.TenantActive); err != nil {
			return err
		}
	}

	if err := database.UpdateTenant(db, tenantID, patch); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("tenant %d: %w", tenantID, ErrNotFound)
		}
		return err
	}

	if unitChanged {
		if oldUnitID != nil {
			if err := RecomputeUnitStatus(db, *oldUnitID); err != nil {
				return err
			}
		}
		if err := RecomputeUnitStatus(db, *patch.UnitID); err != nil {
			return err
		}
	} else if oldUnitID != nil {
		if err := RecomputeUnitStatus(db, *oldUnitID); err != nil {
			return err
		}
	}
	return nil
}

// Terminate soft-deletes a tenant: status flips to Terminated, the move-out
// date and reason are recorded, and the unit's status is recomputed.
// Terminating twice is reported, not silently absorbed.
func Terminate(db *sql.DB, tenantID int64, moveOutDate, reason string) error {
	t, err := database.GetTenantByID(db, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("tenant %d: %w", tenantID, ErrNotFound)
		}
		return err
	}
	if t.Status == models.TenantTerminated {
		return ErrAlreadyTerminated
	}

	if err := database.TerminateTenant(db, tenantID, moveOutDate, reason); err != nil {
		return err
	}

	if t.UnitID != nil {
		return RecomputeUnitStatus(db, *t.UnitID)
	}
	return nil
}

// Restore returns a terminated tenant to Active, clears the move-out fields,
// and recomputes the unit's status.
func Restore(db *sql.DB, tenantID int64) error {
	t, err := database.GetTenantByID(db, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("tenant %d: %w", tenantID, ErrNotFound)
		}
		return err
	}

	if err := database.RestoreTenant(db, tenantID); err != nil {
		return err
	}

	if t.UnitID != nil {
		return RecomputeUnitStatus(db, *t.UnitID)
	}
	return nil
}
