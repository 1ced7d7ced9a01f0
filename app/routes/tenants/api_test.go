package tenants

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaesumin02/Apartment-Billing-System/app/config"
	"github.com/jaesumin02/Apartment-Billing-System/app/database"
	"github.com/jaesumin02/Apartment-Billing-System/app/models"
	"github.com/jaesumin02/Apartment-Billing-System/app/routes/auth"
)

const testSecret = "test-secret"

func setupTestApp(t *testing.T) (*fiber.App, *sql.DB, string) {
	t.Helper()

	db, err := config.OpenDB(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))
	t.Cleanup(func() { db.Close() })

	app := fiber.New()
	SetupTenantsRoutes(app, db, testSecret)

	token, err := auth.GenerateJWT(testSecret, 1, "admin")
	require.NoError(t, err)

	return app, db, token
}

func jsonRequest(t *testing.T, method, target, token string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestCreateTenantAPI(t *testing.T) {
	app, db, token := setupTestApp(t)

	unitID, err := database.CreateUnit(db, "S01", models.UnitSolo, 4500, 1)
	require.NoError(t, err)

	resp, err := app.Test(jsonRequest(t, "POST", "/api/tenants/", token, fiber.Map{
		"name":             "Juan Dela Cruz",
		"contact":          "09170000000",
		"unit_id":          unitID,
		"tenant_type":      "Solo",
		"guardian_name":    "Maria Dela Cruz",
		"guardian_contact": "09171234567",
	}))
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	unit, err := database.GetUnitByID(db, unitID)
	require.NoError(t, err)
	assert.Equal(t, models.UnitOccupied, unit.Status)
}

func TestCreateTenantAPIRejectsBadGuardianContact(t *testing.T) {
	app, _, token := setupTestApp(t)

	resp, err := app.Test(jsonRequest(t, "POST", "/api/tenants/", token, fiber.Map{
		"name":             "Juan Dela Cruz",
		"tenant_type":      "Solo",
		"guardian_name":    "Maria Dela Cruz",
		"guardian_contact": "not-a-number",
	}))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestCreateTenantAPIDormCapacityConflict(t *testing.T) {
	app, db, token := setupTestApp(t)

	dormID, err := database.CreateUnit(db, "D01", models.UnitDorm, 6000, 2)
	require.NoError(t, err)

	// share = 3000; fill both slots.
	for i := 1; i <= 2; i++ {
		resp, err := app.Test(jsonRequest(t, "POST", "/api/tenants/", token, fiber.Map{
			"name":             fmt.Sprintf("Tenant Number%d", i),
			"unit_id":          dormID,
			"tenant_type":      "Dorm",
			"guardian_name":    "Maria Dela Cruz",
			"guardian_contact": "09171234567",
			"advance_paid":     3000,
		}))
		require.NoError(t, err)
		require.Equal(t, 201, resp.StatusCode)
	}

	resp, err := app.Test(jsonRequest(t, "POST", "/api/tenants/", token, fiber.Map{
		"name":             "Tenant Number3",
		"unit_id":          dormID,
		"tenant_type":      "Dorm",
		"guardian_name":    "Maria Dela Cruz",
		"guardian_contact": "09171234567",
		"advance_paid":     3000,
	}))
	require.NoError(t, err)
	assert.Equal(t, 409, resp.StatusCode)
}

func TestTerminateTwiceIsInformational(t *testing.T) {
	app, db, token := setupTestApp(t)

	unitID, err := database.CreateUnit(db, "S02", models.UnitSolo, 4500, 1)
	require.NoError(t, err)
	resp, err := app.Test(jsonRequest(t, "POST", "/api/tenants/", token, fiber.Map{
		"name":             "Juan Dela Cruz",
		"unit_id":          unitID,
		"tenant_type":      "Solo",
		"guardian_name":    "Maria Dela Cruz",
		"guardian_contact": "09171234567",
	}))
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	var created struct {
		TenantID int64 `json:"tenant_id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	target := fmt.Sprintf("/api/tenants/%d/terminate", created.TenantID)
	body := fiber.Map{"move_out_date": "2025-06-30", "reason": "Relocated"}

	resp, err = app.Test(jsonRequest(t, "POST", target, token, body))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, "POST", target, token, body))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var second struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&second))
	assert.Contains(t, second.Message, "already terminated")
}

func TestTenantsAPIRequiresAuth(t *testing.T) {
	app, _, _ := setupTestApp(t)

	resp, err := app.Test(jsonRequest(t, "GET", "/api/tenants/", "", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}
