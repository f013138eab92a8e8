package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"thunai_backend/internals/constants"
	database "thunai_backend/internals/databases"
	userModel "thunai_backend/internals/features/users/users/model"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.AllModels()...))

	require.NoError(t, db.Create(&userModel.UserModel{
		PhoneNumber:  constants.SystemUserPhone,
		PasswordHash: "!",
		FullName:     "System Enumerator",
		RoleID:       constants.RoleEnumerator,
		IsActive:     true,
	}).Error)

	app := fiber.New()
	hc := NewHouseholdController(db)
	app.Get("/api/households", hc.List)
	app.Post("/api/households", hc.Create)
	app.Get("/api/households/:id", hc.GetByID)
	app.Put("/api/households/:id", hc.Update)
	app.Delete("/api/households/:id", hc.Delete)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp.StatusCode, decoded
}

func TestCreateHouseholdMissingFields(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/households", `{"category": "ST"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	required, ok := body["required"].([]interface{})
	require.True(t, ok)
	assert.ElementsMatch(t, []interface{}{"household_head_name", "hamlet_id"}, required)
}

func TestCreateHouseholdMalformedBody(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/households", `{"household_head_name": `)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "error", body["status"])
}

func TestCreateHouseholdReturnsAggregate(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/households", `{
		"household_head_name": "Raman",
		"hamlet_id": 1,
		"enumerator_id": "system",
		"members": [{"name": "Raman", "relationship": "Head"}]
	}`)
	require.Equal(t, fiber.StatusCreated, status)

	data := body["data"].(map[string]interface{})
	household := data["household"].(map[string]interface{})
	assert.NotEmpty(t, household["household_id"])

	members, ok := household["members"].([]interface{})
	require.True(t, ok)
	require.Len(t, members, 1)
	member := members[0].(map[string]interface{})
	assert.Equal(t, "Head", member["relation_to_head"])
}

func TestCreateHouseholdMembersAlwaysPresent(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/households",
		`{"household_head_name": "Raman", "hamlet_id": 1}`)
	require.Equal(t, fiber.StatusCreated, status)

	household := body["data"].(map[string]interface{})["household"].(map[string]interface{})
	members, ok := household["members"].([]interface{})
	require.True(t, ok, "members must be an array even when empty")
	assert.Len(t, members, 0)
}

func TestGetHouseholdNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := doJSON(t, app, "GET", "/api/households/0f8fad5b-d9cb-469f-a165-70867728950e", "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestGetHouseholdInvalidID(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := doJSON(t, app, "GET", "/api/households/not-a-uuid", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestListHouseholdsPaginationMeta(t *testing.T) {
	app, _ := newTestApp(t)

	for i := 0; i < 25; i++ {
		status, _ := doJSON(t, app, "POST", "/api/households",
			`{"household_head_name": "Head", "hamlet_id": 1}`)
		require.Equal(t, fiber.StatusCreated, status)
	}

	status, body := doJSON(t, app, "GET", "/api/households?page=2&limit=10", "")
	require.Equal(t, fiber.StatusOK, status)

	data := body["data"].(map[string]interface{})
	households := data["households"].([]interface{})
	assert.Len(t, households, 10)

	meta := data["pagination"].(map[string]interface{})
	assert.Equal(t, float64(2), meta["page"])
	assert.Equal(t, float64(25), meta["total"])
	assert.Equal(t, float64(3), meta["total_pages"])
	assert.Equal(t, true, meta["has_next"])
	assert.Equal(t, true, meta["has_prev"])
}

func TestDeleteThenListExcludes(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/households",
		`{"household_head_name": "Raman", "hamlet_id": 1}`)
	require.Equal(t, fiber.StatusCreated, status)
	household := body["data"].(map[string]interface{})["household"].(map[string]interface{})
	id := household["household_id"].(string)

	status, _ = doJSON(t, app, "DELETE", "/api/households/"+id, "")
	assert.Equal(t, fiber.StatusOK, status)

	status, body = doJSON(t, app, "GET", "/api/households", "")
	require.Equal(t, fiber.StatusOK, status)
	households := body["data"].(map[string]interface{})["households"].([]interface{})
	assert.Len(t, households, 0)

	status, _ = doJSON(t, app, "DELETE", "/api/households/"+id, "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestUpdateHousehold(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/households",
		`{"household_head_name": "Raman", "hamlet_id": 1, "category": "ST"}`)
	require.Equal(t, fiber.StatusCreated, status)
	household := body["data"].(map[string]interface{})["household"].(map[string]interface{})
	id := household["household_id"].(string)

	status, body = doJSON(t, app, "PUT", "/api/households/"+id,
		`{"household_head_name": "Kumaran"}`)
	require.Equal(t, fiber.StatusOK, status)
	updated := body["data"].(map[string]interface{})["household"].(map[string]interface{})
	assert.Equal(t, "Kumaran", updated["household_head_name"])
	assert.Equal(t, "ST", updated["category"])
}
