package details

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	model "thunai_backend/internals/features/households/model"
)

func newDetailApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.LandAssetModel{}))

	app := fiber.New()
	dc := NewDetailController[model.LandAssetModel](db, "land_assets")
	dc.Register(app.Group("/api/land-assets"))
	return app, db
}

func detailReq(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]interface{}) {
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

func TestDetailCRUDCycle(t *testing.T) {
	app, _ := newDetailApp(t)
	householdID := uuid.NewString()

	status, body := detailReq(t, app, "POST", "/api/land-assets",
		fmt.Sprintf(`{"household_id": "%s", "land_type": "Paddy"}`, householdID))
	require.Equal(t, fiber.StatusCreated, status)
	record := body["data"].(map[string]interface{})["record"].(map[string]interface{})
	id := fmt.Sprintf("%v", record["id"])

	status, body = detailReq(t, app, "GET", "/api/land-assets/"+id, "")
	require.Equal(t, fiber.StatusOK, status)
	record = body["data"].(map[string]interface{})["record"].(map[string]interface{})
	assert.Equal(t, "Paddy", record["land_type"])

	status, _ = detailReq(t, app, "PUT", "/api/land-assets/"+id, `{"land_type": "Coffee"}`)
	require.Equal(t, fiber.StatusOK, status)

	status, body = detailReq(t, app, "GET", "/api/land-assets/"+id, "")
	require.Equal(t, fiber.StatusOK, status)
	record = body["data"].(map[string]interface{})["record"].(map[string]interface{})
	assert.Equal(t, "Coffee", record["land_type"])

	status, _ = detailReq(t, app, "DELETE", "/api/land-assets/"+id, "")
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = detailReq(t, app, "GET", "/api/land-assets/"+id, "")
	assert.Equal(t, fiber.StatusNotFound, status)

	// deleting again is a 404, rows are gone for good
	status, _ = detailReq(t, app, "DELETE", "/api/land-assets/"+id, "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestDetailListFiltersByHousehold(t *testing.T) {
	app, _ := newDetailApp(t)
	first := uuid.NewString()
	second := uuid.NewString()

	for i := 0; i < 3; i++ {
		status, _ := detailReq(t, app, "POST", "/api/land-assets",
			fmt.Sprintf(`{"household_id": "%s", "land_type": "Paddy"}`, first))
		require.Equal(t, fiber.StatusCreated, status)
	}
	status, _ := detailReq(t, app, "POST", "/api/land-assets",
		fmt.Sprintf(`{"household_id": "%s", "land_type": "Coffee"}`, second))
	require.Equal(t, fiber.StatusCreated, status)

	status, body := detailReq(t, app, "GET", "/api/land-assets?household_id="+first, "")
	require.Equal(t, fiber.StatusOK, status)
	data := body["data"].(map[string]interface{})
	rows := data["land_assets"].([]interface{})
	assert.Len(t, rows, 3)
	meta := data["pagination"].(map[string]interface{})
	assert.Equal(t, float64(3), meta["total"])
}

func TestDetailListRejectsBadHouseholdID(t *testing.T) {
	app, _ := newDetailApp(t)

	status, _ := detailReq(t, app, "GET", "/api/land-assets?household_id=nope", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestDetailUpdateProtectsIdentityColumns(t *testing.T) {
	app, db := newDetailApp(t)
	householdID := uuid.NewString()

	status, body := detailReq(t, app, "POST", "/api/land-assets",
		fmt.Sprintf(`{"household_id": "%s", "land_type": "Paddy"}`, householdID))
	require.Equal(t, fiber.StatusCreated, status)
	record := body["data"].(map[string]interface{})["record"].(map[string]interface{})
	id := fmt.Sprintf("%v", record["id"])

	other := uuid.NewString()
	status, _ = detailReq(t, app, "PUT", "/api/land-assets/"+id,
		fmt.Sprintf(`{"household_id": "%s", "id": 999}`, other))
	require.Equal(t, fiber.StatusOK, status)

	var row model.LandAssetModel
	require.NoError(t, db.First(&row, "id = ?", id).Error)
	assert.Equal(t, householdID, row.HouseholdID.String())
}
