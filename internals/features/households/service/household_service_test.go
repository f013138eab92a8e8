package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"thunai_backend/internals/constants"
	database "thunai_backend/internals/databases"
	"thunai_backend/internals/features/households/dto"
	model "thunai_backend/internals/features/households/model"
	userModel "thunai_backend/internals/features/users/users/model"
	helper "thunai_backend/internals/helpers"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.AllModels()...))
	return db
}

func seedSystemUser(t *testing.T, db *gorm.DB) *userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{
		PhoneNumber:  constants.SystemUserPhone,
		PasswordHash: "!",
		FullName:     "System Enumerator",
		RoleID:       constants.RoleEnumerator,
		IsActive:     true,
	}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func createRequest(t *testing.T, body string) *dto.CreateHouseholdRequest {
	t.Helper()
	req, err := dto.ParseCreateHouseholdRequest([]byte(body))
	require.NoError(t, err)
	return req
}

func TestResolveEnumeratorFallsBackToSystemUser(t *testing.T) {
	db := setupTestDB(t)
	sys := seedSystemUser(t, db)
	svc := NewHouseholdService(db)

	for _, raw := range []string{"", "system", "not-a-uuid"} {
		id, err := svc.ResolveEnumerator(raw)
		require.NoError(t, err, "raw %q", raw)
		assert.Equal(t, sys.UserID, id)
	}
}

func TestResolveEnumeratorKeepsValidUUID(t *testing.T) {
	db := setupTestDB(t)
	seedSystemUser(t, db)
	svc := NewHouseholdService(db)

	id, err := svc.ResolveEnumerator("0f8fad5b-d9cb-469f-a165-70867728950e")
	require.NoError(t, err)
	assert.Equal(t, "0f8fad5b-d9cb-469f-a165-70867728950e", id.String())
}

func TestResolveEnumeratorUnresolvable(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHouseholdService(db)

	_, err := svc.ResolveEnumerator("system")
	assert.ErrorIs(t, err, ErrEnumeratorUnresolvable)
}

func TestCreateNestedWrite(t *testing.T) {
	db := setupTestDB(t)
	seedSystemUser(t, db)
	svc := NewHouseholdService(db)

	req := createRequest(t, `{
		"household_head_name": "Raman",
		"hamlet_id": 1,
		"enumerator_id": "system",
		"category": "ST",
		"members": [
			{"name": "Raman", "relationship": "Head", "bank_account": "Yes"},
			{"name": "Kala", "relationship": "Wife"}
		],
		"sanitation_facilities": [{"toilet": "yes", "bathroom": "no"}]
	}`)

	created, err := svc.Create(req)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", created.HouseholdID.String())
	require.Len(t, created.Members, 2)
	for _, m := range created.Members {
		assert.Equal(t, created.HouseholdID, m.HouseholdID)
	}

	var sanitationCount int64
	require.NoError(t, db.Model(&model.SanitationFacilityModel{}).
		Where("household_id = ?", created.HouseholdID).
		Count(&sanitationCount).Error)
	assert.Equal(t, int64(1), sanitationCount)
}

func TestCreateWithoutMembersReturnsEmptySlice(t *testing.T) {
	db := setupTestDB(t)
	seedSystemUser(t, db)
	svc := NewHouseholdService(db)

	req := createRequest(t, `{"household_head_name": "Raman", "hamlet_id": 1}`)
	created, err := svc.Create(req)
	require.NoError(t, err)
	require.NotNil(t, created.Members)
	assert.Len(t, created.Members, 0)
}

func TestReadExcludesSoftDeleted(t *testing.T) {
	db := setupTestDB(t)
	seedSystemUser(t, db)
	svc := NewHouseholdService(db)

	req := createRequest(t, `{"household_head_name": "Raman", "hamlet_id": 1}`)
	created, err := svc.Create(req)
	require.NoError(t, err)

	require.NoError(t, svc.SoftDelete(created.HouseholdID))

	_, err = svc.Read(created.HouseholdID)
	assert.ErrorIs(t, err, ErrHouseholdNotFound)

	// the row itself is still there
	var raw model.HouseholdModel
	require.NoError(t, db.First(&raw, "household_id = ?", created.HouseholdID).Error)
	assert.True(t, raw.IsDeleted)
}

func TestReadExcludesSoftDeletedMembers(t *testing.T) {
	db := setupTestDB(t)
	seedSystemUser(t, db)
	svc := NewHouseholdService(db)

	created, err := svc.Create(createRequest(t, `{
		"household_head_name": "Raman",
		"hamlet_id": 1,
		"members": [
			{"name": "Raman", "relationship": "Head"},
			{"name": "Kala", "relationship": "Wife"}
		]
	}`))
	require.NoError(t, err)
	require.Len(t, created.Members, 2)

	require.NoError(t, db.Model(&model.MemberModel{}).
		Where("member_id = ?", created.Members[1].MemberID).
		Update("is_deleted", true).Error)

	h, err := svc.Read(created.HouseholdID)
	require.NoError(t, err)
	require.Len(t, h.Members, 1)
	assert.Equal(t, "Raman", h.Members[0].Name)
}

func TestSoftDeleteTwiceReportsNotFound(t *testing.T) {
	db := setupTestDB(t)
	seedSystemUser(t, db)
	svc := NewHouseholdService(db)

	created, err := svc.Create(createRequest(t, `{"household_head_name": "Raman", "hamlet_id": 1}`))
	require.NoError(t, err)

	require.NoError(t, svc.SoftDelete(created.HouseholdID))
	assert.ErrorIs(t, svc.SoftDelete(created.HouseholdID), ErrHouseholdNotFound)
}

func TestListPagination(t *testing.T) {
	db := setupTestDB(t)
	seedSystemUser(t, db)
	svc := NewHouseholdService(db)

	for i := 0; i < 25; i++ {
		_, err := svc.Create(createRequest(t, fmt.Sprintf(
			`{"household_head_name": "Head %02d", "hamlet_id": 1}`, i)))
		require.NoError(t, err)
	}

	p := helper.Params{Page: 2, Limit: 10}
	rows, total, err := svc.List(p, dto.ListHouseholdsQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Len(t, rows, 10)

	meta := helper.BuildMeta(total, p)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
}

func TestListSearchAndFilters(t *testing.T) {
	db := setupTestDB(t)
	seedSystemUser(t, db)
	svc := NewHouseholdService(db)

	_, err := svc.Create(createRequest(t,
		`{"household_head_name": "Raman Kutty", "hamlet_id": 1, "category": "ST", "grama_panchayat": "Muttil"}`))
	require.NoError(t, err)
	_, err = svc.Create(createRequest(t,
		`{"household_head_name": "Joseph", "hamlet_id": 2, "category": "General"}`))
	require.NoError(t, err)

	rows, total, err := svc.List(helper.Params{Page: 1, Limit: 20}, dto.ListHouseholdsQuery{Search: "raman"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, "Raman Kutty", rows[0].HouseholdHeadName)

	_, total, err = svc.List(helper.Params{Page: 1, Limit: 20}, dto.ListHouseholdsQuery{Category: "General"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	_, total, err = svc.List(helper.Params{Page: 1, Limit: 20}, dto.ListHouseholdsQuery{Panchayat: "Muttil"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestUpdatePartialKeepsDeleteFlag(t *testing.T) {
	db := setupTestDB(t)
	seedSystemUser(t, db)
	svc := NewHouseholdService(db)

	created, err := svc.Create(createRequest(t,
		`{"household_head_name": "Raman", "hamlet_id": 1, "category": "ST"}`))
	require.NoError(t, err)

	name := "Kumaran"
	updated, err := svc.Update(created.HouseholdID, &dto.UpdateHouseholdRequest{HouseholdHeadName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Kumaran", updated.HouseholdHeadName)
	require.NotNil(t, updated.Category)
	assert.Equal(t, "ST", *updated.Category)
	assert.False(t, updated.IsDeleted)
}
