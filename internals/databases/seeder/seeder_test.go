package seeder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"thunai_backend/internals/constants"
	database "thunai_backend/internals/databases"
	locationModel "thunai_backend/internals/features/locations/model"
	userModel "thunai_backend/internals/features/users/users/model"
)

func seededDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.AllModels()...))
	require.NoError(t, Seed(db))
	return db
}

func TestSeedCreatesFixedRoleSet(t *testing.T) {
	db := seededDB(t)

	var count int64
	require.NoError(t, db.Model(&userModel.RoleModel{}).Count(&count).Error)
	assert.Equal(t, int64(len(constants.AllRoles)), count)

	var admin userModel.RoleModel
	require.NoError(t, db.First(&admin, "role_id = ?", constants.RoleAdmin).Error)
	assert.Equal(t, "Admin", admin.RoleName)
}

func TestSeedCreatesReservedUsers(t *testing.T) {
	db := seededDB(t)

	var sys userModel.UserModel
	require.NoError(t, db.First(&sys, "phone_number = ?", constants.SystemUserPhone).Error)
	assert.Equal(t, constants.RoleEnumerator, sys.RoleID)
	assert.True(t, sys.IsActive)
	assert.NotEmpty(t, sys.PasswordHash)

	var admin userModel.UserModel
	require.NoError(t, db.First(&admin, "phone_number = ?", constants.AdminPlaceholderPhone).Error)
	assert.Equal(t, constants.RoleAdmin, admin.RoleID)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := seededDB(t)
	require.NoError(t, Seed(db))
	require.NoError(t, Seed(db))

	var roles, users, hamlets int64
	require.NoError(t, db.Model(&userModel.RoleModel{}).Count(&roles).Error)
	require.NoError(t, db.Model(&userModel.UserModel{}).Count(&users).Error)
	require.NoError(t, db.Model(&locationModel.HamletModel{}).Count(&hamlets).Error)

	assert.Equal(t, int64(len(constants.AllRoles)), roles)
	assert.Equal(t, int64(2), users)
	assert.Equal(t, int64(1), hamlets)
}
