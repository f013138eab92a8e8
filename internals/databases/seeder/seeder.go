package seeder

import (
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"thunai_backend/internals/constants"
	locationModel "thunai_backend/internals/features/locations/model"
	userModel "thunai_backend/internals/features/users/users/model"
)

// Seed is idempotent and safe to re-run on every deployment: it creates the
// fixed role set, the reserved system/admin users the household create
// fallback depends on, and a default location chain. It never runs at server
// boot; cmd/seed invokes it explicitly.
func Seed(db *gorm.DB) error {
	if err := seedRoles(db); err != nil {
		return err
	}
	if err := seedReservedUsers(db); err != nil {
		return err
	}
	return seedLocations(db)
}

func seedRoles(db *gorm.DB) error {
	descriptions := map[uint]string{
		constants.RoleAdmin:             "Full administrative access",
		constants.RoleEnumerator:        "Field survey worker submitting household records",
		constants.RoleAnganwadi:         "Anganwadi worker",
		constants.RoleSTPromoter:        "Scheduled Tribe promoter",
		constants.RoleASHAWorker:        "Accredited social health activist",
		constants.RolePanchayathOfficer: "Panchayath-level officer",
		constants.RoleDistrictOfficer:   "District-level officer",
	}

	for _, id := range constants.AllRoles {
		role := userModel.RoleModel{
			RoleID:          id,
			RoleName:        constants.RoleNames[id],
			RoleDescription: descriptions[id],
		}
		if err := db.Where("role_id = ?", id).FirstOrCreate(&role).Error; err != nil {
			return err
		}
	}
	log.Info("roles seeded")
	return nil
}

func seedReservedUsers(db *gorm.DB) error {
	reserved := []struct {
		phone    string
		name     string
		roleID   uint
		password string
	}{
		{constants.SystemUserPhone, "System Enumerator", constants.RoleEnumerator, "system-disabled"},
		{constants.AdminPlaceholderPhone, "Admin Placeholder", constants.RoleAdmin, "admin-disabled"},
	}

	for _, r := range reserved {
		var existing userModel.UserModel
		err := db.Where("phone_number = ?", r.phone).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(r.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u := userModel.UserModel{
			PhoneNumber:  r.phone,
			PasswordHash: string(hash),
			FullName:     r.name,
			RoleID:       r.roleID,
			IsActive:     true,
		}
		if err := db.Create(&u).Error; err != nil {
			return err
		}
	}
	log.Info("reserved users seeded")
	return nil
}

func seedLocations(db *gorm.DB) error {
	district := locationModel.DistrictModel{DistrictName: "Wayanad"}
	if err := db.Where("district_name = ?", district.DistrictName).FirstOrCreate(&district).Error; err != nil {
		return err
	}

	block := locationModel.BlockModel{BlockName: "Kalpetta", DistrictID: district.DistrictID}
	if err := db.Where("block_name = ? AND district_id = ?", block.BlockName, district.DistrictID).
		FirstOrCreate(&block).Error; err != nil {
		return err
	}

	panchayat := locationModel.PanchayatModel{PanchayatName: "Muttil", BlockID: block.BlockID}
	if err := db.Where("panchayat_name = ? AND block_id = ?", panchayat.PanchayatName, block.BlockID).
		FirstOrCreate(&panchayat).Error; err != nil {
		return err
	}

	hamlet := locationModel.HamletModel{HamletName: "Unspecified", PanchayatID: panchayat.PanchayatID}
	if err := db.Where("hamlet_name = ? AND panchayat_id = ?", hamlet.HamletName, panchayat.PanchayatID).
		FirstOrCreate(&hamlet).Error; err != nil {
		return err
	}

	log.Info("default location chain seeded")
	return nil
}
