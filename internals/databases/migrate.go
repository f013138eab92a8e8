package database

import (
	"gorm.io/gorm"

	auditModel "thunai_backend/internals/features/audit/model"
	householdModel "thunai_backend/internals/features/households/model"
	locationModel "thunai_backend/internals/features/locations/model"
	userModel "thunai_backend/internals/features/users/users/model"
)

// AllModels lists every table in migration order: lookups first, then the
// aggregate root, then the detail tables that reference it.
func AllModels() []interface{} {
	return []interface{}{
		&userModel.RoleModel{},
		&userModel.UserModel{},
		&locationModel.DistrictModel{},
		&locationModel.BlockModel{},
		&locationModel.PanchayatModel{},
		&locationModel.HamletModel{},
		&householdModel.HouseholdModel{},
		&householdModel.MemberModel{},
		&householdModel.MigrantWorkerModel{},
		&householdModel.LandAssetModel{},
		&householdModel.GovtSchemeHouseModel{},
		&householdModel.ExitWishHouseModel{},
		&householdModel.HousingDetailModel{},
		&householdModel.SanitationFacilityModel{},
		&householdModel.WaterSourceModel{},
		&householdModel.WasteManagementModel{},
		&householdModel.TransportationFacilityModel{},
		&householdModel.PhoneConnectivityModel{},
		&householdModel.PublicInstitutionModel{},
		&householdModel.HealthConditionModel{},
		&householdModel.ChronicDiseaseModel{},
		&householdModel.HealthInsuranceModel{},
		&householdModel.ChildGroupModel{},
		&householdModel.ChildHealthStatusModel{},
		&householdModel.MalnutritionRecordModel{},
		&householdModel.NutritionAccessModel{},
		&householdModel.AgriculturalLandModel{},
		&householdModel.CultivationModeModel{},
		&householdModel.TraditionalFarmingModel{},
		&householdModel.LivestockDetailModel{},
		&householdModel.FoodConsumptionModel{},
		&householdModel.CashCropModel{},
		&householdModel.ForestResourceModel{},
		&householdModel.SocialIssueModel{},
		&householdModel.WageEmploymentModel{},
		&householdModel.LivelihoodOpportunityModel{},
		&householdModel.ArtsSportModel{},
		&householdModel.EducationDetailModel{},
		&householdModel.EmploymentDetailModel{},
		&householdModel.EntitlementModel{},
		&householdModel.AdditionalInfoModel{},
		&auditModel.AuditLogModel{},
	}
}

// Migrate runs AutoMigrate over the full schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
