package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	model "thunai_backend/internals/features/households/model"
)

// RegisterAll mounts the per-collection CRUD endpoints on the API router.
// Route names follow the client's kebab-case resource paths.
func RegisterAll(api fiber.Router, db *gorm.DB, guards ...fiber.Handler) {
	mount := func(path string, register func(fiber.Router)) {
		register(api.Group(path, guards...))
	}

	mount("/migrant-workers", NewDetailController[model.MigrantWorkerModel](db, "migrant_workers").Register)
	mount("/land-assets", NewDetailController[model.LandAssetModel](db, "land_assets").Register)
	mount("/govt-scheme-houses", NewDetailController[model.GovtSchemeHouseModel](db, "govt_scheme_houses").Register)
	mount("/exit-wish-houses", NewDetailController[model.ExitWishHouseModel](db, "exit_wish_houses").Register)
	mount("/housing-details", NewDetailController[model.HousingDetailModel](db, "housing_details").Register)
	mount("/sanitation", NewDetailController[model.SanitationFacilityModel](db, "sanitation_facilities").Register)
	mount("/water-sources", NewDetailController[model.WaterSourceModel](db, "water_sources").Register)
	mount("/waste-management", NewDetailController[model.WasteManagementModel](db, "waste_management").Register)
	mount("/transportation", NewDetailController[model.TransportationFacilityModel](db, "transportation_facilities").Register)
	mount("/phone-connectivity", NewDetailController[model.PhoneConnectivityModel](db, "phone_connectivity").Register)
	mount("/public-institutions", NewDetailController[model.PublicInstitutionModel](db, "public_institutions").Register)
	mount("/health-conditions", NewDetailController[model.HealthConditionModel](db, "health_conditions").Register)
	mount("/diseases", NewDetailController[model.ChronicDiseaseModel](db, "diseases").Register)
	mount("/health-insurance", NewDetailController[model.HealthInsuranceModel](db, "health_insurance").Register)
	mount("/child-groups", NewDetailController[model.ChildGroupModel](db, "child_groups").Register)
	mount("/child-health-statuses", NewDetailController[model.ChildHealthStatusModel](db, "child_health_statuses").Register)
	mount("/malnutrition-records", NewDetailController[model.MalnutritionRecordModel](db, "malnutrition_records").Register)
	mount("/nutrition-access", NewDetailController[model.NutritionAccessModel](db, "nutrition_access").Register)
	mount("/agricultural-land", NewDetailController[model.AgriculturalLandModel](db, "agricultural_land").Register)
	mount("/cultivation-mode", NewDetailController[model.CultivationModeModel](db, "cultivation_mode").Register)
	mount("/traditional-farming", NewDetailController[model.TraditionalFarmingModel](db, "traditional_farming").Register)
	mount("/livestock-details", NewDetailController[model.LivestockDetailModel](db, "livestock_details").Register)
	mount("/food-consumption", NewDetailController[model.FoodConsumptionModel](db, "food_consumption").Register)
	mount("/cash-crops", NewDetailController[model.CashCropModel](db, "cash_crops").Register)
	mount("/forest-resources", NewDetailController[model.ForestResourceModel](db, "forest_resources").Register)
	mount("/social-issues", NewDetailController[model.SocialIssueModel](db, "social_issues").Register)
	mount("/wage-employment", NewDetailController[model.WageEmploymentModel](db, "wage_employment").Register)
	mount("/livelihood-opportunities", NewDetailController[model.LivelihoodOpportunityModel](db, "livelihood_opportunities").Register)
	mount("/arts-sports", NewDetailController[model.ArtsSportModel](db, "arts_sports").Register)
	mount("/education-details", NewDetailController[model.EducationDetailModel](db, "education_details").Register)
	mount("/employment-details", NewDetailController[model.EmploymentDetailModel](db, "employment_details").Register)
	mount("/entitlements", NewDetailController[model.EntitlementModel](db, "entitlements").Register)
	mount("/additional-info", NewDetailController[model.AdditionalInfoModel](db, "additional_info").Register)
}
