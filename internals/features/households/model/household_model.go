package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	locationModel "thunai_backend/internals/features/locations/model"
	userModel "thunai_backend/internals/features/users/users/model"
)

// HouseholdModel is the aggregate root. Every child collection carries a
// household_id foreign key and is written together with the root in a single
// nested create.
type HouseholdModel struct {
	HouseholdID          uuid.UUID  `gorm:"column:household_id;type:uuid;primaryKey" json:"household_id"`
	HouseholdHeadName    string     `gorm:"column:household_head_name;type:varchar(200);not null" json:"household_head_name"`
	Address              *string    `gorm:"column:address;type:text" json:"address,omitempty"`
	PostOffice           *string    `gorm:"column:post_office;type:varchar(100)" json:"post_office,omitempty"`
	ColonySettlementName *string    `gorm:"column:colony_settlement_name;type:varchar(200)" json:"colony_settlement_name,omitempty"`
	Category             *string    `gorm:"column:category;type:varchar(100)" json:"category,omitempty"`
	MicroPlanNumber      *string    `gorm:"column:micro_plan_number;type:varchar(100)" json:"micro_plan_number,omitempty"`
	GramaPanchayat       *string    `gorm:"column:grama_panchayat;type:varchar(100)" json:"grama_panchayat,omitempty"`
	WardNumber           *string    `gorm:"column:ward_number;type:varchar(20)" json:"ward_number,omitempty"`
	HouseNumber          *string    `gorm:"column:house_number;type:varchar(50)" json:"house_number,omitempty"`
	FamilyMembersCount   *int       `gorm:"column:family_members_count" json:"family_members_count,omitempty"`
	RationCardNumber     *string    `gorm:"column:ration_card_number;type:varchar(50)" json:"ration_card_number,omitempty"`
	SurveyDate           *time.Time `gorm:"column:survey_date;type:date" json:"survey_date,omitempty"`
	EnumeratorID         uuid.UUID  `gorm:"column:enumerator_id;type:uuid;not null;index" json:"enumerator_id"`
	HamletID             uint       `gorm:"column:hamlet_id;not null;index" json:"hamlet_id"`
	IsDeleted            bool       `gorm:"column:is_deleted;not null;default:false;index" json:"is_deleted"`
	CreatedAt            time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Hamlet     *locationModel.HamletModel `gorm:"foreignKey:HamletID;references:HamletID" json:"hamlet,omitempty"`
	Enumerator *userModel.UserModel       `gorm:"foreignKey:EnumeratorID;references:UserID" json:"enumerator,omitempty"`

	Members []MemberModel `gorm:"foreignKey:HouseholdID" json:"members"`

	MigrantWorkers           []MigrantWorkerModel          `gorm:"foreignKey:HouseholdID" json:"migrant_workers,omitempty"`
	LandAssets               []LandAssetModel              `gorm:"foreignKey:HouseholdID" json:"land_assets,omitempty"`
	GovtSchemeHouses         []GovtSchemeHouseModel        `gorm:"foreignKey:HouseholdID" json:"govt_scheme_houses,omitempty"`
	ExitWishHouses           []ExitWishHouseModel          `gorm:"foreignKey:HouseholdID" json:"exit_wish_houses,omitempty"`
	HousingDetails           []HousingDetailModel          `gorm:"foreignKey:HouseholdID" json:"housing_details,omitempty"`
	SanitationFacilities     []SanitationFacilityModel     `gorm:"foreignKey:HouseholdID" json:"sanitation_facilities,omitempty"`
	WaterSources             []WaterSourceModel            `gorm:"foreignKey:HouseholdID" json:"water_sources,omitempty"`
	WasteManagement          []WasteManagementModel        `gorm:"foreignKey:HouseholdID" json:"waste_management,omitempty"`
	TransportationFacilities []TransportationFacilityModel `gorm:"foreignKey:HouseholdID" json:"transportation_facilities,omitempty"`
	PhoneConnectivity        []PhoneConnectivityModel      `gorm:"foreignKey:HouseholdID" json:"phone_connectivity,omitempty"`
	PublicInstitutions       []PublicInstitutionModel      `gorm:"foreignKey:HouseholdID" json:"public_institutions,omitempty"`
	HealthConditions         []HealthConditionModel        `gorm:"foreignKey:HouseholdID" json:"health_conditions,omitempty"`
	Diseases                 []ChronicDiseaseModel         `gorm:"foreignKey:HouseholdID" json:"diseases,omitempty"`
	HealthInsurance          []HealthInsuranceModel        `gorm:"foreignKey:HouseholdID" json:"health_insurance,omitempty"`
	ChildGroups              []ChildGroupModel             `gorm:"foreignKey:HouseholdID" json:"child_groups,omitempty"`
	ChildHealthStatuses      []ChildHealthStatusModel      `gorm:"foreignKey:HouseholdID" json:"child_health_statuses,omitempty"`
	MalnutritionRecords      []MalnutritionRecordModel     `gorm:"foreignKey:HouseholdID" json:"malnutrition_records,omitempty"`
	NutritionAccess          []NutritionAccessModel        `gorm:"foreignKey:HouseholdID" json:"nutrition_access,omitempty"`
	AgriculturalLand         []AgriculturalLandModel       `gorm:"foreignKey:HouseholdID" json:"agricultural_land,omitempty"`
	CultivationMode          []CultivationModeModel        `gorm:"foreignKey:HouseholdID" json:"cultivation_mode,omitempty"`
	TraditionalFarming       []TraditionalFarmingModel     `gorm:"foreignKey:HouseholdID" json:"traditional_farming,omitempty"`
	LivestockDetails         []LivestockDetailModel        `gorm:"foreignKey:HouseholdID" json:"livestock_details,omitempty"`
	FoodConsumption          []FoodConsumptionModel        `gorm:"foreignKey:HouseholdID" json:"food_consumption,omitempty"`
	CashCrops                []CashCropModel               `gorm:"foreignKey:HouseholdID" json:"cash_crops,omitempty"`
	ForestResources          []ForestResourceModel         `gorm:"foreignKey:HouseholdID" json:"forest_resources,omitempty"`
	SocialIssues             []SocialIssueModel            `gorm:"foreignKey:HouseholdID" json:"social_issues,omitempty"`
	WageEmployment           []WageEmploymentModel         `gorm:"foreignKey:HouseholdID" json:"wage_employment,omitempty"`
	LivelihoodOpportunities  []LivelihoodOpportunityModel  `gorm:"foreignKey:HouseholdID" json:"livelihood_opportunities,omitempty"`
	ArtsSports               []ArtsSportModel              `gorm:"foreignKey:HouseholdID" json:"arts_sports,omitempty"`
	EducationDetails         []EducationDetailModel        `gorm:"foreignKey:HouseholdID" json:"education_details,omitempty"`
	EmploymentDetails        []EmploymentDetailModel       `gorm:"foreignKey:HouseholdID" json:"employment_details,omitempty"`
	Entitlements             []EntitlementModel            `gorm:"foreignKey:HouseholdID" json:"entitlements,omitempty"`
	AdditionalInfo           []AdditionalInfoModel         `gorm:"foreignKey:HouseholdID" json:"additional_info,omitempty"`
}

func (HouseholdModel) TableName() string { return "households" }

func (h *HouseholdModel) BeforeCreate(tx *gorm.DB) error {
	if h.HouseholdID == uuid.Nil {
		h.HouseholdID = uuid.New()
	}
	return nil
}
