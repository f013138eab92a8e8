package model

import (
	"time"

	"github.com/google/uuid"
)

// Land, cultivation and livelihood-resource detail tables.

type LandAssetModel struct {
	ID                uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HouseholdID       uuid.UUID `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	LandType          *string   `gorm:"column:land_type;type:varchar(100)" json:"land_type,omitempty"`
	OwnershipType     *string   `gorm:"column:ownership_type;type:varchar(100)" json:"ownership_type,omitempty"`
	AreaInAcres       *float64  `gorm:"column:area_in_acres" json:"area_in_acres,omitempty"`
	DocumentationType *string   `gorm:"column:documentation_type;type:varchar(100)" json:"documentation_type,omitempty"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (LandAssetModel) TableName() string { return "land_assets" }

type AgriculturalLandModel struct {
	ID                  uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HouseholdID         uuid.UUID `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	LandType            *string   `gorm:"column:land_type;type:varchar(100)" json:"land_type,omitempty"`
	TotalCultivatedArea *float64  `gorm:"column:total_cultivated_area" json:"total_cultivated_area,omitempty"`
	UnusedArea          *float64  `gorm:"column:unused_area" json:"unused_area,omitempty"`
	HighWaterArea       *float64  `gorm:"column:high_water_area" json:"high_water_area,omitempty"`
	MediumWaterArea     *float64  `gorm:"column:medium_water_area" json:"medium_water_area,omitempty"`
	IrrigationSources   *string   `gorm:"column:irrigation_sources;type:text" json:"irrigation_sources,omitempty"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AgriculturalLandModel) TableName() string { return "agricultural_land" }

type CultivationModeModel struct {
	ID               uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HouseholdID      uuid.UUID `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	PreferredMethod  *string   `gorm:"column:preferred_method;type:varchar(100)" json:"preferred_method,omitempty"`
	VegetableDetails *string   `gorm:"column:vegetable_details;type:text" json:"vegetable_details,omitempty"`
	FodderDetails    *string   `gorm:"column:fodder_details;type:text" json:"fodder_details,omitempty"`
	ProcessingNeeds  *string   `gorm:"column:processing_needs;type:text" json:"processing_needs,omitempty"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CultivationModeModel) TableName() string { return "cultivation_mode" }

type TraditionalFarmingModel struct {
	ID                     uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HouseholdID            uuid.UUID `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	Practices              bool      `gorm:"column:practices;not null;default:false" json:"practices"`
	TraditionalCropDetails *string   `gorm:"column:traditional_crop_details;type:text" json:"traditional_crop_details,omitempty"`
	LastPracticedSeason    *string   `gorm:"column:last_practiced_season;type:varchar(100)" json:"last_practiced_season,omitempty"`
	InterestResume         bool      `gorm:"column:interest_resume;not null;default:false" json:"interest_resume"`
	CreatedAt              time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (TraditionalFarmingModel) TableName() string { return "traditional_farming" }

type LivestockDetailModel struct {
	ID              uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HouseholdID     uuid.UUID `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	AnimalCategory  *string   `gorm:"column:animal_category;type:varchar(100)" json:"animal_category,omitempty"`
	AnimalCount     *int      `gorm:"column:animal_count" json:"animal_count,omitempty"`
	BreedType       *string   `gorm:"column:breed_type;type:varchar(100)" json:"breed_type,omitempty"`
	EstimatedIncome *float64  `gorm:"column:estimated_income" json:"estimated_income,omitempty"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (LivestockDetailModel) TableName() string { return "livestock_details" }

type FoodConsumptionModel struct {
	ID              uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HouseholdID     uuid.UUID `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	FoodItem        *string   `gorm:"column:food_item;type:varchar(100)" json:"food_item,omitempty"`
	MonthlyQuantity *string   `gorm:"column:monthly_quantity;type:varchar(50)" json:"monthly_quantity,omitempty"`
	Source          *string   `gorm:"column:source;type:varchar(100)" json:"source,omitempty"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (FoodConsumptionModel) TableName() string { return "food_consumption" }

type CashCropModel struct {
	ID                  uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HouseholdID         uuid.UUID `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	CropName            *string   `gorm:"column:crop_name;type:varchar(100)" json:"crop_name,omitempty"`
	Number              *int      `gorm:"column:number" json:"number,omitempty"`
	OlderThanThreeYears bool      `gorm:"column:older_than_three_years;not null;default:false" json:"older_than_three_years"`
	AnnualIncome        *float64  `gorm:"column:annual_income" json:"annual_income,omitempty"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CashCropModel) TableName() string { return "cash_crops" }

type ForestResourceModel struct {
	ID                uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HouseholdID       uuid.UUID `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	ProductName       *string   `gorm:"column:product_name;type:varchar(100)" json:"product_name,omitempty"`
	CollectionDays    *int      `gorm:"column:collection_days" json:"collection_days,omitempty"`
	QuantityKg        *float64  `gorm:"column:quantity_kg" json:"quantity_kg,omitempty"`
	SellingPricePerKg *float64  `gorm:"column:selling_price_per_kg" json:"selling_price_per_kg,omitempty"`
	SellingPlace      *string   `gorm:"column:selling_place;type:varchar(200)" json:"selling_place,omitempty"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ForestResourceModel) TableName() string { return "forest_resources" }
