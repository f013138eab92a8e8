package model

import (
	"time"

	"github.com/google/uuid"
)

// Housing and basic-amenities detail tables. Rows are created as part of the
// household aggregate or via their own resource endpoint; hard delete only.

type HousingDetailModel struct {
	ID               uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HouseholdID      uuid.UUID `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	CompletionStatus *string   `gorm:"column:completion_status;type:varchar(100)" json:"completion_status,omitempty"`
	AgeOfHouse       *int      `gorm:"column:age_of_house" json:"age_of_house,omitempty"`
	CurrentCondition *string   `gorm:"column:current_condition;type:varchar(100)" json:"current_condition,omitempty"`
	RoofMaterial     *string   `gorm:"column:roof_material;type:varchar(100)" json:"roof_material,omitempty"`
	RoofCondition    *string   `gorm:"column:roof_condition;type:varchar(100)" json:"roof_condition,omitempty"`
	WallMaterial     *string   `gorm:"column:wall_material;type:varchar(100)" json:"wall_material,omitempty"`
	WallCondition    *string   `gorm:"column:wall_condition;type:varchar(100)" json:"wall_condition,omitempty"`
	FloorType        *string   `gorm:"column:floor_type;type:varchar(100)" json:"floor_type,omitempty"`
	NeedsRepair      bool      `gorm:"column:needs_repair;not null;default:false" json:"needs_repair"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (HousingDetailModel) TableName() string { return "housing_details" }

type SanitationFacilityModel struct {
	ID                  uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HouseholdID         uuid.UUID `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	HasToilet           bool      `gorm:"column:has_toilet;not null;default:false" json:"has_toilet"`
	HasBathroom         bool      `gorm:"column:has_bathroom;not null;default:false" json:"has_bathroom"`
	AllUseToilet        bool      `gorm:"column:all_use_toilet;not null;default:false" json:"all_use_toilet"`
	UsesPublicToilet    bool      `gorm:"column:uses_public_toilet;not null;default:false" json:"uses_public_toilet"`
	SatisfiedWithPublic bool      `gorm:"column:satisfied_with_public;not null;default:false" json:"satisfied_with_public"`
	ToiletCondition     *string   `gorm:"column:toilet_condition;type:varchar(100)" json:"toilet_condition,omitempty"`
	NewToiletRequired   bool      `gorm:"column:new_toilet_required;not null;default:false" json:"new_toilet_required"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SanitationFacilityModel) TableName() string { return "sanitation_facilities" }

type WaterSourceModel struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HouseholdID  uuid.UUID `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	Source       *string   `gorm:"column:source;type:varchar(100)" json:"source,omitempty"`
	Ownership    *string   `gorm:"column:ownership;type:varchar(100)" json:"ownership,omitempty"`
	Availability *string   `gorm:"column:availability;type:varchar(100)" json:"availability,omitempty"`
	Quality      *string   `gorm:"column:quality;type:varchar(100)" json:"quality,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (WaterSourceModel) TableName() string { return "water_sources" }

type WasteManagementModel struct {
	ID                     uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HouseholdID            uuid.UUID `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	SolidWasteFacility     *string   `gorm:"column:solid_waste_facility;type:varchar(200)" json:"solid_waste_facility,omitempty"`
	LiquidWasteFacility    *string   `gorm:"column:liquid_waste_facility;type:varchar(200)" json:"liquid_waste_facility,omitempty"`
	HouseholdWasteDisposal *string   `gorm:"column:household_waste_disposal;type:varchar(200)" json:"household_waste_disposal,omitempty"`
	CreatedAt              time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (WasteManagementModel) TableName() string { return "waste_management" }

type TransportationFacilityModel struct {
	ID                 uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HouseholdID        uuid.UUID `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	AccessPathType     *string   `gorm:"column:access_path_type;type:varchar(100)" json:"access_path_type,omitempty"`
	DistanceToMainRoad *string   `gorm:"column:distance_to_main_road;type:varchar(50)" json:"distance_to_main_road,omitempty"`
	PathCondition      *string   `gorm:"column:path_condition;type:varchar(100)" json:"path_condition,omitempty"`
	OwnsVehicle        bool      `gorm:"column:owns_vehicle;not null;default:false" json:"owns_vehicle"`
	VehicleType        *string   `gorm:"column:vehicle_type;type:varchar(100)" json:"vehicle_type,omitempty"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (TransportationFacilityModel) TableName() string { return "transportation_facilities" }

type PhoneConnectivityModel struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HouseholdID uuid.UUID `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	HasPhone    bool      `gorm:"column:has_phone;not null;default:false" json:"has_phone"`
	Mobile      bool      `gorm:"column:mobile;not null;default:false" json:"mobile"`
	Landline    bool      `gorm:"column:landline;not null;default:false" json:"landline"`
	HasSignal   bool      `gorm:"column:has_signal;not null;default:false" json:"has_signal"`
	HasInternet bool      `gorm:"column:has_internet;not null;default:false" json:"has_internet"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PhoneConnectivityModel) TableName() string { return "phone_connectivity" }

type PublicInstitutionModel struct {
	ID                uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HouseholdID       uuid.UUID `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	InstitutionName   *string   `gorm:"column:institution_name;type:varchar(200)" json:"institution_name,omitempty"`
	Distance          *string   `gorm:"column:distance;type:varchar(50)" json:"distance,omitempty"`
	ServicesAvailed   *string   `gorm:"column:services_availed;type:text" json:"services_availed,omitempty"`
	SatisfactionLevel *string   `gorm:"column:satisfaction_level;type:varchar(50)" json:"satisfaction_level,omitempty"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PublicInstitutionModel) TableName() string { return "public_institutions" }
