package model

import (
	"time"

	"github.com/google/uuid"
)

// Health and nutrition detail tables.

type HealthConditionModel struct {
	ID                uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HouseholdID       uuid.UUID `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	MemberName        *string   `gorm:"column:member_name;type:varchar(200)" json:"member_name,omitempty"`
	HealthCondition   *string   `gorm:"column:health_condition;type:varchar(200)" json:"health_condition,omitempty"`
	PlaceOfTreatment  *string   `gorm:"column:place_of_treatment;type:varchar(200)" json:"place_of_treatment,omitempty"`
	AdditionalDetails *string   `gorm:"column:additional_details;type:text" json:"additional_details,omitempty"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (HealthConditionModel) TableName() string { return "health_conditions" }

type ChronicDiseaseModel struct {
	ID              uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HouseholdID     uuid.UUID `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	MemberName      *string   `gorm:"column:member_name;type:varchar(200)" json:"member_name,omitempty"`
	DiseaseName     *string   `gorm:"column:disease_name;type:varchar(200)" json:"disease_name,omitempty"`
	TreatmentStatus *string   `gorm:"column:treatment_status;type:varchar(100)" json:"treatment_status,omitempty"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ChronicDiseaseModel) TableName() string { return "diseases" }

type HealthInsuranceModel struct {
	ID             uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HouseholdID    uuid.UUID `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	SchemeName     *string   `gorm:"column:scheme_name;type:varchar(200)" json:"scheme_name,omitempty"`
	CardNumber     *string   `gorm:"column:card_number;type:varchar(50)" json:"card_number,omitempty"`
	MembersCovered *int      `gorm:"column:members_covered" json:"members_covered,omitempty"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (HealthInsuranceModel) TableName() string { return "health_insurance" }

type ChildGroupModel struct {
	ID               uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HouseholdID      uuid.UUID `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	ChildName        *string   `gorm:"column:child_name;type:varchar(200)" json:"child_name,omitempty"`
	AgeGroup         *string   `gorm:"column:age_group;type:varchar(50)" json:"age_group,omitempty"`
	AttendsAnganwadi bool      `gorm:"column:attends_anganwadi;not null;default:false" json:"attends_anganwadi"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ChildGroupModel) TableName() string { return "child_groups" }

type ChildHealthStatusModel struct {
	ID                uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HouseholdID       uuid.UUID `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	ChildName         *string   `gorm:"column:child_name;type:varchar(200)" json:"child_name,omitempty"`
	VaccinationStatus *string   `gorm:"column:vaccination_status;type:varchar(100)" json:"vaccination_status,omitempty"`
	NutritionStatus   *string   `gorm:"column:nutrition_status;type:varchar(100)" json:"nutrition_status,omitempty"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ChildHealthStatusModel) TableName() string { return "child_health_statuses" }

type MalnutritionRecordModel struct {
	ID             uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HouseholdID    uuid.UUID `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	MemberName     *string   `gorm:"column:member_name;type:varchar(200)" json:"member_name,omitempty"`
	Age            *int      `gorm:"column:age" json:"age,omitempty"`
	Severity       *string   `gorm:"column:severity;type:varchar(50)" json:"severity,omitempty"`
	UnderTreatment bool      `gorm:"column:under_treatment;not null;default:false" json:"under_treatment"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (MalnutritionRecordModel) TableName() string { return "malnutrition_records" }

type NutritionAccessModel struct {
	ID                  uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HouseholdID         uuid.UUID `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	SourceOfSupport     *string   `gorm:"column:source_of_support;type:varchar(200)" json:"source_of_support,omitempty"`
	RationShopReceiving bool      `gorm:"column:ration_shop_receiving;not null;default:false" json:"ration_shop_receiving"`
	RationItems         *string   `gorm:"column:ration_items;type:text" json:"ration_items,omitempty"`
	AnganwadiReceiving  bool      `gorm:"column:anganwadi_receiving;not null;default:false" json:"anganwadi_receiving"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (NutritionAccessModel) TableName() string { return "nutrition_access" }
