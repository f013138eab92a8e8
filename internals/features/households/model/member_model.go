package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberModel struct {
	MemberID              uuid.UUID  `gorm:"column:member_id;type:uuid;primaryKey" json:"member_id"`
	HouseholdID           uuid.UUID  `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	Name                  string     `gorm:"column:name;type:varchar(200);not null" json:"name"`
	AadhaarNumber         *string    `gorm:"column:aadhaar_number;type:varchar(20)" json:"aadhaar_number,omitempty"`
	DateOfBirth           *time.Time `gorm:"column:date_of_birth;type:date" json:"date_of_birth,omitempty"`
	Gender                *string    `gorm:"column:gender;type:varchar(20)" json:"gender,omitempty"`
	RelationToHead        *string    `gorm:"column:relation_to_head;type:varchar(50)" json:"relation_to_head,omitempty"`
	MaritalStatus         *string    `gorm:"column:marital_status;type:varchar(30)" json:"marital_status,omitempty"`
	Age                   *int       `gorm:"column:age" json:"age,omitempty"`
	GeneralEducationLevel *string    `gorm:"column:general_education_level;type:varchar(100)" json:"general_education_level,omitempty"`
	VocationalKnowledge   *string    `gorm:"column:vocational_knowledge;type:varchar(200)" json:"vocational_knowledge,omitempty"`
	OccupationSector      *string    `gorm:"column:occupation_sector;type:varchar(100)" json:"occupation_sector,omitempty"`
	BankAccount           bool       `gorm:"column:bank_account;not null;default:false" json:"bank_account"`
	HasAadhaar            bool       `gorm:"column:has_aadhaar;not null;default:false" json:"has_aadhaar"`
	Pension               *string    `gorm:"column:pension;type:varchar(100)" json:"pension,omitempty"`
	AdditionalDetails     *string    `gorm:"column:additional_details;type:text" json:"additional_details,omitempty"`
	IsDeleted             bool       `gorm:"column:is_deleted;not null;default:false;index" json:"is_deleted"`
	CreatedAt             time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (MemberModel) TableName() string { return "members" }

func (m *MemberModel) BeforeCreate(tx *gorm.DB) error {
	if m.MemberID == uuid.Nil {
		m.MemberID = uuid.New()
	}
	return nil
}
