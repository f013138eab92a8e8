package model

import (
	"time"

	"github.com/google/uuid"
)

// Education, employment, entitlement and social detail tables.

type EducationDetailModel struct {
	ID                uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HouseholdID       uuid.UUID `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	StudentName       *string   `gorm:"column:student_name;type:varchar(200)" json:"student_name,omitempty"`
	ClassGrade        *string   `gorm:"column:class_grade;type:varchar(50)" json:"class_grade,omitempty"`
	SchoolInstitution *string   `gorm:"column:school_institution;type:varchar(200)" json:"school_institution,omitempty"`
	IssuesFaced       *string   `gorm:"column:issues_faced;type:text" json:"issues_faced,omitempty"`
	EstimatedBudget   *float64  `gorm:"column:estimated_budget" json:"estimated_budget,omitempty"`
	IsDropout         bool      `gorm:"column:is_dropout;not null;default:false" json:"is_dropout"`
	DropoutAge        *int      `gorm:"column:dropout_age" json:"dropout_age,omitempty"`
	DropoutReason     *string   `gorm:"column:dropout_reason;type:text" json:"dropout_reason,omitempty"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (EducationDetailModel) TableName() string { return "education_details" }

type EmploymentDetailModel struct {
	ID                 uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HouseholdID        uuid.UUID `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	MemberName         *string   `gorm:"column:member_name;type:varchar(200)" json:"member_name,omitempty"`
	Age                *int      `gorm:"column:age" json:"age,omitempty"`
	EmploymentExchange *string   `gorm:"column:employment_exchange;type:varchar(200)" json:"employment_exchange,omitempty"`
	RegisteredPSC      bool      `gorm:"column:registered_psc;not null;default:false" json:"registered_psc"`
	DWMS               *string   `gorm:"column:dwms;type:varchar(100)" json:"dwms,omitempty"`
	AdditionalDetails  *string   `gorm:"column:additional_details;type:text" json:"additional_details,omitempty"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (EmploymentDetailModel) TableName() string { return "employment_details" }

type EntitlementModel struct {
	ID                    uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HouseholdID           uuid.UUID `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	LandOwnershipDocument bool      `gorm:"column:land_ownership_document;not null;default:false" json:"land_ownership_document"`
	IssuedByDepartment    *string   `gorm:"column:issued_by_department;type:varchar(200)" json:"issued_by_department,omitempty"`
	TitleDeedAvailable    bool      `gorm:"column:title_deed_available;not null;default:false" json:"title_deed_available"`
	HasPattayam           bool      `gorm:"column:has_pattayam;not null;default:false" json:"has_pattayam"`
	AdditionalDetails     *string   `gorm:"column:additional_details;type:text" json:"additional_details,omitempty"`
	CreatedAt             time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (EntitlementModel) TableName() string { return "entitlements" }

type MigrantWorkerModel struct {
	ID                 uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HouseholdID        uuid.UUID `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	Name               *string   `gorm:"column:name;type:varchar(200)" json:"name,omitempty"`
	Place              *string   `gorm:"column:place;type:varchar(200)" json:"place,omitempty"`
	WorkSector         *string   `gorm:"column:work_sector;type:varchar(100)" json:"work_sector,omitempty"`
	SkillsExpertise    *string   `gorm:"column:skills_expertise;type:text" json:"skills_expertise,omitempty"`
	EmploymentDuration *int      `gorm:"column:employment_duration" json:"employment_duration,omitempty"`
	AdditionalDetails  *string   `gorm:"column:additional_details;type:text" json:"additional_details,omitempty"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (MigrantWorkerModel) TableName() string { return "migrant_workers" }

type GovtSchemeHouseModel struct {
	ID                 uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HouseholdID        uuid.UUID `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	OwnerName          *string   `gorm:"column:owner_name;type:varchar(200)" json:"owner_name,omitempty"`
	Scheme             *string   `gorm:"column:scheme;type:varchar(200)" json:"scheme,omitempty"`
	AllottedYear       *int      `gorm:"column:allotted_year" json:"allotted_year,omitempty"`
	ConstructionStatus *string   `gorm:"column:construction_status;type:varchar(100)" json:"construction_status,omitempty"`
	NotAvailingReason  *string   `gorm:"column:not_availing_reason;type:text" json:"not_availing_reason,omitempty"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (GovtSchemeHouseModel) TableName() string { return "govt_scheme_houses" }

type ExitWishHouseModel struct {
	ID                uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HouseholdID       uuid.UUID `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	MemberName        *string   `gorm:"column:member_name;type:varchar(200)" json:"member_name,omitempty"`
	WishesToMove      bool      `gorm:"column:wishes_to_move;not null;default:false" json:"wishes_to_move"`
	PreferredLocation *string   `gorm:"column:preferred_location;type:varchar(200)" json:"preferred_location,omitempty"`
	Reason            *string   `gorm:"column:reason;type:text" json:"reason,omitempty"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ExitWishHouseModel) TableName() string { return "exit_wish_houses" }

type SocialIssueModel struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HouseholdID uuid.UUID `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	IssueType   *string   `gorm:"column:issue_type;type:varchar(200)" json:"issue_type,omitempty"`
	Details     *string   `gorm:"column:details;type:text" json:"details,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SocialIssueModel) TableName() string { return "social_issues" }

type WageEmploymentModel struct {
	ID               uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HouseholdID      uuid.UUID `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	WorkdaysLastYear *int      `gorm:"column:workdays_last_year" json:"workdays_last_year,omitempty"`
	DistanceToJob    *string   `gorm:"column:distance_to_job;type:varchar(50)" json:"distance_to_job,omitempty"`
	PaymentMode      *string   `gorm:"column:payment_mode;type:varchar(100)" json:"payment_mode,omitempty"`
	WorkAvailability *string   `gorm:"column:work_availability;type:varchar(100)" json:"work_availability,omitempty"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (WageEmploymentModel) TableName() string { return "wage_employment" }

type LivelihoodOpportunityModel struct {
	ID                uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HouseholdID       uuid.UUID `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	MemberName        *string   `gorm:"column:member_name;type:varchar(200)" json:"member_name,omitempty"`
	Age               *int      `gorm:"column:age" json:"age,omitempty"`
	WorkSkillInterest *string   `gorm:"column:work_skill_interest;type:text" json:"work_skill_interest,omitempty"`
	SupportRequired   *string   `gorm:"column:support_required;type:text" json:"support_required,omitempty"`
	ExpectedIncome    *float64  `gorm:"column:expected_income" json:"expected_income,omitempty"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (LivelihoodOpportunityModel) TableName() string { return "livelihood_opportunities" }

type ArtsSportModel struct {
	ID                uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HouseholdID       uuid.UUID `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	MemberName        *string   `gorm:"column:member_name;type:varchar(200)" json:"member_name,omitempty"`
	Age               *int      `gorm:"column:age" json:"age,omitempty"`
	AreaOfInterest    *string   `gorm:"column:area_of_interest;type:varchar(200)" json:"area_of_interest,omitempty"`
	AdditionalDetails *string   `gorm:"column:additional_details;type:text" json:"additional_details,omitempty"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ArtsSportModel) TableName() string { return "arts_sports" }

type AdditionalInfoModel struct {
	ID                uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HouseholdID       uuid.UUID `gorm:"column:household_id;type:uuid;not null;index" json:"household_id"`
	BenefitsReceived  *string   `gorm:"column:benefits_received;type:text" json:"benefits_received,omitempty"`
	AdditionalRemarks *string   `gorm:"column:additional_remarks;type:text" json:"additional_remarks,omitempty"`
	SurveyComments    *string   `gorm:"column:survey_comments;type:text" json:"survey_comments,omitempty"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AdditionalInfoModel) TableName() string { return "additional_info" }
