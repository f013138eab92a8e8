package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoleModel struct {
	RoleID          uint   `gorm:"column:role_id;primaryKey" json:"role_id"`
	RoleName        string `gorm:"column:role_name;type:varchar(50);not null;unique" json:"role_name"`
	RoleDescription string `gorm:"column:role_description;type:varchar(255)" json:"role_description"`
}

func (RoleModel) TableName() string { return "roles" }

type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	PhoneNumber  string    `gorm:"column:phone_number;type:varchar(10);not null;uniqueIndex" json:"phone_number"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(100);not null" json:"-"`
	FullName     string    `gorm:"column:full_name;type:varchar(100);not null" json:"full_name"`
	RoleID       uint      `gorm:"column:role_id;not null" json:"role_id"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Role *RoleModel `gorm:"foreignKey:RoleID;references:RoleID" json:"role,omitempty"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}
