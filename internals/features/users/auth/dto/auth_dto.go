package dto

import (
	userModel "thunai_backend/internals/features/users/users/model"
)

type RegisterRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,len=10,numeric"`
	Password    string `json:"password" validate:"required,min=6"`
	FullName    string `json:"full_name" validate:"required,min=2,max=100"`
	RoleID      uint   `json:"role_id" validate:"required,min=1,max=7"`
}

type LoginRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,len=10,numeric"`
	Password    string `json:"password" validate:"required"`
}

// AuthUser is the safe projection returned by auth endpoints; it never
// carries the password hash.
type AuthUser struct {
	UserID      string `json:"user_id"`
	PhoneNumber string `json:"phone_number"`
	FullName    string `json:"full_name"`
	RoleID      uint   `json:"role_id"`
	RoleName    string `json:"role_name,omitempty"`
	IsActive    bool   `json:"is_active"`
}

func NewAuthUser(u *userModel.UserModel) AuthUser {
	out := AuthUser{
		UserID:      u.UserID.String(),
		PhoneNumber: u.PhoneNumber,
		FullName:    u.FullName,
		RoleID:      u.RoleID,
		IsActive:    u.IsActive,
	}
	if u.Role != nil {
		out.RoleName = u.Role.RoleName
	}
	return out
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}
