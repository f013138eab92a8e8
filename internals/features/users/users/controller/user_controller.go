package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "thunai_backend/internals/features/users/users/model"
	helper "thunai_backend/internals/helpers"
)

// UserController is the Admin-only user administration surface: listing
// enumerators and toggling account activation.
type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /api/users
func (uc *UserController) List(c *fiber.Ctx) error {
	p := helper.ParsePagination(c)
	q := uc.DB.Model(&model.UserModel{})

	if role := c.Query("role_id"); role != "" {
		q = q.Where("role_id = ?", role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var rows []model.UserModel
	if err := q.Preload("Role").Order("created_at DESC").
		Limit(p.Limit).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load users")
	}
	return helper.Success(c, "OK", fiber.Map{
		"users":      rows,
		"pagination": helper.BuildMeta(total, p),
	})
}

// PUT /api/users/:id/status
func (uc *UserController) SetStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var req struct {
		IsActive *bool `json:"is_active"`
	}
	if err := helper.DecodeBody(c, &req); err != nil || req.IsActive == nil {
		return helper.RequiredFieldsError(c, []string{"is_active"})
	}

	var u model.UserModel
	if err := uc.DB.Where("user_id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load user")
	}

	if err := uc.DB.Model(&u).Updates(map[string]interface{}{
		"is_active":  *req.IsActive,
		"updated_at": time.Now(),
	}).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update user")
	}
	return helper.Success(c, "User status updated", fiber.Map{"user": u})
}
