package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "thunai_backend/internals/features/households/model"
	helper "thunai_backend/internals/helpers"
)

type MemberController struct {
	DB *gorm.DB
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{DB: db}
}

// GET /api/members?household_id=
func (mc *MemberController) List(c *fiber.Ctx) error {
	p := helper.ParsePagination(c)
	q := mc.DB.Model(&model.MemberModel{}).Where("is_deleted = ?", false)

	if hid := c.Query("household_id"); hid != "" {
		id, err := uuid.Parse(hid)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid household_id")
		}
		q = q.Where("household_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, internalMessage(err))
	}

	var rows []model.MemberModel
	if err := q.Order("created_at DESC").Limit(p.Limit).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, internalMessage(err))
	}
	return helper.Success(c, "OK", fiber.Map{
		"members":    rows,
		"pagination": helper.BuildMeta(total, p),
	})
}

// GET /api/members/:id
func (mc *MemberController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid member id")
	}

	var m model.MemberModel
	if err := mc.DB.Where("member_id = ? AND is_deleted = ?", id, false).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Member not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, internalMessage(err))
	}
	return helper.Success(c, "OK", fiber.Map{"member": m})
}

// POST /api/members
func (mc *MemberController) Create(c *fiber.Ctx) error {
	var m model.MemberModel
	if err := helper.DecodeBody(c, &m); err != nil {
		return helper.MalformedBody(c)
	}
	if m.Name == "" || m.HouseholdID == uuid.Nil {
		return helper.RequiredFieldsError(c, []string{"name", "household_id"})
	}

	if err := mc.DB.Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, internalMessage(err))
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Member created", fiber.Map{"member": m})
}

// PUT /api/members/:id
func (mc *MemberController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid member id")
	}

	var existing model.MemberModel
	if err := mc.DB.Where("member_id = ? AND is_deleted = ?", id, false).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Member not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, internalMessage(err))
	}

	var patch map[string]interface{}
	if err := helper.DecodeBody(c, &patch); err != nil {
		return helper.MalformedBody(c)
	}
	// identity and lifecycle columns are not updatable through this endpoint
	delete(patch, "member_id")
	delete(patch, "household_id")
	delete(patch, "created_at")
	patch["updated_at"] = time.Now()

	if err := mc.DB.Model(&existing).Updates(patch).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, internalMessage(err))
	}
	return helper.Success(c, "Member updated", fiber.Map{"member": existing})
}

// DELETE /api/members/:id soft-deletes, mirroring the household lifecycle.
func (mc *MemberController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid member id")
	}

	res := mc.DB.Model(&model.MemberModel{}).
		Where("member_id = ? AND is_deleted = ?", id, false).
		Updates(map[string]interface{}{"is_deleted": true, "updated_at": time.Now()})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, internalMessage(res.Error))
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Member not found")
	}
	return helper.Success(c, "Member deleted", nil)
}
