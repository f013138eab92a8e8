package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	model "thunai_backend/internals/features/audit/model"
	helper "thunai_backend/internals/helpers"
)

type AuditController struct {
	DB *gorm.DB
}

func NewAuditController(db *gorm.DB) *AuditController {
	return &AuditController{DB: db}
}

// GET /api/audit-logs (admin only), newest first.
func (ac *AuditController) List(c *fiber.Ctx) error {
	p := helper.ParsePagination(c)
	q := ac.DB.Model(&model.AuditLogModel{})

	if method := c.Query("method"); method != "" {
		q = q.Where("method = ?", method)
	}
	if userID := c.Query("user_id"); userID != "" {
		q = q.Where("user_id = ?", userID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count audit logs")
	}

	var rows []model.AuditLogModel
	if err := q.Order("timestamp DESC").Limit(p.Limit).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load audit logs")
	}
	return helper.Success(c, "OK", fiber.Map{
		"audit_logs": rows,
		"pagination": helper.BuildMeta(total, p),
	})
}
