package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	model "thunai_backend/internals/features/locations/model"
	helper "thunai_backend/internals/helpers"
)

// LocationController serves the administrative-geography lookups the
// data-entry client uses to populate its form selects.
type LocationController struct {
	DB *gorm.DB
}

func NewLocationController(db *gorm.DB) *LocationController {
	return &LocationController{DB: db}
}

// GET /api/locations/districts
func (lc *LocationController) Districts(c *fiber.Ctx) error {
	var rows []model.DistrictModel
	if err := lc.DB.Order("district_name").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load districts")
	}
	return helper.Success(c, "OK", fiber.Map{"districts": rows})
}

// GET /api/locations/blocks?district_id=
func (lc *LocationController) Blocks(c *fiber.Ctx) error {
	q := lc.DB.Order("block_name")
	if id := c.Query("district_id"); id != "" {
		q = q.Where("district_id = ?", id)
	}
	var rows []model.BlockModel
	if err := q.Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load blocks")
	}
	return helper.Success(c, "OK", fiber.Map{"blocks": rows})
}

// GET /api/locations/panchayats?block_id=
func (lc *LocationController) Panchayats(c *fiber.Ctx) error {
	q := lc.DB.Order("panchayat_name")
	if id := c.Query("block_id"); id != "" {
		q = q.Where("block_id = ?", id)
	}
	var rows []model.PanchayatModel
	if err := q.Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load panchayats")
	}
	return helper.Success(c, "OK", fiber.Map{"panchayats": rows})
}

// GET /api/locations/hamlets?panchayat_id=
func (lc *LocationController) Hamlets(c *fiber.Ctx) error {
	q := lc.DB.Order("hamlet_name")
	if id := c.Query("panchayat_id"); id != "" {
		q = q.Where("panchayat_id = ?", id)
	}
	var rows []model.HamletModel
	if err := q.Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load hamlets")
	}
	return helper.Success(c, "OK", fiber.Map{"hamlets": rows})
}
