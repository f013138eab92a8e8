package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	householdModel "thunai_backend/internals/features/households/model"
	helper "thunai_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

type countByName struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// PanchayatReportRow is one line of the per-panchayat survey progress report.
type PanchayatReportRow struct {
	Panchayat  string `json:"panchayat"`
	Households int64  `json:"households"`
	Members    int64  `json:"members"`
}

// GET /api/dashboard/stats
func (dc *DashboardController) Stats(c *fiber.Ctx) error {
	var totalHouseholds, totalMembers int64

	if err := dc.DB.Model(&householdModel.HouseholdModel{}).
		Where("is_deleted = ?", false).Count(&totalHouseholds).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count households")
	}
	if err := dc.DB.Model(&householdModel.MemberModel{}).
		Where("is_deleted = ?", false).Count(&totalMembers).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count members")
	}

	var byCategory []countByName
	if err := dc.DB.Model(&householdModel.HouseholdModel{}).
		Select("COALESCE(category, 'Unspecified') AS name, COUNT(*) AS count").
		Where("is_deleted = ?", false).
		Group("COALESCE(category, 'Unspecified')").
		Scan(&byCategory).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to group by category")
	}

	var byPanchayat []countByName
	if err := dc.DB.Model(&householdModel.HouseholdModel{}).
		Select("COALESCE(grama_panchayat, 'Unspecified') AS name, COUNT(*) AS count").
		Where("is_deleted = ?", false).
		Group("COALESCE(grama_panchayat, 'Unspecified')").
		Scan(&byPanchayat).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to group by panchayat")
	}

	return helper.Success(c, "OK", fiber.Map{
		"total_households": totalHouseholds,
		"total_members":    totalMembers,
		"by_category":      byCategory,
		"by_panchayat":     byPanchayat,
	})
}

// GET /api/dashboard/reports
func (dc *DashboardController) Reports(c *fiber.Ctx) error {
	rows, err := dc.reportRows()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build report")
	}
	return helper.Success(c, "OK", fiber.Map{"report": rows})
}

func (dc *DashboardController) reportRows() ([]PanchayatReportRow, error) {
	var rows []PanchayatReportRow
	err := dc.DB.Raw(`
SELECT
    COALESCE(h.grama_panchayat, 'Unspecified') AS panchayat,
    COUNT(DISTINCT h.household_id)             AS households,
    COUNT(m.member_id)                         AS members
FROM households h
LEFT JOIN members m
    ON m.household_id = h.household_id AND m.is_deleted = ?
WHERE h.is_deleted = ?
GROUP BY COALESCE(h.grama_panchayat, 'Unspecified')
ORDER BY households DESC`, false, false).Scan(&rows).Error
	return rows, err
}
