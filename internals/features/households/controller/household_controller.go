package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"thunai_backend/internals/configs"
	"thunai_backend/internals/features/households/dto"
	"thunai_backend/internals/features/households/service"
	helper "thunai_backend/internals/helpers"
)

type HouseholdController struct {
	Service *service.HouseholdService
}

func NewHouseholdController(db *gorm.DB) *HouseholdController {
	return &HouseholdController{Service: service.NewHouseholdService(db)}
}

// POST /api/households
func (hc *HouseholdController) Create(c *fiber.Ctx) error {
	req, err := dto.ParseCreateHouseholdRequest(c.Body())
	if err != nil {
		return helper.MalformedBody(c)
	}

	if missing := req.MissingRequired(); len(missing) > 0 {
		return helper.RequiredFieldsError(c, missing)
	}

	created, err := hc.Service.Create(req)
	if err != nil {
		log.Errorf("household create failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, internalMessage(err))
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Household created", fiber.Map{
		"household": created,
	})
}

// GET /api/households/:id
func (hc *HouseholdController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid household id")
	}

	h, err := hc.Service.Read(id)
	if err != nil {
		if errors.Is(err, service.ErrHouseholdNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Household not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, internalMessage(err))
	}
	return helper.Success(c, "OK", fiber.Map{"household": h})
}

// GET /api/households
func (hc *HouseholdController) List(c *fiber.Ctx) error {
	p := helper.ParsePagination(c)
	q := dto.ListHouseholdsQuery{
		Search:    c.Query("search"),
		Category:  c.Query("category"),
		Panchayat: c.Query("panchayat"),
		Hamlet:    c.Query("hamlet"),
	}

	rows, total, err := hc.Service.List(p, q)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, internalMessage(err))
	}
	return helper.Success(c, "OK", fiber.Map{
		"households": rows,
		"pagination": helper.BuildMeta(total, p),
	})
}

// PUT /api/households/:id
func (hc *HouseholdController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid household id")
	}

	var req dto.UpdateHouseholdRequest
	if err := helper.DecodeBody(c, &req); err != nil {
		return helper.MalformedBody(c)
	}

	h, err := hc.Service.Update(id, &req)
	if err != nil {
		if errors.Is(err, service.ErrHouseholdNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Household not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, internalMessage(err))
	}
	return helper.Success(c, "Household updated", fiber.Map{"household": h})
}

// DELETE /api/households/:id
func (hc *HouseholdController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid household id")
	}

	if err := hc.Service.SoftDelete(id); err != nil {
		if errors.Is(err, service.ErrHouseholdNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Household not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, internalMessage(err))
	}
	return helper.Success(c, "Household deleted", nil)
}

// internalMessage hides error internals outside development.
func internalMessage(err error) string {
	if configs.IsProduction() {
		return "Internal server error"
	}
	return err.Error()
}
