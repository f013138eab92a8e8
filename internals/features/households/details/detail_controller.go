package details

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"thunai_backend/internals/configs"
	helper "thunai_backend/internals/helpers"
)

// The ~30 detail collections expose an identical CRUD surface: list filtered
// by household, get, create, partial update, hard delete. One generic
// controller serves them all; each collection differs only in its model type.

type DetailController[T any] struct {
	DB       *gorm.DB
	Resource string
}

func NewDetailController[T any](db *gorm.DB, resource string) *DetailController[T] {
	return &DetailController[T]{DB: db, Resource: resource}
}

// GET /api/{resource}?household_id=
func (dc *DetailController[T]) List(c *fiber.Ctx) error {
	p := helper.ParsePagination(c)

	var zero T
	q := dc.DB.Model(&zero)
	if hid := c.Query("household_id"); hid != "" {
		id, err := uuid.Parse(hid)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid household_id")
		}
		q = q.Where("household_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, hideInternal(err))
	}

	var rows []T
	if err := q.Order("id DESC").Limit(p.Limit).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, hideInternal(err))
	}
	return helper.Success(c, "OK", fiber.Map{
		dc.Resource:  rows,
		"pagination": helper.BuildMeta(total, p),
	})
}

// GET /api/{resource}/:id
func (dc *DetailController[T]) GetByID(c *fiber.Ctx) error {
	var row T
	if err := dc.DB.First(&row, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, hideInternal(err))
	}
	return helper.Success(c, "OK", fiber.Map{"record": row})
}

// POST /api/{resource}
func (dc *DetailController[T]) Create(c *fiber.Ctx) error {
	var row T
	if err := helper.DecodeBody(c, &row); err != nil {
		return helper.MalformedBody(c)
	}
	if err := dc.DB.Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, hideInternal(err))
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Record created", fiber.Map{"record": row})
}

// PUT /api/{resource}/:id
func (dc *DetailController[T]) Update(c *fiber.Ctx) error {
	var existing T
	if err := dc.DB.First(&existing, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, hideInternal(err))
	}

	var patch map[string]interface{}
	if err := helper.DecodeBody(c, &patch); err != nil {
		return helper.MalformedBody(c)
	}
	delete(patch, "id")
	delete(patch, "household_id")
	delete(patch, "created_at")
	patch["updated_at"] = time.Now()

	if err := dc.DB.Model(&existing).Updates(patch).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, hideInternal(err))
	}
	return helper.Success(c, "Record updated", fiber.Map{"record": existing})
}

// DELETE /api/{resource}/:id. Detail rows are hard-deleted only.
func (dc *DetailController[T]) Delete(c *fiber.Ctx) error {
	var zero T
	res := dc.DB.Delete(&zero, "id = ?", c.Params("id"))
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, hideInternal(res.Error))
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Record not found")
	}
	return helper.Success(c, "Record deleted", nil)
}

// Register mounts the uniform CRUD verbs on a router group.
func (dc *DetailController[T]) Register(r fiber.Router) {
	r.Get("/", dc.List)
	r.Get("/:id", dc.GetByID)
	r.Post("/", dc.Create)
	r.Put("/:id", dc.Update)
	r.Delete("/:id", dc.Delete)
}

func hideInternal(err error) string {
	if configs.IsProduction() {
		return "Internal server error"
	}
	return err.Error()
}
