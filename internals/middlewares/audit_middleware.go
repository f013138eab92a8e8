package middlewares

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	auditModel "thunai_backend/internals/features/audit/model"
)

const maskedValue = "***"

// fields replaced with a fixed placeholder before the body is logged
var sensitiveFields = map[string]struct{}{
	"password":     {},
	"token":        {},
	"accessToken":  {},
	"refreshToken": {},
}

// AuditMiddleware records one audit row per request. The row is persisted in
// a goroutine after the response is written: it never blocks the request and
// a persistence failure is swallowed (at-most-once delivery).
func AuditMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entry := auditModel.AuditLogModel{
			Timestamp: time.Now(),
			Action:    actionFor(c.Method()),
			Method:    c.Method(),
			URL:       c.OriginalURL(),
			IP:        c.IP(),
			UserAgent: c.Get(fiber.HeaderUserAgent),
			Body:      MaskBody(c.Body()),
			Query:     queryJSON(c),
		}

		err := c.Next()

		if uid, ok := c.Locals("user_id").(string); ok {
			entry.UserID = &uid
		}
		if phone, ok := c.Locals("user_phone").(string); ok {
			entry.UserPhone = &phone
		}
		entry.StatusCode = c.Response().StatusCode()

		go func(row auditModel.AuditLogModel) {
			if dbErr := db.Create(&row).Error; dbErr != nil {
				log.Warnf("audit log write failed: %v", dbErr)
			}
		}(entry)

		return err
	}
}

// MaskBody replaces sensitive top-level fields with a placeholder. Non-JSON
// bodies are dropped rather than logged raw.
func MaskBody(body []byte) datatypes.JSON {
	if len(body) == 0 {
		return nil
	}
	var parsed map[string]interface{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil
	}
	for field := range sensitiveFields {
		if _, present := parsed[field]; present {
			parsed[field] = maskedValue
		}
	}
	masked, err := json.Marshal(parsed)
	if err != nil {
		return nil
	}
	return datatypes.JSON(masked)
}

func queryJSON(c *fiber.Ctx) datatypes.JSON {
	queries := c.Queries()
	if len(queries) == 0 {
		return nil
	}
	buf, err := json.Marshal(queries)
	if err != nil {
		return nil
	}
	return datatypes.JSON(buf)
}

func actionFor(method string) string {
	switch method {
	case fiber.MethodPost:
		return "create"
	case fiber.MethodPut, fiber.MethodPatch:
		return "update"
	case fiber.MethodDelete:
		return "delete"
	default:
		return "read"
	}
}
