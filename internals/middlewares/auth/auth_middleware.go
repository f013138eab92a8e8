package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"thunai_backend/internals/configs"
	userModel "thunai_backend/internals/features/users/users/model"
)

type claims struct {
	UserID      string `json:"user_id"`
	RoleID      uint   `json:"role_id"`
	PhoneNumber string `json:"phone_number"`
	jwt.RegisteredClaims
}

// AuthMiddleware verifies the bearer token, checks the account is still
// active and populates user_id / role_id / user_phone in the request context.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    fiber.StatusUnauthorized,
				"status":  "error",
				"message": err.Error(),
			})
		}

		if configs.JWTSecret == "" {
			log.Error("JWT_SECRET is empty")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"code":    fiber.StatusInternalServerError,
				"status":  "error",
				"message": "Missing JWT secret",
			})
		}

		cl := &claims{}
		token, err := jwt.ParseWithClaims(tokenString, cl, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(configs.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return unauthorized(c, "Invalid or expired token")
		}

		userID, err := uuid.Parse(cl.UserID)
		if err != nil {
			return unauthorized(c, "Invalid user id in token")
		}

		var u userModel.UserModel
		if err := db.Where("user_id = ?", userID).First(&u).Error; err != nil {
			return unauthorized(c, "User not found")
		}
		if !u.IsActive {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"code":    fiber.StatusForbidden,
				"status":  "error",
				"message": "Account is deactivated",
			})
		}

		c.Locals("user_id", cl.UserID)
		c.Locals("role_id", u.RoleID)
		c.Locals("user_phone", u.PhoneNumber)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"code":    fiber.StatusUnauthorized,
		"status":  "error",
		"message": msg,
	})
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if header == "" {
		return "", errors.New("missing Authorization header")
	}
	if !strings.HasPrefix(header, "Bearer ") {
		return "", errors.New("Authorization header must be a bearer token")
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		return "", errors.New("empty bearer token")
	}
	return token, nil
}
