package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"thunai_backend/internals/features/users/auth/dto"
	"thunai_backend/internals/features/users/auth/service"
	helper "thunai_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/auth/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := helper.DecodeBody(c, &req); err != nil {
		return helper.MalformedBody(c)
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	u, err := service.Register(ac.DB, req)
	if err != nil {
		if errors.Is(err, service.ErrPhoneTaken) {
			return helper.Error(c, fiber.StatusConflict, "Phone number already registered")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Registration failed")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "User registered", fiber.Map{
		"user": dto.NewAuthUser(u),
	})
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := helper.DecodeBody(c, &req); err != nil {
		return helper.MalformedBody(c)
	}
	if err := validate.Struct(req); err != nil {
		// a malformed phone can never match an account; keep the message uniform
		return helper.Error(c, fiber.StatusUnauthorized, service.ErrInvalidCredentials.Error())
	}

	res, err := service.Login(ac.DB, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return helper.Error(c, fiber.StatusUnauthorized, service.ErrInvalidCredentials.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Login failed")
	}
	return helper.Success(c, "Login successful", res)
}

// GET /api/auth/verify
func (ac *AuthController) Verify(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
	if token == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Missing bearer token")
	}

	u, _, err := service.VerifyToken(ac.DB, token)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid or expired token")
	}
	return helper.Success(c, "Token valid", fiber.Map{"user": dto.NewAuthUser(u)})
}
