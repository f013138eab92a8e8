package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"thunai_backend/internals/configs"
	"thunai_backend/internals/features/users/auth/dto"
	userModel "thunai_backend/internals/features/users/users/model"
)

const (
	accessTTL  = 24 * time.Hour
	bcryptCost = 10
)

var (
	ErrPhoneTaken = errors.New("phone number already registered")
	// ErrInvalidCredentials carries one uniform message for unknown phone,
	// inactive account and password mismatch, so accounts cannot be enumerated.
	ErrInvalidCredentials = errors.New("invalid phone number or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

type Claims struct {
	UserID      string `json:"user_id"`
	RoleID      uint   `json:"role_id"`
	PhoneNumber string `json:"phone_number"`
	jwt.RegisteredClaims
}

// Register creates a user with a one-way hashed password.
func Register(db *gorm.DB, req dto.RegisterRequest) (*userModel.UserModel, error) {
	phone := strings.TrimSpace(req.PhoneNumber)

	var existing userModel.UserModel
	err := db.Where("phone_number = ?", phone).First(&existing).Error
	if err == nil {
		return nil, ErrPhoneTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	u := userModel.UserModel{
		PhoneNumber:  phone,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(req.FullName),
		RoleID:       req.RoleID,
		IsActive:     true,
	}
	if err := db.Create(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// Login verifies the credentials and issues a signed 24h token.
func Login(db *gorm.DB, req dto.LoginRequest) (*dto.LoginResponse, error) {
	var u userModel.UserModel
	err := db.Where("phone_number = ?", strings.TrimSpace(req.PhoneNumber)).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.IsActive {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := IssueToken(&u)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: dto.NewAuthUser(&u)}, nil
}

// IssueToken signs a token embedding the user id, role id and phone.
func IssueToken(u *userModel.UserModel) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:      u.UserID.String(),
		RoleID:      u.RoleID,
		PhoneNumber: u.PhoneNumber,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}

// VerifyToken checks signature and expiry, then re-loads the user.
func VerifyToken(db *gorm.DB, tokenString string) (*userModel.UserModel, *Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(configs.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, nil, ErrInvalidToken
	}

	var u userModel.UserModel
	if err := db.Where("user_id = ? AND is_active = ?", userID, true).First(&u).Error; err != nil {
		return nil, nil, ErrInvalidToken
	}
	return &u, claims, nil
}
