// Package auth autentikasi user: register (bcrypt) dan login (JWT).
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/usahakita/backoffice-api/internal/application/dto"
	"github.com/usahakita/backoffice-api/internal/domain"
	"github.com/usahakita/backoffice-api/internal/domain/entity"
	"github.com/usahakita/backoffice-api/internal/domain/repository"
	"github.com/usahakita/backoffice-api/pkg/config"
	"github.com/usahakita/backoffice-api/pkg/jwt"
	"github.com/usahakita/backoffice-api/pkg/logger"
)

// UseCase operasi autentikasi.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   config.JWTConfig
	log      *logger.Logger
}

// NewUseCase membangun use case auth.
func NewUseCase(userRepo repository.UserRepository, jwtCfg config.JWTConfig, log *logger.Logger) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg, log: log}
}

// Register membuat user baru. Email unik; password disimpan sebagai hash bcrypt.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = entity.RoleKasir
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("user_id", user.ID).
		Str("email", user.Email).
		Msg("user terdaftar")
	resp := toUserResponse(user)
	return &resp, nil
}

// Login memverifikasi email + password dan mengembalikan JWT.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("user_id", user.ID).
		Msg("user login")
	return &dto.LoginResponse{Token: token, User: toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
