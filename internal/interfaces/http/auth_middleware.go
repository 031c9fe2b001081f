package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/usahakita/backoffice-api/internal/application/dto"
	"github.com/usahakita/backoffice-api/pkg/jwt"
)

// Key Locals untuk UserID, Role, dan BrandID di Fiber.
const (
	LocalUserID  = "user_id"
	LocalRole    = "role"
	LocalBrandID = "brand_id"
)

// AuthMiddleware memvalidasi Bearer Token JWT dan menaruh UserID + Role di
// c.Locals. Brand TIDAK diambil dari token — itu urusan BrandMiddleware.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization wajib diisi"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "format: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token kosong"})
		}
		userID, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token tidak valid atau kedaluwarsa"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole membatasi akses ke role tertentu. Dipasang setelah AuthMiddleware.
func RequireRole(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "token tanpa role"})
		}
		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "role tidak diizinkan mengakses resource ini"})
	}
}

// GetUserID mengembalikan UserID dari context (setelah AuthMiddleware).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole mengembalikan Role dari context (setelah AuthMiddleware).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetBrandID mengembalikan BrandID dari context (setelah BrandMiddleware).
func GetBrandID(c *fiber.Ctx) string {
	v := c.Locals(LocalBrandID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
