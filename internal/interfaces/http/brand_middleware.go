package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/usahakita/backoffice-api/internal/application/dto"
	"github.com/usahakita/backoffice-api/internal/domain/repository"
)

// HeaderBrandID header override tenant per request.
const HeaderBrandID = "X-Brand-ID"

// BrandMiddleware me-resolve tenant untuk request: header X-Brand-ID kalau
// ada (dan brand-nya valid), selain itu brand yang sedang aktif. Hasilnya
// ditaruh di c.Locals supaya handler tinggal memanggil GetBrandID — tidak ada
// lagi resolver global diam-diam di dalam logika bisnis.
func BrandMiddleware(brandRepo repository.BrandRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if override := c.Get(HeaderBrandID); override != "" {
			brand, err := brandRepo.GetByID(override)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
			}
			if brand == nil {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BRAND_NOT_FOUND", Message: "brand tidak ditemukan"})
			}
			c.Locals(LocalBrandID, brand.ID)
			return c.Next()
		}

		brand, err := brandRepo.GetActive()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		if brand == nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BRAND_NOT_FOUND", Message: "brand aktif tidak ditemukan"})
		}
		c.Locals(LocalBrandID, brand.ID)
		return c.Next()
	}
}
