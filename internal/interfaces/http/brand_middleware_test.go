package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usahakita/backoffice-api/internal/domain/entity"
	apphttp "github.com/usahakita/backoffice-api/internal/interfaces/http"
)

// fakeBrandRepo cukup untuk middleware: GetByID + GetActive.
type fakeBrandRepo struct {
	brands map[string]*entity.BrandProfile
}

func newFakeBrandRepo(brands ...*entity.BrandProfile) *fakeBrandRepo {
	f := &fakeBrandRepo{brands: map[string]*entity.BrandProfile{}}
	for _, b := range brands {
		f.brands[b.ID] = b
	}
	return f
}

func (f *fakeBrandRepo) Create(b *entity.BrandProfile) error { f.brands[b.ID] = b; return nil }

func (f *fakeBrandRepo) GetByID(id string) (*entity.BrandProfile, error) {
	return f.brands[id], nil
}

func (f *fakeBrandRepo) GetActive() (*entity.BrandProfile, error) {
	for _, b := range f.brands {
		if b.IsActive {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBrandRepo) List(limit, offset int) ([]*entity.BrandProfile, error) { return nil, nil }

func (f *fakeBrandRepo) Update(b *entity.BrandProfile) error { f.brands[b.ID] = b; return nil }

func (f *fakeBrandRepo) SetActive(id string) error {
	for _, b := range f.brands {
		b.IsActive = b.ID == id
	}
	return nil
}

func buildBrandApp(repo *fakeBrandRepo) *fiber.App {
	app := fiber.New()
	app.Get("/tenant", apphttp.BrandMiddleware(repo), func(c *fiber.Ctx) error {
		return c.SendString(apphttp.GetBrandID(c))
	})
	return app
}

func brandRequest(t *testing.T, app *fiber.App, header string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/tenant", nil)
	if header != "" {
		req.Header.Set(apphttp.HeaderBrandID, header)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

// Tanpa header: fallback ke brand yang sedang aktif.
func TestBrandMiddleware_FallbackKeBrandAktif(t *testing.T) {
	repo := newFakeBrandRepo(
		&entity.BrandProfile{ID: "brand-a", Name: "Toko A", IsActive: false},
		&entity.BrandProfile{ID: "brand-b", Name: "Toko B", IsActive: true},
	)
	app := buildBrandApp(repo)

	resp := brandRequest(t, app, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "brand-b", readBody(t, resp))
}

// Header X-Brand-ID menang atas brand aktif.
func TestBrandMiddleware_HeaderOverride(t *testing.T) {
	repo := newFakeBrandRepo(
		&entity.BrandProfile{ID: "brand-a", Name: "Toko A", IsActive: false},
		&entity.BrandProfile{ID: "brand-b", Name: "Toko B", IsActive: true},
	)
	app := buildBrandApp(repo)

	resp := brandRequest(t, app, "brand-a")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "brand-a", readBody(t, resp))
}

// Override ke brand yang tidak ada → 400, bukan diam-diam jatuh ke brand aktif.
func TestBrandMiddleware_OverrideTidakDikenal_Kembali400(t *testing.T) {
	repo := newFakeBrandRepo(
		&entity.BrandProfile{ID: "brand-b", Name: "Toko B", IsActive: true},
	)
	app := buildBrandApp(repo)

	resp := brandRequest(t, app, "brand-hantu")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "BRAND_NOT_FOUND")
}

// Tanpa header dan tanpa brand aktif → 400 BRAND_NOT_FOUND.
func TestBrandMiddleware_TanpaBrandAktif_Kembali400(t *testing.T) {
	repo := newFakeBrandRepo(
		&entity.BrandProfile{ID: "brand-a", Name: "Toko A", IsActive: false},
	)
	app := buildBrandApp(repo)

	resp := brandRequest(t, app, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "BRAND_NOT_FOUND")
}
