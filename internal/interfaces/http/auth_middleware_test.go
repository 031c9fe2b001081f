package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/usahakita/backoffice-api/internal/interfaces/http"
	pkgjwt "github.com/usahakita/backoffice-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helper test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "backoffice-test"
	testExpMin    = 60
)

// buildTestApp membangun aplikasi Fiber minimal dengan:
//   - AuthMiddleware untuk parse JWT dan mengisi locals
//   - RequireRole untuk otorisasi akses
//   - Handler dummy yang mengembalikan 200 kalau lolos middleware
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New(fiber.Config{
		// Redam error internal selama test
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	// Rute terproteksi: JWT + RBAC
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole membuat JWT dengan role tertentu.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err, "token JWT valid harus bisa dibuat")
	return "Bearer " + tok
}

// doRequest menembak GET /protected dan mengembalikan response-nya.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Test RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Kasus 1: user punya role yang diminta → lolos (HTTP 200).
func TestRequireRole_AdminMasukRuteAdmin(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin harus bisa mengakses rute yang dibatasi untuk admin")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "response harus berisi ok:true")
	assert.Equal(t, "admin", body["role"], "role harus admin")
}

// Kasus 1b: user punya salah satu role yang diizinkan (multi-role) → HTTP 200.
func TestRequireRole_GudangMasukRuteAdminAtauGudang(t *testing.T) {
	app := buildTestApp("admin", "gudang")
	resp := doRequest(t, app, tokenForRole(t, "gudang"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"gudang harus bisa mengakses rute yang mengizinkan admin atau gudang")
}

// Kasus 2: user punya role berbeda dari yang diminta → HTTP 403 Forbidden.
func TestRequireRole_KasirDiblokDiRuteAdmin(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenForRole(t, "kasir"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"kasir tidak boleh mengakses rute yang dibatasi untuk admin")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"response error harus menyertakan kode FORBIDDEN")
}

// Kasus 2b: role gudang diblok di rute khusus kasir → HTTP 403.
func TestRequireRole_GudangDiblokDiRuteKasir(t *testing.T) {
	app := buildTestApp("kasir")
	resp := doRequest(t, app, tokenForRole(t, "gudang"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Kasus 3: token tanpa claim role (disimulasikan role kosong) → HTTP 401.
func TestRequireRole_TokenTanpaRole_Kembali401(t *testing.T) {
	// Token dengan role kosong mensimulasikan token legacy tanpa claim.
	app := buildTestApp("admin")
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token tanpa role harus mengembalikan 401")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE",
		"response harus menunjukkan kode MISSING_ROLE")
}

// Kasus 4: tanpa header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequireRole_TanpaAuthHeader_Kembali401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "") // tanpa header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Kasus 5: token invalid / malformed → HTTP 401 INVALID_TOKEN.
func TestRequireRole_TokenInvalid_Kembali401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "Bearer token.invalid.disini")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Test AuthMiddleware — ekstraksi claims dari token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_EkstrakClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "admin", body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Test pkg jwt — integritas generate/parse dengan role
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateDanParse_DenganRole(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "gudang", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "gudang", role)
}

func TestJWT_TokenExpired_KembaliError(t *testing.T) {
	// Token dengan expiry -1 menit (sudah expired)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expired harus mengembalikan error")
}

func TestJWT_SecretSalah_KembaliError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("secret-lain-yang-sama-sekali-beda", tok)
	assert.Error(t, err, "secret salah harus membuat token invalid")
}
