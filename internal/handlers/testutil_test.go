package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cvaldebenito/serviapp-backend/internal/config"
	"github.com/cvaldebenito/serviapp-backend/internal/models"
	"github.com/cvaldebenito/serviapp-backend/internal/router"
	"github.com/cvaldebenito/serviapp-backend/internal/utils"
)

const testSecret = "test-secret"

func testConfig() config.Config {
	return config.Config{
		JWTSecret:     testSecret,
		JWTExpiresMin: 60,
		CORSOrigins:   "http://localhost:3000",
	}
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, gdb.AutoMigrate(
		&models.User{},
		&models.Employer{},
		&models.Provider{},
		&models.Region{},
		&models.Comuna{},
		&models.Category{},
		&models.Request{},
		&models.Offer{},
		&models.Contract{},
		&models.Review{},
	))

	return router.New(gdb, nil, testConfig()), gdb
}

// seedUser creates a user with both role-records, the way registration does.
func seedUser(t *testing.T, gdb *gorm.DB, email string, role models.Role) *models.User {
	t.Helper()

	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)

	u := models.User{
		Email:     email,
		Password:  hash,
		Role:      role,
		FirstName: "Test",
		LastName:  "User",
	}
	require.NoError(t, gdb.Create(&u).Error)
	require.NoError(t, gdb.Create(&models.Employer{UserID: u.ID}).Error)
	require.NoError(t, gdb.Create(&models.Provider{UserID: u.ID}).Error)
	return &u
}

func tokenFor(t *testing.T, u *models.User) string {
	t.Helper()
	token, err := utils.SignJWT(testSecret, u.ID.String(), u.Email, string(u.Role), 60)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func seedGeo(t *testing.T, gdb *gorm.DB) (models.Region, models.Comuna) {
	t.Helper()
	region := models.Region{Name: "Metropolitana"}
	require.NoError(t, gdb.Create(&region).Error)
	comuna := models.Comuna{Name: "Providencia", RegionID: region.ID}
	require.NoError(t, gdb.Create(&comuna).Error)
	return region, comuna
}

func seedCategory(t *testing.T, gdb *gorm.DB, name string) models.Category {
	t.Helper()
	cat := models.Category{Name: name, Logo: "logo-" + name}
	require.NoError(t, gdb.Create(&cat).Error)
	return cat
}
