package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvaldebenito/serviapp-backend/internal/models"
	"github.com/cvaldebenito/serviapp-backend/internal/utils"
)

func TestRegister(t *testing.T) {
	app, gdb := newTestApp(t)

	resp := doJSON(t, app, "POST", "/registro", "", map[string]string{
		"email":    "a@b.com",
		"password": "x",
		"f_name":   "ana",
		"l_name":   "lee",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var u models.User
	require.NoError(t, gdb.Where("email = ?", "a@b.com").First(&u).Error)
	assert.Equal(t, "Ana", u.FirstName)
	assert.Equal(t, "Lee", u.LastName)
	assert.Equal(t, models.RoleClient, u.Role)
	assert.NotEqual(t, "x", u.Password) // stored hashed

	// one employer and one provider, both keyed by the user id
	var employer models.Employer
	require.NoError(t, gdb.First(&employer, "user_id = ?", u.ID).Error)
	var provider models.Provider
	require.NoError(t, gdb.First(&provider, "user_id = ?", u.ID).Error)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app, gdb := newTestApp(t)

	body := map[string]string{
		"email":    "dup@b.com",
		"password": "x",
		"f_name":   "Ana",
		"l_name":   "Lee",
	}
	resp := doJSON(t, app, "POST", "/registro", "", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/registro", "", body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decodeBody(t, resp)
	assert.Contains(t, out["Error"], "already exists")

	// no partial rows left behind
	var users, employers, providers int64
	gdb.Model(&models.User{}).Count(&users)
	gdb.Model(&models.Employer{}).Count(&employers)
	gdb.Model(&models.Provider{}).Count(&providers)
	assert.EqualValues(t, 1, users)
	assert.EqualValues(t, 1, employers)
	assert.EqualValues(t, 1, providers)
}

func TestRegisterValidation(t *testing.T) {
	app, _ := newTestApp(t)

	cases := []struct {
		name string
		body map[string]string
	}{
		{"bad email", map[string]string{"email": "not-an-email", "password": "x", "f_name": "A", "l_name": "B"}},
		{"missing password", map[string]string{"email": "a@b.com", "f_name": "A", "l_name": "B"}},
		{"missing names", map[string]string{"email": "a@b.com", "password": "x"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, app, "POST", "/registro", "", tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestLogin(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "POST", "/registro", "", map[string]string{
		"email":    "a@b.com",
		"password": "x",
		"f_name":   "Ana",
		"l_name":   "Lee",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// wrong password
	resp = doJSON(t, app, "POST", "/login", "", map[string]string{"email": "a@b.com", "password": "nope"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// wrong password with different email case still fails
	resp = doJSON(t, app, "POST", "/login", "", map[string]string{"email": "A@B.com", "password": "nope"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// unknown email
	resp = doJSON(t, app, "POST", "/login", "", map[string]string{"email": "who@b.com", "password": "x"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// correct credentials, case-insensitive email
	resp = doJSON(t, app, "POST", "/login", "", map[string]string{"email": "A@B.com", "password": "x"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeBody(t, resp)
	assert.Equal(t, "success", out["msg"])

	tokenStr, _ := out["access_token"].(string)
	require.NotEmpty(t, tokenStr)
	claims, err := utils.ParseJWT(testSecret, tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "client", claims.Role)
}

func TestRegisterLoginProviderInfoScenario(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "POST", "/registro", "", map[string]string{
		"email":    "a@b.com",
		"password": "x",
		"f_name":   "Ana",
		"l_name":   "Lee",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/login", "", map[string]string{"email": "a@b.com", "password": "x"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := decodeBody(t, resp)["access_token"].(string)
	require.NotEmpty(t, token)

	resp = doJSON(t, app, "GET", "/my-provider-info", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeBody(t, resp)
	assert.Empty(t, out["categories"])
	assert.Empty(t, out["offers"])
	assert.Empty(t, out["contracts"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "GET", "/my-provider-info", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/find/service-request?comuna=1", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
