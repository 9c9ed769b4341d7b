package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvaldebenito/serviapp-backend/internal/models"
)

func TestAdminRoutesRejectNonAdmins(t *testing.T) {
	app, gdb := newTestApp(t)

	client := seedUser(t, gdb, "c@b.com", models.RoleClient)
	resp := doJSON(t, app, "POST", "/admin/region/create", tokenFor(t, client), map[string]string{"name": "Valparaíso"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var count int64
	gdb.Model(&models.Region{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestRegionCRUD(t *testing.T) {
	app, gdb := newTestApp(t)

	admin := seedUser(t, gdb, "admin@b.com", models.RoleAdmin)
	token := tokenFor(t, admin)

	resp := doJSON(t, app, "POST", "/admin/region/create", token, map[string]string{"name": "Valparaíso"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// duplicate name
	resp = doJSON(t, app, "POST", "/admin/region/create", token, map[string]string{"name": "Valparaíso"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// missing name
	resp = doJSON(t, app, "POST", "/admin/region/create", token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var region models.Region
	require.NoError(t, gdb.Where("name = ?", "Valparaíso").First(&region).Error)

	resp = doJSON(t, app, "PUT", fmt.Sprintf("/admin/region/%d", region.ID), token, map[string]string{"name": "V Región"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, gdb.First(&region, region.ID).Error)
	assert.Equal(t, "V Región", region.Name)

	resp = doJSON(t, app, "PUT", "/admin/region/999", token, map[string]string{"name": "x"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, "DELETE", fmt.Sprintf("/admin/region/%d", region.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var count int64
	gdb.Model(&models.Region{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestComunaCRUD(t *testing.T) {
	app, gdb := newTestApp(t)

	admin := seedUser(t, gdb, "admin@b.com", models.RoleAdmin)
	token := tokenFor(t, admin)

	region := models.Region{Name: "Metropolitana"}
	require.NoError(t, gdb.Create(&region).Error)

	// references the region by name, per the original contract
	resp := doJSON(t, app, "POST", "/admin/comuna/create", token, map[string]string{
		"name":   "Ñuñoa",
		"region": "Metropolitana",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// unknown region
	resp = doJSON(t, app, "POST", "/admin/comuna/create", token, map[string]string{
		"name":   "Ñuñoa",
		"region": "Atlantis",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// duplicate comuna
	resp = doJSON(t, app, "POST", "/admin/comuna/create", token, map[string]string{
		"name":   "Ñuñoa",
		"region": "Metropolitana",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var comuna models.Comuna
	require.NoError(t, gdb.Where("name = ?", "Ñuñoa").First(&comuna).Error)
	assert.Equal(t, region.ID, comuna.RegionID)

	resp = doJSON(t, app, "PUT", fmt.Sprintf("/admin/comuna/%d", comuna.ID), token, map[string]string{"name": "Macul"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, "DELETE", fmt.Sprintf("/admin/comuna/%d", comuna.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCategoryCRUD(t *testing.T) {
	app, gdb := newTestApp(t)

	admin := seedUser(t, gdb, "admin@b.com", models.RoleAdmin)
	token := tokenFor(t, admin)

	resp := doJSON(t, app, "POST", "/admin/category/create", token, map[string]string{
		"name": "plumbing",
		"logo": "plumbing.svg",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// both name and logo are required
	resp = doJSON(t, app, "POST", "/admin/category/create", token, map[string]string{"name": "electric"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// duplicate logo
	resp = doJSON(t, app, "POST", "/admin/category/create", token, map[string]string{
		"name": "electric",
		"logo": "plumbing.svg",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var cat models.Category
	require.NoError(t, gdb.Where("name = ?", "plumbing").First(&cat).Error)

	resp = doJSON(t, app, "PUT", fmt.Sprintf("/admin/category/%d", cat.ID), token, map[string]string{
		"name": "gasfitería",
		"logo": "gas.svg",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, "DELETE", fmt.Sprintf("/admin/category/%d", cat.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
