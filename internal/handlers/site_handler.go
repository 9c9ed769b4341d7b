package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/cvaldebenito/serviapp-backend/internal/cache"
	"github.com/cvaldebenito/serviapp-backend/internal/models"
)

const siteConfigKey = "site:config"

// SiteHandler serves the public bootstrap payload the front-end loads at
// start: categories with request counts plus platform totals.
type SiteHandler struct {
	DB    *gorm.DB
	Cache *cache.Cache
}

func NewSiteHandler(db *gorm.DB, c *cache.Cache) *SiteHandler {
	return &SiteHandler{DB: db, Cache: c}
}

type siteCategory struct {
	CategoryDTO
	Requests int64 `json:"requests"`
}

type siteConfig struct {
	Categories []siteCategory `json:"categories"`
	Regions    []RegionDTO    `json:"regions"`
	Contracts  int64          `json:"contracts"`
	Offers     int64          `json:"offers"`
	Requests   int64          `json:"requests"`
	Users      int64          `json:"users"`
}

func (h *SiteHandler) GetSiteConfig(c *fiber.Ctx) error {
	var payload siteConfig
	if h.Cache.Get(c.Context(), siteConfigKey, &payload) {
		return c.JSON(payload)
	}

	var categories []models.Category
	if err := h.DB.Find(&categories).Error; err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "server error")
	}

	payload.Categories = []siteCategory{}
	for i := range categories {
		var count int64
		h.DB.Model(&models.Request{}).Where("category_id = ?", categories[i].ID).Count(&count)
		payload.Categories = append(payload.Categories, siteCategory{
			CategoryDTO: toCategoryDTO(&categories[i]),
			Requests:    count,
		})
	}

	var regions []models.Region
	h.DB.Preload("Comunas").Find(&regions)
	payload.Regions = []RegionDTO{}
	for i := range regions {
		payload.Regions = append(payload.Regions, toRegionDTO(&regions[i]))
	}

	h.DB.Model(&models.Contract{}).Count(&payload.Contracts)
	h.DB.Model(&models.Offer{}).Count(&payload.Offers)
	h.DB.Model(&models.Request{}).Count(&payload.Requests)
	h.DB.Model(&models.User{}).Count(&payload.Users)

	h.Cache.Set(c.Context(), siteConfigKey, payload, 60*time.Second)

	return c.JSON(payload)
}
