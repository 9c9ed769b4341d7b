package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/cvaldebenito/serviapp-backend/internal/models"
)

// AdminHandler manages the reference data (regions, comunas, categories).
// All of its routes sit behind the admin role guard.
type AdminHandler struct {
	DB *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{DB: db}
}

func (h *AdminHandler) allRegions() []RegionDTO {
	var regions []models.Region
	h.DB.Preload("Comunas").Find(&regions)
	dtos := []RegionDTO{}
	for i := range regions {
		dtos = append(dtos, toRegionDTO(&regions[i]))
	}
	return dtos
}

func (h *AdminHandler) allCategories() []CategoryDTO {
	var categories []models.Category
	h.DB.Find(&categories)
	dtos := []CategoryDTO{}
	for i := range categories {
		dtos = append(dtos, toCategoryDTO(&categories[i]))
	}
	return dtos
}

type nameReq struct {
	Name string `json:"name"`
}

// ----- regions -----

func (h *AdminHandler) CreateRegion(c *fiber.Ctx) error {
	var req nameReq
	if err := c.BodyParser(&req); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Missing JSON in request")
	}
	if req.Name == "" {
		return errJSON(c, fiber.StatusBadRequest, "Missing name parameter in request")
	}

	region := models.Region{Name: req.Name}
	if err := h.DB.Create(&region).Error; err != nil {
		return errJSON(c, fiber.StatusBadRequest, "region already exists")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"msg":     "new region created",
		"regions": h.allRegions(),
	})
}

func (h *AdminHandler) UpdateRegion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, "invalid region id")
	}

	var region models.Region
	if err := h.DB.First(&region, id).Error; err != nil {
		return errJSON(c, fiber.StatusNotFound, "Region "+strconv.Itoa(id)+" not found")
	}

	var req nameReq
	if err := c.BodyParser(&req); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Missing JSON in request")
	}
	if req.Name == "" {
		return errJSON(c, fiber.StatusBadRequest, "Missing name parameter in request")
	}

	if err := h.DB.Model(&region).Update("name", req.Name).Error; err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Region name already exists")
	}

	return c.JSON(fiber.Map{
		"msg":     "region updated",
		"regions": h.allRegions(),
	})
}

func (h *AdminHandler) DeleteRegion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, "invalid region id")
	}

	var region models.Region
	if err := h.DB.First(&region, id).Error; err != nil {
		return errJSON(c, fiber.StatusNotFound, "Region "+strconv.Itoa(id)+" not found")
	}

	if err := h.DB.Delete(&region).Error; err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "could not delete region")
	}

	return c.JSON(fiber.Map{
		"msg":     "region deleted",
		"regions": h.allRegions(),
	})
}

// ----- comunas -----

type createComunaReq struct {
	Name   string `json:"name"`
	Region string `json:"region"`
}

func (h *AdminHandler) CreateComuna(c *fiber.Ctx) error {
	var req createComunaReq
	if err := c.BodyParser(&req); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Missing JSON in request")
	}
	if req.Name == "" {
		return errJSON(c, fiber.StatusBadRequest, "Missing name parameter in request")
	}
	if req.Region == "" {
		return errJSON(c, fiber.StatusBadRequest, "Missing region parameter in request")
	}

	var region models.Region
	if err := h.DB.Where("name = ?", req.Region).First(&region).Error; err != nil {
		return errJSON(c, fiber.StatusNotFound, "Region "+req.Region+" not found")
	}

	comuna := models.Comuna{Name: req.Name, RegionID: region.ID}
	if err := h.DB.Create(&comuna).Error; err != nil {
		return errJSON(c, fiber.StatusBadRequest, "comuna already exists")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"msg":     "new comuna created",
		"regions": h.allRegions(),
	})
}

func (h *AdminHandler) UpdateComuna(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, "invalid comuna id")
	}

	var comuna models.Comuna
	if err := h.DB.First(&comuna, id).Error; err != nil {
		return errJSON(c, fiber.StatusNotFound, "Comuna "+strconv.Itoa(id)+" not found")
	}

	var req nameReq
	if err := c.BodyParser(&req); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Missing JSON in request")
	}
	if req.Name == "" {
		return errJSON(c, fiber.StatusBadRequest, "Missing name parameter in request")
	}

	if err := h.DB.Model(&comuna).Update("name", req.Name).Error; err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Comuna name already exists")
	}

	return c.JSON(fiber.Map{
		"msg":     "comuna updated",
		"regions": h.allRegions(),
	})
}

func (h *AdminHandler) DeleteComuna(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, "invalid comuna id")
	}

	var comuna models.Comuna
	if err := h.DB.First(&comuna, id).Error; err != nil {
		return errJSON(c, fiber.StatusNotFound, "Comuna "+strconv.Itoa(id)+" not found")
	}

	if err := h.DB.Delete(&comuna).Error; err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "could not delete comuna")
	}

	return c.JSON(fiber.Map{
		"msg":     "comuna deleted",
		"regions": h.allRegions(),
	})
}

// ----- categories -----

type categoryReq struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

func (h *AdminHandler) CreateCategory(c *fiber.Ctx) error {
	var req categoryReq
	if err := c.BodyParser(&req); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Missing JSON in request")
	}
	if req.Name == "" {
		return errJSON(c, fiber.StatusBadRequest, "Missing name parameter in request")
	}
	if req.Logo == "" {
		return errJSON(c, fiber.StatusBadRequest, "Missing logo parameter in request")
	}

	category := models.Category{Name: req.Name, Logo: req.Logo}
	if err := h.DB.Create(&category).Error; err != nil {
		return errJSON(c, fiber.StatusBadRequest, "name or logo already exists")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"msg":        "category created",
		"categories": h.allCategories(),
	})
}

func (h *AdminHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, "invalid category id")
	}

	var category models.Category
	if err := h.DB.First(&category, id).Error; err != nil {
		return errJSON(c, fiber.StatusNotFound, "Category "+strconv.Itoa(id)+" not found")
	}

	var req categoryReq
	if err := c.BodyParser(&req); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Missing JSON in request")
	}
	if req.Name == "" {
		return errJSON(c, fiber.StatusBadRequest, "Missing name parameter in request")
	}
	if req.Logo == "" {
		return errJSON(c, fiber.StatusBadRequest, "Missing logo parameter in request")
	}

	if err := h.DB.Model(&category).Updates(map[string]interface{}{
		"name": req.Name,
		"logo": req.Logo,
	}).Error; err != nil {
		return errJSON(c, fiber.StatusBadRequest, "name or logo already exists")
	}

	return c.JSON(fiber.Map{
		"msg":        "category updated",
		"categories": h.allCategories(),
	})
}

func (h *AdminHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, "invalid category id")
	}

	var category models.Category
	if err := h.DB.First(&category, id).Error; err != nil {
		return errJSON(c, fiber.StatusNotFound, "Category "+strconv.Itoa(id)+" not found")
	}

	if err := h.DB.Delete(&category).Error; err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "could not delete category")
	}

	return c.JSON(fiber.Map{
		"msg":        "category deleted",
		"categories": h.allCategories(),
	})
}
