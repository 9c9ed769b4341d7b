package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/cvaldebenito/serviapp-backend/internal/models"
)

type ProviderHandler struct {
	DB *gorm.DB
}

func NewProviderHandler(db *gorm.DB) *ProviderHandler {
	return &ProviderHandler{DB: db}
}

type SetCategoriesReq struct {
	Categories []struct {
		ID uint `json:"id"`
	} `json:"categories"`
}

// SetCategories replaces the caller's provider category set with exactly the
// given ids. Repeating the same call is a no-op.
func (h *ProviderHandler) SetCategories(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req SetCategoriesReq
	if err := c.BodyParser(&req); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Missing JSON in request")
	}

	seen := map[uint]bool{}
	ids := make([]uint, 0, len(req.Categories))
	for _, entry := range req.Categories {
		if !seen[entry.ID] {
			seen[entry.ID] = true
			ids = append(ids, entry.ID)
		}
	}

	var provider models.Provider
	if err := h.DB.First(&provider, "user_id = ?", uid).Error; err != nil {
		return errJSON(c, fiber.StatusNotFound, "provider not found")
	}

	var categories []models.Category
	if len(ids) > 0 {
		if err := h.DB.Find(&categories, ids).Error; err != nil {
			return errJSON(c, fiber.StatusInternalServerError, "server error")
		}
		if len(categories) != len(ids) {
			return errJSON(c, fiber.StatusNotFound, "category not found")
		}
	}

	// Replace computes the add/remove diff against the join table.
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		assoc := tx.Model(&provider).Association("Categories")
		if len(categories) == 0 {
			return assoc.Clear()
		}
		return assoc.Replace(categories)
	})
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "could not update categories")
	}

	dtos := []CategoryDTO{}
	for i := range categories {
		dtos = append(dtos, toCategoryDTO(&categories[i]))
	}

	return c.JSON(fiber.Map{
		"Success":    "provider updated",
		"categories": dtos,
	})
}
