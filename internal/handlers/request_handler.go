package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/cvaldebenito/serviapp-backend/internal/models"
)

type RequestHandler struct {
	DB *gorm.DB
}

func NewRequestHandler(db *gorm.DB) *RequestHandler {
	return &RequestHandler{DB: db}
}

type CreateRequestReq struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Street      string `json:"street" validate:"required"`
	HomeNumber  string `json:"home_number" validate:"required"`
	MoreInfo    string `json:"more_info"`
	Comuna      uint   `json:"comuna" validate:"required"`
	Category    uint   `json:"category" validate:"required"`
}

func (h *RequestHandler) Create(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req CreateRequestReq
	if err := c.BodyParser(&req); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "missing JSON in request")
	}
	if err := validate.Struct(req); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "missing parameter in request body")
	}

	var comuna models.Comuna
	if err := h.DB.First(&comuna, req.Comuna).Error; err != nil {
		return errJSON(c, fiber.StatusNotFound, "Comuna "+strconv.Itoa(int(req.Comuna))+" not found")
	}
	var category models.Category
	if err := h.DB.First(&category, req.Category).Error; err != nil {
		return errJSON(c, fiber.StatusNotFound, "Category "+strconv.Itoa(int(req.Category))+" not found")
	}

	var employer models.Employer
	if err := h.DB.First(&employer, "user_id = ?", uid).Error; err != nil {
		return errJSON(c, fiber.StatusNotFound, "employer not found")
	}

	newReq := models.Request{
		Name:        req.Name,
		Description: req.Description,
		Street:      req.Street,
		HomeNumber:  req.HomeNumber,
		MoreInfo:    req.MoreInfo,
		Status:      models.RequestActive,
		EmployerID:  employer.UserID,
		CategoryID:  category.ID,
		ComunaID:    comuna.ID,
	}
	if err := h.DB.Create(&newReq).Error; err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "could not create service request")
	}

	newReq.Category = &category
	newReq.Comuna = &comuna

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"Success":     "new service request created",
		"service_req": toRequestDTO(&newReq),
	})
}

// Find builds the feed of open requests visible to the caller as a provider:
// same comuna, not self-authored, in the wanted categories (explicit cat*
// params, else the provider's own set), and not already offered on.
func (h *RequestHandler) Find(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	comunaRaw := c.Query("comuna")
	if comunaRaw == "" {
		return errJSON(c, fiber.StatusBadRequest, "Missing comuna parameter in request")
	}
	comunaID, err := strconv.Atoi(comunaRaw)
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Invalid comuna parameter")
	}

	catFilter := []uint{}
	for key, vals := range c.Queries() {
		if !strings.HasPrefix(key, "cat") {
			continue
		}
		if id, err := strconv.Atoi(vals); err == nil {
			catFilter = append(catFilter, uint(id))
		}
	}

	// Personalized fallback: no explicit filter means the provider's own
	// categories.
	if len(catFilter) == 0 {
		var provider models.Provider
		if err := h.DB.Preload("Categories").First(&provider, "user_id = ?", uid).Error; err != nil {
			return errJSON(c, fiber.StatusNotFound, "provider not found")
		}
		for _, cat := range provider.Categories {
			catFilter = append(catFilter, cat.ID)
		}
	}

	// No categories at all: empty feed, not an error.
	if len(catFilter) == 0 {
		return c.JSON(fiber.Map{"services": []RequestDTO{}})
	}

	var requests []models.Request
	err = h.DB.
		Preload("Category").
		Preload("Comuna").
		Preload("Employer").
		Preload("Employer.User").
		Preload("Offers").
		Where("comuna_id = ?", comunaID).
		Where("status = ?", models.RequestActive).
		Where("category_id IN ?", catFilter).
		Where("employer_id <> ?", uid).
		Find(&requests).Error
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "server error")
	}

	services := []RequestDTO{}
	for i := range requests {
		alreadyOffered := false
		for _, offer := range requests[i].Offers {
			if offer.ProviderID == uid {
				alreadyOffered = true
				break
			}
		}
		if alreadyOffered {
			continue
		}
		services = append(services, toRequestDTO(&requests[i]))
	}

	return c.JSON(fiber.Map{"services": services})
}
