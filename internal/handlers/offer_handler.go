package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/cvaldebenito/serviapp-backend/internal/models"
)

type OfferHandler struct {
	DB *gorm.DB
}

func NewOfferHandler(db *gorm.DB) *OfferHandler {
	return &OfferHandler{DB: db}
}

type CreateOfferReq struct {
	Description string `json:"description"`
}

func (h *OfferHandler) Create(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	reqID, err := c.ParamsInt("id")
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, "invalid request id")
	}

	var body CreateOfferReq
	// Description is optional, an empty body is fine.
	_ = c.BodyParser(&body)

	var request models.Request
	if err := h.DB.First(&request, reqID).Error; err != nil {
		return errJSON(c, fiber.StatusNotFound, "request not found")
	}

	if request.EmployerID == uid {
		return errJSON(c, fiber.StatusUnauthorized, "cannot offer on your own service request")
	}
	if request.Status != models.RequestActive {
		return errJSON(c, fiber.StatusBadRequest, "service request is not open")
	}

	var count int64
	h.DB.Model(&models.Offer{}).
		Where("provider_id = ? AND request_id = ?", uid, request.ID).
		Count(&count)
	if count > 0 {
		return errJSON(c, fiber.StatusBadRequest, "offer already made on this request")
	}

	offer := models.Offer{
		Description: body.Description,
		ProviderID:  uid,
		RequestID:   request.ID,
	}
	// The unique (provider_id, request_id) index catches the race two
	// concurrent offers would open here.
	if err := h.DB.Create(&offer).Error; err != nil {
		return errJSON(c, fiber.StatusBadRequest, "offer already made on this request")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"Success": "new offer created",
		"offer":   toOfferDTO(&offer),
	})
}

// ListForRequest returns the offers on a request, visible only to the
// employer that owns it.
func (h *OfferHandler) ListForRequest(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	reqID, err := c.ParamsInt("id")
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, "invalid request id")
	}

	var request models.Request
	if err := h.DB.First(&request, reqID).Error; err != nil {
		return errJSON(c, fiber.StatusNotFound, "request not found")
	}
	if request.EmployerID != uid {
		return errJSON(c, fiber.StatusUnauthorized, "Access denied")
	}

	var offers []models.Offer
	if err := h.DB.
		Preload("Provider").
		Preload("Provider.User").
		Where("request_id = ?", request.ID).
		Find(&offers).Error; err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "server error")
	}

	dtos := []OfferDTO{}
	for i := range offers {
		dtos = append(dtos, toOfferDTO(&offers[i]))
	}

	return c.JSON(fiber.Map{"offers": dtos})
}
