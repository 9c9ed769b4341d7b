package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cvaldebenito/serviapp-backend/internal/models"
)

type ContractHandler struct {
	DB *gorm.DB
}

func NewContractHandler(db *gorm.DB) *ContractHandler {
	return &ContractHandler{DB: db}
}

type CreateContractReq struct {
	Provider string `json:"provider" validate:"required"`
	Service  uint   `json:"service" validate:"required"`
}

// Create awards a request to a provider. The caller must own the request and
// may not contract themself; the request is closed in the same transaction.
func (h *ContractHandler) Create(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req CreateContractReq
	if err := c.BodyParser(&req); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Missing JSON in request")
	}
	if err := validate.Struct(req); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Missing provider or service id in body")
	}

	providerID, err := uuid.Parse(req.Provider)
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, "invalid provider id")
	}

	var provider models.Provider
	if err := h.DB.First(&provider, "user_id = ?", providerID).Error; err != nil {
		return errJSON(c, fiber.StatusNotFound, "provider not found")
	}

	// A user never contracts themself, regardless of which role-record the
	// id came from.
	if provider.UserID == uid {
		return errJSON(c, fiber.StatusUnauthorized, "cannot contract yourself")
	}

	var contract models.Contract
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var request models.Request
		if err := tx.First(&request, req.Service).Error; err != nil {
			return err
		}
		if request.EmployerID != uid {
			return fiber.NewError(fiber.StatusUnauthorized, "Access denied")
		}
		if request.Status != models.RequestActive {
			return fiber.NewError(fiber.StatusBadRequest, "service request already closed")
		}

		contract = models.Contract{
			EmployerID: request.EmployerID,
			ProviderID: provider.UserID,
			RequestID:  request.ID,
			Status:     models.ContractActive,
			StartDate:  time.Now(),
		}
		if err := tx.Create(&contract).Error; err != nil {
			return err
		}
		return tx.Model(&request).Update("status", models.RequestClosed).Error
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return errJSON(c, fe.Code, fe.Message)
		}
		if err == gorm.ErrRecordNotFound {
			return errJSON(c, fiber.StatusNotFound, "service not found")
		}
		// Unique index on request_id: someone else contracted it first.
		return errJSON(c, fiber.StatusBadRequest, "service request already contracted")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"msg":      "contract created",
		"contract": toContractDTO(&contract),
	})
}
