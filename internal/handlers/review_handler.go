package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cvaldebenito/serviapp-backend/internal/models"
)

type ReviewHandler struct {
	DB *gorm.DB
}

func NewReviewHandler(db *gorm.DB) *ReviewHandler {
	return &ReviewHandler{DB: db}
}

type CreateReviewReq struct {
	Score float64 `json:"score" validate:"required,min=1,max=5"`
	Body  string  `json:"body"`
}

// Create posts a review on a contract. The caller must be one of the two
// parties; the review targets the opposite party, whose role-record score is
// recomputed as the mean of its reviews.
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	contractID, err := c.ParamsInt("id")
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, "invalid contract id")
	}

	var req CreateReviewReq
	if err := c.BodyParser(&req); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Missing JSON in request")
	}
	if err := validate.Struct(req); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "score must be between 1 and 5")
	}

	var contract models.Contract
	if err := h.DB.First(&contract, contractID).Error; err != nil {
		return errJSON(c, fiber.StatusNotFound, "contract not found")
	}

	var targetID uuid.UUID
	var targetRole models.TargetRole
	switch uid {
	case contract.EmployerID:
		targetID, targetRole = contract.ProviderID, models.TargetProvider
	case contract.ProviderID:
		targetID, targetRole = contract.EmployerID, models.TargetEmployer
	default:
		return errJSON(c, fiber.StatusUnauthorized, "Access denied")
	}

	review := models.Review{
		ContractID:   contract.ID,
		AuthorID:     uid,
		TargetUserID: targetID,
		TargetRole:   targetRole,
		Score:        req.Score,
		Body:         req.Body,
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			return err
		}

		var avg float64
		if err := tx.Model(&models.Review{}).
			Where("target_user_id = ? AND target_role = ?", targetID, targetRole).
			Select("AVG(score)").
			Scan(&avg).Error; err != nil {
			return err
		}

		if targetRole == models.TargetProvider {
			return tx.Model(&models.Provider{}).Where("user_id = ?", targetID).Update("score", avg).Error
		}
		return tx.Model(&models.Employer{}).Where("user_id = ?", targetID).Update("score", avg).Error
	})
	if err != nil {
		// Unique (contract_id, author_id) index: one review per party.
		return errJSON(c, fiber.StatusBadRequest, "contract already reviewed")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"Success": "review created",
		"review":  toReviewDTO(&review),
	})
}

// ListForUser returns the reviews a user has received, optionally filtered
// by the role they were reviewed under.
func (h *ReviewHandler) ListForUser(c *fiber.Ctx) error {
	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, "invalid user id")
	}

	q := h.DB.Where("target_user_id = ?", targetID)
	if role := c.Query("role"); role != "" {
		if role != string(models.TargetProvider) && role != string(models.TargetEmployer) {
			return errJSON(c, fiber.StatusBadRequest, "invalid role parameter")
		}
		q = q.Where("target_role = ?", role)
	}

	var reviews []models.Review
	if err := q.Find(&reviews).Error; err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "server error")
	}

	dtos := []ReviewDTO{}
	for i := range reviews {
		dtos = append(dtos, toReviewDTO(&reviews[i]))
	}
	return c.JSON(fiber.Map{"reviews": dtos})
}
