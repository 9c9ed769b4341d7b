package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/cvaldebenito/serviapp-backend/internal/models"
)

type UserHandler struct {
	DB *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{DB: db}
}

type UpdateProfileReq struct {
	FirstName  *string `json:"f_name"`
	LastName   *string `json:"l_name"`
	Street     *string `json:"street"`
	HomeNumber *string `json:"home_number"`
	MoreInfo   *string `json:"more_info"`
	Rut        *string `json:"rut"`
	RutSerial  *string `json:"rut_serial"`
	ProfileImg *string `json:"profile_img"`
	Comuna     *uint   `json:"comuna"`
}

// UpdateProfile applies a partial update: only the fields present in the
// body are touched.
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req UpdateProfileReq
	if err := c.BodyParser(&req); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Missing JSON in request")
	}

	var u models.User
	if err := h.DB.First(&u, "id = ?", uid).Error; err != nil {
		return errJSON(c, fiber.StatusNotFound, "user not found")
	}

	if req.FirstName != nil {
		u.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.LastName = *req.LastName
	}
	if req.Street != nil {
		u.Street = *req.Street
	}
	if req.HomeNumber != nil {
		u.HomeNumber = *req.HomeNumber
	}
	if req.MoreInfo != nil {
		u.MoreInfo = *req.MoreInfo
	}
	if req.Rut != nil {
		u.Rut = *req.Rut
	}
	if req.RutSerial != nil {
		u.RutSerial = *req.RutSerial
	}
	if req.ProfileImg != nil {
		u.ProfileImg = *req.ProfileImg
	}
	if req.Comuna != nil {
		var comuna models.Comuna
		if err := h.DB.First(&comuna, *req.Comuna).Error; err != nil {
			return errJSON(c, fiber.StatusNotFound, "Comuna not found")
		}
		u.ComunaID = req.Comuna
	}

	if err := h.DB.Save(&u).Error; err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "could not update profile")
	}

	return c.JSON(fiber.Map{
		"user": fiber.Map{
			"id":          u.ID,
			"email":       u.Email,
			"first_name":  u.FirstName,
			"last_name":   u.LastName,
			"rut":         u.Rut,
			"rut_serial":  u.RutSerial,
			"profile_img": u.ProfileImg,
			"join_date":   u.CreatedAt.Format("2006-01-02"),
			"address": AddressDTO{
				Street:     u.Street,
				HomeNumber: u.HomeNumber,
				MoreInfo:   u.MoreInfo,
				Comuna:     u.ComunaID,
			},
		},
	})
}

// MyProviderInfo returns the caller's provider record with its categories,
// offers, contracts and received reviews. Fresh accounts get empty lists.
func (h *UserHandler) MyProviderInfo(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var provider models.Provider
	if err := h.DB.
		Preload("Categories").
		Preload("Offers").
		Preload("Contracts").
		First(&provider, "user_id = ?", uid).Error; err != nil {
		return errJSON(c, fiber.StatusNotFound, "provider not found")
	}

	var reviews []models.Review
	h.DB.Where("target_user_id = ? AND target_role = ?", uid, models.TargetProvider).Find(&reviews)

	categories := []CategoryDTO{}
	for i := range provider.Categories {
		categories = append(categories, toCategoryDTO(&provider.Categories[i]))
	}
	offers := []OfferDTO{}
	for i := range provider.Offers {
		offers = append(offers, toOfferDTO(&provider.Offers[i]))
	}
	contracts := []ContractDTO{}
	for i := range provider.Contracts {
		contracts = append(contracts, toContractDTO(&provider.Contracts[i]))
	}
	reviewDTOs := []ReviewDTO{}
	for i := range reviews {
		reviewDTOs = append(reviewDTOs, toReviewDTO(&reviews[i]))
	}

	return c.JSON(fiber.Map{
		"id":         provider.UserID,
		"score":      provider.Score,
		"categories": categories,
		"offers":     offers,
		"contracts":  contracts,
		"reviews":    reviewDTOs,
	})
}

// MyEmployerInfo is the employer-side analog of MyProviderInfo.
func (h *UserHandler) MyEmployerInfo(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var employer models.Employer
	if err := h.DB.
		Preload("Requests").
		Preload("Contracts").
		First(&employer, "user_id = ?", uid).Error; err != nil {
		return errJSON(c, fiber.StatusNotFound, "employer not found")
	}

	var reviews []models.Review
	h.DB.Where("target_user_id = ? AND target_role = ?", uid, models.TargetEmployer).Find(&reviews)

	requests := []RequestDTO{}
	for i := range employer.Requests {
		requests = append(requests, toRequestDTO(&employer.Requests[i]))
	}
	contracts := []ContractDTO{}
	for i := range employer.Contracts {
		contracts = append(contracts, toContractDTO(&employer.Contracts[i]))
	}
	reviewDTOs := []ReviewDTO{}
	for i := range reviews {
		reviewDTOs = append(reviewDTOs, toReviewDTO(&reviews[i]))
	}

	return c.JSON(fiber.Map{
		"id":        employer.UserID,
		"score":     employer.Score,
		"requests":  requests,
		"contracts": contracts,
		"reviews":   reviewDTOs,
	})
}
