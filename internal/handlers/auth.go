package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/cvaldebenito/serviapp-backend/internal/models"
	"github.com/cvaldebenito/serviapp-backend/internal/utils"
)

type AuthHandler struct {
	DB        *gorm.DB
	JWTSecret string
	Expires   int
}

type RegisterReq struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"f_name" validate:"required"`
	LastName  string `json:"l_name" validate:"required"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterReq
	if err := c.BodyParser(&req); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Missing JSON in request")
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Password = strings.TrimSpace(req.Password)
	req.FirstName = utils.NormalizeName(req.FirstName)
	req.LastName = utils.NormalizeName(req.LastName)

	if err := validate.Struct(req); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Invalid email format or missing parameter")
	}

	var existing models.User
	err := h.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return errJSON(c, fiber.StatusBadRequest, "email already exists")
	} else if err != gorm.ErrRecordNotFound {
		return errJSON(c, fiber.StatusInternalServerError, "server error")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "server error")
	}

	u := models.User{
		Email:     req.Email,
		Password:  hash,
		Role:      models.RoleClient,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	// User and both role-records land in the same transaction: a duplicate
	// email leaves no partial rows behind.
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&u).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.Employer{UserID: u.ID}).Error; err != nil {
			return err
		}
		return tx.Create(&models.Provider{UserID: u.ID}).Error
	})
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, "email already exists")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": "nuevo usuario registrado",
	})
}

type LoginReq struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginReq
	if err := c.BodyParser(&req); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Missing JSON in request")
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validate.Struct(req); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Missing email or password parameter in JSON")
	}

	var u models.User
	if err := h.DB.Where("email = ?", req.Email).First(&u).Error; err != nil {
		return errJSON(c, fiber.StatusNotFound, "email: '"+req.Email+"' not found")
	}

	if !utils.CheckPassword(u.Password, req.Password) {
		return errJSON(c, fiber.StatusNotFound, "wrong password, try again...")
	}

	token, err := utils.SignJWT(h.JWTSecret, u.ID.String(), u.Email, string(u.Role), h.Expires)
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "could not create token")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"access_token": token,
		"user":         toUserDTO(&u),
		"msg":          "success",
		"logged":       true,
	})
}
