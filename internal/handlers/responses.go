package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/cvaldebenito/serviapp-backend/internal/models"
)

var validate = validator.New()

func errJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"Error": msg})
}

// currentUserID reads the authenticated user id set by the JWT middleware.
func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("userId").(string)
	return uuid.Parse(raw)
}

// AddressDTO mirrors the original address sub-object nested in user and
// request payloads.
type AddressDTO struct {
	Street     string `json:"street"`
	HomeNumber string `json:"home_number"`
	MoreInfo   string `json:"more_info"`
	Comuna     *uint  `json:"comuna"`
}

type UserDTO struct {
	ID         string     `json:"id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	ProfileImg string     `json:"profile_img"`
	JoinDate   string     `json:"join_date"`
	Address    AddressDTO `json:"address"`
}

func toUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:         u.ID.String(),
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		ProfileImg: u.ProfileImg,
		JoinDate:   u.CreatedAt.Format("2006-01-02"),
		Address: AddressDTO{
			Street:     u.Street,
			HomeNumber: u.HomeNumber,
			MoreInfo:   u.MoreInfo,
			Comuna:     u.ComunaID,
		},
	}
}

type CategoryDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

func toCategoryDTO(cat *models.Category) CategoryDTO {
	return CategoryDTO{ID: cat.ID, Name: cat.Name, Logo: cat.Logo}
}

type ComunaDTO struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	RegionID uint   `json:"region_id"`
}

type RegionDTO struct {
	ID      uint        `json:"id"`
	Name    string      `json:"name"`
	Comunas []ComunaDTO `json:"comunas"`
}

func toRegionDTO(r *models.Region) RegionDTO {
	dto := RegionDTO{ID: r.ID, Name: r.Name, Comunas: []ComunaDTO{}}
	for _, com := range r.Comunas {
		dto.Comunas = append(dto.Comunas, ComunaDTO{ID: com.ID, Name: com.Name, RegionID: com.RegionID})
	}
	return dto
}

// EmployerPublicDTO is the employer info embedded in feed entries.
type EmployerPublicDTO struct {
	ID        string  `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Score     float64 `json:"score"`
}

type RequestDTO struct {
	ID          uint               `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Status      string             `json:"status"`
	DateCreated string             `json:"date_created"`
	Address     AddressDTO         `json:"address"`
	Category    *CategoryDTO       `json:"category,omitempty"`
	Comuna      *ComunaDTO         `json:"comuna,omitempty"`
	Employer    *EmployerPublicDTO `json:"employer,omitempty"`
}

func toRequestDTO(r *models.Request) RequestDTO {
	comunaID := r.ComunaID
	dto := RequestDTO{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Status:      string(r.Status),
		DateCreated: r.CreatedAt.Format("2006-01-02 15:04:05"),
		Address: AddressDTO{
			Street:     r.Street,
			HomeNumber: r.HomeNumber,
			MoreInfo:   r.MoreInfo,
			Comuna:     &comunaID,
		},
	}
	if r.Category != nil {
		cat := toCategoryDTO(r.Category)
		dto.Category = &cat
	}
	if r.Comuna != nil {
		dto.Comuna = &ComunaDTO{ID: r.Comuna.ID, Name: r.Comuna.Name, RegionID: r.Comuna.RegionID}
	}
	if r.Employer != nil && r.Employer.User != nil {
		dto.Employer = &EmployerPublicDTO{
			ID:        r.Employer.UserID.String(),
			FirstName: r.Employer.User.FirstName,
			LastName:  r.Employer.User.LastName,
			Score:     r.Employer.Score,
		}
	}
	return dto
}

type OfferDTO struct {
	ID          uint   `json:"id"`
	Description string `json:"description"`
	RequestID   uint   `json:"request_id"`
	ProviderID  string `json:"provider_id"`
	DateCreated string `json:"date_created"`

	Provider *ProviderPublicDTO `json:"provider,omitempty"`
}

type ProviderPublicDTO struct {
	ID        string  `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Score     float64 `json:"score"`
}

func toOfferDTO(o *models.Offer) OfferDTO {
	dto := OfferDTO{
		ID:          o.ID,
		Description: o.Description,
		RequestID:   o.RequestID,
		ProviderID:  o.ProviderID.String(),
		DateCreated: o.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if o.Provider != nil && o.Provider.User != nil {
		dto.Provider = &ProviderPublicDTO{
			ID:        o.Provider.UserID.String(),
			FirstName: o.Provider.User.FirstName,
			LastName:  o.Provider.User.LastName,
			Score:     o.Provider.Score,
		}
	}
	return dto
}

type ContractDTO struct {
	ID         uint   `json:"id"`
	EmployerID string `json:"employer_id"`
	ProviderID string `json:"provider_id"`
	RequestID  uint   `json:"request_id"`
	Status     string `json:"status"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date,omitempty"`
}

func toContractDTO(ct *models.Contract) ContractDTO {
	dto := ContractDTO{
		ID:         ct.ID,
		EmployerID: ct.EmployerID.String(),
		ProviderID: ct.ProviderID.String(),
		RequestID:  ct.RequestID,
		Status:     string(ct.Status),
		StartDate:  ct.StartDate.Format("2006-01-02 15:04:05"),
	}
	if ct.EndDate != nil {
		dto.EndDate = ct.EndDate.Format("2006-01-02 15:04:05")
	}
	return dto
}

type ReviewDTO struct {
	ID         uint    `json:"id"`
	ContractID uint    `json:"contract_id"`
	From       string  `json:"from"`
	TargetRole string  `json:"target_role"`
	Score      float64 `json:"score"`
	Body       string  `json:"body"`
}

func toReviewDTO(r *models.Review) ReviewDTO {
	return ReviewDTO{
		ID:         r.ID,
		ContractID: r.ContractID,
		From:       r.AuthorID.String(),
		TargetRole: string(r.TargetRole),
		Score:      r.Score,
		Body:       r.Body,
	}
}
