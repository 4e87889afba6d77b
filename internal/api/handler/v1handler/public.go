package v1handler

import (
	"midcar/internal/crm"
	"midcar/pkg/domain"
	"midcar/pkg/serrors"
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
)

// PublicVehicle is the listing view of a vehicle. Plate, VIN and purchase
// price stay internal.
type PublicVehicle struct {
	ID           domain.VehicleID      `json:"id"`
	Make         string                `json:"make"`
	Model        string                `json:"model"`
	Version      string                `json:"version"`
	Year         int                   `json:"year"`
	MileageKm    int                   `json:"mileageKm"`
	FuelType     domain.FuelType       `json:"fuelType"`
	Transmission domain.Transmission   `json:"transmission"`
	BodyType     string                `json:"bodyType"`
	Color        string                `json:"color"`
	Doors        int                   `json:"doors"`
	EngineCC     int                   `json:"engineCc"`
	PowerHP      int                   `json:"powerHp"`
	Price        domain.Money          `json:"price"`
	Status       domain.VehicleStatus  `json:"status"`
	Description  string                `json:"description"`
	Featured     bool                  `json:"featured"`
	Photos       []domain.VehiclePhoto `json:"photos"`
	CreatedAt    time.Time             `json:"createdAt"`
}

func toPublicVehicle(v *domain.Vehicle) PublicVehicle {
	photos := v.Photos
	if photos == nil {
		photos = []domain.VehiclePhoto{}
	}

	return PublicVehicle{
		ID:           v.ID,
		Make:         v.Make,
		Model:        v.Model,
		Version:      v.Version,
		Year:         v.Year,
		MileageKm:    v.MileageKm,
		FuelType:     v.FuelType,
		Transmission: v.Transmission,
		BodyType:     v.BodyType,
		Color:        v.Color,
		Doors:        v.Doors,
		EngineCC:     v.EngineCC,
		PowerHP:      v.PowerHP,
		Price:        v.Price,
		Status:       v.Status,
		Description:  v.Description,
		Featured:     v.Featured,
		Photos:       photos,
		CreatedAt:    v.CreatedAt,
	}
}

// publicStatuses are the vehicles shown on the website.
//
//nolint: gochecknoglobals
var publicStatuses = []domain.VehicleStatus{domain.VehicleStatusAvailable, domain.VehicleStatusReserved}

type ContactRequest struct {
	Name      string            `json:"name"      validate:"required,max=128"`
	Email     string            `json:"email"     validate:"omitempty,email,max=254"`
	Phone     string            `json:"phone"     validate:"omitempty,max=32"`
	Message   string            `json:"message"   validate:"max=4000"`
	VehicleID *domain.VehicleID `json:"vehicleId"`
	// Source is ignored on the public route, where it is always WEB.
	Source domain.Source `json:"source" validate:"omitempty,oneof=WEB PHONE WALK_IN OTHER"`
}

func (r ContactRequest) toInput() crm.ContactInput {
	return crm.ContactInput{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Message:   r.Message,
		VehicleID: r.VehicleID,
		Source:    r.Source,
	}
}

// PublicListVehicles lists the vehicles on sale. Search skips the VIN and
// plate, which stay internal, and status filters outside the public ones are
// ignored.
func (h Handler) PublicListVehicles(c *gin.Context) {
	filter, err := vehicleFilter(c)
	if err != nil {
		h.fail(c, err)

		return
	}

	statuses := slices.DeleteFunc(filter.Statuses, func(s domain.VehicleStatus) bool {
		return !slices.Contains(publicStatuses, s)
	})
	if len(statuses) == 0 {
		statuses = publicStatuses
	}
	filter.Statuses = statuses
	filter.PublicSearch = true

	list, err := h.deps.Inventory.List(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, mapListResponse(list, filter.Page, toPublicVehicle))
}

// PublicGetVehicle shows a vehicle on sale; sold vehicles are not found.
func (h Handler) PublicGetVehicle(c *gin.Context) {
	id, err := pathID[domain.VehicleID](c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}

	v, err := h.deps.Inventory.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)

		return
	}
	if !slices.Contains(publicStatuses, v.Status) {
		h.fail(c, serrors.With(serrors.ErrNotFound, "vehicle not found"))

		return
	}

	c.JSON(http.StatusOK, toPublicVehicle(v))
}

func (h Handler) PublicListPosts(c *gin.Context) {
	page, err := queryPage(c)
	if err != nil {
		h.fail(c, err)

		return
	}
	filter := postFilter(c, page)
	filter.Status = domain.PostStatusPublished

	list, err := h.deps.Content.ListPosts(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, newListResponse(list, page))
}

func (h Handler) PublicGetPost(c *gin.Context) {
	post, err := h.deps.Content.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, post)
}

// PublicGetContent returns the blocks of ?section=, or every section grouped.
func (h Handler) PublicGetContent(c *gin.Context) {
	if section := c.Query("section"); section != "" {
		h.getSection(c, section)

		return
	}

	all, err := h.deps.Content.GetAll(c.Request.Context())
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, all)
}

// PublicSubmitContact records a contact request from the website.
func (h Handler) PublicSubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := h.bind(c, &req); err != nil {
		h.fail(c, err)

		return
	}
	in := req.toInput()
	in.Source = domain.SourceWeb

	contact, err := h.deps.CRM.SubmitContact(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)

		return
	}

	// the website only learns the request was accepted
	c.JSON(http.StatusCreated, gin.H{"id": contact.ID})
}
