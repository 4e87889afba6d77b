package v1handler

import (
	"midcar/internal/crm"
	"midcar/pkg/domain"
	"midcar/pkg/serrors"
	"midcar/pkg/storage"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HandledRequest struct {
	Handled bool `json:"handled"`
}

type ConvertContactRequest struct {
	// AssignedTo defaults to the caller.
	AssignedTo *domain.UserID `json:"assignedTo"`
}

type LeadRequest struct {
	Name       *string           `json:"name"         validate:"omitempty,max=128"`
	Email      *string           `json:"email"        validate:"omitempty,max=254"`
	Phone      *string           `json:"phone"        validate:"omitempty,max=32"`
	VehicleID  *domain.VehicleID `json:"vehicleId"`
	Source     *domain.Source    `json:"source"       validate:"omitempty,oneof=WEB PHONE WALK_IN OTHER"`
	Notes      *string           `json:"notes"        validate:"omitempty,max=10000"`
	AssignedTo *domain.UserID    `json:"assignedTo"`
	// ClearVehicle unlinks the vehicle of the lead.
	ClearVehicle bool `json:"clearVehicle"`
}

type LeadStatusRequest struct {
	Status domain.LeadStatus `json:"status" validate:"required,oneof=NEW CONTACTED NEGOTIATING WON LOST"`
}

type ClientRequest struct {
	FirstName  *string `json:"firstName"  validate:"omitempty,max=128"`
	LastName   *string `json:"lastName"   validate:"omitempty,max=128"`
	NationalID *string `json:"nationalId" validate:"omitempty,max=32"`
	Email      *string `json:"email"      validate:"omitempty,max=254"`
	Phone      *string `json:"phone"      validate:"omitempty,max=32"`
	Address    *string `json:"address"    validate:"omitempty,max=256"`
	City       *string `json:"city"       validate:"omitempty,max=128"`
	PostalCode *string `json:"postalCode" validate:"omitempty,max=16"`
	Notes      *string `json:"notes"      validate:"omitempty,max=10000"`
}

// WinLeadRequest names the buyer: clientId of an existing client or the data
// of a new one.
type WinLeadRequest struct {
	ClientID *domain.ClientID `json:"clientId"`
	Client   *ClientRequest   `json:"client"`
}

type WinLeadResponse struct {
	Lead   *domain.Lead   `json:"lead"`
	Client *domain.Client `json:"client"`
}

func (r LeadRequest) toInput() crm.LeadInput {
	return crm.LeadInput(r)
}

// Contacts

// CreateContact records a contact taken by staff, e.g. over the phone.
func (h Handler) CreateContact(c *gin.Context) {
	var req ContactRequest
	if err := h.bind(c, &req); err != nil {
		h.fail(c, err)

		return
	}

	contact, err := h.deps.CRM.SubmitContact(c.Request.Context(), req.toInput())
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusCreated, contact)
}

func (h Handler) ListContacts(c *gin.Context) {
	var filter storage.ContactFilter
	var err error
	if filter.Handled, err = queryBool(c, "handled"); err != nil {
		h.fail(c, err)

		return
	}
	if filter.Page, err = queryPage(c); err != nil {
		h.fail(c, err)

		return
	}
	filter.Search = c.Query("q")

	list, err := h.deps.CRM.ListContacts(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, newListResponse(list, filter.Page))
}

func (h Handler) MarkContactHandled(c *gin.Context) {
	id, err := pathID[domain.ContactID](c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}
	var req HandledRequest
	if err := h.bind(c, &req); err != nil {
		h.fail(c, err)

		return
	}

	contact, err := h.deps.CRM.MarkHandled(c.Request.Context(), id, req.Handled)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, contact)
}

func (h Handler) ConvertContact(c *gin.Context) {
	id, err := pathID[domain.ContactID](c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}
	var req ConvertContactRequest
	if c.Request.ContentLength != 0 {
		if err := h.bind(c, &req); err != nil {
			h.fail(c, err)

			return
		}
	}
	if req.AssignedTo == nil {
		if user := GetUserIDFromContext(c.Request.Context()); !user.IsZero() {
			req.AssignedTo = &user
		}
	}

	lead, err := h.deps.CRM.ConvertContact(c.Request.Context(), id, req.AssignedTo)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusCreated, lead)
}

// Leads

func (h Handler) CreateLead(c *gin.Context) {
	var req LeadRequest
	if err := h.bind(c, &req); err != nil {
		h.fail(c, err)

		return
	}

	lead, err := h.deps.CRM.CreateLead(c.Request.Context(), req.toInput())
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusCreated, lead)
}

func (h Handler) UpdateLead(c *gin.Context) {
	id, err := pathID[domain.LeadID](c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}
	var req LeadRequest
	if err := h.bind(c, &req); err != nil {
		h.fail(c, err)

		return
	}

	lead, err := h.deps.CRM.UpdateLead(c.Request.Context(), id, req.toInput())
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, lead)
}

func (h Handler) GetLead(c *gin.Context) {
	id, err := pathID[domain.LeadID](c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}

	lead, err := h.deps.CRM.GetLead(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, lead)
}

func (h Handler) ListLeads(c *gin.Context) {
	var filter storage.LeadFilter
	var err error

	filter.Status = domain.LeadStatus(c.Query("status"))
	if filter.Status != "" && !filter.Status.Valid() {
		h.fail(c, serrors.With(serrors.ErrBadRequest, "invalid status %q", filter.Status))

		return
	}
	filter.Source = domain.Source(c.Query("source"))
	if filter.Source != "" && !filter.Source.Valid() {
		h.fail(c, serrors.With(serrors.ErrBadRequest, "invalid source %q", filter.Source))

		return
	}
	if filter.AssignedTo, err = queryID[domain.UserID](c, "assignedTo"); err != nil {
		h.fail(c, err)

		return
	}
	if filter.VehicleID, err = queryID[domain.VehicleID](c, "vehicleId"); err != nil {
		h.fail(c, err)

		return
	}
	if filter.Page, err = queryPage(c); err != nil {
		h.fail(c, err)

		return
	}
	filter.Search = c.Query("q")

	list, err := h.deps.CRM.ListLeads(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, newListResponse(list, filter.Page))
}

func (h Handler) ChangeLeadStatus(c *gin.Context) {
	id, err := pathID[domain.LeadID](c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}
	var req LeadStatusRequest
	if err := h.bind(c, &req); err != nil {
		h.fail(c, err)

		return
	}

	lead, err := h.deps.CRM.ChangeLeadStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, lead)
}

func (h Handler) DeleteLead(c *gin.Context) {
	id, err := pathID[domain.LeadID](c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}

	if err := h.deps.CRM.DeleteLead(c.Request.Context(), id); err != nil {
		h.fail(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

// WinLead closes a lead as a sale.
func (h Handler) WinLead(c *gin.Context) {
	id, err := pathID[domain.LeadID](c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}
	var req WinLeadRequest
	if err := h.bind(c, &req); err != nil {
		h.fail(c, err)

		return
	}

	in := crm.WinInput{ClientID: req.ClientID}
	if req.Client != nil {
		client := crm.ClientInput(*req.Client)
		in.Client = &client
	}

	lead, client, err := h.deps.CRM.WinLead(c.Request.Context(), id, in)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, WinLeadResponse{Lead: lead, Client: client})
}

// Clients

func (h Handler) CreateClient(c *gin.Context) {
	var req ClientRequest
	if err := h.bind(c, &req); err != nil {
		h.fail(c, err)

		return
	}

	client, err := h.deps.CRM.CreateClient(c.Request.Context(), crm.ClientInput(req))
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusCreated, client)
}

func (h Handler) UpdateClient(c *gin.Context) {
	id, err := pathID[domain.ClientID](c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}
	var req ClientRequest
	if err := h.bind(c, &req); err != nil {
		h.fail(c, err)

		return
	}

	client, err := h.deps.CRM.UpdateClient(c.Request.Context(), id, crm.ClientInput(req))
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, client)
}

func (h Handler) GetClient(c *gin.Context) {
	id, err := pathID[domain.ClientID](c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}

	client, err := h.deps.CRM.GetClient(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, client)
}

func (h Handler) ListClients(c *gin.Context) {
	page, err := queryPage(c)
	if err != nil {
		h.fail(c, err)

		return
	}
	filter := storage.ClientFilter{Search: c.Query("q"), Page: page}

	list, err := h.deps.CRM.ListClients(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, newListResponse(list, page))
}

func (h Handler) DeleteClient(c *gin.Context) {
	id, err := pathID[domain.ClientID](c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}

	if err := h.deps.CRM.DeleteClient(c.Request.Context(), id); err != nil {
		h.fail(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}
