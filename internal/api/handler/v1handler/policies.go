package v1handler

import (
	"fmt"
	"midcar/internal/insurance"
	"midcar/pkg/domain"
	"midcar/pkg/serrors"
	"midcar/pkg/storage"
	"net/http"

	"github.com/gin-gonic/gin"
)

// defaultExpiringDays is the window of the expiring policies list.
const defaultExpiringDays = 30

type PolicyRequest struct {
	PolicyNumber     *string           `json:"policyNumber"     validate:"omitempty,max=64"`
	Insurer          *string           `json:"insurer"          validate:"omitempty,max=128"`
	HolderName       *string           `json:"holderName"       validate:"omitempty,max=256"`
	HolderNationalID *string           `json:"holderNationalId" validate:"omitempty,max=32"`
	LicensePlate     *string           `json:"licensePlate"     validate:"omitempty,max=16"`
	VehicleID        *domain.VehicleID `json:"vehicleId"`
	ClientID         *domain.ClientID  `json:"clientId"`
	Coverage         *string           `json:"coverage"         validate:"omitempty,max=256"`
	Premium          *domain.Money     `json:"premium"          validate:"omitempty,gte=0"`
	StartDate        *Date             `json:"startDate"`
	EndDate          *Date             `json:"endDate"`
}

func (r PolicyRequest) toInput() insurance.PolicyInput {
	in := insurance.PolicyInput{
		PolicyNumber:     r.PolicyNumber,
		Insurer:          r.Insurer,
		HolderName:       r.HolderName,
		HolderNationalID: r.HolderNationalID,
		LicensePlate:     r.LicensePlate,
		VehicleID:        r.VehicleID,
		ClientID:         r.ClientID,
		Coverage:         r.Coverage,
		Premium:          r.Premium,
	}
	if r.StartDate != nil {
		in.StartDate = &r.StartDate.Time
	}
	if r.EndDate != nil {
		in.EndDate = &r.EndDate.Time
	}

	return in
}

// Policy is the API view of a policy with calendar dates.
type Policy struct {
	domain.InsurancePolicy

	StartDate Date `json:"startDate"`
	EndDate   Date `json:"endDate"`
}

func toPolicy(p *domain.InsurancePolicy) Policy {
	return Policy{InsurancePolicy: *p, StartDate: Date{p.StartDate}, EndDate: Date{p.EndDate}}
}

func (h Handler) CreatePolicy(c *gin.Context) {
	var req PolicyRequest
	if err := h.bind(c, &req); err != nil {
		h.fail(c, err)

		return
	}

	p, err := h.deps.Insurance.Create(c.Request.Context(), req.toInput())
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusCreated, toPolicy(p))
}

func (h Handler) UpdatePolicy(c *gin.Context) {
	id, err := pathID[domain.PolicyID](c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}
	var req PolicyRequest
	if err := h.bind(c, &req); err != nil {
		h.fail(c, err)

		return
	}

	p, err := h.deps.Insurance.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, toPolicy(p))
}

func (h Handler) GetPolicy(c *gin.Context) {
	id, err := pathID[domain.PolicyID](c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}

	p, err := h.deps.Insurance.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, toPolicy(p))
}

func (h Handler) ListPolicies(c *gin.Context) {
	var filter storage.PolicyFilter
	var err error

	filter.Insurer = c.Query("insurer")
	filter.Search = c.Query("q")
	if filter.VehicleID, err = queryID[domain.VehicleID](c, "vehicleId"); err != nil {
		h.fail(c, err)

		return
	}
	if filter.ClientID, err = queryID[domain.ClientID](c, "clientId"); err != nil {
		h.fail(c, err)

		return
	}
	if filter.EndsFrom, err = queryDate(c, "endsFrom"); err != nil {
		h.fail(c, err)

		return
	}
	if filter.EndsBefore, err = queryDate(c, "endsBefore"); err != nil {
		h.fail(c, err)

		return
	}
	if filter.Page, err = queryPage(c); err != nil {
		h.fail(c, err)

		return
	}

	list, err := h.deps.Insurance.List(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, mapListResponse(list, filter.Page, toPolicy))
}

func (h Handler) DeletePolicy(c *gin.Context) {
	id, err := pathID[domain.PolicyID](c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}

	if err := h.deps.Insurance.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

// ExpiringPolicies lists the policies ending within ?days= (30 by default).
func (h Handler) ExpiringPolicies(c *gin.Context) {
	days, err := queryInt(c, "days")
	if err != nil {
		h.fail(c, err)

		return
	}
	if days == 0 {
		days = defaultExpiringDays
	}

	policies, err := h.deps.Insurance.ExpiringPolicies(c.Request.Context(), days)
	if err != nil {
		h.fail(c, err)

		return
	}

	out := make([]Policy, 0, len(policies))
	for i := range policies {
		out = append(out, toPolicy(&policies[i]))
	}

	c.JSON(http.StatusOK, out)
}

// ImportPolicies imports the multipart spreadsheet "file". The optional form
// field "insurer" names the insurer of rows without one.
func (h Handler) ImportPolicies(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, insurance.MaxImportBytes+1<<20)

	fh, err := c.FormFile("file")
	if err != nil {
		h.fail(c, serrors.Wrap(serrors.ErrBadRequest, err, "missing multipart file field \"file\""))

		return
	}
	f, err := fh.Open()
	if err != nil {
		h.fail(c, fmt.Errorf("could not open uploaded file: %w", err))

		return
	}
	defer f.Close()

	report, err := h.deps.Insurance.Import(c.Request.Context(), fh.Filename, f, c.PostForm("insurer"))
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, report)
}
