package v1handler

import (
	"bytes"
	"fmt"
	"midcar/internal/inventory"
	"midcar/pkg/domain"
	"midcar/pkg/serrors"
	"midcar/pkg/storage"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// VehicleRequest mirrors inventory.VehicleInput; omitted fields are left
// untouched on update.
type VehicleRequest struct {
	VIN           *string               `json:"vin"           validate:"omitempty,max=17"`
	LicensePlate  *string               `json:"licensePlate"  validate:"omitempty,max=16"`
	Make          *string               `json:"make"          validate:"omitempty,max=64"`
	Model         *string               `json:"model"         validate:"omitempty,max=64"`
	Version       *string               `json:"version"       validate:"omitempty,max=128"`
	Year          *int                  `json:"year"          validate:"omitempty,gte=1900,lte=2100"`
	MileageKm     *int                  `json:"mileageKm"     validate:"omitempty,gte=0"`
	FuelType      *domain.FuelType      `json:"fuelType"      validate:"omitempty,oneof=GASOLINE DIESEL ELECTRIC HYBRID LPG OTHER"` //nolint: lll
	Transmission  *domain.Transmission  `json:"transmission"  validate:"omitempty,oneof=MANUAL AUTOMATIC"`
	BodyType      *string               `json:"bodyType"      validate:"omitempty,max=64"`
	Color         *string               `json:"color"         validate:"omitempty,max=64"`
	Doors         *int                  `json:"doors"         validate:"omitempty,gte=0,lte=9"`
	EngineCC      *int                  `json:"engineCc"      validate:"omitempty,gte=0"`
	PowerHP       *int                  `json:"powerHp"       validate:"omitempty,gte=0"`
	Price         *domain.Money         `json:"price"         validate:"omitempty,gte=0"`
	PurchasePrice *domain.Money         `json:"purchasePrice" validate:"omitempty,gte=0"`
	Description   *string               `json:"description"   validate:"omitempty,max=10000"`
	Featured      *bool                 `json:"featured"`
	Status        *domain.VehicleStatus `json:"status"        validate:"omitempty,oneof=AVAILABLE RESERVED SOLD"`
}

type VehicleStatusRequest struct {
	Status domain.VehicleStatus `json:"status" validate:"required,oneof=AVAILABLE RESERVED SOLD"`
	// Force allows moving a sold vehicle back to stock.
	Force bool `json:"force"`
}

type ReorderPhotosRequest struct {
	IDs []domain.PhotoID `json:"ids" validate:"required,min=1"`
}

type EnqueueResponse struct {
	Enqueued bool `json:"enqueued"`
}

// vehicleFilter reads the list filters shared by the staff and public lists.
func vehicleFilter(c *gin.Context) (storage.VehicleFilter, error) {
	var f storage.VehicleFilter
	var err error

	for _, s := range queryList(c, "status") {
		status := domain.VehicleStatus(s)
		if !status.Valid() {
			return f, serrors.With(serrors.ErrBadRequest, "invalid status %q", s)
		}
		f.Statuses = append(f.Statuses, status)
	}
	f.Make = c.Query("make")
	f.FuelType = domain.FuelType(c.Query("fuel"))
	if !f.FuelType.Valid() {
		return f, serrors.With(serrors.ErrBadRequest, "invalid fuel %q", f.FuelType)
	}
	f.Search = c.Query("q")
	f.Sort = storage.VehicleSort(c.Query("sort"))

	var minPrice, maxPrice int
	if minPrice, err = queryInt(c, "minPrice"); err != nil {
		return f, err
	}
	if maxPrice, err = queryInt(c, "maxPrice"); err != nil {
		return f, err
	}
	f.MinPrice, f.MaxPrice = domain.Money(minPrice), domain.Money(maxPrice)
	if f.MinYear, err = queryInt(c, "minYear"); err != nil {
		return f, err
	}
	if f.MaxYear, err = queryInt(c, "maxYear"); err != nil {
		return f, err
	}
	if f.Featured, err = queryBool(c, "featured"); err != nil {
		return f, err
	}
	if f.Page, err = queryPage(c); err != nil {
		return f, err
	}

	return f, nil
}

func (h Handler) CreateVehicle(c *gin.Context) {
	var req VehicleRequest
	if err := h.bind(c, &req); err != nil {
		h.fail(c, err)

		return
	}

	v, err := h.deps.Inventory.Create(c.Request.Context(), inventory.VehicleInput(req))
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusCreated, v)
}

func (h Handler) UpdateVehicle(c *gin.Context) {
	id, err := pathID[domain.VehicleID](c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}
	var req VehicleRequest
	if err := h.bind(c, &req); err != nil {
		h.fail(c, err)

		return
	}

	v, err := h.deps.Inventory.Update(c.Request.Context(), id, inventory.VehicleInput(req))
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, v)
}

func (h Handler) GetVehicle(c *gin.Context) {
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

	c.JSON(http.StatusOK, v)
}

func (h Handler) ListVehicles(c *gin.Context) {
	filter, err := vehicleFilter(c)
	if err != nil {
		h.fail(c, err)

		return
	}

	list, err := h.deps.Inventory.List(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, newListResponse(list, filter.Page))
}

func (h Handler) DeleteVehicle(c *gin.Context) {
	id, err := pathID[domain.VehicleID](c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}

	if err := h.deps.Inventory.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (h Handler) SetVehicleStatus(c *gin.Context) {
	id, err := pathID[domain.VehicleID](c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}
	var req VehicleStatusRequest
	if err := h.bind(c, &req); err != nil {
		h.fail(c, err)

		return
	}

	v, err := h.deps.Inventory.SetStatus(c.Request.Context(), id, req.Status, req.Force)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, v)
}

// DecodeVIN previews the decode of a VIN without touching any vehicle.
func (h Handler) DecodeVIN(c *gin.Context) {
	decoded, err := h.deps.Inventory.DecodeVIN(c.Request.Context(), c.Param("vin"))
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, decoded)
}

// EnqueueVINDecode schedules the background decode of a vehicle VIN.
func (h Handler) EnqueueVINDecode(c *gin.Context) {
	id, err := pathID[domain.VehicleID](c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}

	enqueued, err := h.deps.Inventory.EnqueueVINDecode(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusAccepted, EnqueueResponse{Enqueued: enqueued})
}

// UploadPhoto stores the multipart file "file" as the last photo of the vehicle.
func (h Handler) UploadPhoto(c *gin.Context) {
	id, err := pathID[domain.VehicleID](c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}

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

	photo, err := h.deps.Inventory.UploadPhoto(c.Request.Context(), id, f)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusCreated, photo)
}

func (h Handler) DeletePhoto(c *gin.Context) {
	id, err := pathID[domain.VehicleID](c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}
	photoID, err := pathID[domain.PhotoID](c, "photoId")
	if err != nil {
		h.fail(c, err)

		return
	}

	if err := h.deps.Inventory.DeletePhoto(c.Request.Context(), id, photoID); err != nil {
		h.fail(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (h Handler) ReorderPhotos(c *gin.Context) {
	id, err := pathID[domain.VehicleID](c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}
	var req ReorderPhotosRequest
	if err := h.bind(c, &req); err != nil {
		h.fail(c, err)

		return
	}

	photos, err := h.deps.Inventory.ReorderPhotos(c.Request.Context(), id, req.IDs)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, photos)
}

// ExportVehicleSheet renders the one page sheet of a vehicle.
func (h Handler) ExportVehicleSheet(c *gin.Context) {
	id, err := pathID[domain.VehicleID](c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}

	var buf bytes.Buffer
	if err := h.deps.Inventory.ExportSheetPDF(c.Request.Context(), id, &buf); err != nil {
		h.fail(c, err)

		return
	}

	pdf(c, fmt.Sprintf("vehicle-%s.pdf", id), buf.Bytes())
}

// ExportInventory renders the vehicles matching the list filters.
func (h Handler) ExportInventory(c *gin.Context) {
	filter, err := vehicleFilter(c)
	if err != nil {
		h.fail(c, err)

		return
	}

	var buf bytes.Buffer
	if err := h.deps.Inventory.ExportInventoryPDF(c.Request.Context(), filter, &buf); err != nil {
		h.fail(c, err)

		return
	}

	pdf(c, fmt.Sprintf("inventory-%s.pdf", time.Now().Format(time.DateOnly)), buf.Bytes())
}

func pdf(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
