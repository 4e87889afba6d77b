package v1handler

import (
	"midcar/pkg/logger"
	"midcar/pkg/serrors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BasePath is where the v1 routes are mounted.
const BasePath = "/v1"

// Router builds the gin engine serving every v1 route. Routes under
// /v1/public are open; the rest require a bearer token checked by sec.
func (h *Handler) Router(sec *SecHandler) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, p any) {
		logger.Error(c.Request.Context(), "captured panic in handler", zap.Any("panic", p))
		res := internalError()
		c.AbortWithStatusJSON(res.StatusCode, res.Response)
	}))
	r.NoRoute(func(c *gin.Context) {
		h.fail(c, serrors.With(serrors.ErrNotFound, "route not found"))
	})
	r.NoMethod(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusMethodNotAllowed, ErrorResponse{
			Code:    "METHOD_NOT_ALLOWED",
			Message: "method not allowed",
		})
	})

	v1 := r.Group(BasePath)

	public := v1.Group("/public")
	public.GET("/vehicles", h.PublicListVehicles)
	public.GET("/vehicles/:id", h.PublicGetVehicle)
	public.GET("/posts", h.PublicListPosts)
	public.GET("/posts/:slug", h.PublicGetPost)
	public.GET("/content", h.PublicGetContent)
	public.POST("/contacts", h.PublicSubmitContact)

	staff := v1.Group("", sec.Middleware(h))

	// Inventory
	staff.POST("/vehicles", h.CreateVehicle)
	staff.GET("/vehicles", h.ListVehicles)
	staff.GET("/vehicles/export.pdf", h.ExportInventory)
	staff.GET("/vehicles/:id", h.GetVehicle)
	staff.PATCH("/vehicles/:id", h.UpdateVehicle)
	staff.DELETE("/vehicles/:id", h.DeleteVehicle)
	staff.PUT("/vehicles/:id/status", h.SetVehicleStatus)
	staff.POST("/vehicles/:id/vin-decode", h.EnqueueVINDecode)
	staff.GET("/vehicles/:id/sheet.pdf", h.ExportVehicleSheet)
	staff.POST("/vehicles/:id/photos", h.UploadPhoto)
	staff.PUT("/vehicles/:id/photos/order", h.ReorderPhotos)
	staff.DELETE("/vehicles/:id/photos/:photoId", h.DeletePhoto)
	staff.GET("/vin/:vin", h.DecodeVIN)

	// CRM
	staff.POST("/contacts", h.CreateContact)
	staff.GET("/contacts", h.ListContacts)
	staff.PUT("/contacts/:id/handled", h.MarkContactHandled)
	staff.POST("/contacts/:id/convert", h.ConvertContact)

	staff.POST("/leads", h.CreateLead)
	staff.GET("/leads", h.ListLeads)
	staff.GET("/leads/:id", h.GetLead)
	staff.PATCH("/leads/:id", h.UpdateLead)
	staff.DELETE("/leads/:id", h.DeleteLead)
	staff.PUT("/leads/:id/status", h.ChangeLeadStatus)
	staff.POST("/leads/:id/win", h.WinLead)

	staff.POST("/clients", h.CreateClient)
	staff.GET("/clients", h.ListClients)
	staff.GET("/clients/:id", h.GetClient)
	staff.PATCH("/clients/:id", h.UpdateClient)
	staff.DELETE("/clients/:id", h.DeleteClient)

	// Insurance
	staff.POST("/policies", h.CreatePolicy)
	staff.GET("/policies", h.ListPolicies)
	staff.GET("/policies/expiring", h.ExpiringPolicies)
	staff.POST("/policies/import", h.ImportPolicies)
	staff.GET("/policies/:id", h.GetPolicy)
	staff.PATCH("/policies/:id", h.UpdatePolicy)
	staff.DELETE("/policies/:id", h.DeletePolicy)

	// Web content and blog
	staff.GET("/content", h.GetAllContent)
	staff.GET("/content/:section", h.GetContentSection)
	staff.PUT("/content/:section/:key", h.UpsertContent)
	staff.DELETE("/content/:section/:key", h.DeleteContent)

	staff.POST("/posts", h.CreatePost)
	staff.GET("/posts", h.ListPosts)
	staff.GET("/posts/:id", h.GetPost)
	staff.PATCH("/posts/:id", h.UpdatePost)
	staff.DELETE("/posts/:id", h.DeletePost)
	staff.POST("/posts/:id/publish", h.PublishPost)
	staff.POST("/posts/:id/unpublish", h.UnpublishPost)

	staff.GET("/dashboard", h.GetDashboard)

	return r
}
