package v1handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetDashboard returns the cached business summary.
func (h Handler) GetDashboard(c *gin.Context) {
	summary, err := h.deps.Dashboard.Summary(c.Request.Context())
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, summary)
}
