package report

import (
	"net/http"

	"fitzone/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) GetReport(c *gin.Context) {
	ctx := c.Request.Context()
	groups, err := h.service.BuildReport(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, groups)
}
