package class

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

func (h *Handler) CreateClass(c *gin.Context) {
	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBadRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	created, err := h.service.CreateClass(ctx, req)
	if err != nil {
		switch err {
		case ErrInvalidClass:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid class data"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create class"})
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) ListClasses(c *gin.Context) {
	ctx := c.Request.Context()
	classes, err := h.service.GetAllClasses(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch classes"})
		return
	}

	c.JSON(http.StatusOK, classes)
}

func (h *Handler) GetClass(c *gin.Context) {
	name := c.Param("name")

	ctx := c.Request.Context()
	found, err := h.service.GetClassByName(ctx, name)
	if err != nil {
		switch err {
		case ErrClassNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Class not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch class"})
		}
		return
	}

	c.JSON(http.StatusOK, found)
}
