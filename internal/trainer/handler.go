package trainer

import (
	"net/http"
	"strconv"

	"fitzone/internal/api"
	"fitzone/internal/class"

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

func (h *Handler) CreateTrainer(c *gin.Context) {
	var req CreateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBadRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	created, err := h.service.CreateTrainer(ctx, req)
	if err != nil {
		switch err {
		case ErrInvalidTrainer:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid trainer data"})
		case class.ErrClassNotFound:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Specialization class not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create trainer"})
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) ListTrainers(c *gin.Context) {
	ctx := c.Request.Context()
	trainers, err := h.service.GetAllTrainers(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch trainers"})
		return
	}

	c.JSON(http.StatusOK, trainers)
}

func (h *Handler) GetTrainer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid trainer ID"})
		return
	}

	ctx := c.Request.Context()
	found, err := h.service.GetTrainerByID(ctx, id)
	if err != nil {
		switch err {
		case ErrTrainerNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Trainer not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch trainer"})
		}
		return
	}

	c.JSON(http.StatusOK, found)
}
