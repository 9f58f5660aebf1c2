package subscription

import (
	"net/http"

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

func (h *Handler) CreateSubscription(c *gin.Context) {
	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBadRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	created, err := h.service.CreateSubscription(ctx, req)
	if err != nil {
		switch err {
		case ErrInvalidSubscription:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid subscription data"})
		case class.ErrClassNotFound:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Class not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create subscription"})
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) ListSubscriptions(c *gin.Context) {
	ctx := c.Request.Context()
	subs, err := h.service.GetAllSubscriptions(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch subscriptions"})
		return
	}

	c.JSON(http.StatusOK, subs)
}
