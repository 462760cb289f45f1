package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mentorhub_backend/internal/services"
	"mentorhub_backend/internal/services/dto"
	"mentorhub_backend/pkg/apperrors"
)

type AvailabilityHandler struct {
	*BaseHandler
	availabilityService services.AvailabilityService
}

func NewAvailabilityHandler(base *BaseHandler, availabilityService services.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{
		BaseHandler:         base,
		availabilityService: availabilityService,
	}
}

// Create replaces the caller's availability with dated slots expanded
// from the submitted weekly template.
func (h *AvailabilityHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateAvailabilityRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	availability, err := h.availabilityService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Availability saved successfully",
		"availability": availability,
	})
}

// GetNext4Days is public: any visitor can look up a mentor's upcoming slots.
func (h *AvailabilityHandler) GetNext4Days(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing required path parameter: userId"))
		return
	}

	window, err := h.availabilityService.NextDays(userID, services.ReadWindowDays)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, window)
}
