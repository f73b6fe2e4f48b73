package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/Domenick1991/tripplanner/internal/domain"
	"github.com/Domenick1991/tripplanner/internal/kafka"
	"github.com/Domenick1991/tripplanner/internal/service/planner"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type PlanHandler struct {
	service planner.PlannerUseCase
}

type createPlanRequest struct {
	Stops []domain.Stop `json:"stops" binding:"required"`
}

type planResponse struct {
	ID          string                   `json:"id"`
	Itineraries []kafka.ItineraryPayload `json:"itineraries"`
	CreatedAt   string                   `json:"created_at"`
}

func NewPlanHandler(service planner.PlannerUseCase) *PlanHandler {
	return &PlanHandler{service: service}
}

func (h *PlanHandler) Register(router *gin.RouterGroup) {
	router.POST("/plans", h.create)
}

func (h *PlanHandler) create(c *gin.Context) {
	var req createPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.service.Plan(c.Request.Context(), domain.TripRequest{Stops: req.Stops})
	if err != nil {
		status := planErrorStatus(err)
		if status >= http.StatusInternalServerError {
			log.Error().Err(err).Msg("Plan failed")
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, planResponse{
		ID:          plan.ID,
		Itineraries: kafka.ItineraryPayloads(plan.Itineraries),
		CreatedAt:   plan.CreatedAt.Format(time.RFC3339),
	})
}

func planErrorStatus(err error) int {
	var fetchErr *planner.FetchError
	var parseErr *planner.ParseError
	switch {
	case errors.Is(err, domain.ErrInvalidTrip):
		return http.StatusBadRequest
	case errors.Is(err, planner.ErrFrontierLimit):
		return http.StatusUnprocessableEntity
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	case errors.As(err, &parseErr), errors.Is(err, planner.ErrMalformedDocument):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
