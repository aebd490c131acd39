package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tour-planning-service/internal/delivery/http/middleware"
	"github.com/tour-planning-service/internal/pkg/errors"
	"github.com/tour-planning-service/internal/pkg/utils"
	"github.com/tour-planning-service/internal/pkg/validator"
	"github.com/tour-planning-service/internal/usecase"
	"github.com/tour-planning-service/internal/usecase/dto"
)

type RouteHandler struct {
	routeUC *usecase.RouteUseCase
	logger  *zap.Logger
}

func NewRouteHandler(routeUC *usecase.RouteUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		logger:  logger,
	}
}

// Upsert godoc
// @Summary Create or update a route between two stops
// @Description One route exists per ordered stop pair; posting again updates it. A referenced transport option must cover the stops' places and fills unset fields.
// @Tags Routes
// @Accept json
// @Produce json
// @Param id path int true "Circuit id"
// @Param request body dto.UpsertRouteRequest true "Route to save"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouteResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/circuits/{id}/routes [put]
func (h *RouteHandler) Upsert(c *fiber.Ctx) error {
	circuitID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpsertRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	resp, err := h.routeUC.Upsert(c.Context(), middleware.UserEmail(c), circuitID, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}
