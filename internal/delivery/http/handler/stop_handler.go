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

type StopHandler struct {
	stopUC *usecase.StopUseCase
	logger *zap.Logger
}

func NewStopHandler(stopUC *usecase.StopUseCase, logger *zap.Logger) *StopHandler {
	return &StopHandler{
		stopUC: stopUC,
		logger: logger,
	}
}

// Add godoc
// @Summary Add a stop to a circuit
// @Description Inserts the stop at the requested position (appending by default) and shifts the rest.
// @Tags Stops
// @Accept json
// @Produce json
// @Param id path int true "Circuit id"
// @Param request body dto.AddStopRequest true "Stop to add"
// @Success 201 {object} utils.SuccessResponse{data=dto.StopResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/circuits/{id}/stops [post]
func (h *StopHandler) Add(c *fiber.Ctx) error {
	circuitID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.AddStopRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	resp, err := h.stopUC.Add(c.Context(), middleware.UserEmail(c), circuitID, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, resp)
}

// Update godoc
// @Summary Update a stop
// @Description Changes stop fields and optionally moves it to a new position.
// @Tags Stops
// @Accept json
// @Produce json
// @Param id path int true "Circuit id"
// @Param stop_id path int true "Stop id"
// @Param request body dto.UpdateStopRequest true "Fields to change"
// @Success 200 {object} utils.SuccessResponse{data=dto.StopResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/circuits/{id}/stops/{stop_id} [patch]
func (h *StopHandler) Update(c *fiber.Ctx) error {
	circuitID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}
	stopID, err := parseIDParam(c, "stop_id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateStopRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	resp, err := h.stopUC.Update(c.Context(), middleware.UserEmail(c), circuitID, stopID, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}

// Delete godoc
// @Summary Remove a stop
// @Description Deletes the stop and compacts the remaining positions.
// @Tags Stops
// @Param id path int true "Circuit id"
// @Param stop_id path int true "Stop id"
// @Success 204 "No Content"
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/circuits/{id}/stops/{stop_id} [delete]
func (h *StopHandler) Delete(c *fiber.Ctx) error {
	circuitID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}
	stopID, err := parseIDParam(c, "stop_id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.stopUC.Delete(c.Context(), middleware.UserEmail(c), circuitID, stopID); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
