package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tour-planning-service/internal/delivery/http/middleware"
	"github.com/tour-planning-service/internal/pkg/errors"
	"github.com/tour-planning-service/internal/pkg/utils"
	"github.com/tour-planning-service/internal/pkg/validator"
	"github.com/tour-planning-service/internal/usecase"
	"github.com/tour-planning-service/internal/usecase/dto"
)

// CircuitHandler serves circuit CRUD and the planning warnings endpoint.
type CircuitHandler struct {
	circuitUC *usecase.CircuitUseCase
	logger    *zap.Logger
}

func NewCircuitHandler(circuitUC *usecase.CircuitUseCase, logger *zap.Logger) *CircuitHandler {
	return &CircuitHandler{
		circuitUC: circuitUC,
		logger:    logger,
	}
}

func parseIDParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.ErrInvalidRequest.WithMessage("Invalid " + name + " parameter")
	}
	return id, nil
}

// List godoc
// @Summary List the caller's circuits
// @Description Returns the authenticated guide's circuits, newest first, optionally filtered by city.
// @Tags Circuits
// @Produce json
// @Param city_id query int false "Filter by city id"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.CircuitSummaryResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/circuits [get]
func (h *CircuitHandler) List(c *fiber.Ctx) error {
	var cityID *int64
	if raw := c.Query("city_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid city_id parameter"))
		}
		cityID = &id
	}

	summaries, err := h.circuitUC.ListMine(c.Context(), middleware.UserEmail(c), cityID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, summaries, &utils.Meta{Total: len(summaries)})
}

// Get godoc
// @Summary Get one circuit
// @Description Returns the circuit with its stops in visiting order and its routes.
// @Tags Circuits
// @Produce json
// @Param id path int true "Circuit id"
// @Success 200 {object} utils.SuccessResponse{data=dto.CircuitResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/circuits/{id} [get]
func (h *CircuitHandler) Get(c *fiber.Ctx) error {
	circuitID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.circuitUC.Get(c.Context(), middleware.UserEmail(c), circuitID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}

// Create godoc
// @Summary Create a circuit
// @Tags Circuits
// @Accept json
// @Produce json
// @Param request body dto.CreateCircuitRequest true "Circuit to create"
// @Success 201 {object} utils.SuccessResponse{data=dto.CircuitResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/circuits [post]
func (h *CircuitHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCircuitRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	resp, err := h.circuitUC.Create(c.Context(), middleware.UserEmail(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, resp)
}

// Update godoc
// @Summary Update a circuit
// @Tags Circuits
// @Accept json
// @Produce json
// @Param id path int true "Circuit id"
// @Param request body dto.UpdateCircuitRequest true "Fields to change"
// @Success 200 {object} utils.SuccessResponse{data=dto.CircuitResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/circuits/{id} [patch]
func (h *CircuitHandler) Update(c *fiber.Ctx) error {
	circuitID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateCircuitRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	resp, err := h.circuitUC.Update(c.Context(), middleware.UserEmail(c), circuitID, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}

// Delete godoc
// @Summary Delete a circuit
// @Tags Circuits
// @Param id path int true "Circuit id"
// @Success 204 "No Content"
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/circuits/{id} [delete]
func (h *CircuitHandler) Delete(c *fiber.Ctx) error {
	circuitID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.circuitUC.Delete(c.Context(), middleware.UserEmail(c), circuitID); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Warnings godoc
// @Summary Planning warnings for a circuit
// @Description Advisory findings about schedule completeness. Warnings never block edits.
// @Tags Circuits
// @Produce json
// @Param id path int true "Circuit id"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.PlanningWarning}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/circuits/{id}/warnings [get]
func (h *CircuitHandler) Warnings(c *fiber.Ctx) error {
	circuitID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	warnings, err := h.circuitUC.Warnings(c.Context(), middleware.UserEmail(c), circuitID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, warnings, &utils.Meta{Total: len(warnings)})
}
