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

type AiHandler struct {
	aiUC   *usecase.AiUseCase
	logger *zap.Logger
}

func NewAiHandler(aiUC *usecase.AiUseCase, logger *zap.Logger) *AiHandler {
	return &AiHandler{
		aiUC:   aiUC,
		logger: logger,
	}
}

// Reorder godoc
// @Summary Reorder a circuit's stops with AI
// @Description Asks the model for a better visiting order and applies it only if it is an exact permutation of the current stops.
// @Tags AI
// @Produce json
// @Param id path int true "Circuit id"
// @Success 200 {object} utils.SuccessResponse{data=dto.ReorderResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/circuits/{id}/ai/reorder [post]
func (h *AiHandler) Reorder(c *fiber.Ctx) error {
	circuitID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.aiUC.Reorder(c.Context(), middleware.UserEmail(c), circuitID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}

// Generate godoc
// @Summary Generate a circuit with AI
// @Description Builds a new circuit for a city from the model's proposal. Unknown places are dropped; the circuit persists only when at least one stop survives validation.
// @Tags AI
// @Accept json
// @Produce json
// @Param request body dto.GenerateCircuitRequest true "Generation parameters"
// @Success 201 {object} utils.SuccessResponse{data=dto.CircuitResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/circuits/ai/generate [post]
func (h *AiHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateCircuitRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	resp, err := h.aiUC.Generate(c.Context(), middleware.UserEmail(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, resp)
}

// SuggestPlaces godoc
// @Summary Suggest additional places for a circuit
// @Description Asks the model for places not yet in the circuit, stores them and appends them as VISIT stops.
// @Tags AI
// @Accept json
// @Produce json
// @Param id path int true "Circuit id"
// @Param request body dto.SuggestPlacesRequest true "Suggestion parameters"
// @Success 201 {object} utils.SuccessResponse{data=[]dto.StopResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/circuits/{id}/ai/suggest-places [post]
func (h *AiHandler) SuggestPlaces(c *fiber.Ctx) error {
	circuitID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.SuggestPlacesRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	resp, err := h.aiUC.SuggestPlaces(c.Context(), middleware.UserEmail(c), circuitID, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, resp)
}
