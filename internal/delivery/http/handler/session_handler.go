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

type SessionHandler struct {
	sessionUC *usecase.SessionUseCase
	logger    *zap.Logger
}

func NewSessionHandler(sessionUC *usecase.SessionUseCase, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		sessionUC: sessionUC,
		logger:    logger,
	}
}

// List godoc
// @Summary List a circuit's sessions
// @Tags Sessions
// @Produce json
// @Param id path int true "Circuit id"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.SessionResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/circuits/{id}/sessions [get]
func (h *SessionHandler) List(c *fiber.Ctx) error {
	circuitID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	sessions, err := h.sessionUC.List(c.Context(), middleware.UserEmail(c), circuitID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, sessions, &utils.Meta{Total: len(sessions)})
}

// Create godoc
// @Summary Schedule a session
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path int true "Circuit id"
// @Param request body dto.CreateSessionRequest true "Session to schedule"
// @Success 201 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/circuits/{id}/sessions [post]
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	circuitID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	resp, err := h.sessionUC.Create(c.Context(), middleware.UserEmail(c), circuitID, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, resp)
}

// Update godoc
// @Summary Update a session
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path int true "Circuit id"
// @Param session_id path int true "Session id"
// @Param request body dto.UpdateSessionRequest true "Fields to change"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/circuits/{id}/sessions/{session_id} [patch]
func (h *SessionHandler) Update(c *fiber.Ctx) error {
	circuitID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}
	sessionID, err := parseIDParam(c, "session_id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	resp, err := h.sessionUC.Update(c.Context(), middleware.UserEmail(c), circuitID, sessionID, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}

// Delete godoc
// @Summary Cancel and remove a session
// @Tags Sessions
// @Param id path int true "Circuit id"
// @Param session_id path int true "Session id"
// @Success 204 "No Content"
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/circuits/{id}/sessions/{session_id} [delete]
func (h *SessionHandler) Delete(c *fiber.Ctx) error {
	circuitID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}
	sessionID, err := parseIDParam(c, "session_id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.sessionUC.Delete(c.Context(), middleware.UserEmail(c), circuitID, sessionID); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
