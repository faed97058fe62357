package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mbti-travel-planner/internal/pkg/utils"
	"github.com/mbti-travel-planner/internal/pkg/validator"
	"github.com/mbti-travel-planner/internal/usecase"
	"github.com/mbti-travel-planner/internal/usecase/dto"
	"go.uber.org/zap"
)

// ValidationHandler - обработчик аудита внешних маршрутов
type ValidationHandler struct {
	itineraryUC *usecase.ItineraryUseCase
	logger      *zap.Logger
}

// NewValidationHandler - создание нового ValidationHandler
func NewValidationHandler(itineraryUC *usecase.ItineraryUseCase, logger *zap.Logger) *ValidationHandler {
	return &ValidationHandler{
		itineraryUC: itineraryUC,
		logger:      logger,
	}
}

// Validate godoc
// @Summary Validate an itinerary
// @Description Аудит маршрута: часы работы, уникальность, география, соответствие MBTI
// @Tags Validation
// @Accept json
// @Produce json
// @Param request body dto.ValidateItineraryRequest true "Itinerary to validate"
// @Success 200 {object} utils.SuccessResponse{data=domain.ValidationReport}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/validate [post]
func (h *ValidationHandler) Validate(c *fiber.Ctx) error {
	var req dto.ValidateItineraryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	report, err := h.itineraryUC.Validate(req.Itinerary)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, report, &utils.Meta{
		Total: len(report.Issues),
	})
}

// ValidateDetailed godoc
// @Summary Validate an itinerary with coverage metrics
// @Description Расширенный аудит: базовый отчёт плюс покрытие слотов, доля MBTI и когерентность дней
// @Tags Validation
// @Accept json
// @Produce json
// @Param request body dto.ValidateItineraryRequest true "Itinerary to validate"
// @Success 200 {object} utils.SuccessResponse{data=dto.DetailedValidationResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/validate/detailed [post]
func (h *ValidationHandler) ValidateDetailed(c *fiber.Ctx) error {
	var req dto.ValidateItineraryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	report, err := h.itineraryUC.ValidateDetailed(req.Itinerary)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.DetailedValidationResponse{Report: report}, &utils.Meta{
		Total: len(report.Issues),
	})
}

// Corrections godoc
// @Summary Suggest corrections for an itinerary
// @Description Аудит маршрута и подбор замен для проблемных слотов, сгруппированных по категориям
// @Tags Validation
// @Accept json
// @Produce json
// @Param request body dto.ValidateItineraryRequest true "Itinerary to correct"
// @Success 200 {object} utils.SuccessResponse{data=dto.CorrectionsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/validate/corrections [post]
func (h *ValidationHandler) Corrections(c *fiber.Ctx) error {
	var req dto.ValidateItineraryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	corrections, err := h.itineraryUC.Corrections(c.Context(), req.Itinerary)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.CorrectionsResponse{Corrections: corrections}, &utils.Meta{
		Total: len(corrections),
	})
}
