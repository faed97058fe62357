package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mbti-travel-planner/internal/domain"
	"github.com/mbti-travel-planner/internal/pkg/utils"
	"github.com/mbti-travel-planner/internal/pkg/validator"
	"github.com/mbti-travel-planner/internal/usecase"
	"github.com/mbti-travel-planner/internal/usecase/dto"
	"go.uber.org/zap"
)

// ItineraryHandler - обработчик запросов генерации маршрутов
type ItineraryHandler struct {
	itineraryUC *usecase.ItineraryUseCase
	logger      *zap.Logger
}

// NewItineraryHandler - создание нового ItineraryHandler
func NewItineraryHandler(itineraryUC *usecase.ItineraryUseCase, logger *zap.Logger) *ItineraryHandler {
	return &ItineraryHandler{
		itineraryUC: itineraryUC,
		logger:      logger,
	}
}

// Generate godoc
// @Summary Generate a 3-day itinerary
// @Description Строит трёхдневный маршрут для типа личности MBTI: 9 сессий и 9 приёмов пищи без повторов
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body dto.GenerateItineraryRequest true "MBTI personality code"
// @Success 200 {object} utils.SuccessResponse{data=dto.ItineraryResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/itineraries [post]
func (h *ItineraryHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateItineraryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	started := time.Now()
	result, err := h.itineraryUC.Generate(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		TimeMSec: float64(time.Since(started).Microseconds()) / 1000.0,
		Cached:   result.Cached,
	})
}

// GetCached godoc
// @Summary Get a cached itinerary
// @Description Возвращает закешированный маршрут для типа личности MBTI
// @Tags Itineraries
// @Produce json
// @Param mbti path string true "MBTI personality code" example(INFJ)
// @Success 200 {object} utils.SuccessResponse{data=dto.ItineraryResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/itineraries/{mbti} [get]
func (h *ItineraryHandler) GetCached(c *fiber.Ctx) error {
	personality := c.Params("mbti")

	result, err := h.itineraryUC.GetCached(c.Context(), personality)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Cached: true})
}

// ListPersonalityTypes godoc
// @Summary List supported MBTI types
// @Description Возвращает все 16 поддерживаемых типов личности
// @Tags Itineraries
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.PersonalityTypesResponse}
// @Router /api/v1/personality-types [get]
func (h *ItineraryHandler) ListPersonalityTypes(c *fiber.Ctx) error {
	types := domain.PersonalityTypes()
	return utils.SendSuccess(c, dto.PersonalityTypesResponse{Types: types}, &utils.Meta{
		Total: len(types),
	})
}
