package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mbti-travel-planner/internal/domain"
	"github.com/mbti-travel-planner/internal/domain/repository"
	"github.com/mbti-travel-planner/internal/pkg/errors"
	"github.com/mbti-travel-planner/internal/usecase/dto"
)

// Предлагаемое время для слотов внутри фиксированных окон
var sessionTimes = map[domain.SessionType][2]string{
	domain.SessionMorning:   {"09:00", "11:30"},
	domain.SessionAfternoon: {"13:00", "16:30"},
	domain.SessionNight:     {"19:30", "22:00"},
}

var mealTimes = map[domain.MealType]string{
	domain.MealBreakfast: "08:00",
	domain.MealLunch:     "12:30",
	domain.MealDinner:    "19:00",
}

// ItineraryUseCase - оркестрация одной генерации маршрута: получение пулов
// кандидатов, 18 последовательных назначений с одним трекером уникальности,
// финальный аудит и кеширование. Построения для разных запросов независимы
// и не разделяют изменяемого состояния.
type ItineraryUseCase struct {
	spotRepo       repository.SpotRepository
	restaurantRepo repository.RestaurantRepository
	cacheRepo      repository.CacheRepository
	engine         *AssignmentEngine
	validator      *ValidationEngine
	logger         *zap.Logger
	cacheTTL       time.Duration
	cacheEnabled   bool
	version        string
}

// NewItineraryUseCase - создание нового ItineraryUseCase
func NewItineraryUseCase(
	spotRepo repository.SpotRepository,
	restaurantRepo repository.RestaurantRepository,
	cacheRepo repository.CacheRepository,
	engine *AssignmentEngine,
	validator *ValidationEngine,
	logger *zap.Logger,
	cacheTTL time.Duration,
	cacheEnabled bool,
	version string,
) *ItineraryUseCase {
	return &ItineraryUseCase{
		spotRepo:       spotRepo,
		restaurantRepo: restaurantRepo,
		cacheRepo:      cacheRepo,
		engine:         engine,
		validator:      validator,
		logger:         logger,
		cacheTTL:       cacheTTL,
		cacheEnabled:   cacheEnabled,
		version:        version,
	}
}

// Generate строит трёхдневный маршрут для типа личности MBTI
func (uc *ItineraryUseCase) Generate(ctx context.Context, req dto.GenerateItineraryRequest) (*dto.ItineraryResponse, error) {
	personality := domain.NormalizePersonality(req.MBTIPersonality)
	if !domain.IsValidPersonality(personality) {
		return nil, errors.ErrInvalidPersonality.WithDetails(map[string]interface{}{
			"personality": req.MBTIPersonality,
		})
	}

	started := time.Now()

	// Кеш: маршрут для типа личности детерминирован на данном пуле
	if uc.cacheEnabled {
		if cached, err := uc.cacheRepo.GetItinerary(ctx, personality); err != nil {
			uc.logger.Warn("Itinerary cache lookup failed", zap.Error(err))
		} else if cached != nil {
			report, err := uc.validator.Validate(cached)
			if err == nil {
				uc.logger.Info("Itinerary served from cache",
					zap.String("personality", personality))
				return &dto.ItineraryResponse{Itinerary: cached, Report: report, Cached: true}, nil
			}
		}
	}

	spots, err := uc.spotRepo.FetchByPersonality(ctx, personality)
	if err != nil {
		uc.logger.Error("Failed to fetch tourist spots",
			zap.String("personality", personality), zap.Error(err))
		return nil, err
	}

	pool := PartitionSpots(spots, personality)
	uc.logger.Info("Candidate pool fetched",
		zap.String("personality", personality),
		zap.Int("matched", len(pool.Matched)),
		zap.Int("others", len(pool.Others)))

	itinerary := &domain.Itinerary{
		ID:              uuid.NewString(),
		MBTIPersonality: personality,
		CreatedAt:       time.Now().UTC(),
		Version:         uc.version,
	}

	// Один трекер на всё построение; слоты обрабатываются строго
	// последовательно - цели каждого слота зависят от предыдущих
	tracker := NewUniquenessTracker()

	for dayIdx := range itinerary.Days {
		day := &itinerary.Days[dayIdx]
		dayNumber := dayIdx + 1
		day.DayNumber = dayNumber

		if err := uc.assignDaySessions(pool, tracker, day, personality, dayNumber); err != nil {
			return nil, err
		}
		if err := uc.assignDayMeals(ctx, tracker, day, dayNumber); err != nil {
			return nil, err
		}
	}

	report, err := uc.validator.Validate(itinerary)
	if err != nil {
		return nil, err
	}

	if uc.cacheEnabled {
		if err := uc.cacheRepo.SetItinerary(ctx, itinerary, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache itinerary", zap.Error(err))
		}
	}

	uc.logger.Info("Itinerary generated",
		zap.String("personality", personality),
		zap.String("itinerary_id", itinerary.ID),
		zap.Bool("is_valid", report.IsValid),
		zap.Int("errors", report.ErrorCount),
		zap.Duration("took", time.Since(started)))

	return &dto.ItineraryResponse{Itinerary: itinerary, Report: report}, nil
}

// assignDaySessions назначает утро, день и вечер одного дня
func (uc *ItineraryUseCase) assignDaySessions(
	pool SpotPool,
	tracker *UniquenessTracker,
	day *domain.DayPlan,
	personality string,
	dayNumber int,
) error {
	morning, err := uc.engine.AssignMorning(pool, tracker, personality, dayNumber)
	if err != nil {
		return err
	}
	applySessionOutcome(&day.Morning, domain.SessionMorning, morning, tracker)

	afternoon, err := uc.engine.AssignAfternoon(pool, tracker, day.Morning.Spot, personality, dayNumber)
	if err != nil {
		return err
	}
	applySessionOutcome(&day.Afternoon, domain.SessionAfternoon, afternoon, tracker)

	night, err := uc.engine.AssignNight(pool, tracker, day.Morning.Spot, day.Afternoon.Spot, personality, dayNumber)
	if err != nil {
		return err
	}
	applySessionOutcome(&day.Night, domain.SessionNight, night, tracker)

	return nil
}

// assignDayMeals назначает завтрак, обед и ужин одного дня. Рестораны
// запрашиваются с фильтром по релевантным районам; при пустом результате
// назначения запрос повторяется без фильтра, чтобы сработали запасные уровни.
func (uc *ItineraryUseCase) assignDayMeals(
	ctx context.Context,
	tracker *UniquenessTracker,
	day *domain.DayPlan,
	dayNumber int,
) error {
	for _, mealType := range domain.MealOrder {
		refs := mealReferenceSpots(day, mealType)
		districts := collectTargets(refs...).districts

		restaurants, err := uc.restaurantRepo.FetchByDistrictAndMeal(ctx, districts, mealType)
		if err != nil {
			uc.logger.Error("Failed to fetch restaurants",
				zap.Int("day", dayNumber),
				zap.String("meal", string(mealType)),
				zap.Error(err))
			return err
		}

		outcome, err := uc.engine.AssignMeal(mealType, restaurants, tracker, refs, dayNumber)
		if err != nil {
			return err
		}

		if !outcome.Assigned() && len(districts) > 0 {
			restaurants, err = uc.restaurantRepo.FetchByDistrictAndMeal(ctx, nil, mealType)
			if err != nil {
				return err
			}
			outcome, err = uc.engine.AssignMeal(mealType, restaurants, tracker, refs, dayNumber)
			if err != nil {
				return err
			}
		}

		slot := day.Meal(mealType)
		slot.Notes = outcome.Rationale
		if outcome.Assigned() {
			slot.Restaurant = outcome.Restaurant
			slot.MealTime = mealTimes[mealType]
			tracker.MarkUsed(outcome.Restaurant.ID)
		}
	}
	return nil
}

// applySessionOutcome привязывает результат назначения к слоту и помечает
// идентификатор занятым до обработки следующего слота
func applySessionOutcome(slot *domain.SessionSlot, t domain.SessionType, outcome domain.AssignmentOutcome, tracker *UniquenessTracker) {
	slot.Notes = outcome.Rationale
	if !outcome.Assigned() {
		return
	}
	slot.Spot = outcome.Spot
	slot.StartTime = sessionTimes[t][0]
	slot.EndTime = sessionTimes[t][1]
	tracker.MarkUsed(outcome.Spot.ID)
}

// GetCached возвращает закешированный маршрут для типа личности
func (uc *ItineraryUseCase) GetCached(ctx context.Context, personality string) (*dto.ItineraryResponse, error) {
	personality = domain.NormalizePersonality(personality)
	if !domain.IsValidPersonality(personality) {
		return nil, errors.ErrInvalidPersonality
	}

	cached, err := uc.cacheRepo.GetItinerary(ctx, personality)
	if err != nil {
		return nil, err
	}
	if cached == nil {
		return nil, errors.ErrItineraryNotFound
	}

	report, err := uc.validator.Validate(cached)
	if err != nil {
		return nil, err
	}
	return &dto.ItineraryResponse{Itinerary: cached, Report: report, Cached: true}, nil
}

// Validate - аудит внешнего маршрута
func (uc *ItineraryUseCase) Validate(itinerary *domain.Itinerary) (*domain.ValidationReport, error) {
	return uc.validator.Validate(itinerary)
}

// ValidateDetailed - расширенный аудит внешнего маршрута
func (uc *ItineraryUseCase) ValidateDetailed(itinerary *domain.Itinerary) (*domain.DetailedValidationReport, error) {
	return uc.validator.ValidateDetailed(itinerary)
}

// Corrections выполняет аудит и подбирает исправления, запрашивая исходные
// пулы для поиска замен
func (uc *ItineraryUseCase) Corrections(ctx context.Context, itinerary *domain.Itinerary) (map[domain.IssueCategory][]domain.Correction, error) {
	report, err := uc.validator.Validate(itinerary)
	if err != nil {
		return nil, err
	}

	spots, err := uc.spotRepo.FetchByPersonality(ctx, itinerary.MBTIPersonality)
	if err != nil {
		return nil, err
	}

	// Рестораны без фильтра по районам: замены ищутся по всему пулу
	var restaurants []*domain.Restaurant
	seen := make(map[string]struct{})
	for _, mealType := range domain.MealOrder {
		fetched, err := uc.restaurantRepo.FetchByDistrictAndMeal(ctx, nil, mealType)
		if err != nil {
			return nil, err
		}
		for _, r := range fetched {
			if _, ok := seen[r.ID]; ok {
				continue
			}
			seen[r.ID] = struct{}{}
			restaurants = append(restaurants, r)
		}
	}

	return uc.validator.SuggestCorrections(itinerary, report.Issues, spots, restaurants), nil
}
