package usecase

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mbti-travel-planner/internal/domain"
	"github.com/mbti-travel-planner/internal/pkg/errors"
	"github.com/mbti-travel-planner/internal/pkg/geo"
)

// AssignmentEngine - движок назначения слотов. Не выполняет I/O и не хранит
// состояния между вызовами; множество занятых идентификаторов передаётся
// явно и обновляется вызывающей стороной после успешного назначения.
type AssignmentEngine struct {
	logger *zap.Logger
}

// NewAssignmentEngine - создание нового AssignmentEngine
func NewAssignmentEngine(logger *zap.Logger) *AssignmentEngine {
	return &AssignmentEngine{logger: logger}
}

// SpotPool - пул кандидатов, разделённый по совпадению с типом личности
type SpotPool struct {
	Matched []*domain.TouristSpot
	Others  []*domain.TouristSpot
}

// PartitionSpots разделяет кандидатов пересчётом членства кода в MatchedMBTI.
// Хранимый флаг MBTIMatch не используется - его корректность проверяет
// валидатор. Исходный порядок внутри групп сохраняется.
func PartitionSpots(spots []*domain.TouristSpot, personality string) SpotPool {
	var pool SpotPool
	for _, s := range spots {
		if s == nil {
			continue
		}
		if s.MatchesPersonality(personality) {
			pool.Matched = append(pool.Matched, s)
			continue
		}
		pool.Others = append(pool.Others, s)
	}
	return pool
}

// AssignMorning выбирает достопримечательность для утренней сессии.
// География не учитывается: сначала совпадающий пул, затем запасной.
// Слот остаётся пустым, только если ни в одном пуле нет открытого
// незанятого кандидата.
func (e *AssignmentEngine) AssignMorning(
	pool SpotPool,
	tracker *UniquenessTracker,
	personality string,
	day int,
) (domain.AssignmentOutcome, error) {
	if err := checkAssignInputs(tracker, personality, day); err != nil {
		return domain.AssignmentOutcome{}, err
	}
	return e.assignSession(pool, tracker, domain.SessionMorning, geoTargets{}, morningTiers, day), nil
}

// AssignAfternoon выбирает достопримечательность для дневной сессии.
// Целевые район и зона выводятся из утреннего назначения того же дня.
func (e *AssignmentEngine) AssignAfternoon(
	pool SpotPool,
	tracker *UniquenessTracker,
	morningRef *domain.TouristSpot,
	personality string,
	day int,
) (domain.AssignmentOutcome, error) {
	if err := checkAssignInputs(tracker, personality, day); err != nil {
		return domain.AssignmentOutcome{}, err
	}
	targets := collectTargets(morningRef)
	return e.assignSession(pool, tracker, domain.SessionAfternoon, targets, assignmentTiers, day), nil
}

// AssignNight выбирает достопримечательность для вечерней сессии.
// Целевые районы: утренний, затем дневной (без дубликатов).
func (e *AssignmentEngine) AssignNight(
	pool SpotPool,
	tracker *UniquenessTracker,
	morningRef, afternoonRef *domain.TouristSpot,
	personality string,
	day int,
) (domain.AssignmentOutcome, error) {
	if err := checkAssignInputs(tracker, personality, day); err != nil {
		return domain.AssignmentOutcome{}, err
	}
	targets := collectTargets(morningRef, afternoonRef)
	return e.assignSession(pool, tracker, domain.SessionNight, targets, assignmentTiers, day), nil
}

// assignSession перебирает уровни каскада в строгом порядке и возвращает
// первого подходящего кандидата. Внутри уровня конфликт разрешается
// детерминированно: первый в стабильном входном порядке пула.
func (e *AssignmentEngine) assignSession(
	pool SpotPool,
	tracker *UniquenessTracker,
	session domain.SessionType,
	targets geoTargets,
	tiers []tierRule,
	day int,
) domain.AssignmentOutcome {
	window := domain.SessionWindow(session)

	for _, rule := range tiers {
		candidates := pool.Matched
		if !rule.matched {
			candidates = pool.Others
		}

		for _, spot := range candidates {
			if tracker.IsUsed(spot.ID) {
				continue
			}
			if !spot.OpenDuring(window) {
				continue
			}
			if !rule.satisfies(spot.District, spot.Area, targets) {
				continue
			}

			outcome := domain.AssignmentOutcome{
				Spot:            spot,
				Tier:            rule.tier,
				MBTIMatched:     rule.matched,
				DistrictMatched: geo.MatchesAnyDistrict(spot.District, targets.districts),
				AreaMatched:     geo.MatchesAnyArea(spot.District, spot.Area, targets.areas),
				FallbackUsed:    rule.tier.IsFallback(),
				Rationale: fmt.Sprintf("day %d %s: %s selected via %s",
					day, session, spot.Name, rule.tier),
			}
			e.logger.Debug("Session slot assigned",
				zap.Int("day", day),
				zap.String("session", string(session)),
				zap.String("spot_id", spot.ID),
				zap.String("tier", rule.tier.String()))
			return outcome
		}
	}

	// Пул исчерпан на всех уровнях - пустой результат, не ошибка
	e.logger.Debug("Session slot left unassigned",
		zap.Int("day", day),
		zap.String("session", string(session)))
	return domain.AssignmentOutcome{
		Tier:      domain.TierNone,
		Rationale: fmt.Sprintf("day %d %s: no open unused candidate in any pool", day, session),
	}
}

// checkAssignInputs - быстрый отказ на некорректных входных данных.
// Бизнес-правила ошибок не порождают.
func checkAssignInputs(tracker *UniquenessTracker, personality string, day int) error {
	if tracker == nil {
		return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": "uniqueness tracker is required",
		})
	}
	if !domain.IsValidPersonality(personality) {
		return errors.ErrInvalidPersonality
	}
	if day < 1 || day > 3 {
		return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": fmt.Sprintf("day must be 1-3, got %d", day),
		})
	}
	return nil
}
