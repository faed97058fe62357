package usecase

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mbti-travel-planner/internal/domain"
	"github.com/mbti-travel-planner/internal/pkg/errors"
	"github.com/mbti-travel-planner/internal/pkg/geo"
)

// RestaurantPool - пул ресторанов, разделённый по тегу типа приёма пищи
type RestaurantPool struct {
	Serving []*domain.Restaurant
	Others  []*domain.Restaurant
}

// PartitionRestaurants разделяет рестораны по наличию тега приёма пищи,
// сохраняя исходный порядок внутри групп
func PartitionRestaurants(restaurants []*domain.Restaurant, meal domain.MealType) RestaurantPool {
	var pool RestaurantPool
	for _, r := range restaurants {
		if r == nil {
			continue
		}
		if r.ServesMeal(meal) {
			pool.Serving = append(pool.Serving, r)
			continue
		}
		pool.Others = append(pool.Others, r)
	}
	return pool
}

// AssignMeal выбирает ресторан для приёма пищи. Каскад структурно тот же,
// что для сессий, но вместо совпадения по MBTI используется членство тега
// типа приёма пищи, а целевые районы выводятся из сессий того же дня:
// завтрак - утро; обед - утро и день; ужин - день и вечер.
func (e *AssignmentEngine) AssignMeal(
	meal domain.MealType,
	restaurants []*domain.Restaurant,
	tracker *UniquenessTracker,
	sameDayRefs []*domain.TouristSpot,
	day int,
) (domain.AssignmentOutcome, error) {
	if tracker == nil {
		return domain.AssignmentOutcome{}, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": "uniqueness tracker is required",
		})
	}
	if !domain.IsValidMealType(meal) {
		return domain.AssignmentOutcome{}, errors.ErrInvalidMealType
	}
	if day < 1 || day > 3 {
		return domain.AssignmentOutcome{}, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": fmt.Sprintf("day must be 1-3, got %d", day),
		})
	}

	pool := PartitionRestaurants(restaurants, meal)
	targets := collectTargets(sameDayRefs...)
	window := domain.MealWindow(meal)

	for _, rule := range assignmentTiers {
		candidates := pool.Serving
		if !rule.matched {
			candidates = pool.Others
		}

		for _, r := range candidates {
			if tracker.IsUsed(r.ID) {
				continue
			}
			if !r.OpenDuring(window) {
				continue
			}
			if !rule.satisfies(r.District, "", targets) {
				continue
			}

			outcome := domain.AssignmentOutcome{
				Restaurant:      r,
				Tier:            rule.tier,
				MBTIMatched:     rule.matched,
				DistrictMatched: geo.MatchesAnyDistrict(r.District, targets.districts),
				AreaMatched:     geo.MatchesAnyArea(r.District, "", targets.areas),
				FallbackUsed:    rule.tier.IsFallback(),
				Rationale: fmt.Sprintf("day %d %s: %s selected via %s",
					day, meal, r.Name, rule.tier),
			}
			e.logger.Debug("Meal slot assigned",
				zap.Int("day", day),
				zap.String("meal", string(meal)),
				zap.String("restaurant_id", r.ID),
				zap.String("tier", rule.tier.String()))
			return outcome, nil
		}
	}

	e.logger.Debug("Meal slot left unassigned",
		zap.Int("day", day),
		zap.String("meal", string(meal)))
	return domain.AssignmentOutcome{
		Tier:      domain.TierNone,
		Rationale: fmt.Sprintf("day %d %s: no open unused restaurant in any pool", day, meal),
	}, nil
}
