package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/mbti-travel-planner/internal/domain"
	"github.com/mbti-travel-planner/internal/pkg/errors"
	"github.com/mbti-travel-planner/internal/usecase"
)

func servingRestaurant(id, district string, meals ...domain.MealType) *domain.Restaurant {
	return &domain.Restaurant{
		ID:        id,
		Name:      id,
		District:  district,
		MealTypes: meals,
	}
}

func TestPartitionRestaurants(t *testing.T) {
	restaurants := []*domain.Restaurant{
		servingRestaurant("r1", "Central", domain.MealBreakfast),
		servingRestaurant("r2", "Central", domain.MealLunch),
		nil,
		servingRestaurant("r3", "Mong Kok", domain.MealBreakfast, domain.MealDinner),
	}

	pool := usecase.PartitionRestaurants(restaurants, domain.MealBreakfast)

	assert.Len(t, pool.Serving, 2)
	assert.Len(t, pool.Others, 1)
	assert.Equal(t, "r1", pool.Serving[0].ID)
	assert.Equal(t, "r3", pool.Serving[1].ID)
	assert.Equal(t, "r2", pool.Others[0].ID)
}

func TestAssignMeal(t *testing.T) {
	engine := usecase.NewAssignmentEngine(zap.NewNop())
	refs := []*domain.TouristSpot{
		{ID: "s1", District: "Central", Area: "Hong Kong Island"},
	}

	t.Run("serving restaurant in the session district wins", func(t *testing.T) {
		restaurants := []*domain.Restaurant{
			servingRestaurant("r1", "Mong Kok", domain.MealLunch),
			servingRestaurant("r2", "Central", domain.MealLunch),
		}

		outcome, err := engine.AssignMeal(domain.MealLunch, restaurants, usecase.NewUniquenessTracker(), refs, 1)

		assert.NoError(t, err)
		assert.Equal(t, "r2", outcome.Restaurant.ID)
		assert.Equal(t, domain.TierMatchedSameDistrict, outcome.Tier)
		assert.True(t, outcome.DistrictMatched)
	})

	t.Run("restaurants without the meal tag are the fallback pool", func(t *testing.T) {
		restaurants := []*domain.Restaurant{
			servingRestaurant("r1", "Central", domain.MealDinner),
		}

		outcome, err := engine.AssignMeal(domain.MealBreakfast, restaurants, usecase.NewUniquenessTracker(), refs, 1)

		assert.NoError(t, err)
		assert.Equal(t, "r1", outcome.Restaurant.ID)
		assert.Equal(t, domain.TierFallbackSameDistrict, outcome.Tier)
		assert.True(t, outcome.FallbackUsed)
	})

	t.Run("area membership of the district satisfies the area tier", func(t *testing.T) {
		restaurants := []*domain.Restaurant{
			// Not in Central, but Wan Chai belongs to Hong Kong Island
			servingRestaurant("r1", "Wan Chai", domain.MealLunch),
			servingRestaurant("r2", "Mong Kok", domain.MealLunch),
		}

		outcome, err := engine.AssignMeal(domain.MealLunch, restaurants, usecase.NewUniquenessTracker(), refs, 1)

		assert.NoError(t, err)
		assert.Equal(t, "r1", outcome.Restaurant.ID)
		assert.Equal(t, domain.TierMatchedSameArea, outcome.Tier)
	})

	t.Run("closed restaurants are filtered by the meal window", func(t *testing.T) {
		lateOnly := servingRestaurant("r1", "Central", domain.MealBreakfast)
		lateOnly.OperatingHours = "18:00 - 23:00"
		open := servingRestaurant("r2", "Central", domain.MealBreakfast)
		open.OperatingHours = "07:00 - 15:00"

		outcome, err := engine.AssignMeal(domain.MealBreakfast, []*domain.Restaurant{lateOnly, open},
			usecase.NewUniquenessTracker(), refs, 1)

		assert.NoError(t, err)
		assert.Equal(t, "r2", outcome.Restaurant.ID)
	})

	t.Run("used restaurants are skipped", func(t *testing.T) {
		restaurants := []*domain.Restaurant{
			servingRestaurant("r1", "Central", domain.MealLunch),
			servingRestaurant("r2", "Central", domain.MealLunch),
		}
		tracker := usecase.NewUniquenessTracker()
		tracker.MarkUsed("r1")

		outcome, err := engine.AssignMeal(domain.MealLunch, restaurants, tracker, refs, 1)

		assert.NoError(t, err)
		assert.Equal(t, "r2", outcome.Restaurant.ID)
	})

	t.Run("exhausted pool leaves the slot unassigned", func(t *testing.T) {
		outcome, err := engine.AssignMeal(domain.MealDinner, nil, usecase.NewUniquenessTracker(), refs, 3)

		assert.NoError(t, err)
		assert.False(t, outcome.Assigned())
		assert.Equal(t, domain.TierNone, outcome.Tier)
	})

	t.Run("invalid meal type", func(t *testing.T) {
		_, err := engine.AssignMeal("brunch", nil, usecase.NewUniquenessTracker(), refs, 1)
		assert.Equal(t, errors.ErrInvalidMealType, err)
	})

	t.Run("nil tracker", func(t *testing.T) {
		_, err := engine.AssignMeal(domain.MealLunch, nil, nil, refs, 1)
		assert.Error(t, err)
	})
}
