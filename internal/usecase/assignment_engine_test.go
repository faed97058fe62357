package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/mbti-travel-planner/internal/domain"
	"github.com/mbti-travel-planner/internal/pkg/errors"
	"github.com/mbti-travel-planner/internal/usecase"
)

func matchedSpot(id, district, area string) *domain.TouristSpot {
	return &domain.TouristSpot{
		ID:          id,
		Name:        id,
		District:    district,
		Area:        area,
		MBTIMatch:   true,
		MatchedMBTI: []string{"INFJ"},
	}
}

func fallbackSpot(id, district, area string) *domain.TouristSpot {
	return &domain.TouristSpot{
		ID:       id,
		Name:     id,
		District: district,
		Area:     area,
	}
}

func TestPartitionSpots(t *testing.T) {
	spots := []*domain.TouristSpot{
		matchedSpot("a", "Central", "Hong Kong Island"),
		fallbackSpot("b", "Mong Kok", "Kowloon"),
		nil,
		matchedSpot("c", "Wan Chai", "Hong Kong Island"),
	}

	pool := usecase.PartitionSpots(spots, "INFJ")

	assert.Len(t, pool.Matched, 2)
	assert.Len(t, pool.Others, 1)
	// Input order is preserved within each group
	assert.Equal(t, "a", pool.Matched[0].ID)
	assert.Equal(t, "c", pool.Matched[1].ID)
	assert.Equal(t, "b", pool.Others[0].ID)
}

func TestPartitionSpotsRecomputesMembership(t *testing.T) {
	// The stored flag lies; partitioning must trust matched_mbti only
	lying := &domain.TouristSpot{ID: "x", MBTIMatch: true, MatchedMBTI: []string{"ENTP"}}
	pool := usecase.PartitionSpots([]*domain.TouristSpot{lying}, "INFJ")

	assert.Empty(t, pool.Matched)
	assert.Len(t, pool.Others, 1)
}

func TestAssignMorning(t *testing.T) {
	engine := usecase.NewAssignmentEngine(zap.NewNop())

	t.Run("first matched candidate in input order wins", func(t *testing.T) {
		pool := usecase.SpotPool{
			Matched: []*domain.TouristSpot{
				matchedSpot("spot-a", "Mong Kok", "Kowloon"),
				matchedSpot("spot-b", "Central", "Hong Kong Island"),
			},
			Others: []*domain.TouristSpot{
				fallbackSpot("spot-d", "Sha Tin", "New Territories"),
			},
		}

		outcome, err := engine.AssignMorning(pool, usecase.NewUniquenessTracker(), "INFJ", 1)

		assert.NoError(t, err)
		assert.True(t, outcome.Assigned())
		assert.Equal(t, "spot-a", outcome.Spot.ID)
		assert.Equal(t, domain.TierMatchedAnyLocation, outcome.Tier)
		assert.True(t, outcome.MBTIMatched)
		assert.False(t, outcome.FallbackUsed)
		assert.Contains(t, outcome.Rationale, "spot-a")
	})

	t.Run("falls back when matched pool is closed for the window", func(t *testing.T) {
		eveningOnly := matchedSpot("spot-e", "Central", "Hong Kong Island")
		eveningOnly.OperatingHours = map[string]string{"monday": "19:00 - 23:00"}

		pool := usecase.SpotPool{
			Matched: []*domain.TouristSpot{eveningOnly},
			Others:  []*domain.TouristSpot{fallbackSpot("spot-f", "Sha Tin", "New Territories")},
		}

		outcome, err := engine.AssignMorning(pool, usecase.NewUniquenessTracker(), "INFJ", 1)

		assert.NoError(t, err)
		assert.Equal(t, "spot-f", outcome.Spot.ID)
		assert.Equal(t, domain.TierFallbackAnyLocation, outcome.Tier)
		assert.True(t, outcome.FallbackUsed)
	})

	t.Run("empty pools leave slot unassigned without error", func(t *testing.T) {
		outcome, err := engine.AssignMorning(usecase.SpotPool{}, usecase.NewUniquenessTracker(), "INFJ", 2)

		assert.NoError(t, err)
		assert.False(t, outcome.Assigned())
		assert.Equal(t, domain.TierNone, outcome.Tier)
		assert.NotEmpty(t, outcome.Rationale)
	})
}

func TestAssignAfternoonCascade(t *testing.T) {
	engine := usecase.NewAssignmentEngine(zap.NewNop())
	morning := matchedSpot("spot-a", "Mong Kok", "Kowloon")

	pool := usecase.SpotPool{
		Matched: []*domain.TouristSpot{
			matchedSpot("spot-b", "Central", "Hong Kong Island"),
			matchedSpot("spot-c", "Mong Kok", "Kowloon"),
		},
		Others: []*domain.TouristSpot{
			fallbackSpot("spot-d", "Mong Kok", "Kowloon"),
		},
	}

	tracker := usecase.NewUniquenessTracker()
	tracker.MarkUsed(morning.ID)

	outcome, err := engine.AssignAfternoon(pool, tracker, morning, "INFJ", 1)

	assert.NoError(t, err)
	// spot-b is matched but in another district; spot-c matches the
	// morning district and wins on the highest tier
	assert.Equal(t, "spot-c", outcome.Spot.ID)
	assert.Equal(t, domain.TierMatchedSameDistrict, outcome.Tier)
	assert.True(t, outcome.DistrictMatched)
	assert.False(t, outcome.FallbackUsed)
}

func TestAssignNightWidensToAnyLocation(t *testing.T) {
	engine := usecase.NewAssignmentEngine(zap.NewNop())
	morning := matchedSpot("spot-a", "Mong Kok", "Kowloon")
	afternoon := matchedSpot("spot-c", "Mong Kok", "Kowloon")

	pool := usecase.SpotPool{
		Matched: []*domain.TouristSpot{
			morning, afternoon,
			matchedSpot("spot-b", "Central", "Hong Kong Island"),
		},
		Others: []*domain.TouristSpot{
			fallbackSpot("spot-d", "Mong Kok", "Kowloon"),
		},
	}

	tracker := usecase.NewUniquenessTracker()
	tracker.MarkUsed(morning.ID)
	tracker.MarkUsed(afternoon.ID)

	outcome, err := engine.AssignNight(pool, tracker, morning, afternoon, "INFJ", 1)

	assert.NoError(t, err)
	// The only unused matched spot is outside the day's district and area,
	// but a matched candidate still beats the geographically perfect fallback
	assert.Equal(t, "spot-b", outcome.Spot.ID)
	assert.Equal(t, domain.TierMatchedAnyLocation, outcome.Tier)
	assert.False(t, outcome.FallbackUsed)
}

func TestAssignSameAreaTier(t *testing.T) {
	engine := usecase.NewAssignmentEngine(zap.NewNop())
	morning := matchedSpot("spot-a", "Central", "Hong Kong Island")

	pool := usecase.SpotPool{
		Matched: []*domain.TouristSpot{
			// Same area as the morning spot, different district
			matchedSpot("spot-b", "Stanley", "Hong Kong Island"),
			matchedSpot("spot-c", "Mong Kok", "Kowloon"),
		},
	}

	tracker := usecase.NewUniquenessTracker()
	tracker.MarkUsed(morning.ID)

	outcome, err := engine.AssignAfternoon(pool, tracker, morning, "INFJ", 1)

	assert.NoError(t, err)
	assert.Equal(t, "spot-b", outcome.Spot.ID)
	assert.Equal(t, domain.TierMatchedSameArea, outcome.Tier)
	assert.True(t, outcome.AreaMatched)
	assert.False(t, outcome.DistrictMatched)
}

func TestAssignSessionDeterminism(t *testing.T) {
	engine := usecase.NewAssignmentEngine(zap.NewNop())
	pool := usecase.SpotPool{
		Matched: []*domain.TouristSpot{
			matchedSpot("spot-a", "Central", "Hong Kong Island"),
			matchedSpot("spot-b", "Central", "Hong Kong Island"),
			matchedSpot("spot-c", "Mong Kok", "Kowloon"),
		},
	}

	first, err := engine.AssignMorning(pool, usecase.NewUniquenessTracker(), "INFJ", 1)
	assert.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := engine.AssignMorning(pool, usecase.NewUniquenessTracker(), "INFJ", 1)
		assert.NoError(t, err)
		assert.Equal(t, first.Spot.ID, again.Spot.ID)
		assert.Equal(t, first.Tier, again.Tier)
	}
}

func TestAssignSessionSkipsUsedCandidates(t *testing.T) {
	engine := usecase.NewAssignmentEngine(zap.NewNop())
	pool := usecase.SpotPool{
		Matched: []*domain.TouristSpot{
			matchedSpot("spot-a", "Central", "Hong Kong Island"),
			matchedSpot("spot-b", "Central", "Hong Kong Island"),
		},
	}

	tracker := usecase.NewUniquenessTracker()
	tracker.MarkUsed("spot-a")

	outcome, err := engine.AssignMorning(pool, tracker, "INFJ", 1)

	assert.NoError(t, err)
	assert.Equal(t, "spot-b", outcome.Spot.ID)
}

func TestAssignInputValidation(t *testing.T) {
	engine := usecase.NewAssignmentEngine(zap.NewNop())
	pool := usecase.SpotPool{}

	t.Run("nil tracker", func(t *testing.T) {
		_, err := engine.AssignMorning(pool, nil, "INFJ", 1)
		appErr, ok := err.(*errors.AppError)
		assert.True(t, ok)
		assert.Equal(t, errors.ErrInvalidRequest.Code, appErr.Code)
	})

	t.Run("invalid personality", func(t *testing.T) {
		_, err := engine.AssignMorning(pool, usecase.NewUniquenessTracker(), "ABCD", 1)
		assert.Equal(t, errors.ErrInvalidPersonality, err)
	})

	t.Run("day out of range", func(t *testing.T) {
		_, err := engine.AssignMorning(pool, usecase.NewUniquenessTracker(), "INFJ", 4)
		appErr, ok := err.(*errors.AppError)
		assert.True(t, ok)
		assert.Equal(t, errors.ErrInvalidRequest.Code, appErr.Code)
	})
}
