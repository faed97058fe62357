package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mbti-travel-planner/internal/domain"
	"github.com/mbti-travel-planner/internal/usecase"
)

func TestUniquenessTracker(t *testing.T) {
	tracker := usecase.NewUniquenessTracker()

	assert.False(t, tracker.IsUsed("a"))
	assert.Equal(t, 0, tracker.Count())

	tracker.MarkUsed("a")
	tracker.MarkUsed("a")
	tracker.MarkUsed("b")

	assert.True(t, tracker.IsUsed("a"))
	assert.True(t, tracker.IsUsed("b"))
	assert.Equal(t, 2, tracker.Count())

	// Empty ids are ignored
	tracker.MarkUsed("")
	assert.Equal(t, 2, tracker.Count())
	assert.False(t, tracker.IsUsed(""))
}

func TestAuditSpotUniqueness(t *testing.T) {
	spot := &domain.TouristSpot{ID: "dup", Name: "Victoria Peak"}
	other := &domain.TouristSpot{ID: "ok", Name: "Star Ferry"}

	it := &domain.Itinerary{MBTIPersonality: "INFJ"}
	it.Days[0].Morning.Spot = spot
	it.Days[0].Afternoon.Spot = other
	it.Days[1].Afternoon.Spot = spot
	it.Days[2].Night.Spot = spot

	duplicates := usecase.AuditSpotUniqueness(it)

	// One occurrence per repeat pairing, each naming the first location
	assert.Len(t, duplicates, 2)
	assert.Equal(t, "day_1.morning_session", duplicates[0].FirstLocation)
	assert.Equal(t, "day_2.afternoon_session", duplicates[0].Location)
	assert.Equal(t, "day_1.morning_session", duplicates[1].FirstLocation)
	assert.Equal(t, "day_3.night_session", duplicates[1].Location)
	assert.Equal(t, "Victoria Peak", duplicates[0].Name)
}

func TestAuditRestaurantUniqueness(t *testing.T) {
	r := &domain.Restaurant{ID: "dup", Name: "Dim Sum House"}

	it := &domain.Itinerary{MBTIPersonality: "INFJ"}
	it.Days[0].Breakfast.Restaurant = r
	it.Days[0].Dinner.Restaurant = r

	duplicates := usecase.AuditRestaurantUniqueness(it)

	assert.Len(t, duplicates, 1)
	assert.Equal(t, "day_1.breakfast", duplicates[0].FirstLocation)
	assert.Equal(t, "day_1.dinner", duplicates[0].Location)
}

func TestAuditUniquenessCleanItinerary(t *testing.T) {
	it := &domain.Itinerary{MBTIPersonality: "INFJ"}
	it.Days[0].Morning.Spot = &domain.TouristSpot{ID: "a"}
	it.Days[1].Morning.Spot = &domain.TouristSpot{ID: "b"}
	it.Days[0].Lunch.Restaurant = &domain.Restaurant{ID: "r1"}

	assert.Empty(t, usecase.AuditSpotUniqueness(it))
	assert.Empty(t, usecase.AuditRestaurantUniqueness(it))
}
