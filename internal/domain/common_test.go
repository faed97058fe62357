package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mbti-travel-planner/internal/domain"
)

func TestParseClock(t *testing.T) {
	t.Run("valid values", func(t *testing.T) {
		cases := map[string]int{
			"00:00":  0,
			"09:30":  9*60 + 30,
			"23:59":  23*60 + 59,
			" 7:05 ": 7*60 + 5,
		}
		for input, want := range cases {
			got, err := domain.ParseClock(input)
			assert.NoError(t, err, input)
			assert.Equal(t, want, got, input)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, input := range []string{"", "25:00", "10:61", "noon", "10"} {
			_, err := domain.ParseClock(input)
			assert.Error(t, err, input)
		}
	})
}

func TestParseTimeRanges(t *testing.T) {
	t.Run("single range", func(t *testing.T) {
		windows := domain.ParseTimeRanges("09:00 - 18:00")
		assert.Equal(t, []domain.TimeWindow{{Start: 9 * 60, End: 18 * 60}}, windows)
	})

	t.Run("free text with weekdays and multiple ranges", func(t *testing.T) {
		windows := domain.ParseTimeRanges("Mon - Fri: 11:30 - 22:00, Sat - Sun: 10:00 - 23:00")
		assert.Equal(t, []domain.TimeWindow{
			{Start: 11*60 + 30, End: 22 * 60},
			{Start: 10 * 60, End: 23 * 60},
		}, windows)
	})

	t.Run("range crossing midnight splits in two", func(t *testing.T) {
		windows := domain.ParseTimeRanges("22:00 - 02:00")
		assert.Equal(t, []domain.TimeWindow{
			{Start: 22 * 60, End: 23*60 + 59},
			{Start: 0, End: 2 * 60},
		}, windows)
	})

	t.Run("no ranges", func(t *testing.T) {
		assert.Nil(t, domain.ParseTimeRanges("closed"))
		assert.Nil(t, domain.ParseTimeRanges(""))
	})
}

func TestTimeWindow(t *testing.T) {
	w := domain.TimeWindow{Start: 7 * 60, End: 11*60 + 59}

	assert.True(t, w.Overlaps(domain.TimeWindow{Start: 11 * 60, End: 13 * 60}))
	assert.True(t, w.Overlaps(domain.TimeWindow{Start: 0, End: 7 * 60}), "touching boundary counts")
	assert.False(t, w.Overlaps(domain.TimeWindow{Start: 12 * 60, End: 14 * 60}))

	assert.True(t, w.Contains(7*60))
	assert.True(t, w.Contains(11*60+59))
	assert.False(t, w.Contains(12*60))
}

func TestTouristSpotOpenDuring(t *testing.T) {
	morning := domain.SessionWindow(domain.SessionMorning)

	t.Run("empty table means no restriction", func(t *testing.T) {
		spot := &domain.TouristSpot{ID: "s1"}
		assert.True(t, spot.OpenDuring(morning))
	})

	t.Run("one overlapping weekday entry is enough", func(t *testing.T) {
		spot := &domain.TouristSpot{
			ID: "s2",
			OperatingHours: map[string]string{
				"monday":  "19:00 - 23:00",
				"tuesday": "09:00 - 12:00",
			},
		}
		assert.True(t, spot.OpenDuring(morning))
	})

	t.Run("all entries outside the window", func(t *testing.T) {
		spot := &domain.TouristSpot{
			ID: "s3",
			OperatingHours: map[string]string{
				"monday": "19:00 - 23:00",
			},
		}
		assert.False(t, spot.OpenDuring(morning))
	})

	t.Run("closed sentinel never satisfies", func(t *testing.T) {
		spot := &domain.TouristSpot{
			ID:             "s4",
			OperatingHours: map[string]string{"monday": "Closed"},
		}
		assert.False(t, spot.OpenDuring(morning))
	})

	t.Run("always-open sentinels satisfy any window", func(t *testing.T) {
		for _, expr := range []string{"24 hours", "24/7", "Always open"} {
			spot := &domain.TouristSpot{
				ID:             "s5",
				OperatingHours: map[string]string{"monday": expr},
			}
			assert.True(t, spot.OpenDuring(morning), expr)
		}
	})
}

func TestTouristSpotOpenOn(t *testing.T) {
	spot := &domain.TouristSpot{
		ID: "s1",
		OperatingHours: map[string]string{
			"monday": "09:00 - 18:00",
			"sunday": "closed",
		},
	}
	morning := domain.SessionWindow(domain.SessionMorning)
	night := domain.SessionWindow(domain.SessionNight)

	assert.True(t, spot.OpenOn("Monday", morning))
	assert.False(t, spot.OpenOn("monday", night))
	assert.False(t, spot.OpenOn("sunday", morning))
	// Missing weekday means no restriction
	assert.True(t, spot.OpenOn("friday", night))
}

func TestRestaurantOpenDuring(t *testing.T) {
	lunch := domain.MealWindow(domain.MealLunch)
	breakfast := domain.MealWindow(domain.MealBreakfast)

	r := &domain.Restaurant{
		ID:             "r1",
		OperatingHours: "Mon - Fri: 11:30 - 22:00",
	}
	assert.True(t, r.OpenDuring(lunch))
	assert.False(t, r.OpenDuring(domain.TimeWindow{Start: 6 * 60, End: 7 * 60}))

	// Empty expression means no restriction
	empty := &domain.Restaurant{ID: "r2"}
	assert.True(t, empty.OpenDuring(breakfast))
}

func TestRestaurantServesMeal(t *testing.T) {
	r := &domain.Restaurant{
		ID:        "r1",
		MealTypes: []domain.MealType{domain.MealLunch, domain.MealDinner},
	}
	assert.True(t, r.ServesMeal(domain.MealLunch))
	assert.False(t, r.ServesMeal(domain.MealBreakfast))
}

func TestPersonality(t *testing.T) {
	t.Run("normalize and validate", func(t *testing.T) {
		assert.Equal(t, "INFJ", domain.NormalizePersonality(" infj "))
		assert.True(t, domain.IsValidPersonality("infj"))
		assert.True(t, domain.IsValidPersonality("ESTP"))
		assert.False(t, domain.IsValidPersonality("ABCD"))
		assert.False(t, domain.IsValidPersonality(""))
	})

	t.Run("sixteen types in fixed order", func(t *testing.T) {
		types := domain.PersonalityTypes()
		assert.Len(t, types, 16)
		assert.Equal(t, types, domain.PersonalityTypes(), "order is stable")
	})
}

func TestMatchesPersonality(t *testing.T) {
	spot := &domain.TouristSpot{
		ID:          "s1",
		MatchedMBTI: []string{"infj", "ENTP"},
		MBTIMatch:   false, // stored flag is ignored
	}
	assert.True(t, spot.MatchesPersonality("INFJ"))
	assert.True(t, spot.MatchesPersonality("entp"))
	assert.False(t, spot.MatchesPersonality("ISTJ"))
}

func TestSlotPaths(t *testing.T) {
	assert.Equal(t, "day_2.afternoon_session", domain.SessionPath(2, domain.SessionAfternoon))
	assert.Equal(t, "day_1.lunch", domain.MealPath(1, domain.MealLunch))
}

func TestDayAccessors(t *testing.T) {
	it := &domain.Itinerary{}
	it.Days[0].DayNumber = 1

	assert.NotNil(t, it.Day(1))
	assert.Nil(t, it.Day(0))
	assert.Nil(t, it.Day(4))

	day := it.Day(1)
	assert.Same(t, &day.Morning, day.Session(domain.SessionMorning))
	assert.Same(t, &day.Dinner, day.Meal(domain.MealDinner))
	assert.Nil(t, day.Session("brunch"))
}

func TestSessionAndMealWindows(t *testing.T) {
	// The three session windows and three meal windows each cover the day
	// without gaps between consecutive windows.
	assert.Equal(t, domain.TimeWindow{Start: 420, End: 719}, domain.SessionWindow(domain.SessionMorning))
	assert.Equal(t, domain.TimeWindow{Start: 720, End: 1079}, domain.SessionWindow(domain.SessionAfternoon))
	assert.Equal(t, domain.TimeWindow{Start: 1080, End: 1439}, domain.SessionWindow(domain.SessionNight))

	assert.Equal(t, domain.TimeWindow{Start: 360, End: 689}, domain.MealWindow(domain.MealBreakfast))
	assert.Equal(t, domain.TimeWindow{Start: 690, End: 1049}, domain.MealWindow(domain.MealLunch))
	assert.Equal(t, domain.TimeWindow{Start: 1050, End: 1439}, domain.MealWindow(domain.MealDinner))
}
