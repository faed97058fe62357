package usecase

import (
	"github.com/mbti-travel-planner/internal/domain"
	"github.com/mbti-travel-planner/internal/pkg/geo"
)

const totalSessionSlots = 9
const totalMealSlots = 9

// ValidateDetailed строит расширенный отчёт: базовый аудит плюс покрытие
// слотов, доля соответствия MBTI и географическая когерентность по дням
func (v *ValidationEngine) ValidateDetailed(it *domain.Itinerary) (*domain.DetailedValidationReport, error) {
	base, err := v.Validate(it)
	if err != nil {
		return nil, err
	}

	detailed := &domain.DetailedValidationReport{ValidationReport: *base}

	var sessionsAssigned, mealsAssigned, mbtiMatched int
	for i := range it.Days {
		day := &it.Days[i]

		var places []geo.Place
		for _, sessionType := range domain.SessionOrder {
			slot := day.Session(sessionType)
			if !slot.Assigned() {
				continue
			}
			sessionsAssigned++
			if slot.Spot.MatchesPersonality(it.MBTIPersonality) {
				mbtiMatched++
			}
			places = append(places, geo.Place{
				District: slot.Spot.District,
				Area:     slot.Spot.Area,
			})
		}
		for _, mealType := range domain.MealOrder {
			slot := day.Meal(mealType)
			if !slot.Assigned() {
				continue
			}
			mealsAssigned++
			places = append(places, geo.Place{District: slot.Restaurant.District})
		}

		detailed.DayCoherence[i] = geo.Coherence(places)
	}

	detailed.SessionCoverage = float64(sessionsAssigned) / totalSessionSlots
	detailed.MealCoverage = float64(mealsAssigned) / totalMealSlots
	if sessionsAssigned > 0 {
		detailed.MBTIAlignment = float64(mbtiMatched) / float64(sessionsAssigned)
	}

	return detailed, nil
}
