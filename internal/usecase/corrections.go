package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mbti-travel-planner/internal/domain"
)

// maxAlternatives - предел предлагаемых замен на одну проблему
const maxAlternatives = 3

// SuggestCorrections группирует проблемы по категориям и предлагает
// исправления. Для нарушений уникальности сканируется исходный пул в поисках
// незанятых совместимых замен того же типа слота.
func (v *ValidationEngine) SuggestCorrections(
	it *domain.Itinerary,
	issues []domain.ValidationIssue,
	spots []*domain.TouristSpot,
	restaurants []*domain.Restaurant,
) map[domain.IssueCategory][]domain.Correction {
	corrections := make(map[domain.IssueCategory][]domain.Correction)
	if it == nil {
		return corrections
	}

	usedSpots := usedSpotIDs(it)
	usedRestaurants := usedRestaurantIDs(it)

	for _, issue := range issues {
		correction := domain.Correction{
			Location:    issue.Location,
			Rule:        issue.Rule,
			Description: issue.Message,
		}
		if issue.Suggestion != "" {
			correction.Description = issue.Suggestion
		}

		if issue.Category == domain.CategoryUniqueness {
			correction.Alternatives = v.uniquenessAlternatives(
				it, issue.Location, usedSpots, usedRestaurants, spots, restaurants)
		}

		corrections[issue.Category] = append(corrections[issue.Category], correction)
	}
	return corrections
}

// uniquenessAlternatives подбирает незанятых кандидатов для слота по пути
func (v *ValidationEngine) uniquenessAlternatives(
	it *domain.Itinerary,
	location string,
	usedSpots, usedRestaurants map[string]struct{},
	spots []*domain.TouristSpot,
	restaurants []*domain.Restaurant,
) []string {
	sessionType, mealType, isSession, ok := parseSlotPath(location)
	if !ok {
		return nil
	}

	var alternatives []string
	if isSession {
		window := domain.SessionWindow(sessionType)
		// Сначала совпадающие по MBTI, как в движке назначения
		pool := PartitionSpots(spots, it.MBTIPersonality)
		for _, candidates := range [][]*domain.TouristSpot{pool.Matched, pool.Others} {
			for _, s := range candidates {
				if len(alternatives) >= maxAlternatives {
					return alternatives
				}
				if _, used := usedSpots[s.ID]; used {
					continue
				}
				if !s.OpenDuring(window) {
					continue
				}
				alternatives = append(alternatives, fmt.Sprintf("%s (%s)", s.Name, s.ID))
			}
		}
		return alternatives
	}

	window := domain.MealWindow(mealType)
	pool := PartitionRestaurants(restaurants, mealType)
	for _, r := range pool.Serving {
		if len(alternatives) >= maxAlternatives {
			break
		}
		if _, used := usedRestaurants[r.ID]; used {
			continue
		}
		if !r.OpenDuring(window) {
			continue
		}
		alternatives = append(alternatives, fmt.Sprintf("%s (%s)", r.Name, r.ID))
	}
	return alternatives
}

// parseSlotPath разбирает путь слота вида "day_2.afternoon_session" или
// "day_1.lunch"
func parseSlotPath(path string) (domain.SessionType, domain.MealType, bool, bool) {
	parts := strings.SplitN(path, ".", 2)
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "day_") {
		return "", "", false, false
	}
	if _, err := strconv.Atoi(strings.TrimPrefix(parts[0], "day_")); err != nil {
		return "", "", false, false
	}

	if name, isSession := strings.CutSuffix(parts[1], "_session"); isSession {
		sessionType := domain.SessionType(name)
		switch sessionType {
		case domain.SessionMorning, domain.SessionAfternoon, domain.SessionNight:
			return sessionType, "", true, true
		}
		return "", "", false, false
	}

	mealType := domain.MealType(parts[1])
	if domain.IsValidMealType(mealType) {
		return "", mealType, false, true
	}
	return "", "", false, false
}

func usedSpotIDs(it *domain.Itinerary) map[string]struct{} {
	used := make(map[string]struct{})
	for i := range it.Days {
		for _, t := range domain.SessionOrder {
			if slot := it.Days[i].Session(t); slot.Assigned() {
				used[slot.Spot.ID] = struct{}{}
			}
		}
	}
	return used
}

func usedRestaurantIDs(it *domain.Itinerary) map[string]struct{} {
	used := make(map[string]struct{})
	for i := range it.Days {
		for _, t := range domain.MealOrder {
			if slot := it.Days[i].Meal(t); slot.Assigned() {
				used[slot.Restaurant.ID] = struct{}{}
			}
		}
	}
	return used
}
