package usecase

import "github.com/mbti-travel-planner/internal/domain"

// UniquenessTracker - множество идентификаторов, занятых в рамках одной
// генерации маршрута. Экземпляр принадлежит ровно одной генерации и не
// должен разделяться между параллельными построениями: каждому построению -
// свой трекер.
type UniquenessTracker struct {
	used map[string]struct{}
}

// NewUniquenessTracker создаёт пустой трекер
func NewUniquenessTracker() *UniquenessTracker {
	return &UniquenessTracker{used: make(map[string]struct{})}
}

// MarkUsed помечает идентификатор занятым
func (t *UniquenessTracker) MarkUsed(id string) {
	if id == "" {
		return
	}
	t.used[id] = struct{}{}
}

// IsUsed проверяет, занят ли идентификатор
func (t *UniquenessTracker) IsUsed(id string) bool {
	_, ok := t.used[id]
	return ok
}

// Count возвращает количество занятых идентификаторов
func (t *UniquenessTracker) Count() int {
	return len(t.used)
}

// DuplicateOccurrence - повторное использование идентификатора в готовом
// маршруте: Location - путь повторного вхождения, FirstLocation - путь
// первого
type DuplicateOccurrence struct {
	ID            string
	Name          string
	FirstLocation string
	Location      string
}

// AuditSpotUniqueness проходит по всем 9 слотам сессий в фиксированном
// порядке и возвращает по одному вхождению на каждую повторную пару
func AuditSpotUniqueness(it *domain.Itinerary) []DuplicateOccurrence {
	first := make(map[string]string)
	var duplicates []DuplicateOccurrence

	for i := range it.Days {
		day := &it.Days[i]
		for _, sessionType := range domain.SessionOrder {
			slot := day.Session(sessionType)
			if !slot.Assigned() {
				continue
			}
			path := domain.SessionPath(i+1, sessionType)
			id := slot.Spot.ID
			if firstPath, seen := first[id]; seen {
				duplicates = append(duplicates, DuplicateOccurrence{
					ID:            id,
					Name:          slot.Spot.Name,
					FirstLocation: firstPath,
					Location:      path,
				})
				continue
			}
			first[id] = path
		}
	}
	return duplicates
}

// AuditRestaurantUniqueness - то же для 9 слотов приёмов пищи
func AuditRestaurantUniqueness(it *domain.Itinerary) []DuplicateOccurrence {
	first := make(map[string]string)
	var duplicates []DuplicateOccurrence

	for i := range it.Days {
		day := &it.Days[i]
		for _, mealType := range domain.MealOrder {
			slot := day.Meal(mealType)
			if !slot.Assigned() {
				continue
			}
			path := domain.MealPath(i+1, mealType)
			id := slot.Restaurant.ID
			if firstPath, seen := first[id]; seen {
				duplicates = append(duplicates, DuplicateOccurrence{
					ID:            id,
					Name:          slot.Restaurant.Name,
					FirstLocation: firstPath,
					Location:      path,
				})
				continue
			}
			first[id] = path
		}
	}
	return duplicates
}
