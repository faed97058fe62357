package domain

import (
	"fmt"
	"time"
)

// SessionType - тип сессии в течение дня
type SessionType string

const (
	SessionMorning   SessionType = "morning"
	SessionAfternoon SessionType = "afternoon"
	SessionNight     SessionType = "night"
)

// SessionOrder - фиксированный порядок обработки сессий
var SessionOrder = [3]SessionType{SessionMorning, SessionAfternoon, SessionNight}

// Окна времени для сессий и приёмов пищи (границы включительно)
var sessionWindows = map[SessionType]TimeWindow{
	SessionMorning:   {Start: 7 * 60, End: 11*60 + 59},
	SessionAfternoon: {Start: 12 * 60, End: 17*60 + 59},
	SessionNight:     {Start: 18 * 60, End: 23*60 + 59},
}

var mealWindows = map[MealType]TimeWindow{
	MealBreakfast: {Start: 6 * 60, End: 11*60 + 29},
	MealLunch:     {Start: 11*60 + 30, End: 17*60 + 29},
	MealDinner:    {Start: 17*60 + 30, End: 23*60 + 59},
}

// SessionWindow возвращает окно времени сессии
func SessionWindow(t SessionType) TimeWindow {
	return sessionWindows[t]
}

// MealWindow возвращает окно времени приёма пищи
func MealWindow(t MealType) TimeWindow {
	return mealWindows[t]
}

// SessionSlot - слот сессии с назначенной достопримечательностью
type SessionSlot struct {
	Spot      *TouristSpot `json:"tourist_spot,omitempty"`
	StartTime string       `json:"start_time,omitempty"`
	EndTime   string       `json:"end_time,omitempty"`
	Notes     string       `json:"notes,omitempty"`
}

// Assigned проверяет, назначена ли достопримечательность
func (s *SessionSlot) Assigned() bool {
	return s.Spot != nil
}

// MealSlot - слот приёма пищи с назначенным рестораном
type MealSlot struct {
	Restaurant *Restaurant `json:"restaurant,omitempty"`
	MealTime   string      `json:"meal_time,omitempty"`
	Notes      string      `json:"notes,omitempty"`
}

// Assigned проверяет, назначен ли ресторан
func (m *MealSlot) Assigned() bool {
	return m.Restaurant != nil
}

// DayPlan - план одного дня: ровно по одному слоту на каждую сессию и
// каждый приём пищи. Отсутствие слота невозможно на уровне типов.
type DayPlan struct {
	DayNumber int         `json:"day_number"`
	Morning   SessionSlot `json:"morning_session"`
	Afternoon SessionSlot `json:"afternoon_session"`
	Night     SessionSlot `json:"night_session"`
	Breakfast MealSlot    `json:"breakfast"`
	Lunch     MealSlot    `json:"lunch"`
	Dinner    MealSlot    `json:"dinner"`
	Notes     string      `json:"notes,omitempty"`
}

// Session возвращает слот сессии по типу
func (d *DayPlan) Session(t SessionType) *SessionSlot {
	switch t {
	case SessionMorning:
		return &d.Morning
	case SessionAfternoon:
		return &d.Afternoon
	case SessionNight:
		return &d.Night
	}
	return nil
}

// Meal возвращает слот приёма пищи по типу
func (d *DayPlan) Meal(t MealType) *MealSlot {
	switch t {
	case MealBreakfast:
		return &d.Breakfast
	case MealLunch:
		return &d.Lunch
	case MealDinner:
		return &d.Dinner
	}
	return nil
}

// Itinerary - трёхдневный маршрут для типа личности MBTI
type Itinerary struct {
	ID              string     `json:"id"`
	MBTIPersonality string     `json:"mbti_personality"`
	Days            [3]DayPlan `json:"days"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	Version         string     `json:"version"`
}

// Day возвращает план дня по номеру (1-3), nil для некорректного номера
func (it *Itinerary) Day(number int) *DayPlan {
	if number < 1 || number > len(it.Days) {
		return nil
	}
	return &it.Days[number-1]
}

// SessionPath возвращает путь слота сессии для отчётов валидации,
// например "day_2.afternoon_session"
func SessionPath(day int, t SessionType) string {
	return fmt.Sprintf("day_%d.%s_session", day, t)
}

// MealPath возвращает путь слота приёма пищи, например "day_1.lunch"
func MealPath(day int, t MealType) string {
	return fmt.Sprintf("day_%d.%s", day, t)
}
