package domain

import "strings"

// TouristSpot представляет туристическую достопримечательность
type TouristSpot struct {
	ID          string `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Address     string `json:"address" db:"address"`
	District    string `json:"district" db:"district"`
	Area        string `json:"area" db:"area"`
	Category    string `json:"category" db:"category"`
	Description string `json:"description,omitempty" db:"description"`

	// OperatingHours - таблица часов работы по дням недели (ключи в нижнем
	// регистре: "monday".."sunday"). Отсутствие дня означает отсутствие
	// ограничений, значение может быть интервалом "09:00 - 18:00" или
	// сентинелом "closed" / "24 hours" / "always open".
	OperatingHours map[string]string `json:"operating_hours,omitempty" db:"operating_hours"`
	OperatingDays  []string          `json:"operating_days,omitempty" db:"operating_days"`

	// MBTIMatch должен совпадать с членством целевого кода в MatchedMBTI;
	// расхождение - предмет аудита, а не допущение.
	MBTIMatch   bool     `json:"mbti_match" db:"mbti_match"`
	MatchedMBTI []string `json:"matched_mbti,omitempty" db:"matched_mbti"`
	Keywords    []string `json:"keywords,omitempty" db:"keywords"`
}

// MatchesPersonality проверяет членство кода в MatchedMBTI (пересчёт, флаг
// MBTIMatch не используется)
func (s *TouristSpot) MatchesPersonality(code string) bool {
	code = NormalizePersonality(code)
	for _, m := range s.MatchedMBTI {
		if NormalizePersonality(m) == code {
			return true
		}
	}
	return false
}

// OpenDuring проверяет, допускают ли часы работы посещение в окне w.
// Пустая таблица означает отсутствие ограничений; иначе достаточно одного
// дня недели, чей интервал пересекается с окном.
func (s *TouristSpot) OpenDuring(w TimeWindow) bool {
	if len(s.OperatingHours) == 0 {
		return true
	}
	for _, expr := range s.OperatingHours {
		if hoursPermit(expr, w) {
			return true
		}
	}
	return false
}

// OpenOn проверяет часы работы для конкретного дня недели
func (s *TouristSpot) OpenOn(weekday string, w TimeWindow) bool {
	if len(s.OperatingHours) == 0 {
		return true
	}
	expr, ok := s.OperatingHours[strings.ToLower(strings.TrimSpace(weekday))]
	if !ok {
		// День не указан - ограничений нет
		return true
	}
	return hoursPermit(expr, w)
}
