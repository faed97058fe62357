package domain

// MealType - тип приёма пищи
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

// MealOrder - фиксированный порядок обработки приёмов пищи
var MealOrder = [3]MealType{MealBreakfast, MealLunch, MealDinner}

// IsValidMealType проверяет корректность типа приёма пищи
func IsValidMealType(t MealType) bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner:
		return true
	}
	return false
}

// Sentiment - агрегированные оценки ресторана
type Sentiment struct {
	Likes    int `json:"likes" db:"likes"`
	Dislikes int `json:"dislikes" db:"dislikes"`
	Neutral  int `json:"neutral" db:"neutral"`
}

// Restaurant представляет ресторан
type Restaurant struct {
	ID      string `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Address string `json:"address" db:"address"`
	District string `json:"district" db:"district"`

	// OperatingHours - выражение часов работы в свободной форме,
	// например "Mon - Fri: 11:30 - 22:00, Sat - Sun: 10:00 - 23:00"
	OperatingHours string     `json:"operating_hours,omitempty" db:"operating_hours"`
	MealTypes      []MealType `json:"meal_types" db:"meal_types"`
	Sentiment      Sentiment  `json:"sentiment"`
	PriceRange     string     `json:"price_range,omitempty" db:"price_range"`
}

// ServesMeal проверяет наличие типа приёма пищи среди тегов ресторана
func (r *Restaurant) ServesMeal(meal MealType) bool {
	for _, t := range r.MealTypes {
		if t == meal {
			return true
		}
	}
	return false
}

// OpenDuring проверяет, допускают ли часы работы посещение в окне w
func (r *Restaurant) OpenDuring(w TimeWindow) bool {
	return hoursPermit(r.OperatingHours, w)
}
