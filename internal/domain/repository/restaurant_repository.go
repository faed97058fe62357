package repository

import (
	"context"

	"github.com/mbti-travel-planner/internal/domain"
)

// RestaurantRepository определяет методы для получения ресторанов
type RestaurantRepository interface {
	// FetchByDistrictAndMeal возвращает рестораны, обслуживающие приём пищи,
	// с фильтром по одному или нескольким районам (пустой список - без
	// фильтра). Порядок детерминирован: по id.
	FetchByDistrictAndMeal(ctx context.Context, districts []string, meal domain.MealType) ([]*domain.Restaurant, error)

	// GetByID возвращает ресторан по id
	GetByID(ctx context.Context, id string) (*domain.Restaurant, error)
}
