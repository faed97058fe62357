package repository

import (
	"context"

	"github.com/mbti-travel-planner/internal/domain"
)

// SpotRepository определяет методы для получения достопримечательностей
type SpotRepository interface {
	// FetchByPersonality возвращает все достопримечательности, подходящие или
	// потенциально пригодные для типа личности. Порядок детерминирован:
	// сначала совпадающие по MBTI, внутри групп - по id. Разделение на
	// совпадающий и несовпадающий пулы выполняет движок назначения.
	FetchByPersonality(ctx context.Context, personality string) ([]*domain.TouristSpot, error)

	// GetByID возвращает достопримечательность по id
	GetByID(ctx context.Context, id string) (*domain.TouristSpot, error)
}
