package repository

import (
	"context"
	"time"

	"github.com/mbti-travel-planner/internal/domain"
)

// CacheRepository - интерфейс кеширования
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)

	// GetItinerary возвращает закешированный маршрут для типа личности
	// (nil, nil при промахе)
	GetItinerary(ctx context.Context, personality string) (*domain.Itinerary, error)

	// SetItinerary сохраняет маршрут в кеш
	SetItinerary(ctx context.Context, itinerary *domain.Itinerary, ttl time.Duration) error
}
