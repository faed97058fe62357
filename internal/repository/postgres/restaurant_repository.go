package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/mbti-travel-planner/internal/domain"
	"github.com/mbti-travel-planner/internal/domain/repository"
	"github.com/mbti-travel-planner/internal/pkg/errors"
	"go.uber.org/zap"
)

type restaurantRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewRestaurantRepository(db *DB) repository.RestaurantRepository {
	return &restaurantRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const restaurantColumns = `
	id, name, address, district, operating_hours, meal_types,
	likes, dislikes, neutral, price_range
`

// FetchByDistrictAndMeal возвращает рестораны с тегом приёма пищи; пустой
// список районов отключает фильтр. Порядок по id - стабильный входной
// порядок для движка назначения.
func (r *restaurantRepository) FetchByDistrictAndMeal(ctx context.Context, districts []string, meal domain.MealType) ([]*domain.Restaurant, error) {
	if !domain.IsValidMealType(meal) {
		return nil, errors.ErrInvalidMealType
	}

	query := `
		SELECT ` + restaurantColumns + `
		FROM restaurants
		WHERE $1 = ANY(meal_types)
		  AND (COALESCE(cardinality($2::text[]), 0) = 0 OR district = ANY($2::text[]))
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, string(meal), pq.Array(districts))
	if err != nil {
		r.logger.Error("Failed to fetch restaurants",
			zap.String("meal", string(meal)),
			zap.Strings("districts", districts),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var restaurants []*domain.Restaurant
	for rows.Next() {
		restaurant, err := scanRestaurant(rows)
		if err != nil {
			r.logger.Error("Failed to scan restaurant", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		restaurants = append(restaurants, restaurant)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Restaurant rows iteration failed", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return restaurants, nil
}

func (r *restaurantRepository) GetByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	query := `
		SELECT ` + restaurantColumns + `
		FROM restaurants
		WHERE id = $1
	`

	row := r.db.QueryRowContext(ctx, query, id)
	restaurant, err := scanRestaurant(row)
	if err == sql.ErrNoRows {
		return nil, errors.ErrRestaurantNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get restaurant by ID",
			zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return restaurant, nil
}

func scanRestaurant(row rowScanner) (*domain.Restaurant, error) {
	var restaurant domain.Restaurant
	var mealTypes pq.StringArray
	var operatingHours, priceRange sql.NullString

	err := row.Scan(
		&restaurant.ID, &restaurant.Name, &restaurant.Address,
		&restaurant.District, &operatingHours, &mealTypes,
		&restaurant.Sentiment.Likes, &restaurant.Sentiment.Dislikes,
		&restaurant.Sentiment.Neutral, &priceRange,
	)
	if err != nil {
		return nil, err
	}

	restaurant.OperatingHours = operatingHours.String
	restaurant.PriceRange = priceRange.String
	restaurant.MealTypes = make([]domain.MealType, 0, len(mealTypes))
	for _, t := range mealTypes {
		restaurant.MealTypes = append(restaurant.MealTypes, domain.MealType(t))
	}
	return &restaurant, nil
}
