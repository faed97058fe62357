package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/mbti-travel-planner/internal/domain"
	"github.com/mbti-travel-planner/internal/domain/repository"
	"github.com/mbti-travel-planner/internal/pkg/errors"
	"go.uber.org/zap"
)

type spotRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewSpotRepository(db *DB) repository.SpotRepository {
	return &spotRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const spotColumns = `
	id, name, address, district, area, category, description,
	operating_hours, operating_days, matched_mbti, keywords
`

// FetchByPersonality возвращает полный пул: сначала совпадающие по MBTI,
// внутри групп - по id. Порядок стабилен и является частью контракта:
// движок назначения разрешает конфликты первым кандидатом во входном порядке.
func (r *spotRepository) FetchByPersonality(ctx context.Context, personality string) ([]*domain.TouristSpot, error) {
	query := `
		SELECT ` + spotColumns + `,
			($1 = ANY(matched_mbti)) AS mbti_match
		FROM tourist_spots
		ORDER BY ($1 = ANY(matched_mbti)) DESC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, personality)
	if err != nil {
		r.logger.Error("Failed to fetch tourist spots",
			zap.String("personality", personality), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var spots []*domain.TouristSpot
	for rows.Next() {
		spot, err := scanSpot(rows)
		if err != nil {
			r.logger.Error("Failed to scan tourist spot", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		spots = append(spots, spot)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Tourist spot rows iteration failed", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return spots, nil
}

func (r *spotRepository) GetByID(ctx context.Context, id string) (*domain.TouristSpot, error) {
	query := `
		SELECT ` + spotColumns + `,
			false AS mbti_match
		FROM tourist_spots
		WHERE id = $1
	`

	row := r.db.QueryRowContext(ctx, query, id)
	spot, err := scanSpot(row)
	if err == sql.ErrNoRows {
		return nil, errors.ErrSpotNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get tourist spot by ID",
			zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return spot, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSpot(row rowScanner) (*domain.TouristSpot, error) {
	var spot domain.TouristSpot
	var hoursJSON []byte
	var operatingDays, matchedMBTI, keywords pq.StringArray
	var description sql.NullString

	err := row.Scan(
		&spot.ID, &spot.Name, &spot.Address, &spot.District, &spot.Area,
		&spot.Category, &description,
		&hoursJSON, &operatingDays, &matchedMBTI, &keywords,
		&spot.MBTIMatch,
	)
	if err != nil {
		return nil, err
	}

	spot.Description = description.String
	spot.OperatingDays = operatingDays
	spot.MatchedMBTI = matchedMBTI
	spot.Keywords = keywords

	if len(hoursJSON) > 0 {
		hours := make(map[string]string)
		if err := json.Unmarshal(hoursJSON, &hours); err == nil {
			spot.OperatingHours = hours
		}
	}
	return &spot, nil
}
