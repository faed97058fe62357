package dto

import "github.com/mbti-travel-planner/internal/domain"

// GenerateItineraryRequest - запрос на генерацию трёхдневного маршрута
type GenerateItineraryRequest struct {
	MBTIPersonality string `json:"mbti_personality" validate:"required,len=4,alpha"`
}

// ItineraryResponse - маршрут вместе с отчётом аудита
type ItineraryResponse struct {
	Itinerary *domain.Itinerary        `json:"itinerary"`
	Report    *domain.ValidationReport `json:"validation_report"`
	Cached    bool                     `json:"cached,omitempty"`
}

// ValidateItineraryRequest - запрос на аудит внешнего маршрута
type ValidateItineraryRequest struct {
	Itinerary *domain.Itinerary `json:"itinerary" validate:"required"`
}

// DetailedValidationResponse - расширенный отчёт аудита
type DetailedValidationResponse struct {
	Report *domain.DetailedValidationReport `json:"report"`
}

// CorrectionsResponse - предложения исправлений, сгруппированные по категориям
type CorrectionsResponse struct {
	Corrections map[domain.IssueCategory][]domain.Correction `json:"corrections"`
}

// PersonalityTypesResponse - список поддерживаемых типов MBTI
type PersonalityTypesResponse struct {
	Types []string `json:"personality_types"`
}
