package domain

import "github.com/google/uuid"

// Stream names (должны совпадать с публикующим сервисом)
const (
	StreamItineraryGenerate = "stream:itinerary:generate"
	StreamItineraryDone     = "stream:itinerary:done"
)

// ItineraryRequestEvent - входящий запрос на генерацию маршрута
type ItineraryRequestEvent struct {
	RequestID       uuid.UUID `json:"request_id"`
	MBTIPersonality string    `json:"mbti_personality"`
	StartDate       *string   `json:"start_date,omitempty"`
}

// ItineraryDoneEvent - результат генерации маршрута
type ItineraryDoneEvent struct {
	RequestID uuid.UUID         `json:"request_id"`
	Itinerary *Itinerary        `json:"itinerary,omitempty"`
	Report    *ValidationReport `json:"validation_report,omitempty"`
	Error     string            `json:"error,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
