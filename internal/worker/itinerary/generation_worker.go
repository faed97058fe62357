package itinerary

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mbti-travel-planner/internal/domain"
	"github.com/mbti-travel-planner/internal/domain/repository"
	"github.com/mbti-travel-planner/internal/usecase"
	"github.com/mbti-travel-planner/internal/usecase/dto"
	"github.com/mbti-travel-planner/internal/worker"
	"go.uber.org/zap"
)

// GenerationWorker обрабатывает события генерации маршрутов из Redis Stream
type GenerationWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	itineraryUC  *usecase.ItineraryUseCase
	consumerName string
	maxRetries   int
}

// NewGenerationWorker создает новый GenerationWorker
func NewGenerationWorker(
	streamRepo repository.StreamRepository,
	itineraryUC *usecase.ItineraryUseCase,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *GenerationWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &GenerationWorker{
		BaseWorker:   worker.NewBaseWorker("itinerary-generation", consumerGroup, logger),
		streamRepo:   streamRepo,
		itineraryUC:  itineraryUC,
		consumerName: consumerName,
		maxRetries:   maxRetries,
	}
}

// Start запускает воркер
func (w *GenerationWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting GenerationWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	// Создаем consumer group
	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamItineraryGenerate, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	msgChan, err := w.streamRepo.ConsumeStream(ctx, domain.StreamItineraryGenerate, w.ConsumerGroup(), w.consumerName)
	if err != nil {
		logger.Error("Failed to start stream consumer", zap.Error(err))
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	// Основной цикл обработки
	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg, ok := <-msgChan:
			if !ok {
				logger.Info("Stream channel closed")
				return nil
			}
			w.processMessage(ctx, msg)
		}
	}
}

// processMessage обрабатывает одно сообщение: парсинг, генерация, публикация
// результата и ACK. Битые сообщения подтверждаются сразу, чтобы не застревали
func (w *GenerationWorker) processMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	event, err := w.parseMessage(msg)
	if err != nil {
		logger.Warn("Failed to parse message, skipping",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		_ = w.streamRepo.AckMessage(ctx, domain.StreamItineraryGenerate, w.ConsumerGroup(), msg.ID)
		return
	}

	logger.Info("Processing itinerary request",
		zap.String("request_id", event.RequestID.String()),
		zap.String("personality", event.MBTIPersonality))

	doneEvent := &domain.ItineraryDoneEvent{RequestID: event.RequestID}

	resp, err := w.itineraryUC.Generate(ctx, dto.GenerateItineraryRequest{
		MBTIPersonality: event.MBTIPersonality,
	})
	if err != nil {
		logger.Error("Itinerary generation failed",
			zap.String("request_id", event.RequestID.String()),
			zap.Error(err))
		doneEvent.Error = err.Error()
	} else {
		doneEvent.Itinerary = resp.Itinerary
		doneEvent.Report = resp.Report
	}

	if err := w.streamRepo.PublishToStream(ctx, domain.StreamItineraryDone, doneEvent); err != nil {
		logger.Error("Failed to publish done event",
			zap.String("request_id", event.RequestID.String()),
			zap.Error(err))
		// Не подтверждаем: сообщение будет переобработано
		return
	}

	if err := w.streamRepo.AckMessage(ctx, domain.StreamItineraryGenerate, w.ConsumerGroup(), msg.ID); err != nil {
		logger.Error("Failed to ack message",
			zap.String("message_id", msg.ID),
			zap.Error(err))
	}
}

// parseMessage парсит сообщение из стрима в ItineraryRequestEvent
func (w *GenerationWorker) parseMessage(msg domain.StreamMessage) (*domain.ItineraryRequestEvent, error) {
	var event domain.ItineraryRequestEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if event.MBTIPersonality == "" {
		return nil, fmt.Errorf("missing mbti_personality field")
	}
	return &event, nil
}
