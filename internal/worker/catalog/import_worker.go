package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/airport-catalog/internal/domain"
	"github.com/airport-catalog/internal/domain/repository"
	"github.com/airport-catalog/internal/usecase"
	"github.com/airport-catalog/internal/worker"
)

const (
	maxBatchSize    = 20                     // максимум сообщений за раз
	emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста
)

// CatalogImportWorker обрабатывает события загрузки каталога аэродромов
type CatalogImportWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	ingestUC     *usecase.IngestUseCase
	consumerName string
	maxRetries   int
}

// NewCatalogImportWorker создает новый CatalogImportWorker
func NewCatalogImportWorker(
	streamRepo repository.StreamRepository,
	ingestUC *usecase.IngestUseCase,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *CatalogImportWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &CatalogImportWorker{
		BaseWorker:   worker.NewBaseWorker("catalog-import", consumerGroup, logger),
		streamRepo:   streamRepo,
		ingestUC:     ingestUC,
		consumerName: consumerName,
		maxRetries:   maxRetries,
	}
}

// Start запускает воркер
func (w *CatalogImportWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting CatalogImportWorker (batch mode)",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("max_batch_size", maxBatchSize))

	// Создаем consumer group
	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamCatalogUpsert, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
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

		default:
			// Обрабатываем batch сообщений
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(time.Second) // пауза при ошибке
				continue
			}

			// Если ничего не обработали - короткая пауза
			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch читает и обрабатывает batch сообщений.
// Возвращает количество обработанных сообщений
func (w *CatalogImportWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamCatalogUpsert,
		w.ConsumerGroup(),
		w.consumerName,
		maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil // очередь пуста
	}

	logger.Info("Processing batch",
		zap.Int("message_count", len(messages)))

	ackIDs := make([]string, 0, len(messages))
	successCount := 0
	errorCount := 0

	for _, msg := range messages {
		event, err := w.parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ACK битое сообщение чтобы не застревало
			ackIDs = append(ackIDs, msg.ID)
			errorCount++
			continue
		}

		result := domain.AirportUpsertResult{
			BatchID: event.BatchID,
			Ident:   event.Ident,
		}

		if err := w.ingestUC.Upsert(ctx, event); err != nil {
			logger.Warn("Failed to upsert airport",
				zap.String("ident", event.Ident),
				zap.Error(err))
			result.Error = err.Error()
			errorCount++
		} else {
			successCount++
		}

		if err := w.streamRepo.PublishToStream(ctx, domain.StreamCatalogDone, result); err != nil {
			logger.Error("Failed to publish done event",
				zap.String("ident", event.Ident),
				zap.Error(err))
			// Продолжаем с остальными
		}

		ackIDs = append(ackIDs, msg.ID)
	}

	if err := w.streamRepo.AckMessages(ctx, domain.StreamCatalogUpsert, w.ConsumerGroup(), ackIDs); err != nil {
		logger.Error("Failed to ack messages", zap.Error(err))
		// Не критично - сообщения будут переобработаны
	}

	logger.Info("Batch processed successfully",
		zap.Int("processed", len(messages)),
		zap.Int("success", successCount),
		zap.Int("errors", errorCount))

	return len(messages), nil
}

// parseMessage парсит сообщение из стрима в AirportUpsertEvent
func (w *CatalogImportWorker) parseMessage(msg domain.StreamMessage) (*domain.AirportUpsertEvent, error) {
	var event domain.AirportUpsertEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return &event, nil
}
