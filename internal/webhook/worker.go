package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/mission_alert_system/internal/config"
	"github.com/sirupsen/logrus"
)

// DispatchWorker - воркер доставки вебхуков диспетчеризации: вычитывает
// очередь Redis и отправляет события на внешний URL с подписью и повторами.
type DispatchWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewDispatchWorker создает новый DispatchWorker
func NewDispatchWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *DispatchWorker {
	return &DispatchWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start запускает горутину для обработки очереди диспетчеризации
func (w *DispatchWorker) Start(ctx context.Context) {
	w.logger.Info("Starting dispatch worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping dispatch worker.")
				return
			default:
				// BRPop - блокирующее извлечение из правой части списка,
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, dispatchQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop dispatch event from Redis")
					time.Sleep(w.cfg.WebhookTimeout)
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var event DispatchEvent
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal dispatch event from Redis")
					continue
				}

				w.deliver(ctx, event, payload)
			}
		}
	}()
}

// deliver отправляет событие с экспоненциальной задержкой между попытками.
// Доставка at-least-once: упавший между BRPop и отправкой процесс теряет
// событие, повторная постановка одной тревоги даёт дубль на приёмнике.
func (w *DispatchWorker) deliver(ctx context.Context, event DispatchEvent, rawPayload string) {
	log := w.logger.WithFields(logrus.Fields{
		"alert_id":   event.AlertID,
		"mission_id": event.MissionID,
		"label":      event.Label,
	})
	log.Debug("Processing dispatch event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping dispatch delivery.")
		return
	}

	maxRetries := w.cfg.WebhookMaxRetries
	delay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		if w.attempt(ctx, rawPayload, log) {
			log.Info("Dispatch webhook delivered successfully.")
			return
		}
		log.Warnf("Dispatch delivery attempt failed. Retrying in %v. Retries left: %d", delay, maxRetries-1-i)
		time.Sleep(delay)
		delay *= 2 // Экспоненциальная задержка
	}

	log.Errorf("Failed to deliver dispatch webhook after %d retries.", maxRetries)
}

func (w *DispatchWorker) attempt(ctx context.Context, rawPayload string, log *logrus.Entry) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, strings.NewReader(rawPayload))
	if err != nil {
		log.WithError(err).Error("Failed to create dispatch webhook request")
		return false
	}

	req.Header.Set("Content-Type", "application/json")

	// HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set("X-Webhook-Signature", generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Warn("Failed to send dispatch webhook")
		return false
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return true
	}
	log.Warnf("Dispatch webhook rejected with status code %d", resp.StatusCode)
	return false
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
