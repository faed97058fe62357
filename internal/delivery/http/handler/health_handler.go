package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mbti-travel-planner/internal/repository/cache"
	"github.com/mbti-travel-planner/internal/repository/postgres"
	"go.uber.org/zap"
)

// HealthHandler - проверка доступности зависимостей сервиса
type HealthHandler struct {
	db     *postgres.DB
	redis  *cache.Redis
	logger *zap.Logger
}

// NewHealthHandler - создание нового HealthHandler
func NewHealthHandler(db *postgres.DB, redis *cache.Redis, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		redis:  redis,
		logger: logger,
	}
}

// Health godoc
// @Summary Health check
// @Description Проверка состояния сервиса и его зависимостей
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx := c.Context()
	status := fiber.StatusOK
	checks := fiber.Map{
		"postgres": "ok",
		"redis":    "ok",
	}

	if err := h.db.Health(ctx); err != nil {
		h.logger.Warn("PostgreSQL health check failed", zap.Error(err))
		checks["postgres"] = err.Error()
		status = fiber.StatusServiceUnavailable
	}

	if err := h.redis.Health(ctx); err != nil {
		h.logger.Warn("Redis health check failed", zap.Error(err))
		checks["redis"] = err.Error()
		status = fiber.StatusServiceUnavailable
	}

	healthy := "healthy"
	if status != fiber.StatusOK {
		healthy = "degraded"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": healthy,
		"checks": checks,
		"time":   time.Now(),
	})
}
