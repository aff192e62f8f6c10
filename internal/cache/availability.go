package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/verisclinic/clinic-scheduler/internal/config"
	"github.com/verisclinic/clinic-scheduler/internal/logger"
)

const availabilityTTL = 5 * time.Minute

// NewClient abre el cliente redis y verifica conectividad. Devuelve nil
// si redis no está disponible: la caché es opcional y todo funciona sin
// ella, solo más lento.
func NewClient(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logger.L().Warn("redis unavailable, availability cache disabled", zap.Error(err))
		return nil
	}

	return client
}

// AvailabilityCache guarda los conteos del calendario mensual por médico.
// Todas las operaciones son best-effort.
type AvailabilityCache struct {
	client *redis.Client
}

func NewAvailabilityCache(client *redis.Client) *AvailabilityCache {
	return &AvailabilityCache{client: client}
}

func monthKey(doctorID uint, year int, month time.Month) string {
	return fmt.Sprintf("availability:%d:%04d-%02d", doctorID, year, int(month))
}

func (c *AvailabilityCache) GetMonth(
	ctx context.Context,
	doctorID uint,
	year int,
	month time.Month,
) (map[string]int, bool) {

	if c == nil || c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, monthKey(doctorID, year, month)).Result()
	if err != nil {
		return nil, false
	}

	var counts map[string]int
	if err := json.Unmarshal([]byte(raw), &counts); err != nil {
		return nil, false
	}

	return counts, true
}

func (c *AvailabilityCache) SetMonth(
	ctx context.Context,
	doctorID uint,
	year int,
	month time.Month,
	counts map[string]int,
) {

	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(counts)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, monthKey(doctorID, year, month), raw, availabilityTTL).Err(); err != nil {
		logger.L().Debug("availability cache set failed", zap.Error(err))
	}
}

// InvalidateMonth borra el mes de un médico tras una reserva confirmada.
func (c *AvailabilityCache) InvalidateMonth(
	ctx context.Context,
	doctorID uint,
	year int,
	month time.Month,
) {

	if c == nil || c.client == nil {
		return
	}

	if err := c.client.Del(ctx, monthKey(doctorID, year, month)).Err(); err != nil {
		logger.L().Debug("availability cache invalidate failed", zap.Error(err))
	}
}
