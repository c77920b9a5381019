package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/dashboard-api/internal/application/invoices"
	"github.com/jhoicas/dashboard-api/pkg/config"
)

var _ invoices.ViewCache = (*ViewCache)(nil)

// ViewCache cache de vistas sobre Redis. Las entradas se guardan bajo la ruta
// de la vista (más su query string); invalidar una vista borra la ruta y todas
// sus variantes.
type ViewCache struct {
	rdb *redis.Client
}

// NewViewCache conecta con Redis y verifica la conexión.
func NewViewCache(cfg config.RedisConfig) (*ViewCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &ViewCache{rdb: rdb}, nil
}

// Invalidate borra todas las entradas de la vista (la ruta y sus variantes con
// query string), de forma que la siguiente lectura recalcule.
func (c *ViewCache) Invalidate(ctx context.Context, viewPath string) error {
	iter := c.rdb.Scan(ctx, 0, viewPath+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("del %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan %s: %w", viewPath, err)
	}
	return nil
}

// Get devuelve la entrada cacheada bajo key, si existe.
func (c *ViewCache) Get(ctx context.Context, key string) ([]byte, bool) {
	payload, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

// Set guarda la entrada con TTL. Best-effort: un fallo de escritura solo
// significa que la siguiente lectura volverá a la base de datos.
func (c *ViewCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) {
	_ = c.rdb.Set(ctx, key, payload, ttl).Err()
}

// Close cierra la conexión con Redis.
func (c *ViewCache) Close() error {
	return c.rdb.Close()
}
