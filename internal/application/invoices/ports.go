package invoices

import (
	"context"
	"time"
)

// ViewCache puerto hacia el cache de vistas. Invalidate marca la vista y todas
// sus variantes (query strings) como obsoletas; Get/Set sirven el lado de
// lectura cache-aside del listado.
type ViewCache interface {
	Invalidate(ctx context.Context, viewPath string) error
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration)
}
