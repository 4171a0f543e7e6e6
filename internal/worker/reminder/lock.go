package reminder

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// DispatchLock elege um despachante por ciclo quando a API roda com
// mais de uma instância: um SETNX com TTL por dia. Best-effort — sem
// redis configurado o worker roda sem guarda (deploy de instância
// única).
type DispatchLock struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewDispatchLock(rdb *redis.Client) *DispatchLock {
	return &DispatchLock{
		rdb: rdb,
		ttl: 25 * time.Hour,
	}
}

// TryAcquire tenta tomar a lease do dia. false = outra instância já
// despachou este ciclo.
func (l *DispatchLock) TryAcquire(ctx context.Context, day string) (bool, error) {
	key := "psico:reminder:lease:" + day
	return l.rdb.SetNX(ctx, key, 1, l.ttl).Result()
}
