package redis

import (
	"context"
	"fmt"
	"strconv"

	"fare-terminal/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// CounterPublisher implements ports.CounterPublisher by mirroring the
// latest counter snapshot of a terminal into one Redis hash.
type CounterPublisher struct {
	client *goredis.Client
	prefix string
}

// NewCounterPublisher creates a Redis-backed counter mirror.
func NewCounterPublisher(client *goredis.Client) *CounterPublisher {
	return &CounterPublisher{
		client: client,
		prefix: "terminal:",
	}
}

// Key returns the hash key holding the counters of tid.
func (p *CounterPublisher) Key(tid string) string {
	return p.prefix + tid + ":counters"
}

// Publish replaces the hash of tid with snapshot.
// Field names are "<issuer>.<counter>", plus "total.<counter>", "cycle" and "sn".
func (p *CounterPublisher) Publish(ctx context.Context, tid string, snapshot domain.CounterSnapshot) error {
	key := p.Key(tid)
	fields := snapshotFields(snapshot)

	_, err := p.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, fields)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis counter publish: %w", err)
	}
	return nil
}

// Fetch returns the mirrored hash of tid. Missing keys yield an empty map.
func (p *CounterPublisher) Fetch(ctx context.Context, tid string) (map[string]string, error) {
	fields, err := p.client.HGetAll(ctx, p.Key(tid)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis counter fetch: %w", err)
	}
	return fields, nil
}

func snapshotFields(s domain.CounterSnapshot) map[string]any {
	fields := map[string]any{
		"cycle": s.Cycle.Format("2006-01-02"),
		"sn":    strconv.FormatUint(uint64(s.SN), 10),
	}
	for name, c := range s.Issuers {
		issuerFields(fields, name, c)
	}
	issuerFields(fields, "total", s.Total)
	return fields
}

func issuerFields(fields map[string]any, name string, c domain.IssuerCounters) {
	fields[name+".tap_in_regular"] = c.TapInRegular
	fields[name+".tap_in_economy"] = c.TapInEconomy
	fields[name+".tap_in_free_service"] = c.TapInFreeService
	fields[name+".tap_out"] = c.TapOut
	fields[name+".sent"] = c.Sent
	fields[name+".pending"] = c.Pending
	fields[name+".amount"] = c.Amount
}
