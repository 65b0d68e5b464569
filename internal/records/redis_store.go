package records

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/DisplacedForest/ha-hevy-tracker/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const DefaultRedisKey = "hevy::personal-records"

// RedisStore keeps the table in a single hash: field = exercise key,
// value = JSON encoded Record.
type RedisStore struct {
	rdb *redis.Client
	key string
}

func NewRedisStore(rdb *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{
		rdb: rdb,
		key: key,
	}
}

func (s *RedisStore) Load(ctx context.Context) (_ Table, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "records.redis.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	fields, err := s.rdb.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("hgetall %s: %w", s.key, err)
	}

	table := make(Table, len(fields))
	for field, value := range fields {
		var r Record
		if err := json.Unmarshal([]byte(value), &r); err != nil {
			log.Warnf("skipping malformed personal record [%s]: %s", field, err)
			continue
		}
		table[field] = r
	}
	return table, nil
}

// Save replaces the stored table in one MULTI/EXEC transaction.
func (s *RedisStore) Save(ctx context.Context, table Table) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "records.redis.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	values, err := hashValues(table)
	if err != nil {
		return err
	}

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.key)
		if len(values) > 0 {
			pipe.HSet(ctx, s.key, values...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save personal records: %w", err)
	}
	return nil
}

// hashValues flattens the table into field/value pairs ordered by field.
func hashValues(table Table) ([]interface{}, error) {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make([]interface{}, 0, 2*len(keys))
	for _, k := range keys {
		encoded, err := json.Marshal(table[k])
		if err != nil {
			return nil, fmt.Errorf("marshal record %s: %w", k, err)
		}
		values = append(values, k, string(encoded))
	}
	return values, nil
}
