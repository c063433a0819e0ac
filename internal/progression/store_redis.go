package progression

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisVisitStore 多实例部署时共享访问快照，CAS 通过 WATCH/MULTI 实现
type RedisVisitStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisVisitStore(rdb *redis.Client, ttl time.Duration) *RedisVisitStore {
	return &RedisVisitStore{rdb: rdb, ttl: ttl}
}

func (s *RedisVisitStore) Get(ctx context.Context, key VisitKey) (*Snapshot, error) {
	raw, err := s.rdb.Get(ctx, key.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrVisitNotFound
	}
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *RedisVisitStore) Save(ctx context.Context, key VisitKey, snap *Snapshot) error {
	k := key.String()
	next := *snap
	next.Revision++

	err := s.rdb.Watch(ctx, func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, k).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
			// 键已过期，按无冲突处理
		case err != nil:
			return err
		default:
			var stored Snapshot
			if err := json.Unmarshal(raw, &stored); err != nil {
				return err
			}
			if stored.Revision != snap.Revision {
				return ErrStaleVisit
			}
		}

		data, err := json.Marshal(next)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, k, data, s.ttl)
			return nil
		})
		return err
	}, k)

	if errors.Is(err, redis.TxFailedErr) {
		return ErrStaleVisit
	}
	if err != nil {
		return err
	}
	snap.Revision = next.Revision
	return nil
}

func (s *RedisVisitStore) Delete(ctx context.Context, key VisitKey) error {
	return s.rdb.Del(ctx, key.String()).Err()
}
