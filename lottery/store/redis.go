package store

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/go-redis/redis/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

type redisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(opts RedisOptions) (Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if _, err := client.Ping().Result(); err != nil {
		return nil, errors.Wrap(err, "failed to ping redis")
	}
	log.Printf("redis store connected to %s (prefix %q)", opts.Addr, opts.Prefix)

	return &redisStore{
		client: client,
		prefix: opts.Prefix,
	}, nil
}

func (r *redisStore) key(name string) string {
	return r.prefix + name
}

func (r *redisStore) Load(ctx context.Context) (*Snapshot, error) {
	c := r.client.WithContext(ctx)
	snap := emptySnapshot()

	raw, err := c.LRange(r.key("bets"), 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load bets from redis")
	}
	for _, item := range raw {
		var rec Record
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshall bet record")
		}
		snap.Records = append(snap.Records, rec)
	}

	cursor, err := c.Get(r.key("cursor")).Uint64()
	switch {
	case err == redis.Nil:
	case err != nil:
		return nil, errors.Wrap(err, "failed to load cursor from redis")
	default:
		snap.Cursor = cursor
	}

	pot, err := c.Get(r.key("pot")).Result()
	switch {
	case err == redis.Nil:
	case err != nil:
		return nil, errors.Wrap(err, "failed to load pot from redis")
	default:
		snap.Pot = pot
	}

	return snap, nil
}

func (r *redisStore) Commit(ctx context.Context, cp *Checkpoint) error {
	betsKey, cursorKey, potKey := r.key("bets"), r.key("cursor"), r.key("pot")

	appended, err := marshalRecords(cp.Appended)
	if err != nil {
		return err
	}
	resolved, err := marshalRecords(cp.Resolved)
	if err != nil {
		return err
	}

	err = r.client.WithContext(ctx).Watch(func(tx *redis.Tx) error {
		n, err := tx.LLen(betsKey).Result()
		if err != nil {
			return errors.Wrap(err, "failed to read ledger length")
		}
		cursor, err := tx.Get(cursorKey).Uint64()
		if err != nil && err != redis.Nil {
			return errors.Wrap(err, "failed to read cursor")
		}
		pot, err := tx.Get(potKey).Result()
		if err == redis.Nil {
			pot = "0"
		} else if err != nil {
			return errors.Wrap(err, "failed to read pot")
		}
		if !cp.matches(uint64(n), cursor, pot) {
			return ErrStaleState
		}

		_, err = tx.TxPipelined(func(pipe redis.Pipeliner) error {
			for _, bs := range appended {
				pipe.RPush(betsKey, bs)
			}
			for i, bs := range resolved {
				pipe.LSet(betsKey, int64(cp.Resolved[i].Index), bs)
			}
			pipe.Set(cursorKey, strconv.FormatUint(cp.Cursor, 10), 0)
			pipe.Set(potKey, cp.Pot, 0)
			return nil
		})
		return err
	}, betsKey, cursorKey, potKey)

	switch {
	case err == redis.TxFailedErr:
		return ErrStaleState
	case errors.Is(err, ErrStaleState):
		return err
	case err != nil:
		return errors.Wrap(err, "failed to commit checkpoint to redis")
	}
	return nil
}

func (r *redisStore) Close() error {
	return r.client.Close()
}

func marshalRecords(records []Record) ([][]byte, error) {
	out := make([][]byte, 0, len(records))
	for i := range records {
		bs, err := json.Marshal(&records[i])
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal bet record")
		}
		out = append(out, bs)
	}
	return out, nil
}
