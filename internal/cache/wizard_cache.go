package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"mmgp/internal/model"
)

// SaveLockTTL bounds how long a save lock can outlive a crashed holder.
const SaveLockTTL = 30 * time.Second

// maxUpdateAttempts caps optimistic retries when writers collide.
const maxUpdateAttempts = 10

var (
	ErrSessionMissing = errors.New("wizard session missing")
	ErrUpdateConflict = errors.New("wizard session kept changing")
)

// WizardCache holds live wizard sessions and their save locks in Redis
type WizardCache interface {
	Set(ctx context.Context, s *model.WizardSession) error
	Get(ctx context.Context, id string) (*model.WizardSession, error)
	// Update reads the session, applies fn and writes it back only if no one
	// else wrote in between. fn may run more than once.
	Update(ctx context.Context, id string, fn func(*model.WizardSession) error) (*model.WizardSession, error)
	Delete(ctx context.Context, id string) error
	// AcquireSaveLock returns false when a save for the session is already in flight.
	AcquireSaveLock(ctx context.Context, id string) (bool, error)
	ReleaseSaveLock(ctx context.Context, id string) error
}

type wizardCache struct {
	client  *redis.Client
	ttl     time.Duration
	lockTTL time.Duration
}

// NewWizardCache creates a wizard cache whose sessions expire after ttl of inactivity
func NewWizardCache(client *redis.Client, ttl time.Duration) WizardCache {
	return &wizardCache{
		client:  client,
		ttl:     ttl,
		lockTTL: SaveLockTTL,
	}
}

func (c *wizardCache) key(id string) string {
	return fmt.Sprintf("wizard:%s", id)
}

func (c *wizardCache) lockKey(id string) string {
	return fmt.Sprintf("wizard:%s:saving", id)
}

func (c *wizardCache) Set(ctx context.Context, s *model.WizardSession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(s.ID), data, c.ttl).Err()
}

func (c *wizardCache) Get(ctx context.Context, id string) (*model.WizardSession, error) {
	data, err := c.client.Get(ctx, c.key(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s model.WizardSession
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *wizardCache) Update(ctx context.Context, id string, fn func(*model.WizardSession) error) (*model.WizardSession, error) {
	key := c.key(id)
	var updated *model.WizardSession
	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err == redis.Nil {
			return ErrSessionMissing
		}
		if err != nil {
			return err
		}
		var s model.WizardSession
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if err := fn(&s); err != nil {
			return err
		}
		out, err := json.Marshal(&s)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, c.ttl)
			return nil
		})
		if err == nil {
			updated = &s
		}
		return err
	}

	for i := 0; i < maxUpdateAttempts; i++ {
		err := c.client.Watch(ctx, txf, key)
		if err == redis.TxFailedErr {
			continue
		}
		if err != nil {
			return nil, err
		}
		return updated, nil
	}
	return nil, ErrUpdateConflict
}

func (c *wizardCache) Delete(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id), c.lockKey(id)).Err()
}

func (c *wizardCache) AcquireSaveLock(ctx context.Context, id string) (bool, error) {
	return c.client.SetNX(ctx, c.lockKey(id), 1, c.lockTTL).Result()
}

func (c *wizardCache) ReleaseSaveLock(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.lockKey(id)).Err()
}
