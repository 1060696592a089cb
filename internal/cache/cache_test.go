package cache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"mmgp/internal/model"
)

// redisClient connects to REDIS_URI and skips the test when nothing answers.
func redisClient(t *testing.T) *redis.Client {
	t.Helper()
	addr := strings.TrimPrefix(os.Getenv("REDIS_URI"), "redis://")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("redis not reachable at %s: %v", addr, err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func newSession(t *testing.T, client *redis.Client) *model.WizardSession {
	t.Helper()
	id := uuid.NewString()
	t.Cleanup(func() {
		client.Del(context.Background(), "wizard:"+id, "wizard:"+id+":saving")
	})
	return &model.WizardSession{ID: id, Step: model.StepEmail, State: model.NewFormState()}
}

func TestWizardCacheSetGet(t *testing.T) {
	client := redisClient(t)
	c := NewWizardCache(client, time.Minute)
	ctx := context.Background()

	missing, err := c.Get(ctx, uuid.NewString())
	if err != nil || missing != nil {
		t.Fatalf("Get(missing) = %v, %v", missing, err)
	}

	s := newSession(t, client)
	s.State.Respondent.Email = "ana@example.com"
	if err := c.Set(ctx, s); err != nil {
		t.Fatalf("Set: %v", err)
	}

	ttl, err := client.TTL(ctx, "wizard:"+s.ID).Result()
	if err != nil || ttl <= 0 || ttl > time.Minute {
		t.Errorf("ttl = %v, %v", ttl, err)
	}

	got, err := c.Get(ctx, s.ID)
	if err != nil || got == nil {
		t.Fatalf("Get = %v, %v", got, err)
	}
	if got.ID != s.ID || got.State.Respondent.Email != "ana@example.com" {
		t.Errorf("got = %+v", got)
	}

	if err := c.Delete(ctx, s.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got, _ := c.Get(ctx, s.ID); got != nil {
		t.Errorf("session survived Delete")
	}
}

func TestWizardCacheSaveLock(t *testing.T) {
	client := redisClient(t)
	c := NewWizardCache(client, time.Minute)
	ctx := context.Background()
	s := newSession(t, client)

	steps := []struct {
		name string
		run  func() (bool, error)
		want bool
	}{
		{"first acquire", func() (bool, error) { return c.AcquireSaveLock(ctx, s.ID) }, true},
		{"second acquire denied", func() (bool, error) { return c.AcquireSaveLock(ctx, s.ID) }, false},
		{"acquire after release", func() (bool, error) {
			if err := c.ReleaseSaveLock(ctx, s.ID); err != nil {
				return false, err
			}
			return c.AcquireSaveLock(ctx, s.ID)
		}, true},
	}
	for _, step := range steps {
		got, err := step.run()
		if err != nil {
			t.Fatalf("%s: %v", step.name, err)
		}
		if got != step.want {
			t.Errorf("%s = %v, want %v", step.name, got, step.want)
		}
	}

	ttl, err := client.TTL(ctx, "wizard:"+s.ID+":saving").Result()
	if err != nil || ttl <= 0 || ttl > SaveLockTTL {
		t.Errorf("lock ttl = %v, %v", ttl, err)
	}
}

func TestWizardCacheUpdate(t *testing.T) {
	client := redisClient(t)
	c := NewWizardCache(client, time.Minute)
	ctx := context.Background()

	_, err := c.Update(ctx, uuid.NewString(), func(*model.WizardSession) error { return nil })
	if !errors.Is(err, ErrSessionMissing) {
		t.Errorf("Update(missing) err = %v", err)
	}

	s := newSession(t, client)
	if err := c.Set(ctx, s); err != nil {
		t.Fatalf("Set: %v", err)
	}

	stop := errors.New("stop")
	if _, err := c.Update(ctx, s.ID, func(cur *model.WizardSession) error {
		cur.State.Respondent.Email = "lost@example.com"
		return stop
	}); !errors.Is(err, stop) {
		t.Errorf("Update(fn error) err = %v", err)
	}
	if got, _ := c.Get(ctx, s.ID); got == nil || got.State.Respondent.Email != "" {
		t.Errorf("failed update was written: %+v", got)
	}

	const writers = 8
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("q%d", i+1)
			_, err := c.Update(ctx, s.ID, func(cur *model.WizardSession) error {
				cur.State.Level2[id] = model.QuestionResponse{MeetsRequirement: model.AnswerYes}
				return nil
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Errorf("concurrent Update: %v", err)
		}
	}

	got, err := c.Get(ctx, s.ID)
	if err != nil || got == nil {
		t.Fatalf("Get = %v, %v", got, err)
	}
	for i := 0; i < writers; i++ {
		id := fmt.Sprintf("q%d", i+1)
		if got.State.Level2[id].MeetsRequirement != model.AnswerYes {
			t.Errorf("answer %s lost", id)
		}
	}
}

func TestHistoryCache(t *testing.T) {
	client := redisClient(t)
	c := NewHistoryCache(client, time.Minute)
	ctx := context.Background()
	email := uuid.NewString() + "@example.com"
	t.Cleanup(func() { client.Del(context.Background(), "history:"+email) })

	if list, err := c.Get(ctx, email); err != nil || list != nil {
		t.Fatalf("Get(miss) = %v, %v", list, err)
	}

	if err := c.Set(ctx, email, []model.ResponseSummary{}); err != nil {
		t.Fatalf("Set(empty): %v", err)
	}
	list, err := c.Get(ctx, email)
	if err != nil || list == nil || len(list) != 0 {
		t.Errorf("Get(empty) = %v, %v", list, err)
	}

	want := []model.ResponseSummary{{ID: "r1", Email: email, MaturityIndex: 2}}
	if err := c.Set(ctx, email, want); err != nil {
		t.Fatalf("Set: %v", err)
	}
	list, err = c.Get(ctx, email)
	if err != nil || len(list) != 1 || list[0].ID != "r1" || list[0].MaturityIndex != 2 {
		t.Errorf("Get = %+v, %v", list, err)
	}

	if err := c.Invalidate(ctx, email); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	if list, _ := c.Get(ctx, email); list != nil {
		t.Errorf("entry survived Invalidate: %+v", list)
	}
}
