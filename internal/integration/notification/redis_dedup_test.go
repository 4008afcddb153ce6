package notification

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func newTestDeduper(t *testing.T) (*RedisDeduper, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisDeduper(client, 48*time.Hour), mr
}

func TestRedisDeduper(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("first mark is fresh, second is not", func(t *testing.T) {
		deduper, _ := newTestDeduper(t)
		id := uuid.New()

		fresh, err := deduper.MarkSent(ctx, id, day)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !fresh {
			t.Error("expected first mark to be fresh")
		}

		fresh, err = deduper.MarkSent(ctx, id, day)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fresh {
			t.Error("expected repeat mark to be suppressed")
		}
	})

	t.Run("different days are independent", func(t *testing.T) {
		deduper, _ := newTestDeduper(t)
		id := uuid.New()

		if fresh, _ := deduper.MarkSent(ctx, id, day); !fresh {
			t.Fatal("expected first day to be fresh")
		}
		if fresh, _ := deduper.MarkSent(ctx, id, day.AddDate(0, 0, 1)); !fresh {
			t.Error("expected next day to be fresh")
		}
	})

	t.Run("keys expire after the ttl", func(t *testing.T) {
		deduper, mr := newTestDeduper(t)
		id := uuid.New()

		if fresh, _ := deduper.MarkSent(ctx, id, day); !fresh {
			t.Fatal("expected first mark to be fresh")
		}
		mr.FastForward(49 * time.Hour)
		if fresh, _ := deduper.MarkSent(ctx, id, day); !fresh {
			t.Error("expected mark to be fresh after ttl expiry")
		}
	})
}

func TestInMemoryDeduper(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	deduper := NewInMemoryDeduper()
	id := uuid.New()

	if fresh, _ := deduper.MarkSent(ctx, id, day); !fresh {
		t.Fatal("expected first mark to be fresh")
	}
	if fresh, _ := deduper.MarkSent(ctx, id, day); fresh {
		t.Error("expected repeat mark to be suppressed")
	}
	if fresh, _ := deduper.MarkSent(ctx, id, day.AddDate(0, 0, 1)); !fresh {
		t.Error("expected next day to be fresh")
	}
}

func TestClipURL(t *testing.T) {
	if ClipURL("Digital") == "" || ClipURL("Bell") == "" || ClipURL("Playful") == "" || ClipURL("Gentle") == "" {
		t.Error("expected every known tone to resolve to a clip")
	}
	if ClipURL("None") != "" || ClipURL("") != "" || ClipURL("Loud") != "" {
		t.Error("expected unknown tones to resolve to silence")
	}
}
