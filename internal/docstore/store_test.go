package docstore

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/blanklearn/marketplace-backend/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func TestOpenUnavailable(t *testing.T) {
	testCases := []struct {
		name string
		cfg  Config
	}{
		{"not configured", Config{}},
		{"invalid url", Config{URL: "not-a-redis-url"}},
		{"unreachable server", Config{URL: "redis://127.0.0.1:1/0"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			store, err := Open(ctx, tc.cfg, zerolog.Nop())
			if store != nil {
				t.Fatal("expected no store")
			}
			if !errors.Is(err, ErrUnavailable) {
				t.Fatalf("expected ErrUnavailable, got %v", err)
			}
		})
	}
}

// memoryHash keeps hashes in memory and can be told to fail every call.
type memoryHash struct {
	hashes map[string]map[string]string
	err    error
}

func newMemoryHash() *memoryHash {
	return &memoryHash{hashes: map[string]map[string]string{}}
}

func (m *memoryHash) HGetAll(_ context.Context, key string) *redis.MapStringStringCmd {
	if m.err != nil {
		return redis.NewMapStringStringResult(nil, m.err)
	}
	out := map[string]string{}
	for k, v := range m.hashes[key] {
		out[k] = v
	}
	return redis.NewMapStringStringResult(out, nil)
}

func (m *memoryHash) HGet(_ context.Context, key, field string) *redis.StringCmd {
	if m.err != nil {
		return redis.NewStringResult("", m.err)
	}
	v, ok := m.hashes[key][field]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *memoryHash) HSet(_ context.Context, key string, values ...any) *redis.IntCmd {
	if m.err != nil {
		return redis.NewIntResult(0, m.err)
	}
	if m.hashes[key] == nil {
		m.hashes[key] = map[string]string{}
	}
	for i := 0; i+1 < len(values); i += 2 {
		m.hashes[key][values[i].(string)] = string(values[i+1].([]byte))
	}
	return redis.NewIntResult(int64(len(values)/2), nil)
}

func (m *memoryHash) Close() error { return nil }

func TestStorePutGetAll(t *testing.T) {
	ctx := context.Background()
	h := newMemoryHash()
	s := NewStore(h, zerolog.Nop())

	for _, id := range []string{"t2", "t10", "t1"} {
		if err := s.Put(ctx, "teachers", id, map[string]string{"name": "n-" + id}); err != nil {
			t.Fatalf("Put(%s): %v", id, err)
		}
	}
	if _, ok := h.hashes[config.CacheKey.DocStoreCollectionKey("teachers")]["t1"]; !ok {
		t.Fatalf("documents not written under the collection hash: %v", h.hashes)
	}

	docs, err := s.All(ctx, "teachers")
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	var ids []string
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	if want := []string{"t1", "t10", "t2"}; !slices.Equal(ids, want) {
		t.Errorf("ids = %v, want %v", ids, want)
	}
	if string(docs[0].Data) != `{"name":"n-t1"}` {
		t.Errorf("t1 document = %s", docs[0].Data)
	}

	raw, err := s.Get(ctx, "teachers", "t10")
	if err != nil || string(raw) != `{"name":"n-t10"}` {
		t.Errorf("Get(t10) = %s, %v", raw, err)
	}
}

func TestStoreErrors(t *testing.T) {
	ctx := context.Background()
	h := newMemoryHash()
	s := NewStore(h, zerolog.Nop())

	if _, err := s.Get(ctx, "teachers", "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) = %v, want ErrNotFound", err)
	}

	h.err = errors.New("connection reset")
	if _, err := s.All(ctx, "teachers"); !errors.Is(err, h.err) {
		t.Errorf("All error = %v", err)
	}
	if _, err := s.Get(ctx, "teachers", "t1"); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("Get error = %v", err)
	}
	if err := s.Put(ctx, "teachers", "t1", struct{}{}); !errors.Is(err, h.err) {
		t.Errorf("Put error = %v", err)
	}
}
