package cache

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// fakeStore is an in-memory Store used across the package tests.
type fakeStore struct {
	entries map[string][]byte

	getErr error
	setErr error

	getCalls int
	setCalls int
}

var _ Store = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{entries: make(map[string][]byte)}
}

func (s *fakeStore) Get(_ context.Context, key string) ([]byte, error) {
	s.getCalls++
	if s.getErr != nil {
		return nil, s.getErr
	}
	data, ok := s.entries[key]
	if !ok {
		return nil, nil
	}
	return data, nil
}

func (s *fakeStore) Set(_ context.Context, key string, data []byte) error {
	s.setCalls++
	if s.setErr != nil {
		return s.setErr
	}
	s.entries[key] = data
	return nil
}

func (s *fakeStore) Delete(_ context.Context, key string) error {
	delete(s.entries, key)
	return nil
}

func (s *fakeStore) DeletePrefix(_ context.Context, prefix string) error {
	for k := range s.entries {
		if strings.HasPrefix(k, prefix) {
			delete(s.entries, k)
		}
	}
	return nil
}

func (s *fakeStore) PurgeAll(_ context.Context) error {
	s.entries = make(map[string][]byte)
	return nil
}

func TestTieredCacheGetPrecedence(t *testing.T) {
	ctx := context.Background()
	key := ProductsKey("")

	t.Run("fresh memory entry wins", func(t *testing.T) {
		store := newFakeStore()
		tc := NewTieredCache(store)

		if err := tc.Set(ctx, key, []byte(`mem`)); err != nil {
			t.Fatalf("set: %v", err)
		}
		store.entries[key.String()] = []byte(`store`)

		lookup := tc.Get(ctx, key)
		if lookup.Tier != TierMemory {
			t.Fatalf("expected memory tier, got %s", lookup.Tier)
		}
		if string(lookup.Data) != "mem" {
			t.Fatalf("unexpected payload: %s", lookup.Data)
		}
	})

	t.Run("stale memory falls through to persistent", func(t *testing.T) {
		store := newFakeStore()
		tc := NewTieredCache(store)
		if err := tc.Set(ctx, key, []byte(`old`)); err != nil {
			t.Fatalf("set: %v", err)
		}

		// Age the memory entry past the freshness window.
		base := time.Now()
		tc.mem.now = func() time.Time { return base.Add(FreshFor + time.Second) }

		lookup := tc.Get(ctx, key)
		if lookup.Tier != TierPersistent {
			t.Fatalf("expected persistent tier, got %s", lookup.Tier)
		}
		if string(lookup.Data) != "old" {
			t.Fatalf("unexpected payload: %s", lookup.Data)
		}
	})

	t.Run("both tiers empty is a miss", func(t *testing.T) {
		tc := NewTieredCache(newFakeStore())
		if lookup := tc.Get(ctx, key); lookup.Tier != TierMiss {
			t.Fatalf("expected miss, got %s", lookup.Tier)
		}
	})

	t.Run("persistent read error degrades to miss", func(t *testing.T) {
		store := newFakeStore()
		store.getErr = errors.New("table offline")
		tc := NewTieredCache(store)

		if lookup := tc.Get(ctx, key); lookup.Tier != TierMiss {
			t.Fatalf("expected miss on store failure, got %s", lookup.Tier)
		}
	})
}

func TestTieredCacheSetFanOut(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	tc := NewTieredCache(store)
	key := SalesKey()

	if err := tc.Set(ctx, key, []byte(`payload`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, ok := tc.mem.Get(key.String()); !ok {
		t.Fatalf("expected memory tier populated")
	}
	if string(store.entries[key.String()]) != "payload" {
		t.Fatalf("expected persistent tier populated")
	}
}

func TestTieredCacheSetKeepsMemoryOnStoreError(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.setErr = errors.New("throttled")
	tc := NewTieredCache(store)
	key := SalesKey()

	if err := tc.Set(ctx, key, []byte(`payload`)); err == nil {
		t.Fatalf("expected store error to surface")
	}
	if _, ok := tc.mem.Get(key.String()); !ok {
		t.Fatalf("expected memory tier written despite store failure")
	}
}

func TestTieredCachePurgeKind(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	tc := NewTieredCache(store)

	pairs := []Key{ProductsKey(""), ProductsKey("ana"), ClientsKey("")}
	for _, k := range pairs {
		if err := tc.Set(ctx, k, []byte(`x`)); err != nil {
			t.Fatalf("set %s: %v", k, err)
		}
	}

	if err := tc.PurgeKind(ctx, KindProducts); err != nil {
		t.Fatalf("purge kind: %v", err)
	}

	for _, k := range []Key{ProductsKey(""), ProductsKey("ana")} {
		if lookup := tc.Get(ctx, k); lookup.Tier != TierMiss {
			t.Fatalf("expected %s purged, got tier %s", k, lookup.Tier)
		}
	}
	if lookup := tc.Get(ctx, ClientsKey("")); lookup.Tier == TierMiss {
		t.Fatalf("expected clients entry to survive a products purge")
	}
}

func TestTieredCachePurge(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	tc := NewTieredCache(store)

	if err := tc.Set(ctx, SalesKey(), []byte(`x`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := tc.Purge(ctx); err != nil {
		t.Fatalf("purge: %v", err)
	}
	if lookup := tc.Get(ctx, SalesKey()); lookup.Tier != TierMiss {
		t.Fatalf("expected empty cache after purge, got tier %s", lookup.Tier)
	}
	if len(store.entries) != 0 {
		t.Fatalf("expected persistent tier emptied, %d entries left", len(store.entries))
	}
}

func TestKeyString(t *testing.T) {
	cases := []struct {
		key  Key
		want string
	}{
		{ProductsKey(""), "products"},
		{ProductsKey("ana"), "products/ana"},
		{ClientsKey("77.123"), "clients/77.123"},
		{SalesKey(), "sales"},
		{InvoiceFolioKey("1234"), "invoice:folio/1234"},
		{InvoiceIDKey(42), "invoice:id/42"},
	}
	for _, c := range cases {
		if got := c.key.String(); got != c.want {
			t.Fatalf("key %+v: got %q want %q", c.key, got, c.want)
		}
	}
}
