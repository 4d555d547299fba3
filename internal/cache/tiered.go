package cache

import (
	"context"
	"log"
)

// Tier names where a payload was served from.
type Tier string

const (
	TierMemory     Tier = "memory"
	TierPersistent Tier = "persistent"
	TierNetwork    Tier = "network"
	TierMiss       Tier = "miss"
)

// Lookup is the outcome of a tiered read.
type Lookup struct {
	Data []byte
	Tier Tier
}

// TieredCache is the single two-tier cache abstraction: a fresh-windowed
// memory map in front of a persistent key/value store. Writes fan out to
// both tiers; deletes and purges hit both, so invalidation has exactly one
// code path.
type TieredCache struct {
	mem   *MemoryCache
	store Store
}

func NewTieredCache(store Store) *TieredCache {
	return &TieredCache{mem: NewMemoryCache(), store: store}
}

// Get checks the memory tier first (fresh entries only), then the persistent
// tier. A persistent-tier read error is logged and treated as a miss so a
// degraded store never blocks the network path.
func (c *TieredCache) Get(ctx context.Context, key Key) Lookup {
	k := key.String()
	if data, ok := c.mem.Get(k); ok {
		return Lookup{Data: data, Tier: TierMemory}
	}

	data, err := c.store.Get(ctx, k)
	if err != nil {
		log.Printf("[cache][tiered] persistent read failed key=%s err=%v", k, err)
		return Lookup{Tier: TierMiss}
	}
	if data == nil {
		return Lookup{Tier: TierMiss}
	}
	return Lookup{Data: data, Tier: TierPersistent}
}

// GetPersistent reads the persistent tier only, ignoring memory freshness.
// Used as the last-resort fallback after a failed network fetch.
func (c *TieredCache) GetPersistent(ctx context.Context, key Key) []byte {
	data, err := c.store.Get(ctx, key.String())
	if err != nil {
		log.Printf("[cache][tiered] persistent fallback read failed key=%s err=%v", key, err)
		return nil
	}
	return data
}

// Set writes the payload to both tiers. The memory tier is written even when
// the persistent write fails, so callers still get the freshness window.
func (c *TieredCache) Set(ctx context.Context, key Key, data []byte) error {
	k := key.String()
	c.mem.Set(k, data)
	if err := c.store.Set(ctx, k, data); err != nil {
		log.Printf("[cache][tiered] persistent write failed key=%s err=%v", k, err)
		return err
	}
	return nil
}

// Delete removes one key from both tiers.
func (c *TieredCache) Delete(ctx context.Context, key Key) error {
	k := key.String()
	c.mem.Delete(k)
	return c.store.Delete(ctx, k)
}

// PurgeKind removes every entry of the given kind from both tiers.
func (c *TieredCache) PurgeKind(ctx context.Context, kind Kind) error {
	c.mem.DeletePrefix(kind.Prefix())
	return c.store.DeletePrefix(ctx, kind.Prefix())
}

// PurgeMemory clears only the in-process tier.
func (c *TieredCache) PurgeMemory() {
	c.mem.PurgeAll()
}

// Purge clears both tiers. Called when the active identity changes so one
// tenant's responses never leak into another session.
func (c *TieredCache) Purge(ctx context.Context) error {
	c.mem.PurgeAll()
	return c.store.PurgeAll(ctx)
}
