package cache

import (
	"context"
	"encoding/json"
	"log"
)

// Result is a resolved value together with where it came from. Stale is true
// only when a persistent entry was served because the network fetch failed;
// callers can surface that to the user instead of silently showing old data.
type Result[T any] struct {
	Value T
	Tier  Tier
	Stale bool
}

// Resolve is the cache-aside read path. Strict order, first match wins:
//
//  1. forceRefresh false: fresh memory hit is returned as-is.
//  2. forceRefresh false: persistent hit is returned without a freshness
//     check (persistent entries are valid until refreshed).
//  3. fetch is invoked. On success the payload is written to both tiers and
//     returned; on failure the persistent tier is read once more as a
//     last-resort fallback, and only when that also misses does the fetch
//     error propagate.
//
// forceRefresh true skips both read tiers but still populates them on
// success. Concurrent calls for the same key are not coalesced; both may
// reach fetch and the later write wins.
func Resolve[T any](ctx context.Context, tc *TieredCache, key Key, forceRefresh bool, fetch func(ctx context.Context) (T, error)) (Result[T], error) {
	var zero Result[T]

	if !forceRefresh {
		lookup := tc.Get(ctx, key)
		if lookup.Tier != TierMiss {
			var v T
			if err := json.Unmarshal(lookup.Data, &v); err == nil {
				return Result[T]{Value: v, Tier: lookup.Tier}, nil
			}
			// Undecodable entry: drop it and fall through to the network.
			log.Printf("[cache][resolve] dropping corrupt entry key=%s", key)
			if err := tc.Delete(ctx, key); err != nil {
				log.Printf("[cache][resolve] delete corrupt entry failed key=%s err=%v", key, err)
			}
		}
	}

	v, err := fetch(ctx)
	if err != nil {
		if data := tc.GetPersistent(ctx, key); data != nil {
			var fallback T
			if uerr := json.Unmarshal(data, &fallback); uerr == nil {
				log.Printf("[cache][resolve] serving persistent fallback key=%s fetch_err=%v", key, err)
				return Result[T]{Value: fallback, Tier: TierPersistent, Stale: true}, nil
			}
		}
		return zero, err
	}

	if data, merr := json.Marshal(v); merr == nil {
		if serr := tc.Set(ctx, key, data); serr != nil {
			log.Printf("[cache][resolve] cache write failed key=%s err=%v", key, serr)
		}
	} else {
		log.Printf("[cache][resolve] payload marshal failed key=%s err=%v", key, merr)
	}
	return Result[T]{Value: v, Tier: TierNetwork}, nil
}
