// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package todate

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/oradate/pkg/util/log"
	lru "github.com/hashicorp/golang-lru/v2"
)

// FormatCache is a bounded cache of compiled templates, keyed by the
// template text. It is safe for concurrent use.
type FormatCache struct {
	cache   *lru.Cache[string, *Pattern]
	metrics *Metrics
	every   log.EveryN
}

// NewFormatCache returns a cache holding up to size patterns. Metrics may
// be nil.
func NewFormatCache(size int, metrics *Metrics) (*FormatCache, error) {
	fc := &FormatCache{metrics: metrics, every: log.Every(10 * time.Second)}
	cache, err := lru.NewWithEvict[string, *Pattern](size, fc.onEvict)
	if err != nil {
		return nil, errors.Wrapf(err, "creating format cache of size %d", size)
	}
	fc.cache = cache
	return fc, nil
}

func (fc *FormatCache) onEvict(template string, _ *Pattern) {
	if fc.metrics != nil {
		fc.metrics.CacheEvictions.Inc()
	}
	if fc.every.ShouldLog() {
		log.VEventf(context.Background(), 2, "format cache full, evicted template %q", template)
	}
}

// Lookup returns the compiled pattern for template, compiling and caching
// it on a miss. Failed compilations are not cached.
func (fc *FormatCache) Lookup(ctx context.Context, template string) (*Pattern, error) {
	if p, ok := fc.cache.Get(template); ok {
		if fc.metrics != nil {
			fc.metrics.CacheHits.Inc()
		}
		return p, nil
	}
	if fc.metrics != nil {
		fc.metrics.CacheMisses.Inc()
	}
	p, err := Translate(template)
	fc.metrics.recordCompile(err)
	if err != nil {
		return nil, err
	}
	log.VEventf(ctx, 2, "compiled template %q to %q", template, p.String())
	fc.cache.Add(template, p)
	return p, nil
}

// Len returns the number of cached patterns.
func (fc *FormatCache) Len() int {
	return fc.cache.Len()
}

// Purge empties the cache.
func (fc *FormatCache) Purge() {
	fc.cache.Purge()
}
