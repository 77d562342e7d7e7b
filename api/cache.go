package api

import "sync"

// tagCache is the read-through response cache. Each cached body is provided
// under one or more tags; invalidating a tag drops every body provided under
// it. This mirrors the front end's query cache: reads subscribe, mutations
// invalidate.
type tagCache struct {
	mu      sync.RWMutex
	entries map[string][]byte
	byTag   map[string]map[string]struct{} // tag -> cache keys
}

func newTagCache() *tagCache {
	return &tagCache{
		entries: make(map[string][]byte),
		byTag:   make(map[string]map[string]struct{}),
	}
}

func (tc *tagCache) Get(key string) ([]byte, bool) {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	data, ok := tc.entries[key]
	return data, ok
}

func (tc *tagCache) Provide(key string, data []byte, tags ...string) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.entries[key] = data
	for _, tag := range tags {
		keys, ok := tc.byTag[tag]
		if !ok {
			keys = make(map[string]struct{})
			tc.byTag[tag] = keys
		}
		keys[key] = struct{}{}
	}
}

func (tc *tagCache) Invalidate(tags ...string) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	for _, tag := range tags {
		for key := range tc.byTag[tag] {
			delete(tc.entries, key)
		}
		delete(tc.byTag, tag)
	}
}

// Patch rewrites a cached body in place (optimistic update). The returned
// restore func puts the previous body back; callers invoke it when the
// follow-up mutation fails.
func (tc *tagCache) Patch(key string, data []byte) (restore func(), ok bool) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	prev, ok := tc.entries[key]
	if !ok {
		return nil, false
	}
	tc.entries[key] = data
	return func() {
		tc.mu.Lock()
		defer tc.mu.Unlock()
		tc.entries[key] = prev
	}, true
}
