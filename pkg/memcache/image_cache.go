package memcache

import (
	"strings"
	"sync"
	"time"
)

// ImageCache memoizes image-search results per query so repeated trip
// generations for the same destination do not burn Unsplash quota.
type ImageCache interface {
	Set(query string, urls []string, ttl time.Duration)
	Get(query string) ([]string, bool)
}

type entry struct {
	urls      []string
	expiresAt time.Time
}

type ImageResults struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewImageResults() *ImageResults {
	return &ImageResults{
		data: make(map[string]entry),
	}
}

func key(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

func (s *ImageResults) Set(query string, urls []string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key(query)] = entry{
		urls:      urls,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *ImageResults) Get(query string) ([]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key(query)]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.urls, true
}
