package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"tourvisto/internal/config"
	"tourvisto/pkg/memcache"
)

// ImageService looks up destination photos for newly generated trips. Lookup
// failures never surface to callers; a trip without images is still a trip.
type ImageService interface {
	SearchImages(ctx context.Context, query string, limit int) ([]string, error)
}

type imageService struct {
	accessKey string
	baseURL   string
	cache     memcache.ImageCache
	client    *http.Client
}

func NewImageService(cfg *config.Config, cache memcache.ImageCache) ImageService {
	return &imageService{
		accessKey: cfg.Unsplash.AccessKey,
		baseURL:   "https://api.unsplash.com",
		cache:     cache,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

const imageCacheTTL = 30 * time.Minute

func (s *imageService) SearchImages(ctx context.Context, query string, limit int) ([]string, error) {
	if s.accessKey == "" {
		return nil, fmt.Errorf("UNSPLASH_ACCESS_KEY not set")
	}

	if urls, ok := s.cache.Get(query); ok {
		return capURLs(urls, limit), nil
	}

	api := fmt.Sprintf("%s/search/photos?query=%s&client_id=%s",
		s.baseURL, url.QueryEscape(query), url.QueryEscape(s.accessKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, api, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unsplash returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var result struct {
		Results []struct {
			Urls map[string]string `json:"urls"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("invalid response from unsplash: %w", err)
	}

	var urls []string
	for _, r := range result.Results {
		u := r.Urls["regular"]
		if u == "" {
			u = r.Urls["small"]
		}
		if u != "" {
			urls = append(urls, u)
		}
	}

	s.cache.Set(query, urls, imageCacheTTL)
	return capURLs(urls, limit), nil
}

func capURLs(urls []string, limit int) []string {
	if limit > 0 && len(urls) > limit {
		return urls[:limit]
	}
	return urls
}
