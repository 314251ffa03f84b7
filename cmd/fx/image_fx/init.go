package image_fx

import (
	"go.uber.org/fx"

	"tourvisto/internal/config"
	"tourvisto/internal/services"
	"tourvisto/pkg/memcache"
)

var Module = fx.Provide(provideImageCache, provideImageService)

func provideImageCache() memcache.ImageCache {
	return memcache.NewImageResults()
}

func provideImageService(cfg *config.Config, cache memcache.ImageCache) services.ImageService {
	return services.NewImageService(cfg, cache)
}
