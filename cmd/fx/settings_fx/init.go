package settings_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"trippay/internal/repositories"
	"trippay/internal/services"
	mem "trippay/pkg/memcache"
)

var Module = fx.Provide(
	provideSettingsRepository,
	provideSettingsCache,
	provideSettingsService,
)

func provideSettingsRepository(db *gorm.DB) repositories.SettingsRepositoryInterface {
	return repositories.NewSettingsRepository(db)
}

func provideSettingsCache() *mem.SettingsCache {
	return mem.NewSettingsCache()
}

func provideSettingsService(
	repo repositories.SettingsRepositoryInterface,
	cache *mem.SettingsCache,
	logger *zap.Logger,
) services.SettingsServiceInterface {
	return services.NewSettingsService(repo, cache, logger)
}
