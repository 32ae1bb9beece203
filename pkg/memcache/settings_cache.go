// pkg/memcache/settings_cache.go
package mem

import (
	"sync"

	"trippay/internal/models/db_models"
)

// SettingsCache holds the most recently loaded payment settings so the
// router and catalog do not hit the store on every submission. Invalidate
// after every settings update.
type SettingsCache struct {
	mu       sync.RWMutex
	settings *db_models.PaymentSettings
}

func NewSettingsCache() *SettingsCache {
	return &SettingsCache{}
}

func (c *SettingsCache) Get() (*db_models.PaymentSettings, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.settings == nil {
		return nil, false
	}
	copied := *c.settings
	return &copied, true
}

func (c *SettingsCache) Set(settings *db_models.PaymentSettings) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if settings == nil {
		c.settings = nil
		return
	}
	copied := *settings
	c.settings = &copied
}

func (c *SettingsCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings = nil
}
