// Package cache 換算結果快取，提供記憶體與 Redis 兩種後端。
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"recipe-converter/internal/infrastructure/config"
	"recipe-converter/internal/pkg/common"
)

// Store 快取後端
type Store interface {
	// Get 找不到時回傳 common.ErrCacheMiss
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// StatsProvider 可回報統計資訊的後端
type StatsProvider interface {
	GetStats() map[string]interface{}
}

// Pinger 可檢查連線狀態的後端
type Pinger interface {
	Ping(ctx context.Context) error
}

// New 依設定建立快取後端，停用時回傳 nil
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	if !cfg.Cache.Enabled {
		common.LogInfo("快取已停用")
		return nil, nil
	}

	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		store, err := NewRedisStore(ctx, cfg.Redis, cfg.Cache.TTL)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.CacheBackendMemory, "":
		return NewManager(cfg.Cache), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}

// Key 以換算方向與食譜原文產生快取鍵
func Key(from, to, text string) string {
	hash := sha256.Sum256([]byte(from + "|" + to + "|" + text))
	return "convert:" + hex.EncodeToString(hash[:])
}
