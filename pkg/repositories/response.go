package repository

import (
	"fmt"
	"sync"
	"time"

	_interface "github.com/supercontrast-ai/vis-demo/pkg/interfaces"
	constants "github.com/supercontrast-ai/vis-demo/pkg/types"
	model "github.com/supercontrast-ai/vis-demo/pkg/types/models"
)

// InMemoryRepoImpl는 인메모리 응답 캐시 구현체입니다
type InMemoryRepoImpl struct {
	// 응답 캐시 맵 (캐시 키 -> 결과)
	cache     map[string]*model.ResponseCache
	cacheLock sync.RWMutex
}

// NewResponseRepository는 새 인메모리 응답 캐시 저장소를 생성합니다
func NewResponseRepository() _interface.ResponseRepository {
	return &InMemoryRepoImpl{
		cache: make(map[string]*model.ResponseCache),
	}
}

// GetResponseCache는 캐시 키에 대한 응답 캐시를 가져옵니다
func (db *InMemoryRepoImpl) GetResponseCache(cacheKey string) (*model.ResponseCache, error) {
	if cacheKey == "" {
		return nil, fmt.Errorf("캐시 키가 비어 있습니다")
	}

	db.cacheLock.RLock()
	defer db.cacheLock.RUnlock()

	cache, exists := db.cache[cacheKey]
	if !exists {
		return nil, nil // 캐시 없음 (에러 아님)
	}

	// 캐시 만료 확인
	if time.Now().After(cache.ExpiresAt) {
		return nil, nil // 만료된 캐시
	}

	return cache, nil
}

// SaveResponseCache는 제공자 응답을 캐시에 저장합니다
func (db *InMemoryRepoImpl) SaveResponseCache(cache *model.ResponseCache) error {
	if cache == nil || cache.CacheKey == "" {
		return fmt.Errorf("캐시 키가 비어 있습니다")
	}

	if cache.Response == nil {
		return fmt.Errorf("캐시할 응답이 비어 있습니다")
	}

	db.cacheLock.Lock()
	defer db.cacheLock.Unlock()

	now := time.Now()
	cache.CreatedAt = now
	if cache.ExpiresAt.IsZero() {
		cache.ExpiresAt = now.Add(constants.CACHE_TTL)
	}

	db.cache[cache.CacheKey] = cache
	return nil
}
