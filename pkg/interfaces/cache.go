package _interface

import model "github.com/supercontrast-ai/vis-demo/pkg/types/models"

// ResponseRepository는 제공자 응답 캐시 저장소 인터페이스입니다
type ResponseRepository interface {
	// GetResponseCache는 캐시 키에 대한 응답 캐시를 가져옵니다 (없으면 nil, nil)
	GetResponseCache(cacheKey string) (*model.ResponseCache, error)

	// SaveResponseCache는 제공자 응답을 캐시에 저장합니다
	SaveResponseCache(cache *model.ResponseCache) error
}
