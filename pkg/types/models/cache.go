package model

import (
	"time"

	structure "github.com/supercontrast-ai/vis-demo/pkg/types/structures"
)

// ResponseCache는 DynamoDB에 저장될 제공자 응답 캐시 아이템을 나타냅니다.
type ResponseCache struct {
	CacheKey  string                  `json:"cacheKey"` // 프라이머리 키 (task|provider|payload 해시)
	Task      string                  `json:"task"`
	Provider  string                  `json:"provider"`
	Response  *structure.TaskResponse `json:"response"`
	CreatedAt time.Time               `json:"createdAt"`
	ExpiresAt time.Time               `json:"expiresAt"`
}
