package structures

import (
	"time"

	constants "github.com/supercontrast-ai/vis-demo/pkg/types"
)

// ProviderStatus는 팬아웃에서 제공자 하나의 처리 결과입니다
type ProviderStatus struct {
	Provider  constants.Provider `json:"provider"`
	Succeeded bool               `json:"succeeded"`
}

// FanoutAudit은 팬아웃 한 사이클에 대한 감사 이벤트입니다
type FanoutAudit struct {
	Task        constants.TaskKind `json:"task"`
	RequestedAt time.Time          `json:"requestedAt"`
	DurationMs  int64              `json:"durationMs"`
	Providers   []ProviderStatus   `json:"providers"`
}
