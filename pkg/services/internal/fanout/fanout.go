package fanout

import (
	"sync"

	_interface "github.com/supercontrast-ai/vis-demo/pkg/interfaces"
	constants "github.com/supercontrast-ai/vis-demo/pkg/types"
	structure "github.com/supercontrast-ai/vis-demo/pkg/types/structures"
	"github.com/supercontrast-ai/vis-demo/pkg/utils"
)

// FanoutImpl는 팬아웃 엔진 구현체입니다
type FanoutImpl struct {
	taskClient _interface.TaskClient
}

// NewFanoutService는 새 팬아웃 서비스를 생성합니다
func NewFanoutService(taskClient _interface.TaskClient) _interface.FanoutService {
	return &FanoutImpl{
		taskClient: taskClient,
	}
}

// FanOut은 선택된 제공자 각각에 대해 어댑터를 호출하고 결과 매핑을 반환합니다.
// 제공자 간 호출은 독립적이며 동시에 실행됩니다. 한 제공자의 실패는 매핑에서
// 해당 항목이 빠지는 것으로 끝나고 나머지 수집을 막지 않습니다.
// 같은 제공자가 중복 선택되어도 한 번만 호출합니다.
func (f *FanoutImpl) FanOut(task constants.TaskKind, payload structure.TaskPayload, providers []constants.Provider, options structure.TaskOptions) structure.ResultMap {
	results := make(structure.ResultMap)

	var mu sync.Mutex
	var wg sync.WaitGroup

	seen := make(map[constants.Provider]bool)
	for _, provider := range providers {
		if seen[provider] {
			continue
		}
		seen[provider] = true

		// 해당 작업을 지원하지 않는 제공자는 경계에서 걸러냄
		if !constants.IsValidProvider(task, provider) {
			utils.Warn("fanout", "작업 %s을(를) 지원하지 않는 제공자: %s", task, provider)
			continue
		}

		wg.Add(1)
		go func(provider constants.Provider) {
			defer wg.Done()

			// 요청은 제공자 호출 단위로 새로 생성 (호출 간 공유 없음)
			request := f.taskClient.BuildRequest(task, payload, options)

			response, err := f.taskClient.Invoke(task, provider, request)
			if err != nil {
				// 실패한 제공자는 결과 매핑에서 제외하고 계속 진행
				utils.Warn("fanout", "제공자 %s 호출 실패: %v", provider, err)
				utils.RecordError("fanout", "provider_invocation")
				return
			}

			mu.Lock()
			results[provider] = response
			mu.Unlock()
		}(provider)
	}

	wg.Wait()
	return results
}
