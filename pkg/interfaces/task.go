package _interface

import (
	"image"

	constants "github.com/supercontrast-ai/vis-demo/pkg/types"
	structure "github.com/supercontrast-ai/vis-demo/pkg/types/structures"
)

// TaskClient는 작업 종류와 제공자에 대해 정규화된 요청/응답을 처리하는 어댑터입니다
type TaskClient interface {
	// BuildRequest는 작업별 요청을 생성합니다
	BuildRequest(task constants.TaskKind, payload structure.TaskPayload, options structure.TaskOptions) *structure.TaskRequest

	// Invoke는 (작업, 제공자)에 대해 요청을 실행하고 정규화된 응답을 반환합니다
	Invoke(task constants.TaskKind, provider constants.Provider, request *structure.TaskRequest) (*structure.TaskResponse, error)
}

// FanoutService는 선택된 제공자 각각에 대해 어댑터를 호출하고 응답을 수집합니다
type FanoutService interface {
	// FanOut은 제공자별로 요청을 디스패치하고 결과 매핑을 반환합니다.
	// 한 제공자의 실패는 매핑에서 해당 항목이 빠지는 것으로 끝나며 나머지 수집을 막지 않습니다.
	FanOut(task constants.TaskKind, payload structure.TaskPayload, providers []constants.Provider, options structure.TaskOptions) structure.ResultMap
}

// AnnotatorService는 OCR 응답의 감지 영역을 이미지 위에 렌더링합니다
type AnnotatorService interface {
	// Annotate는 제공자별로 원본 사본 위에 박스와 텍스트를 그립니다 (디스크 접근 없음)
	Annotate(src image.Image, results structure.ResultMap) map[constants.Provider]*structure.Annotation

	// Placeholder는 실패했거나 선택되지 않은 제공자용 대체 이미지를 반환합니다
	Placeholder() *image.NRGBA
}

// ProcessService는 표시 계층에 노출되는 처리 진입점입니다
type ProcessService interface {
	// Process는 팬아웃-조립 사이클 전체를 수행하고 고정 형태의 표시 값 시퀀스를 반환합니다
	Process(task constants.TaskKind, payload structure.TaskPayload, providers []constants.Provider, options structure.TaskOptions) ([]string, error)
}
