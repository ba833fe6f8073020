package assembler

import (
	constants "github.com/supercontrast-ai/vis-demo/pkg/types"
	structure "github.com/supercontrast-ai/vis-demo/pkg/types/structures"
)

// FieldExtractor는 한 제공자의 응답에서 표시 필드들을 추출합니다.
// 반환 슬라이스의 길이는 항상 플레이스홀더 길이와 같아야 합니다.
type FieldExtractor func(provider constants.Provider, response *structure.TaskResponse) []string

// Assemble은 결과 매핑을 정규 제공자 순서에 투영하여 평탄한 표시 값
// 시퀀스를 만듭니다. 순서에 있는 모든 제공자가 항목을 가지며, 결과가
// 없는 제공자(실패 또는 미선택)는 플레이스홀더 필드로 채워집니다.
// 출력 길이는 len(order) * len(placeholder)로 고정되어 표시 계층이
// 위치 기반으로 바인딩할 수 있습니다. 순서에 없는 제공자의 결과는 무시합니다.
func Assemble(results structure.ResultMap, order []constants.Provider, placeholder []string, extract FieldExtractor) []string {
	values := make([]string, 0, len(order)*len(placeholder))

	for _, provider := range order {
		response, exists := results[provider]
		if !exists || response == nil {
			values = append(values, placeholder...)
			continue
		}

		fields := extract(provider, response)
		if len(fields) != len(placeholder) {
			// 추출기가 형태를 어기면 해당 제공자는 플레이스홀더로 대체
			values = append(values, placeholder...)
			continue
		}

		values = append(values, fields...)
	}

	return values
}

// TextField는 텍스트 단일 필드 작업(전사/번역)용 추출기입니다
func TextField(_ constants.Provider, response *structure.TaskResponse) []string {
	return []string{response.Text}
}

// TextPlaceholder는 텍스트 단일 필드 작업의 플레이스홀더입니다
var TextPlaceholder = []string{""}

// OCRPlaceholder는 OCR 작업(어노테이션 이미지 경로 + 전체 텍스트)의 플레이스홀더입니다
var OCRPlaceholder = []string{"", ""}
