package structures

import (
	constants "github.com/supercontrast-ai/vis-demo/pkg/types"
)

// Point는 이미지 픽셀 좌표계의 한 점입니다
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// BoundingBox는 감지된 텍스트 영역의 네 꼭짓점과 해당 텍스트 조각입니다
type BoundingBox struct {
	TopLeft     Point  `json:"topLeft"`
	TopRight    Point  `json:"topRight"`
	BottomRight Point  `json:"bottomRight"`
	BottomLeft  Point  `json:"bottomLeft"`
	Text        string `json:"text"`
}

// Rect는 원점 꼭짓점과 부호 있는 폭/높이를 반환합니다.
// 폭/높이는 대각 꼭짓점에서 원점 꼭짓점을 뺀 값 그대로이며,
// 좌표가 뒤집힌 박스도 보정하지 않고 음수로 전달합니다.
func (b BoundingBox) Rect() (x, y, w, h float64) {
	x = b.TopLeft.X
	y = b.TopLeft.Y
	w = b.BottomRight.X - b.TopLeft.X
	h = b.BottomRight.Y - b.TopLeft.Y
	return x, y, w, h
}

// TaskOptions는 한 번의 요청에서 모든 제공자에 동일하게 적용되는 작업 옵션입니다
type TaskOptions struct {
	SourceLanguage string `json:"sourceLanguage,omitempty"`
	TargetLanguage string `json:"targetLanguage,omitempty"`
}

// TaskPayload는 작업 종류별 입력입니다 (이미지 / 오디오 / 텍스트 중 하나)
type TaskPayload struct {
	Image     string `json:"image,omitempty"`     // 파일 경로, 디렉터리 또는 URL
	ImageData []byte `json:"imageData,omitempty"` // 인라인 이미지 (base64로 직렬화)
	AudioFile string `json:"audioFile,omitempty"` // 파일 경로 또는 URL
	AudioData []byte `json:"audioData,omitempty"` // 인라인 오디오 (base64로 직렬화)
	Text      string `json:"text,omitempty"`
}

// TaskRequest는 제공자 호출 단위로 새로 생성되는 요청입니다
type TaskRequest struct {
	Task    constants.TaskKind `json:"task"`
	Payload TaskPayload        `json:"payload"`
	Options TaskOptions        `json:"options"`
}

// TaskResponse는 제공자별 정규화된 응답입니다.
// OCR은 AllText와 Boxes를, 전사/번역은 Text를 사용합니다.
type TaskResponse struct {
	Text    string        `json:"text,omitempty"`
	AllText string        `json:"allText,omitempty"`
	Boxes   []BoundingBox `json:"boundingBoxes,omitempty"`
}

// ResultMap은 제공자별 응답 매핑입니다. 실패했거나 선택되지 않은 제공자는 항목이 없습니다.
type ResultMap map[constants.Provider]*TaskResponse
