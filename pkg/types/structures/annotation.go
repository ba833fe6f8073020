package structures

import "image"

// Annotation은 한 제공자의 OCR 응답을 원본 이미지 사본 위에 렌더링한 결과입니다
type Annotation struct {
	Image     *image.NRGBA `json:"-"`
	AllText   string       `json:"allText"`
	SavedPath string       `json:"savedPath,omitempty"` // 베스트에포트 저장 경로 (실패 시 빈 값)
}
