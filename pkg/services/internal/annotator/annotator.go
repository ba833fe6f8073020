package annotator

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	_interface "github.com/supercontrast-ai/vis-demo/pkg/interfaces"
	constants "github.com/supercontrast-ai/vis-demo/pkg/types"
	structure "github.com/supercontrast-ai/vis-demo/pkg/types/structures"
	"github.com/supercontrast-ai/vis-demo/pkg/utils"
)

// 박스 외곽선과 라벨 색상
var (
	boxColor   = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	labelColor = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
)

// 라벨 베이스라인을 박스 원점 위로 올리는 간격(픽셀)
const labelOffset = 4

// AnnotatorImpl는 OCR 어노테이션 렌더러 구현체입니다
type AnnotatorImpl struct{}

// NewAnnotatorService는 새 어노테이션 서비스를 생성합니다
func NewAnnotatorService() _interface.AnnotatorService {
	return &AnnotatorImpl{}
}

// Annotate는 제공자별 OCR 응답을 원본 이미지 사본 위에 렌더링합니다.
// 제공자마다 독립적인 사본을 사용하므로 한 제공자의 박스가 다른 제공자의
// 이미지에 나타나지 않습니다. 한 제공자의 렌더링 실패는 해당 항목만
// 빠뜨리고 나머지 렌더링을 막지 않습니다. 디스크에는 접근하지 않습니다.
func (a *AnnotatorImpl) Annotate(src image.Image, results structure.ResultMap) map[constants.Provider]*structure.Annotation {
	start := time.Now()

	annotations := make(map[constants.Provider]*structure.Annotation)
	for provider, response := range results {
		if response == nil {
			continue
		}

		annotated, err := a.render(src, response)
		if err != nil {
			utils.RenderErrorLog(string(provider), "", err.Error())
			continue
		}

		annotations[provider] = &structure.Annotation{
			Image:   annotated,
			AllText: response.AllText,
		}
	}

	utils.RecordAnnotationTime(time.Since(start).Seconds())
	return annotations
}

// render는 한 제공자의 박스들을 원본 사본 위에 그립니다
func (a *AnnotatorImpl) render(src image.Image, response *structure.TaskResponse) (annotated *image.NRGBA, err error) {
	// 렌더링 중 패닉은 해당 제공자 하나의 실패로 격리
	defer func() {
		if r := recover(); r != nil {
			annotated = nil
			err = fmt.Errorf("렌더링 패닉: %v", r)
		}
	}()

	annotated = imaging.Clone(src)

	for _, box := range response.Boxes {
		// 부호 있는 폭/높이를 그대로 그리기 프리미티브에 전달 (보정하지 않음)
		x, y, w, h := box.Rect()
		StrokeRect(annotated, int(x), int(y), int(w), int(h), boxColor)
		DrawLabel(annotated, int(x), int(y)-labelOffset, box.Text, labelColor)
	}

	return annotated, nil
}

// Placeholder는 실패했거나 선택되지 않은 제공자용 대체 이미지를 반환합니다
func (a *AnnotatorImpl) Placeholder() *image.NRGBA {
	return imaging.New(
		constants.PLACEHOLDER_IMAGE_WIDTH,
		constants.PLACEHOLDER_IMAGE_HEIGHT,
		color.NRGBA{R: 200, G: 200, B: 200, A: 255},
	)
}

// SaveAnnotated는 어노테이션 이미지를 출력 디렉터리에 저장하고 경로를 반환합니다.
// 파일 이름은 ocr_<제공자>_<원본파일명>으로 결정적입니다.
// 저장은 베스트에포트이며 호출자는 실패를 요청 오류로 취급하지 않습니다.
func SaveAnnotated(outputDir string, provider constants.Provider, sourceName string, img image.Image) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("출력 디렉터리 생성 실패: %v", err)
	}

	name := fmt.Sprintf("%s_%s_%s",
		constants.ANNOTATED_FILE_PREFIX,
		strings.ToLower(string(provider)),
		sourceName)

	// imaging이 저장할 수 없는 확장자는 PNG로 대체
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff":
	default:
		name = strings.TrimSuffix(name, filepath.Ext(name)) + ".png"
	}

	outputPath := filepath.Join(outputDir, name)
	if err := imaging.Save(img, outputPath); err != nil {
		return "", fmt.Errorf("어노테이션 이미지 저장 실패: %v", err)
	}

	return outputPath, nil
}
