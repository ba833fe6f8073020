package annotator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	constants "github.com/supercontrast-ai/vis-demo/pkg/types"
	structure "github.com/supercontrast-ai/vis-demo/pkg/types/structures"
)

func sampleBox() structure.BoundingBox {
	return structure.BoundingBox{
		TopLeft:     structure.Point{X: 10, Y: 10},
		TopRight:    structure.Point{X: 50, Y: 10},
		BottomRight: structure.Point{X: 50, Y: 30},
		BottomLeft:  structure.Point{X: 10, Y: 30},
		Text:        "HELLO",
	}
}

func TestAnnotateRendersPerProviderCopies(t *testing.T) {
	annotatorService := NewAnnotatorService()
	src := imaging.New(100, 60, white)

	results := structure.ResultMap{
		constants.ProviderAWS: {
			AllText: "HELLO",
			Boxes:   []structure.BoundingBox{sampleBox()},
		},
		constants.ProviderGCP: {
			AllText: "WORLD",
			// 박스 없는 응답도 유효 (텍스트만 렌더링 대상 없음)
		},
	}

	annotations := annotatorService.Annotate(src, results)

	if len(annotations) != 2 {
		t.Fatalf("어노테이션 수 = %d, 기대값 2", len(annotations))
	}

	aws := annotations[constants.ProviderAWS]
	if aws.AllText != "HELLO" {
		t.Errorf("AWS AllText = %q", aws.AllText)
	}
	if aws.Image.NRGBAAt(10, 10) != red {
		t.Error("AWS 사본에 박스가 그려지지 않았습니다")
	}

	// 박스는 해당 제공자의 사본에만 나타나야 함
	gcp := annotations[constants.ProviderGCP]
	if gcp.Image.NRGBAAt(10, 10) != white {
		t.Error("GCP 사본에 다른 제공자의 박스가 나타났습니다")
	}

	// 원본은 변경되지 않아야 함
	if src.NRGBAAt(10, 10) != white {
		t.Error("원본 이미지가 변경되었습니다")
	}
}

func TestAnnotateSkipsNilResponse(t *testing.T) {
	annotatorService := NewAnnotatorService()
	src := imaging.New(50, 50, white)

	results := structure.ResultMap{
		constants.ProviderAWS: nil,
		constants.ProviderGCP: {AllText: "ok"},
	}

	annotations := annotatorService.Annotate(src, results)

	if len(annotations) != 1 {
		t.Fatalf("어노테이션 수 = %d, 기대값 1", len(annotations))
	}
	if _, exists := annotations[constants.ProviderAWS]; exists {
		t.Error("nil 응답에 대한 어노테이션이 생성되었습니다")
	}
}

func TestPlaceholderDimensions(t *testing.T) {
	annotatorService := NewAnnotatorService()
	placeholder := annotatorService.Placeholder()

	bounds := placeholder.Bounds()
	if bounds.Dx() != constants.PLACEHOLDER_IMAGE_WIDTH || bounds.Dy() != constants.PLACEHOLDER_IMAGE_HEIGHT {
		t.Errorf("플레이스홀더 크기 = %dx%d, 기대값 %dx%d",
			bounds.Dx(), bounds.Dy(),
			constants.PLACEHOLDER_IMAGE_WIDTH, constants.PLACEHOLDER_IMAGE_HEIGHT)
	}
}

func TestSaveAnnotated(t *testing.T) {
	outputDir := t.TempDir()
	img := imaging.New(20, 20, white)

	savedPath, err := SaveAnnotated(outputDir, constants.ProviderAWS, "photo.png", img)
	if err != nil {
		t.Fatalf("저장 실패: %v", err)
	}

	if filepath.Base(savedPath) != "ocr_aws_photo.png" {
		t.Errorf("저장 파일 이름 = %q, 기대값 ocr_aws_photo.png", filepath.Base(savedPath))
	}
	if _, err := os.Stat(savedPath); err != nil {
		t.Errorf("저장된 파일이 없습니다: %v", err)
	}
}

func TestSaveAnnotatedUnsupportedExtension(t *testing.T) {
	outputDir := t.TempDir()
	img := imaging.New(20, 20, white)

	// 저장할 수 없는 확장자는 PNG로 대체
	savedPath, err := SaveAnnotated(outputDir, constants.ProviderGCP, "scan.webp", img)
	if err != nil {
		t.Fatalf("저장 실패: %v", err)
	}

	if filepath.Ext(savedPath) != ".png" {
		t.Errorf("저장 확장자 = %q, 기대값 .png", filepath.Ext(savedPath))
	}
}
