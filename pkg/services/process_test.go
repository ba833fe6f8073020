package service

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	_interface "github.com/supercontrast-ai/vis-demo/pkg/interfaces"
	"github.com/supercontrast-ai/vis-demo/pkg/services/internal/annotator"
	constants "github.com/supercontrast-ai/vis-demo/pkg/types"
	structure "github.com/supercontrast-ai/vis-demo/pkg/types/structures"
)

func TestMain(m *testing.M) {
	// 설정 싱글톤이 처음 로드되기 전에 필수 환경 변수 설정
	workDir, err := os.MkdirTemp("", "vis-demo-test")
	if err != nil {
		panic(err)
	}

	os.Setenv("PORT", "3000")
	os.Setenv("APP_NAME", "vis-demo-test")
	os.Setenv("GATEWAY_URL", "http://127.0.0.1:1")
	os.Setenv("ANNOTATE_OUTPUT_DIR", filepath.Join(workDir, "output"))
	os.Setenv("ANNOTATE_TEMP_DIR", workDir)

	code := m.Run()
	os.RemoveAll(workDir)
	os.Exit(code)
}

// fakeFanout은 고정된 결과를 반환하고 전달 인자를 기록하는 팬아웃 구현입니다
type fakeFanout struct {
	results      structure.ResultMap
	gotTask      constants.TaskKind
	gotPayload   structure.TaskPayload
	gotProviders []constants.Provider
	gotOptions   structure.TaskOptions
}

func (f *fakeFanout) FanOut(task constants.TaskKind, payload structure.TaskPayload, providers []constants.Provider, options structure.TaskOptions) structure.ResultMap {
	f.gotTask = task
	f.gotPayload = payload
	f.gotProviders = providers
	f.gotOptions = options
	return f.results
}

func newProcessService(fanout _interface.FanoutService) _interface.ProcessService {
	return NewProcessService(fanout, annotator.NewAnnotatorService(), nil)
}

func writeTestImage(t *testing.T, path string) {
	t.Helper()
	img := imaging.New(80, 60, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("테스트 이미지 생성 실패: %v", err)
	}
}

func TestProcessOCR(t *testing.T) {
	imagePath := filepath.Join(t.TempDir(), "photo.png")
	writeTestImage(t, imagePath)

	// AWS는 성공, GCP는 실패(결과 없음)
	fanout := &fakeFanout{
		results: structure.ResultMap{
			constants.ProviderAWS: {
				AllText: "HELLO",
				Boxes: []structure.BoundingBox{{
					TopLeft:     structure.Point{X: 10, Y: 10},
					TopRight:    structure.Point{X: 50, Y: 10},
					BottomRight: structure.Point{X: 50, Y: 30},
					BottomLeft:  structure.Point{X: 10, Y: 30},
					Text:        "HELLO",
				}},
			},
		},
	}
	processService := newProcessService(fanout)

	providers := []constants.Provider{constants.ProviderAWS, constants.ProviderGCP}
	values, err := processService.Process(constants.TaskOCR, structure.TaskPayload{Image: imagePath}, providers, structure.TaskOptions{})
	if err != nil {
		t.Fatalf("처리 실패: %v", err)
	}

	// 선택과 무관하게 정규 순서 전체에 대해 제공자당 두 필드
	if len(values) != len(constants.OCR_PROVIDER_ORDER)*2 {
		t.Fatalf("출력 길이 = %d, 기대값 %d", len(values), len(constants.OCR_PROVIDER_ORDER)*2)
	}

	// AWS는 순서상 두 번째 제공자
	savedPath, allText := values[2], values[3]
	if !strings.Contains(filepath.Base(savedPath), "ocr_aws_") {
		t.Errorf("저장 경로 = %q", savedPath)
	}
	if _, err := os.Stat(savedPath); err != nil {
		t.Errorf("어노테이션 파일이 저장되지 않았습니다: %v", err)
	}
	if allText != "HELLO" {
		t.Errorf("AllText = %q", allText)
	}

	// 실패/미선택 제공자는 모두 플레이스홀더
	for i, v := range values {
		if i == 2 || i == 3 {
			continue
		}
		if v != "" {
			t.Errorf("슬롯 %d = %q, 기대값 플레이스홀더", i, v)
		}
	}

	// 팬아웃에는 해석된 로컬 경로가 전달됨
	if fanout.gotPayload.Image != imagePath || fanout.gotPayload.ImageData != nil {
		t.Errorf("팬아웃 페이로드 = %+v", fanout.gotPayload)
	}
}

func TestProcessOCRInvalidImage(t *testing.T) {
	processService := newProcessService(&fakeFanout{})

	payload := structure.TaskPayload{Image: "/no/such/image.png"}
	_, err := processService.Process(constants.TaskOCR, payload, []constants.Provider{constants.ProviderAWS}, structure.TaskOptions{})

	if err == nil {
		t.Fatal("잘못된 이미지에서 오류가 발생하지 않았습니다")
	}
	if !structure.IsInvalidInput(err) {
		t.Errorf("InvalidInputError가 아닙니다: %v", err)
	}
}

func TestProcessTranscription(t *testing.T) {
	fanout := &fakeFanout{
		results: structure.ResultMap{
			constants.ProviderOpenAI: {Text: "hello world"},
		},
	}
	processService := newProcessService(fanout)

	payload := structure.TaskPayload{AudioFile: "speech.wav"}
	values, err := processService.Process(constants.TaskTranscription, payload, []constants.Provider{constants.ProviderOpenAI}, structure.TaskOptions{})
	if err != nil {
		t.Fatalf("처리 실패: %v", err)
	}

	// 순서: AZURE, OPENAI
	want := []string{"", "hello world"}
	if len(values) != len(want) || values[0] != want[0] || values[1] != want[1] {
		t.Errorf("출력 = %v, 기대값 %v", values, want)
	}
}

func TestProcessTranscriptionEmptyAudio(t *testing.T) {
	processService := newProcessService(&fakeFanout{})

	_, err := processService.Process(constants.TaskTranscription, structure.TaskPayload{}, nil, structure.TaskOptions{})
	if err == nil || !structure.IsInvalidInput(err) {
		t.Errorf("빈 오디오 입력 오류 = %v", err)
	}
}

func TestProcessTranslation(t *testing.T) {
	fanout := &fakeFanout{
		results: structure.ResultMap{
			constants.ProviderAnthropic: {Text: "bonjour"},
			constants.ProviderGCP:       {Text: "salut"},
			constants.ProviderOpenAI:    {Text: "coucou"},
		},
	}
	processService := newProcessService(fanout)

	providers := []constants.Provider{
		constants.ProviderAnthropic,
		constants.ProviderGCP,
		constants.ProviderOpenAI,
	}
	values, err := processService.Process(constants.TaskTranslation, structure.TaskPayload{Text: "hello"}, providers, structure.TaskOptions{})
	if err != nil {
		t.Fatalf("처리 실패: %v", err)
	}

	// 순서: ANTHROPIC, AWS, AZURE, GCP, MODERNMT, OPENAI
	want := []string{"bonjour", "", "", "salut", "", "coucou"}
	if len(values) != len(want) {
		t.Fatalf("출력 길이 = %d, 기대값 %d", len(values), len(want))
	}
	for i := range want {
		if values[i] != want[i] {
			t.Errorf("슬롯 %d = %q, 기대값 %q", i, values[i], want[i])
		}
	}

	// 언어 옵션 미지정 시 기본값 적용
	if fanout.gotOptions.SourceLanguage != constants.DEFAULT_SOURCE_LANGUAGE ||
		fanout.gotOptions.TargetLanguage != constants.DEFAULT_TARGET_LANGUAGE {
		t.Errorf("기본 언어 옵션 = %+v", fanout.gotOptions)
	}
}

func TestProcessTranslationEmptyText(t *testing.T) {
	processService := newProcessService(&fakeFanout{})

	_, err := processService.Process(constants.TaskTranslation, structure.TaskPayload{}, nil, structure.TaskOptions{})
	if err == nil || !structure.IsInvalidInput(err) {
		t.Errorf("빈 텍스트 입력 오류 = %v", err)
	}
}

func TestProcessUnknownTask(t *testing.T) {
	processService := newProcessService(&fakeFanout{})

	_, err := processService.Process(constants.TaskKind("SUMMARY"), structure.TaskPayload{Text: "x"}, nil, structure.TaskOptions{})
	if err == nil {
		t.Fatal("알 수 없는 작업에서 오류가 발생하지 않았습니다")
	}
	if structure.IsInvalidInput(err) {
		t.Error("알 수 없는 작업이 입력 오류로 분류되었습니다")
	}
}
