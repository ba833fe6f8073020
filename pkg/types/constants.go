package constants

import "time"

// TaskKind는 요청 가능한 작업 종류입니다
type TaskKind string

const (
	TaskOCR           TaskKind = "OCR"
	TaskTranscription TaskKind = "TRANSCRIPTION"
	TaskTranslation   TaskKind = "TRANSLATION"
)

// Provider는 외부 AI 서비스 제공자 식별자입니다
type Provider string

const (
	ProviderAnthropic  Provider = "ANTHROPIC"
	ProviderAPI4AI     Provider = "API4AI"
	ProviderAWS        Provider = "AWS"
	ProviderAzure      Provider = "AZURE"
	ProviderClarifai   Provider = "CLARIFAI"
	ProviderGCP        Provider = "GCP"
	ProviderModernMT   Provider = "MODERNMT"
	ProviderOpenAI     Provider = "OPENAI"
	ProviderSentiSight Provider = "SENTISIGHT"
)

// 작업별 고정 출력 순서 (선택 여부와 무관하게 항상 이 순서로 조립)
var OCR_PROVIDER_ORDER = []Provider{
	ProviderAPI4AI,
	ProviderAWS,
	ProviderAzure,
	ProviderClarifai,
	ProviderGCP,
	ProviderSentiSight,
}

var TRANSCRIPTION_PROVIDER_ORDER = []Provider{
	ProviderAzure,
	ProviderOpenAI,
}

var TRANSLATION_PROVIDER_ORDER = []Provider{
	ProviderAnthropic,
	ProviderAWS,
	ProviderAzure,
	ProviderGCP,
	ProviderModernMT,
	ProviderOpenAI,
}

// ProviderOrder는 작업 종류에 대한 정규 제공자 순서를 반환합니다
func ProviderOrder(task TaskKind) []Provider {
	switch task {
	case TaskOCR:
		return OCR_PROVIDER_ORDER
	case TaskTranscription:
		return TRANSCRIPTION_PROVIDER_ORDER
	case TaskTranslation:
		return TRANSLATION_PROVIDER_ORDER
	}
	return nil
}

// IsValidProvider는 제공자가 해당 작업을 지원하는지 확인합니다
func IsValidProvider(task TaskKind, provider Provider) bool {
	for _, p := range ProviderOrder(task) {
		if p == provider {
			return true
		}
	}
	return false
}

// 번역 기본 언어
const (
	DEFAULT_SOURCE_LANGUAGE = "en"
	DEFAULT_TARGET_LANGUAGE = "fr"
)

// 어노테이션 출력 설정
const (
	DEFAULT_OUTPUT_DIR       = "output/ocr"
	ANNOTATED_FILE_PREFIX    = "ocr"
	PLACEHOLDER_IMAGE_WIDTH  = 512
	PLACEHOLDER_IMAGE_HEIGHT = 256
)

// 게이트웨이 호출 설정
const (
	GATEWAY_TIMEOUT = 30 * time.Second
)

// 응답 캐시 유효 기간
const CACHE_TTL = 24 * time.Hour
