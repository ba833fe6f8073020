package service

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/supercontrast-ai/vis-demo/pkg/configs"
	_interface "github.com/supercontrast-ai/vis-demo/pkg/interfaces"
	"github.com/supercontrast-ai/vis-demo/pkg/services/internal/annotator"
	"github.com/supercontrast-ai/vis-demo/pkg/services/internal/assembler"
	constants "github.com/supercontrast-ai/vis-demo/pkg/types"
	structure "github.com/supercontrast-ai/vis-demo/pkg/types/structures"
	"github.com/supercontrast-ai/vis-demo/pkg/utils"
)

// ProcessImpl는 처리 서비스 구현체입니다
type ProcessImpl struct {
	config           *configs.EnvConfig
	fanoutService    _interface.FanoutService
	annotatorService _interface.AnnotatorService
	auditService     _interface.AuditService
}

// NewProcessService는 새 처리 서비스를 생성합니다
func NewProcessService(fanoutService _interface.FanoutService, annotatorService _interface.AnnotatorService, auditService _interface.AuditService) _interface.ProcessService {
	return &ProcessImpl{
		config:           configs.GetConfig(),
		fanoutService:    fanoutService,
		annotatorService: annotatorService,
		auditService:     auditService,
	}
}

// Process는 팬아웃-조립 사이클 전체를 수행하고 고정 형태의 표시 값 시퀀스를 반환합니다.
// InvalidInputError만 요청 전체를 중단시키며, 제공자 단위 실패는
// 해당 제공자 자리가 플레이스홀더로 채워지는 것으로 끝납니다.
func (s *ProcessImpl) Process(task constants.TaskKind, payload structure.TaskPayload, providers []constants.Provider, options structure.TaskOptions) ([]string, error) {
	switch task {
	case constants.TaskOCR:
		return s.processOCR(payload, providers, options)
	case constants.TaskTranscription:
		return s.processTranscription(payload, providers, options)
	case constants.TaskTranslation:
		return s.processTranslation(payload, providers, options)
	}
	return nil, fmt.Errorf("지원하지 않는 작업 종류: %s", task)
}

// processOCR은 이미지 해석 → 팬아웃 → 어노테이션 → 조립 순서로 처리합니다
func (s *ProcessImpl) processOCR(payload structure.TaskPayload, providers []constants.Provider, options structure.TaskOptions) ([]string, error) {
	// 입력 이미지를 로드 가능한 래스터 하나로 해석 (실패 시 요청 전체 중단)
	img, localPath, err := utils.ResolveImage(payload.Image, payload.ImageData, s.config.Annotate.TempDir)
	if err != nil {
		return nil, err
	}

	// 이후 단계는 해석된 로컬 파일을 사용
	payload.Image = localPath
	payload.ImageData = nil
	sourceName := filepath.Base(localPath)

	results := s.fanOutWithAudit(constants.TaskOCR, payload, providers, options)

	// 어노테이션 렌더링 (순수 연산)과 저장(베스트에포트 부수 효과)을 분리
	annotations := s.annotatorService.Annotate(img, results)
	for provider, annotation := range annotations {
		savedPath, err := annotator.SaveAnnotated(s.config.Annotate.OutputDir, provider, sourceName, annotation.Image)
		if err != nil {
			utils.Warn("process", "어노테이션 이미지 저장 실패 (%s): %v", provider, err)
			continue
		}
		annotation.SavedPath = savedPath
	}

	values := assembler.Assemble(results, constants.OCR_PROVIDER_ORDER, assembler.OCRPlaceholder,
		func(provider constants.Provider, _ *structure.TaskResponse) []string {
			annotation := annotations[provider]
			if annotation == nil {
				// 렌더링에 실패한 제공자는 플레이스홀더로 대체
				return assembler.OCRPlaceholder
			}
			return []string{annotation.SavedPath, annotation.AllText}
		})

	return values, nil
}

// processTranscription은 오디오 입력을 팬아웃하고 텍스트 결과를 조립합니다
func (s *ProcessImpl) processTranscription(payload structure.TaskPayload, providers []constants.Provider, options structure.TaskOptions) ([]string, error) {
	if payload.AudioFile == "" && len(payload.AudioData) == 0 {
		return nil, structure.NewInvalidInputError("오디오 입력이 비어 있습니다")
	}

	results := s.fanOutWithAudit(constants.TaskTranscription, payload, providers, options)

	return assembler.Assemble(results, constants.TRANSCRIPTION_PROVIDER_ORDER, assembler.TextPlaceholder, assembler.TextField), nil
}

// processTranslation은 텍스트 입력을 팬아웃하고 번역 결과를 조립합니다
func (s *ProcessImpl) processTranslation(payload structure.TaskPayload, providers []constants.Provider, options structure.TaskOptions) ([]string, error) {
	if payload.Text == "" {
		return nil, structure.NewInvalidInputError("번역할 텍스트가 비어 있습니다")
	}

	if options.SourceLanguage == "" {
		options.SourceLanguage = constants.DEFAULT_SOURCE_LANGUAGE
	}
	if options.TargetLanguage == "" {
		options.TargetLanguage = constants.DEFAULT_TARGET_LANGUAGE
	}

	results := s.fanOutWithAudit(constants.TaskTranslation, payload, providers, options)

	return assembler.Assemble(results, constants.TRANSLATION_PROVIDER_ORDER, assembler.TextPlaceholder, assembler.TextField), nil
}

// fanOutWithAudit은 팬아웃을 수행하고 감사 이벤트를 베스트에포트로 전송합니다
func (s *ProcessImpl) fanOutWithAudit(task constants.TaskKind, payload structure.TaskPayload, providers []constants.Provider, options structure.TaskOptions) structure.ResultMap {
	start := time.Now()
	results := s.fanoutService.FanOut(task, payload, providers, options)

	if s.auditService == nil {
		return results
	}

	audit := structure.FanoutAudit{
		Task:        task,
		RequestedAt: start,
		DurationMs:  time.Since(start).Milliseconds(),
	}

	seen := make(map[constants.Provider]bool)
	for _, provider := range providers {
		if seen[provider] || !constants.IsValidProvider(task, provider) {
			continue
		}
		seen[provider] = true

		_, succeeded := results[provider]
		audit.Providers = append(audit.Providers, structure.ProviderStatus{
			Provider:  provider,
			Succeeded: succeeded,
		})
	}

	// 감사 전송 실패는 처리 결과에 영향 없음
	go func() {
		if err := s.auditService.SendAudit(audit); err != nil {
			utils.Warn("process", "감사 이벤트 전송 실패: %v", err)
		}
	}()

	return results
}
