package controller

import (
	"encoding/base64"

	"github.com/gofiber/fiber/v2"
	_interface "github.com/supercontrast-ai/vis-demo/pkg/interfaces"
	constants "github.com/supercontrast-ai/vis-demo/pkg/types"
	requestDto "github.com/supercontrast-ai/vis-demo/pkg/types/dtos/requests"
	responseDto "github.com/supercontrast-ai/vis-demo/pkg/types/dtos/responses"
	structure "github.com/supercontrast-ai/vis-demo/pkg/types/structures"
	"github.com/supercontrast-ai/vis-demo/pkg/utils"
)

// OCR은 OCR 처리 요청을 받는 핸들러입니다
func OCR(processService _interface.ProcessService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req requestDto.OCRBody
		if err := utils.ParseAndValidateBody(c, &req); err != nil {
			return err
		}

		providers, err := parseProviders(constants.TaskOCR, req.Providers)
		if err != nil {
			return err
		}

		payload := structure.TaskPayload{Image: req.Image}
		if req.ImageData != "" {
			data, err := base64.StdEncoding.DecodeString(req.ImageData)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "이미지 데이터 디코딩 실패: "+err.Error())
			}
			payload.ImageData = data
		}

		values, err := processService.Process(constants.TaskOCR, payload, providers, structure.TaskOptions{})
		if err != nil {
			return processError(c, err)
		}

		return c.JSON(buildProcessResponse(constants.TaskOCR, []string{"image", "text"}, values))
	}
}

// Transcription은 전사 처리 요청을 받는 핸들러입니다
func Transcription(processService _interface.ProcessService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req requestDto.TranscriptionBody
		if err := utils.ParseAndValidateBody(c, &req); err != nil {
			return err
		}

		providers, err := parseProviders(constants.TaskTranscription, req.Providers)
		if err != nil {
			return err
		}

		payload := structure.TaskPayload{AudioFile: req.AudioFile}
		values, err := processService.Process(constants.TaskTranscription, payload, providers, structure.TaskOptions{})
		if err != nil {
			return processError(c, err)
		}

		return c.JSON(buildProcessResponse(constants.TaskTranscription, []string{"text"}, values))
	}
}

// Translation은 번역 처리 요청을 받는 핸들러입니다
func Translation(processService _interface.ProcessService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req requestDto.TranslationBody
		if err := utils.ParseAndValidateBody(c, &req); err != nil {
			return err
		}

		providers, err := parseProviders(constants.TaskTranslation, req.Providers)
		if err != nil {
			return err
		}

		payload := structure.TaskPayload{Text: req.Text}
		options := structure.TaskOptions{
			SourceLanguage: req.SourceLanguage,
			TargetLanguage: req.TargetLanguage,
		}

		values, err := processService.Process(constants.TaskTranslation, payload, providers, options)
		if err != nil {
			return processError(c, err)
		}

		return c.JSON(buildProcessResponse(constants.TaskTranslation, []string{"text"}, values))
	}
}

// parseProviders는 요청의 제공자 이름들을 검증합니다.
// 해당 작업이 지원하지 않는 이름이 하나라도 있으면 요청 전체를 거부합니다.
func parseProviders(task constants.TaskKind, names []string) ([]constants.Provider, error) {
	providers := make([]constants.Provider, 0, len(names))
	for _, name := range names {
		provider := constants.Provider(name)
		if !constants.IsValidProvider(task, provider) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "지원하지 않는 제공자: "+name)
		}
		providers = append(providers, provider)
	}
	return providers, nil
}

// processError는 처리 오류를 HTTP 상태 코드로 변환합니다
func processError(c *fiber.Ctx, err error) error {
	if structure.IsInvalidInput(err) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "처리 중 오류 발생: " + err.Error(),
	})
}

// buildProcessResponse는 고정 순서 응답 DTO를 구성합니다
func buildProcessResponse(task constants.TaskKind, fields []string, values []string) responseDto.Process {
	order := constants.ProviderOrder(task)
	orderNames := make([]string, len(order))
	for i, provider := range order {
		orderNames[i] = string(provider)
	}

	return responseDto.Process{
		Task:   string(task),
		Order:  orderNames,
		Fields: fields,
		Values: values,
	}
}
