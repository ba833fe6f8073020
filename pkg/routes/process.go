package route

import (
	"github.com/gofiber/fiber/v2"
	controller "github.com/supercontrast-ai/vis-demo/pkg/controllers"
	_interface "github.com/supercontrast-ai/vis-demo/pkg/interfaces"
)

// SetupProcessRoutes는 처리 관련 라우트를 설정합니다
func SetupProcessRoutes(endpoint string, api fiber.Router, services *_interface.ServiceContainer) {
	// 이미 초기화된 서비스 사용
	api.Post(endpoint+"/ocr", controller.OCR(services.ProcessService))
	api.Post(endpoint+"/transcription", controller.Transcription(services.ProcessService))
	api.Post(endpoint+"/translation", controller.Translation(services.ProcessService))
}
