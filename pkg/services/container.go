package service

import (
	client "github.com/supercontrast-ai/vis-demo/pkg/clients"
	"github.com/supercontrast-ai/vis-demo/pkg/configs"
	_interface "github.com/supercontrast-ai/vis-demo/pkg/interfaces"
	"github.com/supercontrast-ai/vis-demo/pkg/services/internal/annotator"
	"github.com/supercontrast-ai/vis-demo/pkg/services/internal/fanout"
	"github.com/supercontrast-ai/vis-demo/pkg/services/internal/queue"
)

// NewServiceContainer는 새로운 서비스 컨테이너를 생성합니다
func NewServiceContainer() *_interface.ServiceContainer {
	responseRepository := NewResponseRepository()
	taskClient := client.NewGatewayClient(configs.GetConfig(), responseRepository)
	fanoutService := fanout.NewFanoutService(taskClient)
	annotatorService := annotator.NewAnnotatorService()
	auditService := queue.NewAuditService()
	processService := NewProcessService(fanoutService, annotatorService, auditService)

	return &_interface.ServiceContainer{
		ProcessService:     processService,
		FanoutService:      fanoutService,
		AnnotatorService:   annotatorService,
		TaskClient:         taskClient,
		ResponseRepository: responseRepository,
		AuditService:       auditService,
	}
}
