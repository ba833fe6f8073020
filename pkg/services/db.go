package service

import (
	"github.com/supercontrast-ai/vis-demo/pkg/configs"
	"github.com/supercontrast-ai/vis-demo/pkg/db"
	_interface "github.com/supercontrast-ai/vis-demo/pkg/interfaces"
	repository "github.com/supercontrast-ai/vis-demo/pkg/repositories"
	"github.com/supercontrast-ai/vis-demo/pkg/utils"
)

// NewResponseRepository는 응답 캐시 저장소를 생성합니다.
// AWS 리전이 설정된 환경에서는 DynamoDB를, 그 외에는 인메모리 캐시를 사용합니다.
func NewResponseRepository() _interface.ResponseRepository {
	config := configs.GetConfig()

	if config.AWS.Region != "" {
		dynamoService, err := db.NewDynamoDBService(config)
		if err == nil {
			if err := dynamoService.CreateTableIfNotExists(); err != nil {
				utils.Warn("db", "응답 캐시 테이블 준비 실패, 인메모리 캐시로 대체: %v", err)
				return repository.NewResponseRepository()
			}
			return dynamoService
		}
		utils.Warn("db", "DynamoDB 초기화 실패, 인메모리 캐시로 대체: %v", err)
	}

	return repository.NewResponseRepository()
}
