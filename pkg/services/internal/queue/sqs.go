package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/supercontrast-ai/vis-demo/pkg/configs"
	_interface "github.com/supercontrast-ai/vis-demo/pkg/interfaces"
	structure "github.com/supercontrast-ai/vis-demo/pkg/types/structures"
)

type SQSImpl struct {
	client   *sqs.Client
	queueURL string
}

// NewAuditService는 새로운 감사 큐 서비스를 생성합니다.
// 감사 큐 URL이 설정되지 않은 환경에서는 nil을 반환하며 호출자는 전송을 건너뜁니다.
func NewAuditService() _interface.AuditService {
	config := configs.GetConfig()
	if config.AWS.SQS.AuditQueueURL == "" {
		return nil
	}

	cfg := aws.Config{
		Region: config.AWS.Region,
		Credentials: aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(
			config.AWS.AccessKeyID,
			config.AWS.SecretAccessKey,
			"",
		)),
	}

	return &SQSImpl{
		client:   sqs.NewFromConfig(cfg),
		queueURL: config.AWS.SQS.AuditQueueURL,
	}
}

// SendAudit은 팬아웃 감사 이벤트를 SQS 큐에 전송합니다
func (s *SQSImpl) SendAudit(audit structure.FanoutAudit) error {
	payload, err := json.Marshal(audit)
	if err != nil {
		return fmt.Errorf("메시지 직렬화 실패: %v", err)
	}

	_, err = s.client.SendMessage(context.TODO(), &sqs.SendMessageInput{
		QueueUrl:    &s.queueURL,
		MessageBody: aws.String(string(payload)),
	})

	if err != nil {
		return fmt.Errorf("SQS 메시지 전송 실패: %v", err)
	}

	return nil
}
