package _interface

import structure "github.com/supercontrast-ai/vis-demo/pkg/types/structures"

// AuditService는 팬아웃 감사 이벤트를 처리하는 인터페이스입니다
type AuditService interface {
	// SendAudit은 팬아웃 감사 이벤트를 SQS 큐에 전송합니다
	SendAudit(audit structure.FanoutAudit) error
}
