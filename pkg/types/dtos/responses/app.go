package response

import "time"

// HealthResponse는 상태 확인 응답 구조체입니다
type HealthResponse struct {
	Status    string    `json:"status"`
	Time      time.Time `json:"time"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
	GoVersion string    `json:"goVersion"`
}
