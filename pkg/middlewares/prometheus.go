package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/supercontrast-ai/vis-demo/pkg/configs"
	"github.com/supercontrast-ai/vis-demo/pkg/utils"
)

// Prometheus 미들웨어는 HTTP 요청에 대한 메트릭을 수집합니다
func Prometheus() fiber.Handler {
	serverName := configs.GetConfig().Server.AppName

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()

		method := c.Method()
		path := c.Route().Path
		status := c.Response().StatusCode()

		utils.RecordRequest(method, path, status, duration)

		// 서버 상태 메트릭은 요청마다가 아니라 주기적으로 갱신
		updateServerMetrics(serverName)

		return err
	}
}

// 마지막 메트릭 업데이트 시간
var lastMetricUpdate time.Time

// updateServerMetrics는 서버 상태 메트릭을 Prometheus에 업데이트합니다
func updateServerMetrics(serverName string) {
	// 10초마다 한 번씩만 업데이트
	now := time.Now()
	if now.Sub(lastMetricUpdate) < 10*time.Second {
		return
	}
	lastMetricUpdate = now

	cpuUsage, memoryUsage := utils.GetSystemMetrics()

	// 서버 부하 - CPU와 메모리 사용률의 가중 평균
	load := (cpuUsage * 0.7) + (memoryUsage * 0.3)

	isHealthy := true
	if cpuUsage > 0.9 || memoryUsage > 0.95 {
		isHealthy = false
	}

	capacity := 1.0 - load
	if capacity < 0 {
		capacity = 0
	}

	utils.UpdateServerMetric(serverName, "load", load)
	healthValue := 0.0
	if isHealthy {
		healthValue = 1.0
	}
	utils.UpdateServerMetric(serverName, "healthy", healthValue)
	utils.UpdateServerMetric(serverName, "capacity", capacity)
}
