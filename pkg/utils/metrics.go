package utils

import (
	"github.com/prometheus/client_golang/prometheus"
)

// 직접 등록할 수 있도록 메트릭을 promauto 대신 일반 prometheus로 선언
var (
	// RequestCounter는 총 요청 수를 추적합니다
	RequestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sc_http_requests_total",
		Help: "총 HTTP 요청 수",
	}, []string{"method", "path", "status"})

	// ResponseTime은 응답 시간을 측정합니다
	ResponseTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sc_http_response_time_seconds",
		Help:    "HTTP 요청 응답 시간(초)",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"method", "path", "status"})

	// ProviderCallCounter는 제공자 호출 수를 추적합니다
	ProviderCallCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sc_provider_calls_total",
		Help: "작업/제공자별 호출 수",
	}, []string{"task", "provider", "status"})

	// ProviderResponseTime은 제공자 응답 시간을 측정합니다
	ProviderResponseTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sc_provider_response_time_seconds",
		Help:    "제공자 응답 시간(초)",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"task", "provider"})

	// AnnotationTime은 OCR 어노테이션 렌더링 시간을 측정합니다
	AnnotationTime = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "sc_annotation_time_seconds",
		Help:    "어노테이션 렌더링 시간(초)",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	})

	// ErrorCounter는 오류 발생 수를 추적합니다
	ErrorCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sc_error_total",
		Help: "오류 발생 수",
	}, []string{"service", "type"})

	// ServerMetric은 서버 상태(load/healthy/capacity) 게이지입니다
	ServerMetric = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "sc_server_status",
		Help: "서버 상태 게이지",
	}, []string{"server", "metric"})
)

// InitMetrics는 모든 메트릭을 등록합니다
func InitMetrics() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(ResponseTime)
	prometheus.MustRegister(ProviderCallCounter)
	prometheus.MustRegister(ProviderResponseTime)
	prometheus.MustRegister(AnnotationTime)
	prometheus.MustRegister(ErrorCounter)
	prometheus.MustRegister(ServerMetric)
}

// RecordRequest는 HTTP 요청 메트릭을 기록합니다
func RecordRequest(method string, path string, status int, duration float64) {
	statusLabel := "success"
	if status < 200 || status >= 400 {
		statusLabel = "error"
	}
	RequestCounter.WithLabelValues(method, path, statusLabel).Inc()
	ResponseTime.WithLabelValues(method, path, statusLabel).Observe(duration)
}

// RecordProviderCall은 제공자 호출 메트릭을 기록합니다
func RecordProviderCall(task string, provider string, failed bool, duration float64) {
	status := "success"
	if failed {
		status = "error"
	}
	ProviderCallCounter.WithLabelValues(task, provider, status).Inc()
	ProviderResponseTime.WithLabelValues(task, provider).Observe(duration)
}

// RecordError는 오류 발생을 기록합니다
func RecordError(service string, errorType string) {
	ErrorCounter.WithLabelValues(service, errorType).Inc()
}

// RecordAnnotationTime은 어노테이션 렌더링 시간을 기록합니다
func RecordAnnotationTime(duration float64) {
	AnnotationTime.Observe(duration)
}

// UpdateServerMetric은 서버 상태 게이지를 갱신합니다
func UpdateServerMetric(server string, metric string, value float64) {
	ServerMetric.WithLabelValues(server, metric).Set(value)
}
