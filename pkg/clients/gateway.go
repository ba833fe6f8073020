package client

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/supercontrast-ai/vis-demo/pkg/configs"
	_interface "github.com/supercontrast-ai/vis-demo/pkg/interfaces"
	constants "github.com/supercontrast-ai/vis-demo/pkg/types"
	model "github.com/supercontrast-ai/vis-demo/pkg/types/models"
	structure "github.com/supercontrast-ai/vis-demo/pkg/types/structures"
	"github.com/supercontrast-ai/vis-demo/pkg/utils"
)

// GatewayClient는 제공자 게이트웨이에 정규화된 작업 요청을 전달하는 클라이언트입니다.
// 벤더별 와이어 프로토콜은 게이트웨이 뒤에 있으며 여기서는 다루지 않습니다.
type GatewayClient struct {
	_interface.Service
	responseRepo _interface.ResponseRepository
}

// NewGatewayClient는 새로운 게이트웨이 클라이언트를 생성합니다
func NewGatewayClient(config *configs.EnvConfig, responseRepo _interface.ResponseRepository) *GatewayClient {
	return &GatewayClient{
		Service: _interface.Service{
			Client: &http.Client{
				Timeout: constants.GATEWAY_TIMEOUT,
			},
			Config: config,
		},
		responseRepo: responseRepo,
	}
}

// BuildRequest는 작업별 요청을 생성합니다.
// 로컬 파일 입력은 게이트웨이로 보낼 수 있도록 인라인 데이터로 변환합니다.
func (c *GatewayClient) BuildRequest(task constants.TaskKind, payload structure.TaskPayload, options structure.TaskOptions) *structure.TaskRequest {
	req := &structure.TaskRequest{
		Task:    task,
		Payload: payload,
		Options: options,
	}

	switch task {
	case constants.TaskOCR:
		if len(req.Payload.ImageData) == 0 && isLocalFile(req.Payload.Image) {
			if data, err := os.ReadFile(req.Payload.Image); err == nil {
				req.Payload.ImageData = data
			}
		}
	case constants.TaskTranscription:
		if len(req.Payload.AudioData) == 0 && isLocalFile(req.Payload.AudioFile) {
			if data, err := os.ReadFile(req.Payload.AudioFile); err == nil {
				req.Payload.AudioData = data
			}
		}
	}

	return req
}

// Invoke는 (작업, 제공자)에 대해 게이트웨이를 호출하고 정규화된 응답을 반환합니다
func (c *GatewayClient) Invoke(task constants.TaskKind, provider constants.Provider, request *structure.TaskRequest) (*structure.TaskResponse, error) {
	cacheKey := CacheKey(task, provider, request)

	// 캐시 확인
	if c.responseRepo != nil {
		cached, err := c.responseRepo.GetResponseCache(cacheKey)
		if err == nil && cached != nil && cached.Response != nil {
			return cached.Response, nil
		}
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("요청 직렬화 실패: %v", err)
	}

	// 요청 URL 생성: <GATEWAY_URL>/<task>/<provider>
	reqURL := fmt.Sprintf("%s/%s/%s",
		strings.TrimRight(c.Config.Gateway.URL, "/"),
		strings.ToLower(string(task)),
		strings.ToLower(string(provider)))

	req, err := http.NewRequest("POST", reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("요청 생성 실패: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.Config.Gateway.APIKey != "" {
		req.Header.Set("X-Gateway-Api-Key", c.Config.Gateway.APIKey)
	}

	start := time.Now()
	resp, err := c.Client.Do(req)
	duration := time.Since(start).Seconds()
	if err != nil {
		utils.RecordProviderCall(string(task), string(provider), true, duration)
		return nil, fmt.Errorf("요청 실행 실패: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		utils.RecordProviderCall(string(task), string(provider), true, duration)
		return nil, fmt.Errorf("응답 읽기 실패: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		utils.RecordProviderCall(string(task), string(provider), true, duration)
		return nil, fmt.Errorf("게이트웨이 오류 (%d): %s", resp.StatusCode, string(respBody))
	}

	utils.RecordProviderCall(string(task), string(provider), false, duration)

	taskResp, err := c.parseResponse(task, resp.Header.Get("Content-Type"), respBody)
	if err != nil {
		return nil, err
	}

	// 응답 캐싱 (비동기 저장, 결과에 영향 없음)
	if c.responseRepo != nil {
		go func() {
			_ = c.responseRepo.SaveResponseCache(&model.ResponseCache{
				CacheKey: cacheKey,
				Task:     string(task),
				Provider: string(provider),
				Response: taskResp,
			})
		}()
	}

	return taskResp, nil
}

// parseResponse는 게이트웨이 응답 본문을 정규화된 응답으로 변환합니다.
// OCR 제공자 중 일부는 hOCR(HTML) 형식으로 응답합니다.
func (c *GatewayClient) parseResponse(task constants.TaskKind, contentType string, body []byte) (*structure.TaskResponse, error) {
	if task == constants.TaskOCR && strings.Contains(contentType, "text/html") {
		return ParseHOCR(body)
	}

	var taskResp structure.TaskResponse
	if err := json.Unmarshal(body, &taskResp); err != nil {
		return nil, fmt.Errorf("응답 파싱 실패: %v", err)
	}

	return &taskResp, nil
}

// isLocalFile은 참조가 로컬 파일 경로인지 확인합니다
func isLocalFile(ref string) bool {
	if ref == "" || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return false
	}
	info, err := os.Stat(ref)
	return err == nil && !info.IsDir()
}

// CacheKey는 (작업, 제공자, 요청 내용)에 대한 캐시 키를 생성합니다
func CacheKey(task constants.TaskKind, provider constants.Provider, request *structure.TaskRequest) string {
	hash := sha256.New()
	hash.Write([]byte(task))
	hash.Write([]byte("|"))
	hash.Write([]byte(provider))
	hash.Write([]byte("|"))

	if payload, err := json.Marshal(request.Payload); err == nil {
		hash.Write(payload)
	}
	if options, err := json.Marshal(request.Options); err == nil {
		hash.Write(options)
	}

	return fmt.Sprintf("%x", hash.Sum(nil))
}
