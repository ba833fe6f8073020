package utils

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// WriteTempFile은 바이트 데이터를 임시 파일로 저장하고 파일 경로를 반환합니다
func WriteTempFile(tempDir string, data []byte, ext string) (string, error) {
	if tempDir == "" {
		tempDir = os.TempDir()
	}

	tempFileName := uuid.New().String() + ext
	tempFilePath := filepath.Join(tempDir, tempFileName)

	if err := os.WriteFile(tempFilePath, data, 0644); err != nil {
		return "", fmt.Errorf("임시 파일 저장 실패: %v", err)
	}

	return tempFilePath, nil
}

// DownloadToTempFile은 URL의 내용을 임시 파일로 다운로드하고 파일 경로를 반환합니다.
// url은 파일 확장자를 추출하는 데 사용됩니다.
func DownloadToTempFile(fileURL string, tempDir string) (string, error) {
	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	req, err := http.NewRequest("GET", fileURL, nil)
	if err != nil {
		return "", fmt.Errorf("요청 생성 실패: %v", err)
	}

	// 요청 헤더 추가 (브라우저 에뮬레이션)
	req.Header.Add("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Add("Accept", "image/webp,image/apng,image/*,audio/*,*/*;q=0.8")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("요청 실행 실패: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("다운로드 실패: HTTP %d", resp.StatusCode)
	}

	// 파일 확장자 추출 (쿼리 파라미터 제거 후)
	ext := filepath.Ext(strings.Split(fileURL, "?")[0])
	if ext == "" {
		ext = ".jpg"
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("응답 읽기 실패: %v", err)
	}

	return WriteTempFile(tempDir, data, ext)
}
