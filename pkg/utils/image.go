package utils

import (
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	structure "github.com/supercontrast-ai/vis-demo/pkg/types/structures"
)

// 지원하는 이미지 확장자
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff"}

// isImageFile은 파일 이름이 지원 이미지 확장자를 갖는지 확인합니다
func isImageFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range imageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// GetImagePath는 디렉터리에서 첫 번째 이미지 파일의 경로를 반환합니다.
// 이미지 파일이 하나도 없으면 InvalidInputError를 반환합니다.
func GetImagePath(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", structure.NewInvalidInputError("디렉터리 읽기 실패: %v", err)
	}

	names := []string{}
	for _, entry := range entries {
		if !entry.IsDir() && isImageFile(entry.Name()) {
			names = append(names, entry.Name())
		}
	}

	if len(names) == 0 {
		return "", structure.NewInvalidInputError("디렉터리에 이미지 파일이 없습니다: %s", dir)
	}

	// 결정적 선택을 위해 이름순 정렬 후 첫 파일 사용
	sort.Strings(names)
	return filepath.Join(dir, names[0]), nil
}

// ResolveImage는 이미지 참조(URL, 파일 경로, 디렉터리, 인라인 base64)를
// 로드 가능한 래스터 이미지 하나로 해석합니다.
// 반환값은 디코딩된 이미지와 로컬 파일 경로이며, 어느 방식으로도
// 해석하지 못하면 InvalidInputError를 반환합니다.
func ResolveImage(ref string, inline []byte, tempDir string) (image.Image, string, error) {
	localPath, err := resolveImagePath(ref, inline, tempDir)
	if err != nil {
		return nil, "", err
	}

	img, err := imaging.Open(localPath)
	if err != nil {
		return nil, "", structure.NewInvalidInputError("이미지 디코딩 실패: %v", err)
	}

	return img, localPath, nil
}

// resolveImagePath는 이미지 참조를 로컬 파일 경로로 해석합니다
func resolveImagePath(ref string, inline []byte, tempDir string) (string, error) {
	// 인라인 이미지
	if len(inline) > 0 {
		path, err := WriteTempFile(tempDir, inline, ".png")
		if err != nil {
			return "", structure.NewInvalidInputError("인라인 이미지 저장 실패: %v", err)
		}
		return path, nil
	}

	if ref == "" {
		return "", structure.NewInvalidInputError("이미지 참조가 비어 있습니다")
	}

	// URL이면 다운로드
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		path, err := DownloadToTempFile(ref, tempDir)
		if err != nil {
			return "", structure.NewInvalidInputError("이미지 다운로드 실패: %v", err)
		}
		return path, nil
	}

	info, err := os.Stat(ref)
	if err != nil {
		return "", structure.NewInvalidInputError("이미지 경로를 찾을 수 없습니다: %s", ref)
	}

	// 디렉터리면 첫 이미지 파일 탐색
	if info.IsDir() {
		return GetImagePath(ref)
	}

	return ref, nil
}
