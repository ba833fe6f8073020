package client

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	structure "github.com/supercontrast-ai/vis-demo/pkg/types/structures"
)

// ParseHOCR은 hOCR(HTML) 본문을 정규화된 OCR 응답으로 변환합니다.
// 단어 단위 span(ocrx_word)의 bbox 속성을 바운딩 박스로, 줄 단위
// span(ocr_line)의 텍스트를 전체 텍스트로 사용합니다.
func ParseHOCR(body []byte) (*structure.TaskResponse, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("hOCR 파싱 실패: %v", err)
	}

	boxes := []structure.BoundingBox{}
	doc.Find(".ocrx_word").Each(func(_ int, s *goquery.Selection) {
		title, ok := s.Attr("title")
		if !ok {
			return
		}

		x0, y0, x1, y1, ok := parseBBox(title)
		if !ok {
			return
		}

		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}

		boxes = append(boxes, structure.BoundingBox{
			TopLeft:     structure.Point{X: x0, Y: y0},
			TopRight:    structure.Point{X: x1, Y: y0},
			BottomRight: structure.Point{X: x1, Y: y1},
			BottomLeft:  structure.Point{X: x0, Y: y1},
			Text:        text,
		})
	})

	// 줄 단위 텍스트를 이어붙여 전체 텍스트 구성
	lines := []string{}
	doc.Find(".ocr_line").Each(func(_ int, s *goquery.Selection) {
		line := strings.Join(strings.Fields(s.Text()), " ")
		if line != "" {
			lines = append(lines, line)
		}
	})

	// 줄 정보가 없는 hOCR은 단어 텍스트로 대체
	if len(lines) == 0 {
		words := make([]string, 0, len(boxes))
		for _, box := range boxes {
			words = append(words, box.Text)
		}
		lines = []string{strings.Join(words, " ")}
	}

	return &structure.TaskResponse{
		AllText: strings.TrimSpace(strings.Join(lines, "\n")),
		Boxes:   boxes,
	}, nil
}

// parseBBox는 hOCR title 속성에서 "bbox x0 y0 x1 y1" 좌표를 추출합니다
func parseBBox(title string) (x0, y0, x1, y1 float64, ok bool) {
	for _, prop := range strings.Split(title, ";") {
		fields := strings.Fields(strings.TrimSpace(prop))
		if len(fields) != 5 || fields[0] != "bbox" {
			continue
		}

		coords := [4]float64{}
		valid := true
		for i, f := range fields[1:] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				valid = false
				break
			}
			coords[i] = v
		}

		if valid {
			return coords[0], coords[1], coords[2], coords[3], true
		}
	}
	return 0, 0, 0, 0, false
}
