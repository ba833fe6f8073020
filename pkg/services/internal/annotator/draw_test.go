package annotator

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

var red = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

func TestStrokeRectDrawsOutlineOnly(t *testing.T) {
	img := imaging.New(100, 60, white)
	StrokeRect(img, 10, 10, 40, 20, red)

	// 네 변의 픽셀은 칠해져야 함
	edges := []image.Point{
		{X: 10, Y: 10}, // 좌상
		{X: 50, Y: 10}, // 우상
		{X: 50, Y: 30}, // 우하
		{X: 10, Y: 30}, // 좌하
		{X: 30, Y: 10}, // 상변 중간
		{X: 30, Y: 30}, // 하변 중간
	}
	for _, p := range edges {
		if img.NRGBAAt(p.X, p.Y) != red {
			t.Errorf("외곽선 픽셀 (%d, %d)가 칠해지지 않았습니다", p.X, p.Y)
		}
	}

	// 내부는 칠해지지 않아야 함
	if img.NRGBAAt(30, 20) != white {
		t.Error("사각형 내부가 칠해졌습니다")
	}
}

func TestStrokeRectNegativeExtentDrawsNothing(t *testing.T) {
	img := imaging.New(100, 60, white)

	// 뒤집힌 박스의 음수 폭/높이는 보정하지 않고 그리지 않음
	StrokeRect(img, 50, 30, -40, -20, red)

	for y := 0; y < 60; y++ {
		for x := 0; x < 100; x++ {
			if img.NRGBAAt(x, y) != white {
				t.Fatalf("픽셀 (%d, %d)가 변경되었습니다", x, y)
			}
		}
	}
}

func TestStrokeRectDegenerateBox(t *testing.T) {
	img := imaging.New(100, 60, white)

	// 높이 0인 박스는 선 하나로 그려짐
	StrokeRect(img, 10, 20, 40, 0, red)

	if img.NRGBAAt(30, 20) != red {
		t.Error("퇴화 박스의 선이 그려지지 않았습니다")
	}
}

func TestStrokeRectOutOfBounds(t *testing.T) {
	img := imaging.New(20, 20, white)

	// 이미지 경계를 벗어나는 박스도 패닉 없이 처리
	StrokeRect(img, 10, 10, 100, 100, red)
	StrokeRect(img, -5, -5, 10, 10, red)

	if img.NRGBAAt(15, 10) != red {
		t.Error("경계 안의 외곽선 픽셀이 칠해지지 않았습니다")
	}
}

func TestDrawLabel(t *testing.T) {
	img := imaging.New(100, 60, white)
	DrawLabel(img, 10, 30, "HELLO", red)

	// 글리프가 그려져 최소 한 픽셀은 변경되어야 함
	changed := false
	for y := 0; y < 60 && !changed; y++ {
		for x := 0; x < 100; x++ {
			if img.NRGBAAt(x, y) != white {
				changed = true
				break
			}
		}
	}
	if !changed {
		t.Error("라벨이 그려지지 않았습니다")
	}
}

func TestDrawLabelEmptyText(t *testing.T) {
	img := imaging.New(20, 20, white)
	DrawLabel(img, 5, 10, "", red)

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if img.NRGBAAt(x, y) != white {
				t.Fatal("빈 라벨이 픽셀을 변경했습니다")
			}
		}
	}
}
