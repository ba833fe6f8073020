package structures

import "testing"

func TestBoundingBoxRect(t *testing.T) {
	tests := []struct {
		name       string
		box        BoundingBox
		x, y, w, h float64
	}{
		{
			name: "normal box",
			box: BoundingBox{
				TopLeft:     Point{X: 10, Y: 10},
				TopRight:    Point{X: 50, Y: 10},
				BottomRight: Point{X: 50, Y: 30},
				BottomLeft:  Point{X: 10, Y: 30},
			},
			x: 10, y: 10, w: 40, h: 20,
		},
		{
			// 꼭짓점이 뒤집힌 박스는 보정 없이 음수 폭/높이를 그대로 반환
			name: "inverted corners keep negative extent",
			box: BoundingBox{
				TopLeft:     Point{X: 50, Y: 30},
				TopRight:    Point{X: 10, Y: 30},
				BottomRight: Point{X: 10, Y: 10},
				BottomLeft:  Point{X: 50, Y: 10},
			},
			x: 50, y: 30, w: -40, h: -20,
		},
		{
			name: "degenerate box",
			box: BoundingBox{
				TopLeft:     Point{X: 5, Y: 5},
				TopRight:    Point{X: 5, Y: 5},
				BottomRight: Point{X: 5, Y: 5},
				BottomLeft:  Point{X: 5, Y: 5},
			},
			x: 5, y: 5, w: 0, h: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h := tt.box.Rect()
			if x != tt.x || y != tt.y || w != tt.w || h != tt.h {
				t.Errorf("Rect() = (%v, %v, %v, %v), 기대값 (%v, %v, %v, %v)",
					x, y, w, h, tt.x, tt.y, tt.w, tt.h)
			}
		})
	}
}

func TestIsInvalidInput(t *testing.T) {
	err := NewInvalidInputError("이미지 경로를 찾을 수 없습니다: %s", "/no/such/path")
	if !IsInvalidInput(err) {
		t.Error("InvalidInputError가 감지되지 않았습니다")
	}

	if IsInvalidInput(nil) {
		t.Error("nil이 InvalidInputError로 감지되었습니다")
	}
}
