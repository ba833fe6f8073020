package annotator

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// strokeWidth는 박스 외곽선 두께(픽셀)입니다
const strokeWidth = 2

// StrokeRect는 (x, y)에서 시작하는 w x h 사각형의 외곽선만 그립니다.
// w/h는 부호가 보존된 값 그대로 받으며, 음수면 아무것도 그리지 않습니다.
// 폭이나 높이가 0인 퇴화 박스는 선 하나로 그려집니다.
func StrokeRect(img *image.NRGBA, x, y, w, h int, c color.Color) {
	if w < 0 || h < 0 {
		return
	}

	for t := 0; t < strokeWidth; t++ {
		// 상/하 변
		for i := 0; i <= w; i++ {
			setPixel(img, x+i, y+t, c)
			setPixel(img, x+i, y+h-t, c)
		}
		// 좌/우 변
		for j := 0; j <= h; j++ {
			setPixel(img, x+t, y+j, c)
			setPixel(img, x+w-t, y+j, c)
		}
	}
}

// setPixel은 이미지 경계 안에 있는 픽셀만 설정합니다
func setPixel(img *image.NRGBA, x, y int, c color.Color) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.Set(x, y, c)
	}
}

// DrawLabel은 (x, y)를 베이스라인 시작점으로 텍스트를 그립니다
func DrawLabel(img *image.NRGBA, x, y int, text string, c color.Color) {
	if text == "" {
		return
	}

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	drawer.DrawString(text)
}
