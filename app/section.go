package app

import (
	"image"
	"image/color"
	"math"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"semisim/scene"
)

// SectionRect 正视截面中的一个矩形
type SectionRect struct {
	Name  string
	Rect  image.Rectangle
	Color color.NRGBA
}

// Section 将场景投影到 x-y 平面并缩放到 size 内，y 轴向上。
func Section(sc scene.Scene, size image.Point) []SectionRect {
	if len(sc.Boxes) == 0 || size.X <= 0 || size.Y <= 0 {
		return nil
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, b := range sc.Boxes {
		minX = math.Min(minX, b.Position[0]-b.Width/2)
		maxX = math.Max(maxX, b.Position[0]+b.Width/2)
		minY = math.Min(minY, b.Position[1]-b.Height/2)
		maxY = math.Max(maxY, b.Position[1]+b.Height/2)
	}
	k := math.Min(float64(size.X)/(maxX-minX), float64(size.Y)/(maxY-minY))
	// 居中
	offX := (float64(size.X) - (maxX-minX)*k) / 2
	offY := (float64(size.Y) - (maxY-minY)*k) / 2
	out := make([]SectionRect, 0, len(sc.Boxes))
	for _, b := range sc.Boxes {
		x0 := offX + (b.Position[0]-b.Width/2-minX)*k
		x1 := offX + (b.Position[0]+b.Width/2-minX)*k
		y0 := offY + (maxY-(b.Position[1]+b.Height/2))*k
		y1 := offY + (maxY-(b.Position[1]-b.Height/2))*k
		out = append(out, SectionRect{
			Name: b.Name,
			Rect: image.Rect(int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1))),
			Color: color.NRGBA{
				R: b.Color.R, G: b.Color.G, B: b.Color.B,
				A: uint8(math.Round(math.Min(math.Max(b.Opacity, 0), 1) * 255)),
			},
		})
	}
	return out
}

// CrossSection 绘制 MOSFET 正视截面
func CrossSection(gtx layout.Context, sc scene.Scene, size image.Point) layout.Dimensions {
	for _, r := range Section(sc, size) {
		paint.FillShape(gtx.Ops, r.Color, clip.Rect(r.Rect).Op())
	}
	return layout.Dimensions{Size: size}
}
