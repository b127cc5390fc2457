package app

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

// GridBackground 表示可缓存的网格背景
// 只在控件大小改变时重建绘制指令。
type GridBackground struct {
	GridLineSize int         // 网格线间距（像素）
	GridColor    color.NRGBA // 网格线颜色

	lastSize  image.Point // 上次绘制时的控件大小
	gridCache op.Ops      // 网格绘制指令缓存
	gridCall  op.CallOp   // 缓存的绘制调用
}

// NewGridBackground 创建新的网格背景
func NewGridBackground(gridLineSize int, gridColor color.NRGBA) *GridBackground {
	return &GridBackground{
		GridLineSize: gridLineSize,
		GridColor:    gridColor,
	}
}

// Draw 绘制网格背景
func (gb *GridBackground) Draw(ops *op.Ops, size image.Point) {
	if size != gb.lastSize {
		gb.lastSize = size
		gb.gridCache.Reset()
		macro := op.Record(&gb.gridCache)
		var p clip.Path
		p.Begin(&gb.gridCache)
		step := float32(gb.GridLineSize)
		for x := float32(0); x <= float32(size.X); x += step {
			p.MoveTo(f32.Pt(x, 0))
			p.LineTo(f32.Pt(x, float32(size.Y)))
		}
		for y := float32(0); y <= float32(size.Y); y += step {
			p.MoveTo(f32.Pt(0, y))
			p.LineTo(f32.Pt(float32(size.X), y))
		}
		paint.FillShape(&gb.gridCache, gb.GridColor, clip.Stroke{
			Path:  p.End(),
			Width: 1,
		}.Op())
		gb.gridCall = macro.Stop()
	}
	gb.gridCall.Add(ops)
}

// DefaultGridBackground 创建默认的网格背景
func DefaultGridBackground() *GridBackground {
	return NewGridBackground(
		20, // 默认网格线间距
		color.NRGBA{R: 230, G: 230, B: 230, A: 255}, // 浅灰色
	)
}
