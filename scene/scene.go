// Package scene 描述由长方体组成的静态三维结构。
// 场景只记录尺寸、位置与颜色，由外部渲染器绘制。
package scene

import (
	"encoding/json"
	"fmt"
	"io"

	"semisim/model"
)

// Vec3 三维坐标
type Vec3 [3]float64

// Color RGB 颜色
type Color struct {
	R, G, B uint8
}

// RGB 由整数分量构造颜色，超出 [0,255] 的分量按字节截断前先钳位。
func RGB(r, g, b int) Color { return Color{clampByte(r), clampByte(g), clampByte(b)} }

// Hex 由 0xRRGGBB 构造颜色
func Hex(v uint32) Color { return Color{uint8(v >> 16), uint8(v >> 8), uint8(v)} }

// CSS 输出 CSS 颜色字符串
func (c Color) CSS() string { return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B) }

// MarshalJSON 以 CSS 字符串编码
func (c Color) MarshalJSON() ([]byte, error) { return json.Marshal(c.CSS()) }

func clampByte(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

// Box 长方体图元
type Box struct {
	Name     string  `json:"name"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Depth    float64 `json:"depth"`
	Position Vec3    `json:"position"`
	Color    Color   `json:"color"`
	Opacity  float64 `json:"opacity"`
}

// Transparent 是否半透明
func (b Box) Transparent() bool { return b.Opacity < 1 }

// Scene 场景
type Scene struct {
	Title string `json:"title"`
	Boxes []Box  `json:"boxes"`
}

// Get 通过名称查找图元
func (s Scene) Get(name string) (Box, bool) {
	for _, b := range s.Boxes {
		if b.Name == name {
			return b, true
		}
	}
	return Box{}, false
}

// WriteJSON 输出场景描述
func (s Scene) WriteJSON(w io.Writer) error { return json.NewEncoder(w).Encode(s) }

// MOSFET 图元名称
const (
	BoxNType  = "n-type"
	BoxPType  = "p-type"
	BoxSource = "source"
	BoxDrain  = "drain"
	BoxGate   = "gate"
	BoxOxide  = "oxide"
)

// MOSFET 由几何参数构建 MOSFET 结构
// 只有 W、L 与两种掺杂颜色随参数变化，其余尺寸固定。
func MOSFET(g model.MosfetGeometry) Scene {
	return Scene{
		Title: "3D MOSFET Structure",
		Boxes: []Box{
			{Name: BoxNType, Width: g.W, Height: 0.5, Depth: g.L, Position: Vec3{0, -0.25, 0}, Color: RGB(0, 0, g.NColor), Opacity: 1},
			{Name: BoxPType, Width: g.W, Height: 0.5, Depth: g.L, Position: Vec3{0, 0.25, 0}, Color: RGB(g.PColor, 0, 0), Opacity: 1},
			{Name: BoxSource, Width: 0.3, Height: 0.3, Depth: 0.3, Position: Vec3{-0.7, 0.25, 0}, Color: Hex(0x777777), Opacity: 1},
			{Name: BoxDrain, Width: 0.3, Height: 0.3, Depth: 0.3, Position: Vec3{0.7, 0.25, 0}, Color: Hex(0x777777), Opacity: 1},
			{Name: BoxGate, Width: g.W, Height: 0.2, Depth: 0.5, Position: Vec3{0, 0.55, 0}, Color: Hex(0xaaaaaa), Opacity: 1},
			{Name: BoxOxide, Width: g.W, Height: 0.05, Depth: g.L, Position: Vec3{0, 0.4, 0}, Color: Hex(0x00ff00), Opacity: 0.3},
		},
	}
}
