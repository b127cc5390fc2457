// Package chart 将曲线数据渲染为折线图。
// 图表只消费 (x, y, 名称) 数据，不做任何物理计算。
package chart

import (
	"encoding/json"
	"errors"
	"io"
)

// ErrFormat 不支持的输出格式
var ErrFormat = errors.New("chart: unsupported format")

// Series 一条折线
type Series struct {
	Name string    `json:"name"`
	X    []float64 `json:"x"`
	Y    []float64 `json:"y"`
}

// Figure 一幅折线图
type Figure struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	XLabel   string   `json:"xLabel"`
	YLabel   string   `json:"yLabel"`
	Series   []Series `json:"series"`
}

// Record 图表数据记录
type Record struct {
	Figures []Figure `json:"figures"`
	Extra   any      `json:"extra,omitempty"`
}

// Render 格式化输出为 JSON
func (r *Record) Render(w io.Writer) error { return json.NewEncoder(w).Encode(r) }
