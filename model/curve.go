package model

import (
	"math"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"
)

// Curve 单条特性曲线
// X 与 Y 长度一致，按扫描顺序排列。
type Curve struct {
	Label string    // 图例名称
	X     []float64 // 扫描变量
	Y     []float64 // 对应电流
}

// Len 采样点数量
func (c Curve) Len() int { return len(c.X) }

// At 第 i 个采样点
func (c Curve) At(i int) (x, y float64) { return c.X[i], c.Y[i] }

// Nearest 返回最接近 x 的采样下标
func (c Curve) Nearest(x float64) int {
	best := 0
	for i := range c.X {
		if math.Abs(c.X[i]-x) < math.Abs(c.X[best]-x) {
			best = i
		}
	}
	return best
}

// Family 曲线族
type Family struct {
	Title  string  // 标题
	XLabel string  // 横轴名称
	YLabel string  // 纵轴名称
	Curves []Curve // 曲线列表
}

// Max 曲线族中的最大电流
func (f Family) Max() float64 {
	var m float64
	first := true
	for _, c := range f.Curves {
		if len(c.Y) == 0 {
			continue
		}
		if v := floats.Max(c.Y); first || v > m {
			m, first = v, false
		}
	}
	return m
}

// Linspace 在 [lo, hi] 上均匀取 n 个点，首尾精确等于 lo 与 hi。
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	v := floats.Span(make([]float64, n), lo, hi)
	v[n-1] = hi
	return v
}

// Evaluate 对每个扫描点调用 f
func Evaluate(xs []float64, f func(x float64) float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	return ys
}

// Scale 按比例换算单位，返回新切片
func Scale[T constraints.Float](v []T, k T) []T {
	out := make([]T, len(v))
	for i := range v {
		out[i] = v[i] * k
	}
	return out
}

