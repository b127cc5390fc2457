package model

import (
	"math"
	"testing"
)

func TestInputCharacteristic(t *testing.T) {
	c := InputCharacteristic(1e-14, 0.026, 0)
	if c.Len() != BJTPoints {
		t.Fatalf("采样点数量 %d, 期望 %d", c.Len(), BJTPoints)
	}
	if c.Y[0] != 0 {
		t.Errorf("V_BE=0 时 I_E 应精确为0, 实际 %v", c.Y[0])
	}
	if c.X[0] != 0 || c.X[c.Len()-1] != 1 {
		t.Errorf("扫描范围错误: [%v, %v]", c.X[0], c.X[c.Len()-1])
	}
	// V_CB=0 时第二因子为1
	want := 1e-14 * (math.Exp(1/0.026) - 1)
	if got := c.Y[c.Len()-1]; math.Abs(got-want)/want > 1e-12 {
		t.Errorf("V_BE=1 时 I_E=%v, 期望 %v", got, want)
	}
	if c.Label != "V_CB = 0.0 V" {
		t.Errorf("图例错误: %q", c.Label)
	}
}

func TestInputCharacteristicCollectorFactor(t *testing.T) {
	lo := InputCharacteristic(1e-14, 0.026, 0)
	hi := InputCharacteristic(1e-14, 0.026, 20)
	last := lo.Len() - 1
	ratio := hi.Y[last] / lo.Y[last]
	want := 1 + 20/(20+0.026)
	if math.Abs(ratio-want) > 1e-12 {
		t.Errorf("V_CB 因子 %v, 期望 %v", ratio, want)
	}
}

func TestOutputCharacteristic(t *testing.T) {
	c := OutputCharacteristic(0.001, 0.026)
	if c.Len() != BJTPoints {
		t.Fatalf("采样点数量 %d, 期望 %d", c.Len(), BJTPoints)
	}
	if c.Y[0] != 0 {
		t.Errorf("V_CB=0 时 I_C 应精确为0, 实际 %v", c.Y[0])
	}
	if c.X[c.Len()-1] != 10 {
		t.Errorf("扫描终点 %v, 期望 10", c.X[c.Len()-1])
	}
	for i := 1; i < c.Len(); i++ {
		if c.Y[i] < c.Y[i-1] {
			t.Fatalf("I_C 非单调: i=%d %v < %v", i, c.Y[i], c.Y[i-1])
		}
		if c.Y[i] > 0.001 {
			t.Fatalf("I_C 超过 I_E: %v", c.Y[i])
		}
	}
	// 远离原点后趋近 I_E
	if math.Abs(c.Y[c.Len()-1]-0.001) > 1e-12 {
		t.Errorf("渐近值 %v, 期望 0.001", c.Y[c.Len()-1])
	}
	if c.Label != "I_E = 1.0 mA" {
		t.Errorf("图例错误: %q", c.Label)
	}
}

func TestFamilies(t *testing.T) {
	p := DefaultBJTParams()
	in := InputFamily(p)
	if len(in.Curves) != FamilyCurves {
		t.Fatalf("输入曲线数 %d", len(in.Curves))
	}
	labels := []string{"V_CB = 0.0 V", "V_CB = 10.0 V", "V_CB = 20.0 V"}
	for i, c := range in.Curves {
		if c.Label != labels[i] {
			t.Errorf("输入曲线 %d 图例 %q, 期望 %q", i, c.Label, labels[i])
		}
	}
	out := OutputFamily(p)
	labels = []string{"I_E = 1.0 mA", "I_E = 3.0 mA", "I_E = 5.0 mA"}
	for i, c := range out.Curves {
		if c.Label != labels[i] {
			t.Errorf("输出曲线 %d 图例 %q, 期望 %q", i, c.Label, labels[i])
		}
	}
	if m := out.Max(); math.Abs(m-0.005) > 1e-12 {
		t.Errorf("输出曲线族最大值 %v, 期望 0.005", m)
	}
}

func TestLinspace(t *testing.T) {
	v := Linspace(0, 5, 100)
	if len(v) != 100 || v[0] != 0 || v[99] != 5 {
		t.Fatalf("Linspace 端点错误: %v %v", v[0], v[99])
	}
	if step := v[1] - v[0]; math.Abs(step-5.0/99) > 1e-15 {
		t.Errorf("步长 %v", step)
	}
	if got := Linspace(3, 3, 1); len(got) != 1 || got[0] != 3 {
		t.Errorf("单点 Linspace 错误: %v", got)
	}
	if got := Scale([]float64{0.001, 0.002}, 1e3); got[0] != 1 || got[1] != 2 {
		t.Errorf("Scale 错误: %v", got)
	}
}

func TestFamilyMaxSkipsEmptyCurves(t *testing.T) {
	f := Family{Curves: []Curve{
		{},
		{X: []float64{0, 1}, Y: []float64{-3, -2}},
		{X: []float64{0, 1}, Y: []float64{-5, -4}},
	}}
	if m := f.Max(); m != -2 {
		t.Errorf("最大值 %v, 期望 -2", m)
	}
	if m := (Family{}).Max(); m != 0 {
		t.Errorf("空曲线族最大值 %v", m)
	}
}
