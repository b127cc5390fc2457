package model

import (
	"fmt"
	"math"
)

// BJT 扫描设置
const (
	VbeMin       = 0.0
	VbeMax       = 1.0
	VcbSweepMin  = 0.0
	VcbSweepMax  = 10.0
	BJTPoints    = 200
	FamilyCurves = 3
)

// BJTParams 共基极 BJT 参数
// VT 为正，保证 V_CB+V_T 与 V_T 不为零。
type BJTParams struct {
	IS     float64 // 饱和电流 (A)
	VT     float64 // 热电压 (V)
	VCBMin float64 // 集电极-基极最小电压 (V)
	VCBMax float64 // 集电极-基极最大电压 (V)
	IEMin  float64 // 最小发射极电流 (A)
	IEMax  float64 // 最大发射极电流 (A)
}

// DefaultBJTParams 复位默认值
func DefaultBJTParams() BJTParams {
	return BJTParams{
		IS:     1e-14,
		VT:     0.026,
		VCBMin: 0,
		VCBMax: 20,
		IEMin:  0.001,
		IEMax:  0.005,
	}
}

// EmitterCurrent 输入特性单点
func EmitterCurrent(is, vt, vbe, vcb float64) float64 {
	return is * (math.Exp(vbe/vt) - 1) * (1 + vcb/(vcb+vt))
}

// CollectorCurrent 输出特性单点
func CollectorCurrent(ie, vt, vcb float64) float64 {
	return ie * (1 - math.Exp(-vcb/vt))
}

// InputCharacteristic V_BE 在 [0,1] V 上 200 点的 I_E 曲线
func InputCharacteristic(is, vt, vcb float64) Curve {
	vbe := Linspace(VbeMin, VbeMax, BJTPoints)
	return Curve{
		Label: fmt.Sprintf("V_CB = %.1f V", vcb),
		X:     vbe,
		Y:     Evaluate(vbe, func(v float64) float64 { return EmitterCurrent(is, vt, v, vcb) }),
	}
}

// OutputCharacteristic V_CB 在 [0,10] V 上 200 点的 I_C 曲线
// 扫描范围固定，与输入特性的 V_CB 滑块无关。
func OutputCharacteristic(ie, vt float64) Curve {
	vcb := Linspace(VcbSweepMin, VcbSweepMax, BJTPoints)
	return Curve{
		Label: fmt.Sprintf("I_E = %.1f mA", ie*1e3),
		X:     vcb,
		Y:     Evaluate(vcb, func(v float64) float64 { return CollectorCurrent(ie, vt, v) }),
	}
}

// InputFamily 在 [VCBMin, VCBMax] 上均匀取 3 个 V_CB
func InputFamily(p BJTParams) Family {
	f := Family{Title: "V_BE - I_E Curve", XLabel: "V_BE (V)", YLabel: "I_E (A)"}
	for _, vcb := range Linspace(p.VCBMin, p.VCBMax, FamilyCurves) {
		f.Curves = append(f.Curves, InputCharacteristic(p.IS, p.VT, vcb))
	}
	return f
}

// OutputFamily 在 [IEMin, IEMax] 上均匀取 3 个 I_E
func OutputFamily(p BJTParams) Family {
	f := Family{Title: "V_CB - I_C Curve", XLabel: "V_CB (V)", YLabel: "I_C (A)"}
	for _, ie := range Linspace(p.IEMin, p.IEMax, FamilyCurves) {
		f.Curves = append(f.Curves, OutputCharacteristic(ie, p.VT))
	}
	return f
}
