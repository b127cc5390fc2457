package model

import (
	"fmt"
	"math"
)

// MOSFET 固定物理常数
const (
	MobilityN        = 0.05   // 电子迁移率 (cm^2/V·s)
	OxideCapacitance = 2.3e-8 // 栅氧化层电容 (F/cm^2)
	ThresholdVoltage = 1.0    // 阈值电压 (V)
	MicronToCM       = 1e-4   // µm 换算为 cm
	ColorFullScale   = 1e17   // 颜色映射满量程浓度
)

// 漏源电压扫描
const (
	VdsMin    = 0.0
	VdsMax    = 5.0
	VdsPoints = 100
)

// OperatingRegion 工作区
type OperatingRegion uint8

const (
	Cutoff     OperatingRegion = iota // 截止区
	Triode                            // 线性区
	Saturation                        // 饱和区
)

func (r OperatingRegion) String() string {
	switch r {
	case Cutoff:
		return "cutoff"
	case Triode:
		return "triode"
	case Saturation:
		return "saturation"
	}
	return "unknown"
}

// MosfetParams MOSFET 参数
// PConc 作为除数使用，必须保持为正。
type MosfetParams struct {
	W     float64 // 沟道宽度 (µm)
	L     float64 // 沟道长度 (µm)
	Vgs   float64 // 栅源电压 (V)
	NConc float64 // N 型掺杂浓度 (相对值)
	PConc float64 // P 型掺杂浓度 (相对值)
}

// DefaultMosfetParams 滑块默认值
func DefaultMosfetParams() MosfetParams {
	return MosfetParams{W: 10, L: 10, Vgs: 1.5, NConc: 1e16, PConc: 1e16}
}

// Label 曲线图例
func (p MosfetParams) Label() string {
	return fmt.Sprintf("Vgs = %g V, W = %.1f µm, L = %.1f µm", p.Vgs, p.W, p.L)
}

// Region 判断工作区
func Region(vgs, vds float64) OperatingRegion {
	switch {
	case vgs < ThresholdVoltage:
		return Cutoff
	case vds < vgs-ThresholdVoltage:
		return Triode
	}
	return Saturation
}

// DrainCurrent 长沟道平方律模型的漏极电流 (A)
func DrainCurrent(vgs, vds, w, l, nConc, pConc float64) float64 {
	muEff := MobilityN * (nConc / pConc)
	k := muEff * OxideCapacitance * ((w * MicronToCM) / (l * MicronToCM))
	vov := vgs - ThresholdVoltage
	switch Region(vgs, vds) {
	case Cutoff:
		return 0
	case Triode:
		return k * (vov*vds - vds*vds/2)
	}
	return 0.5 * k * vov * vov
}

// MosfetCurve 在 [0,5] V 上扫描 100 点得到 Id-Vds 曲线
func MosfetCurve(p MosfetParams) Curve {
	vds := Linspace(VdsMin, VdsMax, VdsPoints)
	return Curve{
		Label: p.Label(),
		X:     vds,
		Y: Evaluate(vds, func(v float64) float64 {
			return DrainCurrent(p.Vgs, v, p.W, p.L, p.NConc, p.PConc)
		}),
	}
}

// MosfetGeometry 三维结构参数
type MosfetGeometry struct {
	W      float64 // 宽度
	L      float64 // 长度
	NColor int     // N 区蓝色分量
	PColor int     // P 区红色分量
}

// GeometryColors 浓度线性反向映射为颜色分量
// 超出滑块范围的浓度不再钳位。
func GeometryColors(nConc, pConc float64) (nColor, pColor int) {
	return colorComponent(nConc), colorComponent(pConc)
}

func colorComponent(conc float64) int {
	return int(math.Round(255 - (conc/ColorFullScale)*255))
}

// Geometry 由参数得到三维结构描述
func (p MosfetParams) Geometry() MosfetGeometry {
	n, c := GeometryColors(p.NConc, p.PConc)
	return MosfetGeometry{W: p.W, L: p.L, NColor: n, PColor: c}
}
