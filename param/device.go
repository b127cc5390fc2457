package param

import "semisim/model"

// MOSFET 参数名
const (
	KeyW     = "w"
	KeyL     = "l"
	KeyVgs   = "vgs"
	KeyNConc = "n_conc"
	KeyPConc = "p_conc"
)

// BJT 参数名
const (
	KeyIS     = "i_s"
	KeyVT     = "v_t"
	KeyVCBMin = "v_cb_min"
	KeyVCBMax = "v_cb_max"
	KeyIEMin  = "i_e_min"
	KeyIEMax  = "i_e_max"
)

// MosfetSliders MOSFET 参数滑块
// 浓度下限为正，保证迁移率计算中的除数不为零。
var MosfetSliders = Set{
	{Key: KeyW, Label: "Channel Width (W) [µm]", Min: 0.5, Max: 20, Default: 10, Step: 0.5, Format: "%.1f"},
	{Key: KeyL, Label: "Channel Length (L) [µm]", Min: 0.5, Max: 20, Default: 10, Step: 0.5, Format: "%.1f"},
	{Key: KeyVgs, Label: "Gate-Source Voltage (Vgs) [V]", Min: 0, Max: 5, Default: 1.5, Step: 0.1, Format: "%.1f"},
	{Key: KeyNConc, Label: "N-type Concentration (relative)", Min: 1e15, Max: 1e17, Default: 1e16, Step: 1e15, Format: "%.2e"},
	{Key: KeyPConc, Label: "P-type Concentration (relative)", Min: 1e15, Max: 1e17, Default: 1e16, Step: 1e15, Format: "%.2e"},
}

// BJTSliders BJT 参数滑块
// 热电压下限为正，保证指数与分式中的除数不为零。
var BJTSliders = Set{
	{Key: KeyIS, Label: "Saturation Current (I_S, A)", Min: 1e-15, Max: 1e-12, Default: 1e-14, Step: 1e-15, Format: "%.2e"},
	{Key: KeyVT, Label: "Thermal Voltage (V_T, V)", Min: 0.01, Max: 0.05, Default: 0.026, Step: 0.001, Format: "%.3f"},
	{Key: KeyVCBMin, Label: "Min Collector-Base Voltage (V_CB, V)", Min: 0, Max: 20, Default: 0, Step: 1, Format: "%.0f"},
	{Key: KeyVCBMax, Label: "Max Collector-Base Voltage (V_CB, V)", Min: 0, Max: 20, Default: 20, Step: 1, Format: "%.0f"},
	{Key: KeyIEMin, Label: "Min Emitter Current (I_E, A)", Min: 1e-4, Max: 0.01, Default: 0.001, Step: 1e-4, Format: "%.4f"},
	{Key: KeyIEMax, Label: "Max Emitter Current (I_E, A)", Min: 1e-4, Max: 0.01, Default: 0.005, Step: 1e-4, Format: "%.4f"},
}

// Mosfet 参数表转换为模型参数
func Mosfet(v Values) model.MosfetParams {
	d := model.DefaultMosfetParams()
	return model.MosfetParams{
		W:     v.Float64(KeyW, d.W),
		L:     v.Float64(KeyL, d.L),
		Vgs:   v.Float64(KeyVgs, d.Vgs),
		NConc: v.Float64(KeyNConc, d.NConc),
		PConc: v.Float64(KeyPConc, d.PConc),
	}
}

// MosfetValues 模型参数转换为参数表
func MosfetValues(p model.MosfetParams) Values {
	return Values{KeyW: p.W, KeyL: p.L, KeyVgs: p.Vgs, KeyNConc: p.NConc, KeyPConc: p.PConc}
}

// BJT 参数表转换为模型参数
func BJT(v Values) model.BJTParams {
	d := model.DefaultBJTParams()
	return model.BJTParams{
		IS:     v.Float64(KeyIS, d.IS),
		VT:     v.Float64(KeyVT, d.VT),
		VCBMin: v.Float64(KeyVCBMin, d.VCBMin),
		VCBMax: v.Float64(KeyVCBMax, d.VCBMax),
		IEMin:  v.Float64(KeyIEMin, d.IEMin),
		IEMax:  v.Float64(KeyIEMax, d.IEMax),
	}
}

// BJTValues 模型参数转换为参数表
func BJTValues(p model.BJTParams) Values {
	return Values{
		KeyIS: p.IS, KeyVT: p.VT,
		KeyVCBMin: p.VCBMin, KeyVCBMax: p.VCBMax,
		KeyIEMin: p.IEMin, KeyIEMax: p.IEMax,
	}
}
