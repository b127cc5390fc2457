// Package semisim 将交互状态转换为一次渲染所需的图表、场景与控件。
package semisim

import (
	"context"
	"log"

	"semisim/chart"
	"semisim/content"
	"semisim/model"
	"semisim/param"
	"semisim/scene"
	"semisim/session"
)

// 图表编号
const (
	FigureMosfet    = "mosfet"
	FigureBJTInput  = "bjt-input"
	FigureBJTOutput = "bjt-output"
)

// Page 一次渲染周期的输出
type Page struct {
	View     session.View
	Title    string
	Figures  []chart.Figure
	Scene    *scene.Scene
	Sliders  param.Set
	Values   param.Values
	Controls bool // 是否显示参数控件
	Slides   []content.Slide
}

// Figure 通过编号查找图表
func (p Page) Figure(id string) (chart.Figure, bool) {
	for _, f := range p.Figures {
		if f.ID == id {
			return f, true
		}
	}
	return chart.Figure{}, false
}

// Render 根据当前状态生成页面，说明内容读取失败只记录日志。
func Render(ctx context.Context, s session.Session, gallery content.Provider) Page {
	page := Page{View: s.View, Controls: true}
	switch s.View {
	case session.ViewMosfetSim:
		sc := scene.MOSFET(s.Mosfet.Geometry())
		page.Title = "MOSFET Simulator"
		page.Figures = []chart.Figure{MosfetFigure(s.Mosfet)}
		page.Scene = &sc
		page.Sliders = param.MosfetSliders
		page.Values = param.MosfetValues(s.Mosfet)
	case session.ViewMosfetAbout:
		page.Title = "About MOSFET"
		page.Controls = false
		if gallery == nil {
			break
		}
		slides, err := gallery.Gallery(ctx)
		if err != nil {
			log.Println("gallery:", err)
			break
		}
		page.Slides = slides
	case session.ViewBJTSim:
		page.Title = "BJT Common-Base Configuration Simulator"
		page.Figures = []chart.Figure{BJTInputFigure(s.BJT), BJTOutputFigure(s.BJT)}
		page.Sliders = param.BJTSliders
		page.Values = param.BJTValues(s.BJT)
		page.Controls = s.ShowControls()
	default:
		page.Title = "Semiconductor Simulator"
		page.Controls = false
	}
	return page
}

// MosfetFigure MOSFET 输出特性图
func MosfetFigure(p model.MosfetParams) chart.Figure {
	c := model.MosfetCurve(p)
	return chart.Figure{
		ID:     FigureMosfet,
		Title:  "MOSFET Output Characteristics",
		XLabel: "Drain-Source Voltage (Vds) [V]",
		YLabel: "Drain Current (Id) [A]",
		Series: []chart.Series{{Name: c.Label, X: c.X, Y: c.Y}},
	}
}

// BJTInputFigure 输入特性图，电流以 mA 显示
func BJTInputFigure(p model.BJTParams) chart.Figure {
	return familyFigure(FigureBJTInput, "Input Characteristics", "I_E (mA)", model.InputFamily(p))
}

// BJTOutputFigure 输出特性图，电流以 mA 显示
func BJTOutputFigure(p model.BJTParams) chart.Figure {
	return familyFigure(FigureBJTOutput, "Output Characteristics", "I_C (mA)", model.OutputFamily(p))
}

func familyFigure(id, subtitle, yLabel string, f model.Family) chart.Figure {
	fig := chart.Figure{
		ID:       id,
		Title:    f.Title,
		Subtitle: subtitle,
		XLabel:   f.XLabel,
		YLabel:   yLabel,
	}
	for _, c := range f.Curves {
		fig.Series = append(fig.Series, chart.Series{Name: c.Label, X: c.X, Y: model.Scale(c.Y, 1e3)})
	}
	return fig
}
