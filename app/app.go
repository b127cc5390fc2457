package app

import (
	"context"
	"image"
	"log"
	"sync"

	"gioui.org/app"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gonum.org/v1/plot/vg"

	"semisim"
	"semisim/chart"
	"semisim/content"
	"semisim/param"
	"semisim/session"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// 导航按钮顺序
var navViews = []struct {
	View  session.View
	Label string
}{
	{session.ViewMosfetSim, "MOSFET 3D Simulator"},
	{session.ViewMosfetAbout, "About MOSFET"},
	{session.ViewBJTSim, "BJT Simulator"},
}

// sliderWidget 滑块与其配置
type sliderWidget struct {
	spec  param.Slider
	float widget.Float
}

func newSliders(set param.Set, v param.Values) []*sliderWidget {
	out := make([]*sliderWidget, len(set))
	for i, s := range set {
		out[i] = &sliderWidget{spec: s}
		out[i].float.Value = s.Fraction(v.Float64(s.Key, s.Default))
	}
	return out
}

func values(sliders []*sliderWidget) param.Values {
	v := make(param.Values, len(sliders))
	for _, s := range sliders {
		v[s.spec.Key] = s.spec.FromFraction(s.float.Value)
	}
	return v
}

// SimulatorApp 桌面模拟器应用程序
type SimulatorApp struct {
	window  *app.Window
	theme   *material.Theme
	state   session.Session
	gallery content.Provider
	page    semisim.Page
	images  map[string]paint.ImageOp // 图表缓存
	dirty   bool                     // 状态变化后需要重新计算

	mu       sync.Mutex
	fetched  map[int]image.Image   // 后台读取的工艺图片
	slideOps map[int]paint.ImageOp // 工艺图片绘制缓存
	fetching bool

	nav    []widget.Clickable
	reset  widget.Clickable
	mosfet []*sliderWidget
	bjt    []*sliderWidget
	list   widget.List
	grid   *GridBackground
}

// NewSimulatorApp 创建桌面模拟器应用程序
func NewSimulatorApp(policy session.ResetPolicy, gallery content.Provider) *SimulatorApp {
	window := new(app.Window)
	window.Option(app.Title("Semiconductor Simulator"), app.Size(unit.Dp(1200), unit.Dp(800)))
	state := session.New(policy)
	return &SimulatorApp{
		window:   window,
		theme:    material.NewTheme(),
		state:    state,
		gallery:  gallery,
		images:   make(map[string]paint.ImageOp),
		fetched:  make(map[int]image.Image),
		slideOps: make(map[int]paint.ImageOp),
		dirty:    true,
		nav:      make([]widget.Clickable, len(navViews)),
		mosfet:   newSliders(param.MosfetSliders, param.MosfetValues(state.Mosfet)),
		bjt:      newSliders(param.BJTSliders, param.BJTValues(state.BJT)),
		list:     widget.List{List: layout.List{Axis: layout.Vertical}},
		grid:     DefaultGridBackground(),
	}
}

// Run 运行应用程序，窗口关闭时返回。
func (a *SimulatorApp) Run() error {
	var ops op.Ops
	for {
		switch e := a.window.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			a.update(gtx)
			a.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

// apply 推进状态
func (a *SimulatorApp) apply(act session.Action) {
	a.state = a.state.Apply(act)
	a.dirty = true
}

// update 处理本帧的交互
func (a *SimulatorApp) update(gtx C) {
	for i := range a.nav {
		if a.nav[i].Clicked(gtx) {
			a.apply(session.Navigate(navViews[i].View))
		}
	}
	if a.reset.Clicked(gtx) {
		a.apply(session.Reset())
		a.bjt = newSliders(param.BJTSliders, param.BJTValues(a.state.BJT))
	}
	if changed(gtx, a.mosfet) {
		a.apply(session.EditMosfet(param.Mosfet(values(a.mosfet))))
	}
	if changed(gtx, a.bjt) {
		a.apply(session.EditBJT(param.BJT(values(a.bjt))))
	}
	if a.dirty {
		a.refresh(gtx)
	}
}

func changed(gtx C, sliders []*sliderWidget) bool {
	var ok bool
	for _, s := range sliders {
		if s.float.Update(gtx) {
			ok = true
		}
	}
	return ok
}

// refresh 重新计算页面并绘制图表位图
func (a *SimulatorApp) refresh(gtx C) {
	a.dirty = false
	a.page = semisim.Render(context.Background(), a.state, a.gallery)
	clear(a.images)
	for _, f := range a.page.Figures {
		img, err := chart.Image(f, 5*vg.Inch, 3.5*vg.Inch)
		if err != nil {
			log.Println(err)
			continue
		}
		a.images[f.ID] = paint.NewImageOp(img)
	}
	if a.state.View == session.ViewMosfetAbout && a.gallery != nil && !a.fetching {
		a.fetching = true
		go LoadSlides(context.Background(), a.gallery, len(a.page.Slides), func(i int, img image.Image) {
			a.mu.Lock()
			a.fetched[i] = img
			a.mu.Unlock()
			a.window.Invalidate()
		})
	}
}

// slideImage 返回已读取的工艺图片
func (a *SimulatorApp) slideImage(i int) (paint.ImageOp, bool) {
	if op, ok := a.slideOps[i]; ok {
		return op, true
	}
	a.mu.Lock()
	img, ok := a.fetched[i]
	a.mu.Unlock()
	if !ok {
		return paint.ImageOp{}, false
	}
	op := paint.NewImageOp(img)
	a.slideOps[i] = op
	return op, true
}

// Layout 绘制界面
func (a *SimulatorApp) Layout(gtx C) D {
	return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
		layout.Rigid(a.layoutSidebar),
		layout.Flexed(1, a.layoutContent),
	)
}

func (a *SimulatorApp) layoutSidebar(gtx C) D {
	width := gtx.Dp(unit.Dp(300))
	gtx.Constraints.Min.X, gtx.Constraints.Max.X = width, width
	children := []layout.FlexChild{
		layout.Rigid(material.H6(a.theme, "Menu").Layout),
	}
	for i := range navViews {
		btn := material.Button(a.theme, &a.nav[i], navViews[i].Label)
		children = append(children, layout.Rigid(func(gtx C) D {
			return layout.Inset{Top: unit.Dp(6)}.Layout(gtx, btn.Layout)
		}))
	}
	if a.state.View == session.ViewBJTSim {
		children = append(children, layout.Rigid(func(gtx C) D {
			return layout.Inset{Top: unit.Dp(16)}.Layout(gtx, material.Button(a.theme, &a.reset, "Reset to Defaults").Layout)
		}))
	}
	if a.page.Controls {
		var sliders []*sliderWidget
		switch a.state.View {
		case session.ViewMosfetSim:
			sliders = a.mosfet
		case session.ViewBJTSim:
			sliders = a.bjt
		}
		for _, s := range sliders {
			children = append(children, layout.Rigid(a.sliderLayout(s)))
		}
	}
	return layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
	})
}

func (a *SimulatorApp) sliderLayout(s *sliderWidget) layout.Widget {
	return func(gtx C) D {
		v := s.spec.FromFraction(s.float.Value)
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				return layout.Inset{Top: unit.Dp(10)}.Layout(gtx,
					material.Caption(a.theme, s.spec.Label+": "+s.spec.Display(v)).Layout)
			}),
			layout.Rigid(material.Slider(a.theme, &s.float).Layout),
		)
	}
}

func (a *SimulatorApp) layoutContent(gtx C) D {
	var rows []layout.Widget
	rows = append(rows, material.H4(a.theme, a.page.Title).Layout)
	switch a.state.View {
	case session.ViewMosfetSim:
		if a.page.Scene != nil {
			sc := *a.page.Scene
			rows = append(rows, material.H6(a.theme, "MOSFET cross-section").Layout, func(gtx C) D {
				size := image.Pt(gtx.Constraints.Max.X, gtx.Dp(unit.Dp(220)))
				a.grid.Draw(gtx.Ops, size)
				return CrossSection(gtx, sc, size)
			})
		}
	case session.ViewBJTSim:
		if a.state.Reset == session.StateDefaults {
			rows = append(rows, material.Body1(a.theme, "Parameters reset to defaults.").Layout)
		}
	case session.ViewMosfetAbout:
		for i, s := range a.page.Slides {
			rows = append(rows, material.Subtitle1(a.theme, s.Caption).Layout)
			if img, ok := a.slideImage(i); ok {
				rows = append(rows, widget.Image{Src: img, Fit: widget.ScaleDown, Position: layout.NW}.Layout)
			}
			rows = append(rows, material.Body1(a.theme, "▶ "+s.Description).Layout)
		}
	case session.ViewNone:
		rows = append(rows, material.Body1(a.theme, "Simulate MOSFET and BJT characteristics and view the MOSFET structure.").Layout)
	}
	for _, f := range a.page.Figures {
		if img, ok := a.images[f.ID]; ok {
			rows = append(rows, widget.Image{Src: img, Fit: widget.ScaleDown, Position: layout.NW}.Layout)
		}
	}
	return layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx C) D {
		return material.List(a.theme, &a.list).Layout(gtx, len(rows), func(gtx C, i int) D {
			return layout.Inset{Bottom: unit.Dp(8)}.Layout(gtx, rows[i])
		})
	})
}

