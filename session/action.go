package session

import "semisim/model"

// ActionKind 交互类型
type ActionKind uint8

const (
	ActionRender     ActionKind = iota // 无输入的重新渲染
	ActionNavigate                     // 切换视图
	ActionEditMosfet                   // 修改 MOSFET 参数
	ActionEditBJT                      // 修改 BJT 参数
	ActionReset                        // 复位 BJT 参数
)

// Action 一次交互
type Action struct {
	Kind   ActionKind
	View   View
	Mosfet model.MosfetParams
	BJT    model.BJTParams
}

// Navigate 切换视图
func Navigate(v View) Action { return Action{Kind: ActionNavigate, View: v} }

// EditMosfet 修改 MOSFET 参数
func EditMosfet(p model.MosfetParams) Action { return Action{Kind: ActionEditMosfet, Mosfet: p} }

// EditBJT 修改 BJT 参数
func EditBJT(p model.BJTParams) Action { return Action{Kind: ActionEditBJT, BJT: p} }

// Reset 复位 BJT 参数
func Reset() Action { return Action{Kind: ActionReset} }

// Apply 根据交互计算下一状态，原状态不变。
func (s Session) Apply(a Action) Session {
	next := s
	switch a.Kind {
	case ActionReset:
		next.Reset = StateDefaults
		next.BJT = model.DefaultBJTParams()
		return next
	case ActionEditBJT:
		next.Reset = StateCustom
		next.BJT = a.BJT
		return next
	case ActionNavigate:
		next.View = a.View
	case ActionEditMosfet:
		next.Mosfet = a.Mosfet
	}
	// 单周期策略下，其它交互都会回到 CUSTOM
	if next.Policy == PolicyPerRender {
		next.Reset = StateCustom
	}
	return next
}
