// Package session 保存一次交互周期内的导航与复位状态。
// 状态作为值在渲染周期之间传递，不使用全局变量。
package session

import (
	"fmt"

	"semisim/model"
)

// View 导航选择
type View uint8

const (
	ViewNone        View = iota // 未选择
	ViewMosfetSim               // MOSFET 模拟器
	ViewMosfetAbout             // MOSFET 工艺说明
	ViewBJTSim                  // BJT 模拟器
)

var viewNames = map[View]string{
	ViewNone:        "none",
	ViewMosfetSim:   "mosfet",
	ViewMosfetAbout: "mosfet-about",
	ViewBJTSim:      "bjt",
}

func (v View) String() string {
	if s, ok := viewNames[v]; ok {
		return s
	}
	return "unknown"
}

// ParseView 通过名称获取视图
func ParseView(name string) (View, error) {
	for v, s := range viewNames {
		if s == name {
			return v, nil
		}
	}
	return ViewNone, fmt.Errorf("session: unknown view %q", name)
}

// ResetState BJT 参数复位状态
type ResetState uint8

const (
	StateCustom   ResetState = iota // 使用滑块值
	StateDefaults                   // 使用默认参数
)

func (s ResetState) String() string {
	if s == StateDefaults {
		return "defaults"
	}
	return "custom"
}

// ResetPolicy 复位状态的保持策略
type ResetPolicy uint8

const (
	// PolicySticky 复位后保持默认状态，直到下一次编辑 BJT 参数。
	PolicySticky ResetPolicy = iota
	// PolicyPerRender 复位只在当前渲染周期生效，并隐藏参数控件。
	PolicyPerRender
)

var policyNames = map[ResetPolicy]string{
	PolicySticky:    "sticky",
	PolicyPerRender: "per-render",
}

func (p ResetPolicy) String() string { return policyNames[p] }

// ParsePolicy 通过名称获取策略
func ParsePolicy(name string) (ResetPolicy, error) {
	for p, s := range policyNames {
		if s == name {
			return p, nil
		}
	}
	return PolicySticky, fmt.Errorf("session: unknown reset policy %q", name)
}

// Session 交互状态
type Session struct {
	View   View
	Reset  ResetState
	Policy ResetPolicy
	Mosfet model.MosfetParams
	BJT    model.BJTParams
}

// New 初始状态：未选择视图，参数为默认值，复位状态为 CUSTOM。
func New(policy ResetPolicy) Session {
	return Session{
		View:   ViewNone,
		Reset:  StateCustom,
		Policy: policy,
		Mosfet: model.DefaultMosfetParams(),
		BJT:    model.DefaultBJTParams(),
	}
}

// ShowControls 当前渲染周期是否显示 BJT 参数控件
func (s Session) ShowControls() bool {
	return s.Policy == PolicySticky || s.Reset == StateCustom
}
