package param

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Slider 滑块配置，描述一个可调参数的范围与显示格式。
// 这些配置在注册时确定，并在整个运行过程中保持不变。
type Slider struct {
	Key     string  // 查询参数名
	Label   string  // 显示名称
	Min     float64 // 下限
	Max     float64 // 上限
	Default float64 // 默认值
	Step    float64 // 步进
	Format  string  // 显示格式（printf 风格）
}

// Clamp 将值限制在滑块范围内，非有限值回退为默认值。
func (s Slider) Clamp(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return s.Default
	}
	return math.Min(math.Max(v, s.Min), s.Max)
}

// Snap 对齐到最近的步进刻度
func (s Slider) Snap(v float64) float64 {
	v = s.Clamp(v)
	if s.Step <= 0 {
		return v
	}
	n := math.Round((v - s.Min) / s.Step)
	return s.Clamp(s.Min + n*s.Step)
}

// Display 按格式显示
func (s Slider) Display(v float64) string {
	if s.Format == "" {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return fmt.Sprintf(s.Format, v)
}

// Fraction 值在范围中的相对位置 [0,1]
func (s Slider) Fraction(v float64) float32 {
	if s.Max == s.Min {
		return 0
	}
	return float32((s.Clamp(v) - s.Min) / (s.Max - s.Min))
}

// FromFraction 相对位置换算回参数值并对齐步进
func (s Slider) FromFraction(f float32) float64 {
	return s.Snap(s.Min + float64(f)*(s.Max-s.Min))
}

// Set 一组滑块
type Set []Slider

// Get 通过名称查找滑块
func (set Set) Get(key string) (Slider, bool) {
	for _, s := range set {
		if s.Key == key {
			return s, true
		}
	}
	return Slider{}, false
}

// Defaults 默认值表
func (set Set) Defaults() Values {
	v := make(Values, len(set))
	for _, s := range set {
		v[s.Key] = s.Default
	}
	return v
}

// Parse 解析查询参数，缺失或无法解析的值使用默认值，越界值钳位。
func (set Set) Parse(q url.Values) Values {
	v := set.Defaults()
	for _, s := range set {
		raw := strings.TrimSpace(q.Get(s.Key))
		if raw == "" {
			continue
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		v[s.Key] = s.Clamp(f)
	}
	return v
}

// Encode 将参数值写入查询参数
func (set Set) Encode(v Values, q url.Values) {
	for _, s := range set {
		if f, ok := v[s.Key]; ok {
			q.Set(s.Key, strconv.FormatFloat(f, 'g', -1, 64))
		}
	}
}

// Values 参数值表
type Values map[string]float64

// Float64 读取参数值
func (v Values) Float64(key string, defaultValue float64) float64 {
	if f, ok := v[key]; ok {
		return f
	}
	return defaultValue
}
