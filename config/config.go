// Package config 保存运行参数及其默认值。
package config

import (
	"errors"
	"fmt"
	"net"
	"time"

	"semisim/chart"
	"semisim/session"
)

// ErrInvalid 配置无效
var ErrInvalid = errors.New("config: invalid")

// 默认参数常量定义
var (
	DefaultAddr         = "127.0.0.1:8080" // 网页服务地址
	DefaultResetPolicy  = "sticky"         // BJT 复位策略
	DefaultPlotFormat   = "png"            // 静态图格式
	DefaultPlotWidth    = 6.0              // 静态图宽度 (inch)
	DefaultPlotHeight   = 4.0              // 静态图高度 (inch)
	DefaultSceneWidth   = 400              // 场景宽度 (px)
	DefaultSceneHeight  = 300              // 场景高度 (px)
	DefaultFetchTimeout = 10 * time.Second // 远程图片超时
)

// Config 运行配置
type Config struct {
	Addr         string
	ResetPolicy  string
	PlotFormat   string
	PlotWidth    float64
	PlotHeight   float64
	SceneWidth   int
	SceneHeight  int
	FetchTimeout time.Duration
	Verbose      bool
}

// Default 默认配置
func Default() Config {
	return Config{
		Addr:         DefaultAddr,
		ResetPolicy:  DefaultResetPolicy,
		PlotFormat:   DefaultPlotFormat,
		PlotWidth:    DefaultPlotWidth,
		PlotHeight:   DefaultPlotHeight,
		SceneWidth:   DefaultSceneWidth,
		SceneHeight:  DefaultSceneHeight,
		FetchTimeout: DefaultFetchTimeout,
	}
}

// Policy 解析复位策略
func (c Config) Policy() (session.ResetPolicy, error) {
	p, err := session.ParsePolicy(c.ResetPolicy)
	if err != nil {
		return p, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return p, nil
}

// Validate 检查配置
func (c Config) Validate() error {
	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return fmt.Errorf("%w: addr %q: %w", ErrInvalid, c.Addr, err)
	}
	if _, err := c.Policy(); err != nil {
		return err
	}
	if _, err := chart.ContentType(c.PlotFormat); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.PlotWidth <= 0 || c.PlotHeight <= 0 {
		return fmt.Errorf("%w: plot size %gx%g", ErrInvalid, c.PlotWidth, c.PlotHeight)
	}
	if c.SceneWidth <= 0 || c.SceneHeight <= 0 {
		return fmt.Errorf("%w: scene size %dx%d", ErrInvalid, c.SceneWidth, c.SceneHeight)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("%w: fetch timeout %s", ErrInvalid, c.FetchTimeout)
	}
	return nil
}
