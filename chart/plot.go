package chart

import (
	"fmt"
	"image"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// 默认导出尺寸
var (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

// 支持的静态导出格式
var plotFormats = map[string]string{
	"png": "image/png",
	"svg": "image/svg+xml",
	"pdf": "application/pdf",
}

// ContentType 导出格式对应的 MIME 类型
func ContentType(format string) (string, error) {
	if ct, ok := plotFormats[format]; ok {
		return ct, nil
	}
	return "", fmt.Errorf("%w: %q", ErrFormat, format)
}

// Plot 构建 gonum 图表
func (f Figure) Plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = f.Title
	p.X.Label.Text = f.XLabel
	p.Y.Label.Text = f.YLabel
	p.Add(plotter.NewGrid())
	lines := make([]any, 0, 2*len(f.Series))
	for _, s := range f.Series {
		xys := make(plotter.XYs, len(s.X))
		for i := range s.X {
			xys[i].X, xys[i].Y = s.X[i], s.Y[i]
		}
		lines = append(lines, s.Name, xys)
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return nil, fmt.Errorf("chart: %s: %w", f.Title, err)
	}
	p.Legend.Top = true
	p.Legend.Left = true
	return p, nil
}

// WritePlot 按格式导出静态图
func WritePlot(w io.Writer, f Figure, format string, width, height vg.Length) error {
	if _, err := ContentType(format); err != nil {
		return err
	}
	p, err := f.Plot()
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("chart: %s: %w", f.Title, err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// Image 绘制为位图，供桌面界面显示
func Image(f Figure, width, height vg.Length) (image.Image, error) {
	p, err := f.Plot()
	if err != nil {
		return nil, err
	}
	c := vgimg.New(width, height)
	p.Draw(draw.New(c))
	return c.Image(), nil
}
