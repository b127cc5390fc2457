package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"semisim"
	"semisim/chart"
	"semisim/config"
	"semisim/param"
	"semisim/session"
)

// 全局配置，由持久化参数填充
var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "semisim",
	Short: "MOSFET and BJT characteristic visualizer",
	Long: `An educational visualizer for MOSFET and BJT devices. Adjust the
physical parameters and inspect the resulting current curves, the MOSFET
box geometry and the fabrication steps.

Examples:
  semisim serve --addr 127.0.0.1:8080          # Web interface
  semisim ui                                   # Desktop interface
  semisim mosfet --vgs 3 --w 5                 # Print the Id-Vds table
  semisim bjt -o plots --plot-format svg       # Export both BJT families
  semisim scene --html > mosfet.html           # Standalone 3D scene`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return cfg.Validate()
	},
	SilenceUsage: true,
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	f := rootCmd.PersistentFlags()
	f.BoolVarP(&cfg.Verbose, "verbose", "v", false, "verbose output")
	f.StringVar(&cfg.ResetPolicy, "reset-policy", cfg.ResetPolicy, "BJT reset policy: sticky or per-render")
	f.StringVar(&cfg.PlotFormat, "plot-format", cfg.PlotFormat, "static plot format: png, svg or pdf")
	f.Float64Var(&cfg.PlotWidth, "plot-width", cfg.PlotWidth, "static plot width in inches")
	f.Float64Var(&cfg.PlotHeight, "plot-height", cfg.PlotHeight, "static plot height in inches")
	f.DurationVar(&cfg.FetchTimeout, "fetch-timeout", cfg.FetchTimeout, "timeout for remote gallery images")
}

// flagName 参数键对应的命令行参数名
func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// sliderFlags 为每个滑块注册一个命令行参数
func sliderFlags(cmd *cobra.Command, set param.Set) map[string]*float64 {
	flags := make(map[string]*float64, len(set))
	for _, s := range set {
		flags[s.Key] = cmd.Flags().Float64(flagName(s.Key), s.Default,
			fmt.Sprintf("%s [%g, %g]", s.Label, s.Min, s.Max))
	}
	return flags
}

// sliderValues 读取参数值并按滑块范围钳位
func sliderValues(cmd *cobra.Command, set param.Set, flags map[string]*float64) param.Values {
	q := make(map[string][]string)
	for key, v := range flags {
		if cmd.Flags().Changed(flagName(key)) {
			q[key] = []string{strconv.FormatFloat(*v, 'g', -1, 64)}
		}
	}
	return set.Parse(q)
}

// render 生成指定视图的页面
func render(s session.Session, view session.View) semisim.Page {
	return semisim.Render(context.Background(), s.Apply(session.Navigate(view)), nil)
}

// writeTable 以制表符分隔输出曲线数据，每条曲线一列
func writeTable(w io.Writer, f chart.Figure) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "# %s\n", f.Title)
	fmt.Fprint(tw, f.XLabel)
	for _, s := range f.Series {
		fmt.Fprintf(tw, "\t%s", s.Name)
	}
	fmt.Fprintln(tw)
	if len(f.Series) > 0 {
		for i, x := range f.Series[0].X {
			fmt.Fprintf(tw, "%.4g", x)
			for _, s := range f.Series {
				if i < len(s.Y) {
					fmt.Fprintf(tw, "\t%.6g", s.Y[i])
				} else {
					fmt.Fprint(tw, "\t")
				}
			}
			fmt.Fprintln(tw)
		}
	}
	return tw.Flush()
}

// exportPlot 将图表导出到 dir/<id>.<format>
func exportPlot(dir string, f chart.Figure) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, f.ID+"."+cfg.PlotFormat)
	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	width, height := vg.Length(cfg.PlotWidth)*vg.Inch, vg.Length(cfg.PlotHeight)*vg.Inch
	if err := chart.WritePlot(out, f, cfg.PlotFormat, width, height); err != nil {
		out.Close()
		return "", fmt.Errorf("export %s: %w", path, err)
	}
	return path, out.Close()
}

// writeFigures 输出表格、JSON 或图片文件
func writeFigures(w io.Writer, figs []chart.Figure, asJSON bool, dir string) error {
	switch {
	case asJSON:
		return (&chart.Record{Figures: figs}).Render(w)
	case dir != "":
		for _, f := range figs {
			path, err := exportPlot(dir, f)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, "wrote", path)
		}
		return nil
	}
	for i, f := range figs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := writeTable(w, f); err != nil {
			return err
		}
	}
	return nil
}
