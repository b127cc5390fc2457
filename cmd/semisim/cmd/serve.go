package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"semisim/content"
	"semisim/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web interface",
	Long: `Serve the simulator pages: sliders, echarts curves, the three.js MOSFET
scene, the fabrication gallery and JSON/plot endpoints.

Examples:
  semisim serve                                 # http://127.0.0.1:8080
  semisim serve --addr :9000 -v                 # Log every request
  semisim serve --reset-policy per-render`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	serveCmd.Flags().IntVar(&cfg.SceneWidth, "scene-width", cfg.SceneWidth, "embedded scene width in pixels")
	serveCmd.Flags().IntVar(&cfg.SceneHeight, "scene-height", cfg.SceneHeight, "embedded scene height in pixels")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	srv, err := server.New(cfg, content.NewFabrication(cfg.FetchTimeout))
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.ListenAndServe(ctx)
}
