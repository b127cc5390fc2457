package cmd

import (
	"log"
	"os"

	gioapp "gioui.org/app"
	"github.com/spf13/cobra"

	"semisim/app"
	"semisim/content"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the desktop interface",
	Long: `Launch the desktop simulator with navigation buttons, parameter sliders,
rendered curves and the MOSFET cross-section.

Examples:
  # Launch the UI
  semisim ui

  # Reproduce the one-pass reset behaviour
  semisim ui --reset-policy per-render`,
	RunE: runUI,
}

func init() {
	rootCmd.AddCommand(uiCmd)
}

func runUI(cmd *cobra.Command, args []string) error {
	policy, err := cfg.Policy()
	if err != nil {
		return err
	}
	if cfg.Verbose {
		log.Println("launching semisim ui")
	}
	a := app.NewSimulatorApp(policy, content.NewFabrication(cfg.FetchTimeout))
	go func() {
		if err := a.Run(); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	gioapp.Main()
	return nil
}
