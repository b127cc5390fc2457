package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"semisim/param"
	"semisim/scene"
)

var (
	sceneFlags  map[string]*float64
	sceneHTML   bool
	sceneWidth  int
	sceneHeight int
)

var sceneCmd = &cobra.Command{
	Use:   "scene",
	Short: "Describe the MOSFET 3D box geometry",
	Long: `Print the MOSFET box geometry as JSON, or a standalone orbit-controllable
three.js page with --html. Doping concentrations set the slab colours.

Examples:
  semisim scene --w 4 --l 12                    # JSON description
  semisim scene --html > mosfet.html            # Viewer page`,
	RunE: runScene,
}

func init() {
	sceneFlags = sliderFlags(sceneCmd, param.MosfetSliders)
	sceneCmd.Flags().BoolVar(&sceneHTML, "html", false, "output an HTML viewer instead of JSON")
	sceneCmd.Flags().IntVar(&sceneWidth, "width", cfg.SceneWidth, "viewer width in pixels")
	sceneCmd.Flags().IntVar(&sceneHeight, "height", cfg.SceneHeight, "viewer height in pixels")
	rootCmd.AddCommand(sceneCmd)
}

func runScene(cmd *cobra.Command, args []string) error {
	p := param.Mosfet(sliderValues(cmd, param.MosfetSliders, sceneFlags))
	sc := scene.MOSFET(p.Geometry())
	if sceneHTML {
		return sc.WriteHTML(os.Stdout, sceneWidth, sceneHeight)
	}
	return sc.WriteJSON(os.Stdout)
}
