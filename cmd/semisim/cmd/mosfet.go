package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"semisim/model"
	"semisim/param"
	"semisim/session"
)

var (
	mosfetFlags  map[string]*float64
	mosfetJSON   bool
	mosfetOutput string
)

var mosfetCmd = &cobra.Command{
	Use:   "mosfet",
	Short: "Compute the MOSFET Id-Vds characteristic",
	Long: `Evaluate the long-channel square-law drain current over Vds in [0, 5] V.
Parameters outside the slider ranges are clamped.

Examples:
  semisim mosfet                                # Default device as a table
  semisim mosfet --vgs 3 --w 5 --l 2 --json     # JSON record
  semisim mosfet -o plots --plot-format pdf     # Write plots/mosfet.pdf`,
	RunE: runMosfet,
}

func init() {
	mosfetFlags = sliderFlags(mosfetCmd, param.MosfetSliders)
	mosfetCmd.Flags().BoolVar(&mosfetJSON, "json", false, "output the curve as JSON")
	mosfetCmd.Flags().StringVarP(&mosfetOutput, "output", "o", "", "write a static plot into this directory")
	rootCmd.AddCommand(mosfetCmd)
}

func runMosfet(cmd *cobra.Command, args []string) error {
	p := param.Mosfet(sliderValues(cmd, param.MosfetSliders, mosfetFlags))
	if cfg.Verbose {
		g := p.Geometry()
		fmt.Fprintf(os.Stderr, "%s, region at Vds=%g V: %s, colours n=%d p=%d\n",
			p.Label(), model.VdsMax, model.Region(p.Vgs, model.VdsMax), g.NColor, g.PColor)
	}
	s := session.New(session.PolicySticky).Apply(session.EditMosfet(p))
	page := render(s, session.ViewMosfetSim)
	return writeFigures(os.Stdout, page.Figures, mosfetJSON, mosfetOutput)
}
