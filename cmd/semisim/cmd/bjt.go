package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"semisim/param"
	"semisim/session"
)

var (
	bjtFlags  map[string]*float64
	bjtJSON   bool
	bjtOutput string
	bjtReset  bool
)

var bjtCmd = &cobra.Command{
	Use:   "bjt",
	Short: "Compute the BJT common-base input and output families",
	Long: `Evaluate three input curves (I_E vs V_BE at V_CB samples) and three
output curves (I_C vs V_CB at I_E samples). Currents are reported in mA.

Examples:
  semisim bjt                                   # Both families as tables
  semisim bjt --v-cb-max 5 --i-e-max 0.008      # Custom ranges
  semisim bjt --reset                           # Default parameter set
  semisim bjt -o plots                          # Write plots/bjt-input.png and plots/bjt-output.png`,
	RunE: runBJT,
}

func init() {
	bjtFlags = sliderFlags(bjtCmd, param.BJTSliders)
	bjtCmd.Flags().BoolVar(&bjtJSON, "json", false, "output the families as JSON")
	bjtCmd.Flags().StringVarP(&bjtOutput, "output", "o", "", "write static plots into this directory")
	bjtCmd.Flags().BoolVar(&bjtReset, "reset", false, "ignore parameter flags and use the default set")
	rootCmd.AddCommand(bjtCmd)
}

func runBJT(cmd *cobra.Command, args []string) error {
	policy, err := cfg.Policy()
	if err != nil {
		return err
	}
	s := session.New(policy).Apply(session.EditBJT(param.BJT(sliderValues(cmd, param.BJTSliders, bjtFlags))))
	if bjtReset {
		s = s.Apply(session.Reset())
	}
	if cfg.Verbose {
		fmt.Fprintf(os.Stderr, "reset state: %s, %+v\n", s.Reset, s.BJT)
	}
	page := render(s, session.ViewBJTSim)
	return writeFigures(os.Stdout, page.Figures, bjtJSON, bjtOutput)
}
