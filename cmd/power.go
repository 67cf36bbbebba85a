package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/voltworks/voltcalc/internal/circuit"
)

var powerCmd = &cobra.Command{
	Use:   "power",
	Short: "Estimate single- or three-phase power and breaker size",
	Long: `Estimate real power, apparent power and a recommended breaker rating
from measured voltage, current and power factor.

Examples:
  # Single-phase 230 V / 10 A resistive load
  voltcalc power --voltage 230 --current 10

  # Three-phase motor at pf 0.85
  voltcalc power --phase three --voltage 400 --current 16 --pf 0.85`,
	RunE: runPower,
}

func init() {
	f := powerCmd.Flags()
	f.String("phase", "single", "supply phase (single|three)")
	f.Float64("voltage", 0, "supply voltage in volts")
	f.Float64("current", 0, "load current in amperes")
	f.Float64("pf", 1.0, "power factor, 0.5 to 1.0")
	f.String("format", "text", "output format (text|json)")
	powerCmd.MarkFlagRequired("voltage")
	powerCmd.MarkFlagRequired("current")
	rootCmd.AddCommand(powerCmd)
}

func runPower(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()

	phaseStr, _ := f.GetString("phase")
	phase, err := circuit.ParsePhase(phaseStr)
	if err != nil {
		return err
	}

	voltage, _ := f.GetFloat64("voltage")
	current, _ := f.GetFloat64("current")
	pf, _ := f.GetFloat64("pf")

	res, err := circuit.EstimatePower(circuit.PowerInputs{
		Phase:       phase,
		Voltage:     voltage,
		Current:     current,
		PowerFactor: pf,
	})
	if err != nil {
		return err
	}

	format, _ := f.GetString("format")
	out := cmd.OutOrStdout()

	if format == "json" {
		res.RealPowerWatts = circuit.Round(res.RealPowerWatts, 2)
		res.ApparentPowerVA = circuit.Round(res.ApparentPowerVA, 2)
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(res), "power: encode result")
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Real power\t%s W\n", formatFixed(res.RealPowerWatts, 2))
	fmt.Fprintf(w, "Apparent power\t%s VA\n", formatFixed(res.ApparentPowerVA, 2))
	fmt.Fprintf(w, "Recommended breaker\t%s A\n", formatFixed(res.RecommendedBreakerAmps, 2))
	return w.Flush()
}
