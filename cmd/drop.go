package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/voltworks/voltcalc/internal/circuit"
	"github.com/voltworks/voltcalc/internal/reference"
)

var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Estimate voltage drop over a copper conductor run",
	Long: `Estimate the voltage drop over a copper cable run from its one-way
length, load current, conductor cross-section and supply voltage. The
calculation assumes copper at 20 °C and accounts for the return conductor.

Examples:
  # 30 m run of 2.5 mm² at 16 A on 230 V
  voltcalc drop --length 30 --current 16 --area 2.5

  # 12 V circuit, where every tenth of a volt counts
  voltcalc drop --length 8 --current 10 --area 4 --supply 12`,
	RunE: runDrop,
}

func init() {
	f := dropCmd.Flags()
	f.Float64("length", 0, "one-way cable run in meters")
	f.Float64("current", 0, "load current in amperes")
	f.Float64("area", 0, "conductor cross-section in mm², 1.5 to 35")
	f.Float64("supply", 230, "supply voltage in volts")
	f.String("format", "text", "output format (text|json)")
	dropCmd.MarkFlagRequired("length")
	dropCmd.MarkFlagRequired("current")
	dropCmd.MarkFlagRequired("area")
	rootCmd.AddCommand(dropCmd)
}

func runDrop(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()

	length, _ := f.GetFloat64("length")
	current, _ := f.GetFloat64("current")
	area, _ := f.GetFloat64("area")
	supply, _ := f.GetFloat64("supply")

	res, err := circuit.EstimateDrop(circuit.DropInputs{
		LengthMeters: length,
		CurrentAmps:  current,
		AreaMm2:      area,
		SupplyVolts:  supply,
	})
	if err != nil {
		return err
	}

	format, _ := f.GetString("format")
	out := cmd.OutOrStdout()

	if format == "json" {
		res.DropVolts = circuit.Round(res.DropVolts, 2)
		res.DropPercent = circuit.Round(res.DropPercent, 2)
		res.LoopResistanceOhms = circuit.Round(res.LoopResistanceOhms, 2)
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(res), "drop: encode result")
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Voltage drop\t%s V\n", formatFixed(res.DropVolts, 2))
	fmt.Fprintf(w, "Drop of supply\t%s %%\n", formatFixed(res.DropPercent, 2))
	fmt.Fprintf(w, "Loop resistance\t%s Ω\n", formatFixed(res.LoopResistanceOhms, 2))
	if err := w.Flush(); err != nil {
		return err
	}

	// Suggest the matching standard conductor when the given area is
	// between standard sizes.
	if c, err := reference.ConductorFor(area); err == nil && c.AreaMm2 != area {
		fmt.Fprintf(out, "\nNearest standard conductor: %g mm² (%g A typical, %g A breaker)\n",
			c.AreaMm2, c.AmpacityAmps, c.BreakerAmps)
	}

	return nil
}
