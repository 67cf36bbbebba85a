package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/voltworks/voltcalc/internal/circuit"
)

var ohmCmd = &cobra.Command{
	Use:   "ohm",
	Short: "Resolve voltage, current, resistance and power from any two",
	Long: `Resolve the four Ohm's law quantities from any two known ones.

Flags take numbers as text; a blank or omitted flag means the quantity is
unknown. When more than two quantities are given, the first known pair in
the order (V,I), (V,R), (V,P), (I,R), (I,P), (R,P) is used and the rest
are ignored. Quantities whose derivation would divide by zero are printed
as "–".

Examples:
  # Resistance and power of a 230 V / 10 A load
  voltcalc ohm --voltage 230 --current 10

  # Current drawn by a 60 W bulb on 12 V
  voltcalc ohm --voltage 12 --power 60

  # JSON output
  voltcalc ohm --resistance 23 --power 2300 --format json`,
	RunE: runOhm,
}

func init() {
	f := ohmCmd.Flags()
	f.String("voltage", "", "known voltage in volts (blank = unknown)")
	f.String("current", "", "known current in amperes (blank = unknown)")
	f.String("resistance", "", "known resistance in ohms (blank = unknown)")
	f.String("power", "", "known power in watts (blank = unknown)")
	f.String("format", "text", "output format (text|json)")
	rootCmd.AddCommand(ohmCmd)
}

func runOhm(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()
	in := circuit.OhmInputs{
		Voltage:    parseOptional(f, "voltage"),
		Current:    parseOptional(f, "current"),
		Resistance: parseOptional(f, "resistance"),
		Power:      parseOptional(f, "power"),
	}

	res, err := circuit.ResolveOhm(in)
	if err != nil {
		if eris.Is(err, circuit.ErrInsufficientInputs) {
			return eris.New("supply at least two of --voltage, --current, --resistance, --power")
		}
		return err
	}

	format, _ := f.GetString("format")
	out := cmd.OutOrStdout()

	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(res), "ohm: encode result")
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Voltage\t%s V\n", formatField(res.Voltage, 3))
	fmt.Fprintf(w, "Current\t%s A\n", formatField(res.Current, 3))
	fmt.Fprintf(w, "Resistance\t%s Ω\n", formatField(res.Resistance, 3))
	fmt.Fprintf(w, "Power\t%s W\n", formatField(res.Power, 3))
	return w.Flush()
}
