package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/voltworks/voltcalc/internal/reference"
)

var referenceSection string

var referenceCmd = &cobra.Command{
	Use:   "reference",
	Short: "Print wiring reference tables",
	Long: `Print the built-in reference tables: formula cheat sheet, common
nominal supply voltages, and the copper conductor table.

Examples:
  voltcalc reference
  voltcalc reference --section conductors`,
	RunE: runReference,
}

func init() {
	referenceCmd.Flags().StringVar(&referenceSection, "section", "", "limit output to one section (formulas|voltages|conductors)")
	rootCmd.AddCommand(referenceCmd)
}

func runReference(cmd *cobra.Command, args []string) error {
	d, err := reference.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch referenceSection {
	case "":
		printFormulas(out, d.Formulas)
		fmt.Fprintln(out)
		printVoltages(out, d.Voltages)
		fmt.Fprintln(out)
		printConductors(out, d.Conductors)
	case "formulas":
		printFormulas(out, d.Formulas)
	case "voltages":
		printVoltages(out, d.Voltages)
	case "conductors":
		printConductors(out, d.Conductors)
	default:
		return eris.Errorf("unknown section %q (want formulas, voltages or conductors)", referenceSection)
	}
	return nil
}

func printFormulas(out io.Writer, formulas []reference.Formula) {
	fmt.Fprintln(out, "Formulas:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, f := range formulas {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", f.Name, f.Expression, f.Note)
	}
	w.Flush()
}

func printVoltages(out io.Writer, voltages []reference.SupplyVoltage) {
	fmt.Fprintln(out, "Nominal supply voltages:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, v := range voltages {
		fmt.Fprintf(w, "  %g V\t%s\t%s\n", v.Volts, v.Phase, v.Label)
	}
	w.Flush()
}

func printConductors(out io.Writer, conductors []reference.Conductor) {
	fmt.Fprintln(out, "Copper conductors (PVC in conduit, 30 °C ambient):")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  mm²\tampacity\tbreaker\n")
	for _, c := range conductors {
		fmt.Fprintf(w, "  %g\t%g A\t%g A\n", c.AreaMm2, c.AmpacityAmps, c.BreakerAmps)
	}
	w.Flush()
}
