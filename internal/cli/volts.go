package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ajanata/voltclock-hardware/internal/volt"
)

func printVolts(w io.Writer, d volt.Divider, readings []string) error {
	top := int(d.Resolution) - 1
	for _, s := range readings {
		r, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("reading %q: %w", s, err)
		}
		if r < 0 || r > top {
			return fmt.Errorf("reading %d outside 0..%d", r, top)
		}
		fmt.Fprintf(w, "%4d  %s V\n", r, strconv.FormatFloat(float64(d.Volts(uint16(r))), 'f', 2, 32))
	}
	return nil
}

func newVoltsCmd() *cobra.Command {
	d := volt.Default

	cmd := &cobra.Command{
		Use:   "volts <reading>...",
		Short: "Convert raw voltmeter readings to volts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printVolts(cmd.OutOrStdout(), d, args)
		},
	}
	f := cmd.Flags()
	f.Float32Var(&d.Reference, "ref", d.Reference, "converter reference voltage")
	f.Float32Var(&d.Resolution, "resolution", d.Resolution, "converter counts per full scale")
	f.Float32Var(&d.R1, "r1", d.R1, "divider high side, ohms")
	f.Float32Var(&d.R2, "r2", d.R2, "divider low side, ohms")
	return cmd
}
