// Package cli is voltclockctl, the workstation companion to the voltclock firmware.
// It turns a TOML settings file into the JSON the board reads, and checks the store
// and voltmeter math without a board attached.
package cli

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. out receives normal output.
func NewRootCmd(out io.Writer) *cobra.Command {
	var noColor bool

	root := &cobra.Command{
		Use:           "voltclockctl",
		Short:         "Prepare settings for and check the voltclock firmware",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}
	root.SetOut(out)
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newConfigCmd(),
		newProbeCmd(),
		newVoltsCmd(),
	)
	return root
}

// Execute runs voltclockctl against os.Args.
func Execute() error {
	root := NewRootCmd(os.Stdout)
	if err := root.Execute(); err != nil {
		fail(os.Stderr, err.Error())
		return err
	}
	return nil
}

func ok(w io.Writer, msg string) {
	_, _ = color.New(color.FgHiGreen, color.Bold).Fprint(w, "ok  ")
	_, _ = io.WriteString(w, msg+"\n")
}

func warn(w io.Writer, msg string) {
	_, _ = color.New(color.FgHiYellow, color.Bold).Fprint(w, "warn ")
	_, _ = io.WriteString(w, msg+"\n")
}

func fail(w io.Writer, msg string) {
	_, _ = color.New(color.FgHiRed, color.Bold).Fprint(w, "fail ")
	_, _ = io.WriteString(w, msg+"\n")
}
