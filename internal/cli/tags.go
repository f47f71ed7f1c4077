package cli

import (
	"github.com/spf13/cobra"

	"printutils"
)

type tagCommand struct {
	use   string
	short string
	op    func(w *printutils.PrintWrapper) func(...any) (int, error)
}

var tagCommands = []tagCommand{
	{"log", "Print with the [L] tag, uncolored", func(w *printutils.PrintWrapper) func(...any) (int, error) { return w.Log }},
	{"info", "Print with the [I] tag in cyan", func(w *printutils.PrintWrapper) func(...any) (int, error) { return w.Info }},
	{"success", "Print with the [S] tag in green", func(w *printutils.PrintWrapper) func(...any) (int, error) { return w.Success }},
	{"warning", "Print with the [W] tag in yellow", func(w *printutils.PrintWrapper) func(...any) (int, error) { return w.Warning }},
	{"error", "Print with the [E] tag in bold red", func(w *printutils.PrintWrapper) func(...any) (int, error) { return w.Error }},
}

func newTagCmd(s *settings, tc tagCommand) *cobra.Command {
	return &cobra.Command{
		Use:   tc.use + " [args...]",
		Short: tc.short,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := s.wrapper(cmd)
			if err != nil {
				return err
			}
			_, err = tc.op(w)(toAny(args)...)
			return err
		},
	}
}
