package cli

import (
	"os"

	"github.com/spf13/cobra"

	"printutils/internal/system"
)

func newRootCmd() (*cobra.Command, error) {
	s := newSettings()
	cmd := &cobra.Command{
		Use:   "printutils [args...]",
		Short: "printutils – tagged, timestamped terminal output",
		Long: "printutils prints its arguments through a print wrapper.\n" +
			"Without a subcommand the arguments go through the plain call, which is\n" +
			"only decorated when --decorate-pure-print is set.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := s.wrapper(cmd)
			if err != nil {
				return err
			}
			_, err = w.Call(toAny(args)...)
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	if err := s.register(cmd); err != nil {
		return nil, err
	}

	for _, tc := range tagCommands {
		cmd.AddCommand(newTagCmd(s, tc))
	}
	cmd.AddCommand(newDemoCmd(s), newVersionCmd())
	return cmd, nil
}

// Execute runs the CLI.
func Execute() {
	cmd, err := newRootCmd()
	if err == nil {
		err = cmd.Execute()
	}
	if err != nil {
		system.Logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func toAny(args []string) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = a
	}
	return out
}
