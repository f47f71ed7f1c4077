package cli

import (
	"github.com/spf13/cobra"

	"printutils"
)

func newDemoCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run every print operation once",
		Long: "demo rebinds a local print function through the wrapper, calls each\n" +
			"tagged operation, then does the same through an explicit wrapper.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			print := stdoutPrint(cmd)
			w, err := printutils.Init(append(s.options(), printutils.WithBinding(&print))...)
			if err != nil {
				return err
			}

			steps := []func() (int, error){
				func() (int, error) { return print("pure", "go", "print", 42) },
				func() (int, error) { return w.Log("log", 42) },
				func() (int, error) { return w.Error("error", 42) },
				func() (int, error) { return w.Success("success", 42) },
				func() (int, error) { return w.Warning("warning", 42) },
				func() (int, error) { return w.Info("info", 42) },
			}
			for _, step := range steps {
				if _, err := step(); err != nil {
					return err
				}
			}

			console, err := s.wrapper(cmd)
			if err != nil {
				return err
			}
			_, err = console.Success("Explicit printutils call", 42)
			return err
		},
	}
}
