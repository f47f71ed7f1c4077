package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"printutils"
)

const envPrefix = "PRINTUTILS"

// settings resolves wrapper options from persistent flags and PRINTUTILS_*
// environment variables. A flag set on the command line wins over the env.
type settings struct {
	v *viper.Viper
}

func newSettings() *settings {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &settings{v: v}
}

// register adds the persistent flags to cmd and binds them to the env.
func (s *settings) register(cmd *cobra.Command) error {
	def := printutils.NewConfig()
	flags := cmd.PersistentFlags()
	flags.String("name", "printutils", "title printed in front of decorated output")
	flags.Bool("allow-print", def.AllowPrint, "print anything at all")
	flags.Bool("decorate-pure-print", def.DecoratePurePrint, "decorate the plain call too")
	flags.Bool("timestamp", def.Timestamp, "prefix output with a timestamp")
	flags.String("timestamp-format", def.TimestampFormat, "strftime pattern for the timestamp")
	flags.Bool("title", def.Title, "prefix output with --name")
	if err := s.v.BindPFlags(flags); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	return nil
}

func (s *settings) config() printutils.Config {
	cfg := printutils.NewConfig()
	cfg.AllowPrint = s.v.GetBool("allow-print")
	cfg.DecoratePurePrint = s.v.GetBool("decorate-pure-print")
	cfg.Timestamp = s.v.GetBool("timestamp")
	cfg.TimestampFormat = s.v.GetString("timestamp-format")
	cfg.Title = s.v.GetBool("title")
	return cfg
}

// wrapper builds an explicit wrapper printing to the command's stdout.
func (s *settings) wrapper(cmd *cobra.Command) (*printutils.PrintWrapper, error) {
	return printutils.Init(append(s.options(),
		printutils.WithPrint(stdoutPrint(cmd)),
		printutils.Explicit(),
	)...)
}

// options carries the resolved config and, when set, the name. An empty
// --name leaves the title to caller inference.
func (s *settings) options() []printutils.Option {
	opts := []printutils.Option{printutils.WithConfig(s.config())}
	if name := s.v.GetString("name"); name != "" {
		opts = append(opts, printutils.WithName(name))
	}
	return opts
}

func stdoutPrint(cmd *cobra.Command) printutils.PrintFunc {
	return func(a ...any) (int, error) {
		return fmt.Fprintln(cmd.OutOrStdout(), a...)
	}
}
